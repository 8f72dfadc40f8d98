package httpapi

type errorResponse struct {
	Error string `json:"error"`
}

type downloadRequest struct {
	URL    string `json:"url"`
	Format string `json:"format"`
}

type downloadResponse struct {
	Message     string `json:"message"`
	File        string `json:"file"`
	DownloadURL string `json:"downloadUrl"`
}

type videoInfoResponse struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	Description string `json:"description"`
	Length      string `json:"length"`
	Views       string `json:"views"`
}

type transcribeRequest struct {
	Filename string `json:"filename"`
}

type transcribeResponse struct {
	Message    string `json:"message"`
	Transcript string `json:"transcript"`
}

type summarizeRequest struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
	DOCX     bool   `json:"docx"`
}

type summarizeResponse struct {
	Transcript  string `json:"transcript"`
	Summary     string `json:"summary"`
	DocumentURL string `json:"documentUrl,omitempty"`
}

package summarizer

import "context"

// Summarizer turns transcript text into a markdown summary.
type Summarizer interface {
	// Summarize returns the model's summary of text verbatim.
	Summarize(ctx context.Context, text string) (string, error)
	// ExportDOCX renders a markdown summary into a DOCX file at path.
	ExportDOCX(title, summary, path string) error
}

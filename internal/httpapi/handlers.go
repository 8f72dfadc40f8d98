package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/nguyentantai21042004/video-brief/internal/downloader"
	"github.com/nguyentantai21042004/video-brief/internal/media"
	"github.com/nguyentantai21042004/video-brief/internal/transcript"
	"github.com/nguyentantai21042004/video-brief/internal/youtube"
)

const msgInvalidJSON = "Invalid JSON body"

func (h *handler) handleDownload(w http.ResponseWriter, r *http.Request) {
	var req downloadRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}
	if strings.TrimSpace(req.URL) == "" {
		h.writeError(w, http.StatusBadRequest, "No URL provided")
		return
	}

	res, err := h.deps.Downloader.DownloadVideo(r.Context(), req.URL, req.Format)
	switch {
	case errors.Is(err, downloader.ErrUnsupportedFormat):
		h.writeError(w, http.StatusBadRequest, "Unsupported format")
		return
	case err != nil:
		h.logger.Error(r.Context(), "Download failed for %s: %v", req.URL, err)
		h.writeError(w, http.StatusInternalServerError, "Download failed")
		return
	}

	h.writeJSON(w, http.StatusOK, downloadResponse{
		Message:     "Download successful",
		File:        res.File,
		DownloadURL: res.DownloadURL,
	})
}

func (h *handler) handleDownloadAudio(w http.ResponseWriter, r *http.Request) {
	var req downloadRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}
	if strings.TrimSpace(req.URL) == "" {
		h.writeError(w, http.StatusBadRequest, "No URL provided")
		return
	}

	res, err := h.deps.Downloader.DownloadAudio(r.Context(), req.URL)
	if err != nil {
		h.logger.Error(r.Context(), "Audio download failed for %s: %v", req.URL, err)
		h.writeError(w, http.StatusInternalServerError, "Audio download failed")
		return
	}

	h.writeJSON(w, http.StatusOK, downloadResponse{
		Message:     "Audio download successful",
		File:        res.File,
		DownloadURL: res.DownloadURL,
	})
}

func (h *handler) handleVideoInfo(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	info, err := h.deps.Info.Lookup(r.Context(), id)
	if err != nil {
		h.logger.Error(r.Context(), "Video info lookup failed for %s: %v", id, err)
		h.writeError(w, http.StatusInternalServerError, "Failed to fetch video info")
		return
	}

	h.writeJSON(w, http.StatusOK, videoInfoResponse{
		Title:       info.Title,
		Author:      info.Author,
		Description: info.Description,
		Length:      youtube.FormatLength(info.Length),
		Views:       strconv.Itoa(info.Views),
	})
}

func (h *handler) handleTranscribeAudio(w http.ResponseWriter, r *http.Request) {
	var req transcribeRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}
	if req.Filename == "" {
		h.writeError(w, http.StatusBadRequest, "No filename provided")
		return
	}

	text, err := h.deps.Transcriber.TranscribeFile(r.Context(), req.Filename)
	switch {
	case errors.Is(err, media.ErrInvalidName):
		h.writeError(w, http.StatusBadRequest, "Invalid filename")
		return
	case errors.Is(err, media.ErrNotFound):
		h.writeError(w, http.StatusNotFound, "File not found")
		return
	case err != nil:
		h.logger.Error(r.Context(), "Transcription failed for %s: %v", req.Filename, err)
		h.writeError(w, http.StatusInternalServerError, "Transcription failed")
		return
	}

	h.writeJSON(w, http.StatusOK, transcribeResponse{
		Message:    "Transcription successful",
		Transcript: text,
	})
}

// handleSummarize resolves a transcript through the fallback chain, so it
// never rejects a request for missing input.
func (h *handler) handleSummarize(w http.ResponseWriter, r *http.Request) {
	var req summarizeRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	// The URL is passed on verbatim; a blank one means none was given.
	src := transcript.Source{StoredFile: req.Filename, URL: req.URL}
	if strings.TrimSpace(src.URL) == "" {
		src.URL = ""
	}
	text := h.deps.Resolver.Resolve(r.Context(), src)

	summary, err := h.deps.Summarizer.Summarize(r.Context(), text)
	if err != nil {
		h.logger.Error(r.Context(), "Summarization failed: %v", err)
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	resp := summarizeResponse{Transcript: text, Summary: summary}
	if req.DOCX {
		resp.DocumentURL = h.exportSummary(r.Context(), req, summary)
	}
	h.writeJSON(w, http.StatusOK, resp)
}

// exportSummary writes summary_<ms>.docx and returns its public path, or
// "" when the export fails.
func (h *handler) exportSummary(ctx context.Context, req summarizeRequest, summary string) string {
	name := h.deps.Store.NewName("summary", "docx")
	path, err := h.deps.Store.Path(name)
	if err != nil {
		h.logger.Error(ctx, "DOCX export failed: %v", err)
		return ""
	}

	title := "Video Summary"
	switch {
	case req.URL != "":
		title += ": " + req.URL
	case req.Filename != "":
		title += ": " + req.Filename
	}

	if err := h.deps.Summarizer.ExportDOCX(title, summary, path); err != nil {
		h.logger.Error(ctx, "DOCX export failed: %v", err)
		return ""
	}
	return media.URL(name)
}

func (h *handler) handleStoredFile(w http.ResponseWriter, r *http.Request) {
	h.deps.Store.ServeFile(w, r, mux.Vars(r)["file"])
}

func (h *handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handler) handleNotFound(w http.ResponseWriter, r *http.Request) {
	h.writeError(w, http.StatusNotFound, "Not found")
}

func (h *handler) handleMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	h.writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
}

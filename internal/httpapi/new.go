// Package httpapi exposes the download, transcription and summary
// operations over HTTP.
package httpapi

import (
	"context"
	"net/http"

	"github.com/nguyentantai21042004/video-brief/internal/config"
	"github.com/nguyentantai21042004/video-brief/internal/downloader"
	"github.com/nguyentantai21042004/video-brief/internal/logger"
	"github.com/nguyentantai21042004/video-brief/internal/media"
	"github.com/nguyentantai21042004/video-brief/internal/summarizer"
	"github.com/nguyentantai21042004/video-brief/internal/transcriber"
	"github.com/nguyentantai21042004/video-brief/internal/transcript"
	"github.com/nguyentantai21042004/video-brief/internal/youtube"
)

// InfoLookup is satisfied by *youtube.InfoClient.
type InfoLookup interface {
	Lookup(ctx context.Context, id string) (youtube.VideoInfo, error)
}

// Deps are the collaborators the handlers call into.
type Deps struct {
	Store       *media.Store
	Downloader  downloader.Downloader
	Transcriber transcriber.Transcriber
	Summarizer  summarizer.Summarizer
	Resolver    transcript.Resolver
	Info        InfoLookup
}

type handler struct {
	cfg    *config.Config
	deps   Deps
	logger logger.Logger
}

// New builds the complete HTTP handler: routes, middleware and CORS.
func New(cfg *config.Config, deps Deps, log logger.Logger) http.Handler {
	h := &handler{
		cfg:    cfg,
		deps:   deps,
		logger: log,
	}
	return h.routes()
}

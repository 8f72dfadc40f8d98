package transcriber

import (
	"github.com/nguyentantai21042004/video-brief/internal/gemini"
	"github.com/nguyentantai21042004/video-brief/internal/logger"
	"github.com/nguyentantai21042004/video-brief/internal/media"
)

type implTranscriber struct {
	store  *media.Store
	client gemini.Client
	logger logger.Logger
}

// New creates a Transcriber that reads files from store and sends them to Gemini.
func New(store *media.Store, client gemini.Client, log logger.Logger) Transcriber {
	return &implTranscriber{
		store:  store,
		client: client,
		logger: log,
	}
}

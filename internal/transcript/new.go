package transcript

import (
	"github.com/nguyentantai21042004/video-brief/internal/logger"
	"github.com/nguyentantai21042004/video-brief/internal/media"
	"github.com/nguyentantai21042004/video-brief/internal/transcriber"
)

type implResolver struct {
	providers []Provider
	logger    logger.Logger
}

// New creates a Resolver that tries providers in order.
func New(log logger.Logger, providers ...Provider) Resolver {
	return &implResolver{
		providers: providers,
		logger:    log,
	}
}

// NewDefault wires the standard chain: stored audio, captions, placeholder.
func NewDefault(store *media.Store, tr transcriber.Transcriber, captions CaptionFetcher, log logger.Logger) Resolver {
	return New(log,
		NewAudioProvider(store, tr),
		NewCaptionProvider(captions),
		PlaceholderProvider{},
	)
}

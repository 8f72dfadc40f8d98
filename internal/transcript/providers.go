package transcript

import (
	"context"
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/video-brief/internal/media"
	"github.com/nguyentantai21042004/video-brief/internal/transcriber"
	"github.com/nguyentantai21042004/video-brief/internal/youtube"
)

// CaptionFetcher is satisfied by *youtube.CaptionClient.
type CaptionFetcher interface {
	FetchCaptions(ctx context.Context, url string) ([]youtube.Caption, error)
}

// AudioProvider transcribes a stored media file.
type AudioProvider struct {
	store       *media.Store
	transcriber transcriber.Transcriber
}

func NewAudioProvider(store *media.Store, tr transcriber.Transcriber) *AudioProvider {
	return &AudioProvider{store: store, transcriber: tr}
}

func (p *AudioProvider) Name() string { return "audio" }

func (p *AudioProvider) Attempt(ctx context.Context, src Source) (string, error) {
	if src.StoredFile == "" || !p.store.Exists(src.StoredFile) {
		return "", ErrSkipped
	}
	return p.transcriber.TranscribeFile(ctx, src.StoredFile)
}

// CaptionProvider joins the fragments of the video's caption track.
type CaptionProvider struct {
	fetcher CaptionFetcher
}

func NewCaptionProvider(fetcher CaptionFetcher) *CaptionProvider {
	return &CaptionProvider{fetcher: fetcher}
}

func (p *CaptionProvider) Name() string { return "captions" }

func (p *CaptionProvider) Attempt(ctx context.Context, src Source) (string, error) {
	if src.URL == "" {
		return "", ErrSkipped
	}
	captions, err := p.fetcher.FetchCaptions(ctx, src.URL)
	if err != nil {
		return "", fmt.Errorf("fetch captions: %w", err)
	}
	parts := make([]string, len(captions))
	for i, c := range captions {
		parts[i] = c.Text
	}
	return strings.Join(parts, " "), nil
}

// PlaceholderProvider asks the summarizer to fall back on general knowledge.
type PlaceholderProvider struct{}

func (PlaceholderProvider) Name() string { return "placeholder" }

func (PlaceholderProvider) Attempt(_ context.Context, src Source) (string, error) {
	if src.URL == "" {
		return "", ErrSkipped
	}
	return Placeholder(src.URL), nil
}

// Placeholder is the stand-in transcript for a video with no usable text.
func Placeholder(url string) string {
	return fmt.Sprintf("This is a YouTube video: %s. Please summarize it based on its title, metadata, and general knowledge.", url)
}

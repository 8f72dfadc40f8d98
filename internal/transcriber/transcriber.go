package transcriber

import (
	"context"
	"fmt"
	"time"

	"github.com/nguyentantai21042004/video-brief/internal/media"
)

const transcribePrompt = "Please transcribe this audio into text:"

// TranscribeFile sends the stored file inline to Gemini. It returns
// media.ErrInvalidName or media.ErrNotFound before any API call.
func (t *implTranscriber) TranscribeFile(ctx context.Context, name string) (string, error) {
	data, err := t.store.ReadFile(name)
	if err != nil {
		return "", err
	}

	mimeType := media.MIMEType(name)
	t.logger.Info(ctx, "Transcribing %s (%s, %s)", name, mimeType, media.FormatFileSize(int64(len(data))))

	start := time.Now()
	text, err := t.client.GenerateFromMedia(ctx, transcribePrompt, data, mimeType)
	if err != nil {
		return "", fmt.Errorf("transcribe %s: %w", name, err)
	}

	t.logger.Info(ctx, "Transcribed %s in %v (%d chars)", name, time.Since(start).Round(time.Millisecond), len(text))
	return text, nil
}

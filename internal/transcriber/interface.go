package transcriber

import "context"

// Transcriber turns a stored audio or video file into text.
type Transcriber interface {
	TranscribeFile(ctx context.Context, name string) (string, error)
}

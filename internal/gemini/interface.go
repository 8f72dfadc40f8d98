package gemini

import "context"

// Client is the process-wide handle to the Gemini API.
type Client interface {
	// GenerateText sends a text-only prompt and returns the response text.
	GenerateText(ctx context.Context, prompt string) (string, error)
	// GenerateFromMedia sends a prompt followed by inline media bytes.
	GenerateFromMedia(ctx context.Context, prompt string, data []byte, mimeType string) (string, error)
}

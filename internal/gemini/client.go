package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/video-brief/internal/logger"
)

var ErrEmptyResponse = errors.New("empty response from Gemini")

type implClient struct {
	model      string
	generators []contentGenerator
	logger     logger.Logger

	mu         sync.Mutex
	currentKey int
}

func (c *implClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	return c.generate(ctx, genai.Text(prompt))
}

func (c *implClient) GenerateFromMedia(ctx context.Context, prompt string, data []byte, mimeType string) (string, error) {
	parts := []*genai.Part{
		genai.NewPartFromText(prompt),
		genai.NewPartFromBytes(data, mimeType),
	}
	return c.generate(ctx, []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)})
}

// generate calls Gemini once per key at most, moving to the next key only
// on rate-limit or quota errors. Keys are walked from the shared cursor in
// call-local order, so rotations by concurrent calls cannot repeat a key.
func (c *implClient) generate(ctx context.Context, contents []*genai.Content) (string, error) {
	var lastErr error
	n := len(c.generators)
	start := c.current()

	for i := range n {
		idx := (start + i) % n

		result, err := c.generators[idx].GenerateContent(ctx, c.model, contents, nil)
		if err != nil {
			if isQuotaError(err) && n > 1 {
				c.logger.Warn(ctx, "Key %d rate limited, rotating...", idx+1)
				c.rotateFrom(idx)
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		text := responseText(result)
		if text == "" {
			return "", ErrEmptyResponse
		}
		return text, nil
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (c *implClient) current() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentKey
}

// rotateFrom advances past idx unless another request already did.
func (c *implClient) rotateFrom(idx int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.currentKey == idx {
		c.currentKey = (c.currentKey + 1) % len(c.generators)
	}
}

func isQuotaError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "429") || strings.Contains(msg, "quota") || strings.Contains(msg, "RESOURCE_EXHAUSTED")
}

// responseText concatenates the text parts of the first candidate.
func responseText(result *genai.GenerateContentResponse) string {
	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		if part != nil && part.Text != "" {
			sb.WriteString(part.Text)
		}
	}
	return sb.String()
}

package summarizer

import (
	"context"
	"fmt"
	"time"
)

const summaryPrompt = "Summarize the following YouTube transcript clearly and concisely:\n\n%s"

// Summarize sends the whole text in one request. Overlong input is
// rejected by the API, not truncated here.
func (s *implSummarizer) Summarize(ctx context.Context, text string) (string, error) {
	s.logger.Info(ctx, "Summarizing transcript (%d chars)", len(text))

	start := time.Now()
	summary, err := s.client.GenerateText(ctx, fmt.Sprintf(summaryPrompt, text))
	if err != nil {
		return "", fmt.Errorf("summarize: %w", err)
	}

	s.logger.Info(ctx, "Summary ready in %v (%d chars)", time.Since(start).Round(time.Millisecond), len(summary))
	return summary, nil
}

// ExportDOCX writes summary as a styled document.
func (s *implSummarizer) ExportDOCX(title, summary, path string) error {
	if err := markdownToDocx(title, summary, path); err != nil {
		return fmt.Errorf("export docx %s: %w", path, err)
	}
	return nil
}

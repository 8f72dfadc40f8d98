package transcript

import (
	"context"
	"errors"
	"strings"
)

// Resolve returns the text of the first provider that succeeds with a
// non-empty result. Later providers are not invoked.
func (r *implResolver) Resolve(ctx context.Context, src Source) string {
	for _, p := range r.providers {
		text, err := p.Attempt(ctx, src)
		switch {
		case errors.Is(err, ErrSkipped):
			r.logger.Debug(ctx, "Transcript provider %s skipped", p.Name())
			continue
		case err != nil:
			r.logger.Warn(ctx, "Transcript provider %s failed: %v", p.Name(), err)
			continue
		case strings.TrimSpace(text) == "":
			r.logger.Warn(ctx, "Transcript provider %s returned empty text", p.Name())
			continue
		}

		r.logger.Info(ctx, "Transcript resolved by %s (%d chars)", p.Name(), len(text))
		return text
	}

	r.logger.Warn(ctx, "No transcript provider succeeded")
	return NotAvailable
}

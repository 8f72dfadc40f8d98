// Package transcript resolves a best-effort transcript for a request by
// trying an ordered list of providers.
package transcript

import (
	"context"
	"errors"
)

// NotAvailable is the transcript when no provider produced text.
const NotAvailable = "Transcript not available."

// ErrSkipped is returned by a provider that does not apply to the source.
var ErrSkipped = errors.New("provider skipped")

// Source describes what is known about the video being summarized.
// Either field may be empty.
type Source struct {
	StoredFile string
	URL        string
}

// Provider is one transcript source in the fallback chain.
type Provider interface {
	Name() string
	Attempt(ctx context.Context, src Source) (string, error)
}

// Resolver produces a transcript and never fails.
type Resolver interface {
	Resolve(ctx context.Context, src Source) string
}

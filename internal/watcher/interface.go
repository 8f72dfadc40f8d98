package watcher

import "context"

// Watcher reports media files that appear in the downloads directory.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler receives the base name of a newly stored file.
type EventHandler func(ctx context.Context, name string) error

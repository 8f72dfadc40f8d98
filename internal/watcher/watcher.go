package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/video-brief/internal/logger"
	"github.com/nguyentantai21042004/video-brief/internal/media"
)

var mediaExtensions = map[string]bool{
	".mp4": true, ".mkv": true, ".webm": true, ".mov": true,
	".m4a": true, ".mp3": true, ".wav": true, ".ogg": true,
	".flac": true, ".aac": true, ".docx": true,
}

// Start blocks until ctx is cancelled or the underlying watcher closes.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "File watcher started. Monitoring: %s", w.dir)

	var wg sync.WaitGroup
	defer wg.Wait()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "File watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if !event.Has(fsnotify.Create) {
				continue
			}

			name := filepath.Base(event.Name)
			if !isMediaFile(name) {
				w.logger.Debug(ctx, "Ignoring file: %s", name)
				continue
			}

			wg.Add(1)
			go func() {
				defer wg.Done()
				if w.settle > 0 {
					select {
					case <-time.After(w.settle):
					case <-ctx.Done():
						return
					}
				}
				if err := w.handler(ctx, name); err != nil {
					w.logger.Error(ctx, "Failed to handle %s: %v", name, err)
				}
			}()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

// isMediaFile excludes yt-dlp partials such as video_1.mp4.part.
func isMediaFile(name string) bool {
	if strings.HasPrefix(name, ".") {
		return false
	}
	return mediaExtensions[strings.ToLower(filepath.Ext(name))]
}

// LogStored returns a handler that logs each new file with its size.
func LogStored(store *media.Store, log logger.Logger) EventHandler {
	return func(ctx context.Context, name string) error {
		info, err := store.Stat(name)
		if err != nil {
			return err
		}
		log.Info(ctx, "Stored %s (%s)", name, media.FormatFileSize(info.Size()))
		return nil
	}
}

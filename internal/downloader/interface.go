package downloader

import "context"

// Downloader fetches remote media into the stored media directory.
type Downloader interface {
	DownloadVideo(ctx context.Context, url, format string) (Result, error)
	DownloadAudio(ctx context.Context, url string) (Result, error)
}

// Result describes a stored download.
type Result struct {
	File        string
	DownloadURL string
}

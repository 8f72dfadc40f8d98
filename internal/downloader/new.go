package downloader

import (
	"golang.org/x/sync/semaphore"

	"github.com/nguyentantai21042004/video-brief/internal/config"
	"github.com/nguyentantai21042004/video-brief/internal/logger"
	"github.com/nguyentantai21042004/video-brief/internal/media"
	"github.com/nguyentantai21042004/video-brief/pkg/executor"
)

type implDownloader struct {
	cfg      config.YtDlpConfig
	store    *media.Store
	executor executor.Executor
	logger   logger.Logger
	sem      *semaphore.Weighted
}

// New creates a Downloader that runs at most
// cfg.Performance.MaxConcurrentDownloads yt-dlp processes at once.
func New(cfg *config.Config, store *media.Store, exec executor.Executor, log logger.Logger) Downloader {
	limit := cfg.Performance.MaxConcurrentDownloads
	if limit <= 0 {
		limit = 1
	}
	return &implDownloader{
		cfg:      cfg.YtDlp,
		store:    store,
		executor: exec,
		logger:   log,
		sem:      semaphore.NewWeighted(int64(limit)),
	}
}

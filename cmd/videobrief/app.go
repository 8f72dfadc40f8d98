package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/nguyentantai21042004/video-brief/internal/config"
	"github.com/nguyentantai21042004/video-brief/internal/downloader"
	"github.com/nguyentantai21042004/video-brief/internal/gemini"
	"github.com/nguyentantai21042004/video-brief/internal/httpapi"
	"github.com/nguyentantai21042004/video-brief/internal/logger"
	"github.com/nguyentantai21042004/video-brief/internal/media"
	"github.com/nguyentantai21042004/video-brief/internal/summarizer"
	"github.com/nguyentantai21042004/video-brief/internal/transcriber"
	"github.com/nguyentantai21042004/video-brief/internal/transcript"
	"github.com/nguyentantai21042004/video-brief/internal/youtube"
	"github.com/nguyentantai21042004/video-brief/pkg/executor"
)

// app holds the process-wide collaborators built once from config.
type app struct {
	cfg   *config.Config
	log   logger.Logger
	store *media.Store
	deps  httpapi.Deps
}

func newApp(ctx context.Context, configPath string) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	// stdout is reserved for command output.
	log := logger.NewWithWriter(os.Stderr, cfg.Logging.Level, cfg.Logging.Format)

	store := media.NewStore(cfg.Paths.Downloads)
	if err := store.EnsureDir(); err != nil {
		return nil, err
	}

	ai, err := gemini.New(ctx, cfg.Gemini, log)
	if err != nil {
		return nil, err
	}

	httpClient := &http.Client{Timeout: cfg.YouTube.HTTPTimeout}
	tr := transcriber.New(store, ai, log)
	captions := youtube.NewCaptionClient(httpClient, cfg.YouTube.Languages)

	return &app{
		cfg:   cfg,
		log:   log,
		store: store,
		deps: httpapi.Deps{
			Store:       store,
			Downloader:  downloader.New(cfg, store, executor.New(), log),
			Transcriber: tr,
			Summarizer:  summarizer.New(ai, log),
			Resolver:    transcript.NewDefault(store, tr, captions, log),
			Info:        youtube.NewInfoClient(httpClient),
		},
	}, nil
}

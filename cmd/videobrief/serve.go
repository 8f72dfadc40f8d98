package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/video-brief/internal/httpapi"
	"github.com/nguyentantai21042004/video-brief/internal/watcher"
	"github.com/nguyentantai21042004/video-brief/pkg/executor"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			a, err := newApp(ctx, *configPath)
			if err != nil {
				return err
			}
			return a.serve(ctx)
		},
	}
}

func (a *app) serve(ctx context.Context) error {
	log := a.log
	log.Info(ctx, "========================================")
	log.Info(ctx, "video-brief API server")
	log.Info(ctx, "========================================")
	log.Info(ctx, "System: %s/%s", runtime.GOOS, runtime.GOARCH)
	log.Info(ctx, "Gemini model: %s (%d API keys)", a.cfg.Gemini.Model, len(a.cfg.Gemini.APIKeys))
	log.Info(ctx, "Downloads: %s", a.store.Dir())
	log.Info(ctx, "Max concurrent downloads: %d", a.cfg.Performance.MaxConcurrentDownloads)

	if missing := executor.Missing(a.cfg.YtDlp.BinaryPath); len(missing) > 0 {
		log.Warn(ctx, "Not found in PATH: %v. Download endpoints will fail.", missing)
	}

	w, err := watcher.New(a.store.Dir(), watcher.LogStored(a.store, log), log)
	if err != nil {
		return err
	}
	defer w.Stop()

	watchErr := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			watchErr <- err
		}
	}()

	srv := &http.Server{
		Addr:              a.cfg.Addr(),
		Handler:           httpapi.New(a.cfg, a.deps, log),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	log.Info(ctx, "Listening on %s. Press Ctrl+C to stop", srv.Addr)

	select {
	case <-ctx.Done():
		log.Info(context.Background(), "Shutdown signal received")
	case err := <-watchErr:
		log.Error(ctx, "Watcher error: %v", err)
	case err := <-serveErr:
		return err
	}

	log.Info(context.Background(), "Shutting down gracefully...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	log.Info(context.Background(), "Server stopped")
	return nil
}

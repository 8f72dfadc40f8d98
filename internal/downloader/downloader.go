package downloader

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/nguyentantai21042004/video-brief/internal/media"
	"github.com/nguyentantai21042004/video-brief/pkg/executor"
)

var (
	ErrMissingURL        = errors.New("no URL provided")
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// mergeFormats are the containers yt-dlp can merge video and audio into.
var mergeFormats = map[string]bool{
	"mp4": true, "mkv": true, "webm": true, "mov": true, "avi": true, "flv": true,
}

// DownloadVideo downloads best video+audio merged into the given container.
func (d *implDownloader) DownloadVideo(ctx context.Context, url, format string) (Result, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return Result{}, ErrMissingURL
	}
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = d.cfg.DefaultFormat
	}
	if !mergeFormats[format] {
		return Result{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	name := d.store.NewName("video", format)
	path, err := d.store.Path(name)
	if err != nil {
		return Result{}, err
	}

	args := []string{
		"-f", d.cfg.VideoSelector,
		"--merge-output-format", format,
		"-o", path,
		"--", url,
	}
	return d.run(ctx, name, args)
}

// DownloadAudio extracts the audio track only.
func (d *implDownloader) DownloadAudio(ctx context.Context, url string) (Result, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return Result{}, ErrMissingURL
	}

	name := d.store.NewName("audio", d.cfg.AudioFormat)
	path, err := d.store.Path(name)
	if err != nil {
		return Result{}, err
	}

	args := []string{
		"-x",
		"--audio-format", d.cfg.AudioFormat,
		"-o", path,
		"--", url,
	}
	return d.run(ctx, name, args)
}

func (d *implDownloader) run(ctx context.Context, name string, args []string) (Result, error) {
	if err := d.sem.Acquire(ctx, 1); err != nil {
		return Result{}, fmt.Errorf("wait for download slot: %w", err)
	}
	defer d.sem.Release(1)

	cmd := executor.Command{Name: d.cfg.BinaryPath, Args: args}
	d.logger.Debug(ctx, "Running: %s", cmd)

	res, err := d.executor.Run(ctx, cmd)
	if err != nil {
		d.cleanupPartial(ctx, name)
		return Result{}, fmt.Errorf("yt-dlp: %w", err)
	}

	info, err := d.store.Stat(name)
	if err != nil {
		return Result{}, fmt.Errorf("yt-dlp finished without output: %w", err)
	}

	d.logger.Info(ctx, "Downloaded: %s (%s in %s)", name, media.FormatFileSize(info.Size()), res.Duration.Round(time.Millisecond))
	return Result{File: name, DownloadURL: media.URL(name)}, nil
}

// cleanupPartial removes whatever yt-dlp left behind for name.
func (d *implDownloader) cleanupPartial(ctx context.Context, name string) {
	for _, n := range []string{name, name + ".part", name + ".ytdl"} {
		if err := d.store.Remove(n); err != nil {
			d.logger.Warn(ctx, "Failed to cleanup partial file %s: %v", n, err)
		}
	}
}

package youtube

import (
	"context"
	"fmt"
	"net/http"
	"time"

	ytclient "github.com/kkdai/youtube/v2"
)

// VideoInfo is the metadata shown alongside a summary.
type VideoInfo struct {
	Title       string
	Author      string
	Description string
	Length      time.Duration
	Views       int
}

// videoFetcher is satisfied by *ytclient.Client.
type videoFetcher interface {
	GetVideoContext(ctx context.Context, url string) (*ytclient.Video, error)
}

// InfoClient looks up video metadata.
type InfoClient struct {
	fetcher videoFetcher
}

func NewInfoClient(httpClient *http.Client) *InfoClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &InfoClient{fetcher: &ytclient.Client{HTTPClient: httpClient}}
}

// Lookup returns metadata for the given video URL or ID.
func (c *InfoClient) Lookup(ctx context.Context, videoURL string) (VideoInfo, error) {
	id, err := ExtractVideoID(videoURL)
	if err != nil {
		return VideoInfo{}, err
	}
	v, err := c.fetcher.GetVideoContext(ctx, id)
	if err != nil {
		return VideoInfo{}, fmt.Errorf("video info %s: %w", id, err)
	}
	return VideoInfo{
		Title:       v.Title,
		Author:      v.Author,
		Description: v.Description,
		Length:      v.Duration,
		Views:       v.Views,
	}, nil
}

// FormatLength renders d as m:ss, or "Unknown" when d is not positive.
func FormatLength(d time.Duration) string {
	if d <= 0 {
		return "Unknown"
	}
	total := int(d / time.Second)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

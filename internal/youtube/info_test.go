package youtube

import (
	"context"
	"errors"
	"testing"
	"time"

	ytclient "github.com/kkdai/youtube/v2"
)

type fakeFetcher struct {
	video  *ytclient.Video
	err    error
	gotURL string
}

func (f *fakeFetcher) GetVideoContext(ctx context.Context, url string) (*ytclient.Video, error) {
	f.gotURL = url
	return f.video, f.err
}

func TestLookup(t *testing.T) {
	f := &fakeFetcher{video: &ytclient.Video{
		Title:    "Never Gonna Give You Up",
		Author:   "Rick Astley",
		Duration: 3*time.Minute + 33*time.Second,
		Views:    1500000000,
	}}
	c := &InfoClient{fetcher: f}

	got, err := c.Lookup(context.Background(), "https://youtu.be/dQw4w9WgXcQ")
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if f.gotURL != "dQw4w9WgXcQ" {
		t.Errorf("fetcher called with %q, want video ID", f.gotURL)
	}
	if got.Title != "Never Gonna Give You Up" || got.Author != "Rick Astley" {
		t.Errorf("Lookup() = %+v", got)
	}
	if got.Views != 1500000000 {
		t.Errorf("Lookup().Views = %d, want 1500000000", got.Views)
	}
	if FormatLength(got.Length) != "3:33" {
		t.Errorf("FormatLength() = %q, want %q", FormatLength(got.Length), "3:33")
	}
}

func TestLookupError(t *testing.T) {
	c := &InfoClient{fetcher: &fakeFetcher{err: errors.New("unavailable")}}
	if _, err := c.Lookup(context.Background(), "dQw4w9WgXcQ"); err == nil {
		t.Error("Lookup() expected error")
	}
	if _, err := c.Lookup(context.Background(), "not a url"); err == nil {
		t.Error("Lookup() expected error for invalid URL")
	}
}

func TestFormatLength(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "Unknown"},
		{-time.Second, "Unknown"},
		{5 * time.Second, "0:05"},
		{61 * time.Second, "1:01"},
		{75 * time.Minute, "75:00"},
	}
	for _, tt := range tests {
		if got := FormatLength(tt.d); got != tt.want {
			t.Errorf("FormatLength(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

package media

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestValidName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"audio_1700000000000.mp3", true},
		{"my video.mp4", true},
		{"", false},
		{".", false},
		{"..", false},
		{"../etc/passwd", false},
		{"sub/file.mp3", false},
		{`sub\file.mp3`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidName(tt.name); got != tt.want {
				t.Errorf("ValidName(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestStatAndRead(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(dir)
	if err := os.WriteFile(filepath.Join(dir, "audio_1.mp3"), []byte("ID3"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(dir, "folder"), 0755); err != nil {
		t.Fatal(err)
	}

	if !s.Exists("audio_1.mp3") {
		t.Error("Exists() = false for stored file")
	}
	data, err := s.ReadFile("audio_1.mp3")
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != "ID3" {
		t.Errorf("ReadFile() = %q, want %q", data, "ID3")
	}

	if _, err := s.ReadFile("missing.mp3"); !errors.Is(err, ErrNotFound) {
		t.Errorf("ReadFile(missing) error = %v, want ErrNotFound", err)
	}
	if _, err := s.Stat("folder"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Stat(dir) error = %v, want ErrNotFound", err)
	}
	if _, err := s.ReadFile("../audio_1.mp3"); !errors.Is(err, ErrInvalidName) {
		t.Errorf("ReadFile(traversal) error = %v, want ErrInvalidName", err)
	}
}

func TestNewName(t *testing.T) {
	s := NewStore(t.TempDir())
	s.now = func() time.Time { return time.UnixMilli(1700000000123) }

	if got := s.NewName("video", "mp4"); got != "video_1700000000123.mp4" {
		t.Errorf("NewName() = %q", got)
	}
	if got := s.NewName("audio", ".mp3"); got != "audio_1700000000123.mp3" {
		t.Errorf("NewName() = %q", got)
	}
}

func TestURL(t *testing.T) {
	if got := URL("video_1.mp4"); got != "/downloads/video_1.mp4" {
		t.Errorf("URL() = %q", got)
	}
}

func TestServeFile(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(dir)
	if err := os.WriteFile(filepath.Join(dir, "video_1.mp4"), []byte("movie-bytes"), 0644); err != nil {
		t.Fatal(err)
	}

	rec := httptest.NewRecorder()
	s.ServeFile(rec, httptest.NewRequest(http.MethodGet, "/downloads/video_1.mp4", nil), "video_1.mp4")
	body, _ := io.ReadAll(rec.Result().Body)
	if rec.Code != http.StatusOK || string(body) != "movie-bytes" {
		t.Errorf("ServeFile() = %d %q", rec.Code, body)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "video/mp4" {
		t.Errorf("Content-Type = %q, want video/mp4", ct)
	}

	rec = httptest.NewRecorder()
	s.ServeFile(rec, httptest.NewRequest(http.MethodGet, "/downloads/nope.mp4", nil), "nope.mp4")
	if rec.Code != http.StatusNotFound {
		t.Errorf("ServeFile(missing) = %d, want 404", rec.Code)
	}
}

func TestMIMEType(t *testing.T) {
	tests := map[string]string{
		"a.mp3":  "audio/mp3",
		"a.WAV":  "audio/wav",
		"a.m4a":  "audio/mp4",
		"a.mp4":  "video/mp4",
		"a.opus": "audio/mp3",
		"noext":  "audio/mp3",
	}
	for name, want := range tests {
		if got := MIMEType(name); got != want {
			t.Errorf("MIMEType(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestFormatFileSize(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{0, "Unknown"},
		{-5, "Unknown"},
		{512, "512 Bytes"},
		{1024, "1 KB"},
		{1536, "1.5 KB"},
		{5 * 1024 * 1024, "5 MB"},
		{1288490189, "1.2 GB"},
		{3 * 1024 * 1024 * 1024 * 1024, "3072 GB"},
	}
	for _, tt := range tests {
		if got := FormatFileSize(tt.bytes); got != tt.want {
			t.Errorf("FormatFileSize(%d) = %q, want %q", tt.bytes, got, tt.want)
		}
	}
}

func TestRemove(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(dir)
	if err := os.WriteFile(filepath.Join(dir, "x.mp3"), nil, 0644); err != nil {
		t.Fatal(err)
	}
	if err := s.Remove("x.mp3"); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if err := s.Remove("x.mp3"); err != nil {
		t.Errorf("Remove(missing) error = %v, want nil", err)
	}
	if s.Exists("x.mp3") {
		t.Error("file still exists after Remove()")
	}
}

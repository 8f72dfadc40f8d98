// Package media manages the flat directory of stored media files produced
// by downloads and read by transcription.
package media

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// URLPrefix is the public path under which stored files are served.
const URLPrefix = "/downloads/"

var (
	ErrNotFound    = errors.New("file not found")
	ErrInvalidName = errors.New("invalid file name")
)

// Store is a single flat directory of stored media files.
type Store struct {
	dir string
	now func() time.Time
}

// NewStore returns a Store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir, now: time.Now}
}

func (s *Store) Dir() string { return s.dir }

// EnsureDir creates the directory if it does not exist.
func (s *Store) EnsureDir() error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("create directory %s: %w", s.dir, err)
	}
	return nil
}

// ValidName reports whether name is a single path element.
func ValidName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	if strings.ContainsAny(name, `/\`) || strings.ContainsRune(name, 0) {
		return false
	}
	return filepath.Base(name) == name
}

// Path resolves name inside the store without checking existence.
func (s *Store) Path(name string) (string, error) {
	if !ValidName(name) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return filepath.Join(s.dir, name), nil
}

// Stat returns file info for a stored regular file.
func (s *Store) Stat(name string) (os.FileInfo, error) {
	path, err := s.Path(name)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) || (err == nil && !info.Mode().IsRegular()) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", name, err)
	}
	return info, nil
}

// Exists reports whether name refers to an existing stored file.
func (s *Store) Exists(name string) bool {
	_, err := s.Stat(name)
	return err == nil
}

// ReadFile returns the content of a stored file.
func (s *Store) ReadFile(name string) ([]byte, error) {
	if _, err := s.Stat(name); err != nil {
		return nil, err
	}
	path, _ := s.Path(name)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return data, nil
}

// Remove deletes a stored file. A missing file is not an error.
func (s *Store) Remove(name string) error {
	path, err := s.Path(name)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove %s: %w", name, err)
	}
	return nil
}

// NewName builds a timestamped file name such as video_1700000000000.mp4.
// Two calls in the same millisecond collide.
func (s *Store) NewName(prefix, ext string) string {
	return fmt.Sprintf("%s_%d.%s", prefix, s.now().UnixMilli(), strings.TrimPrefix(ext, "."))
}

// URL returns the public path of a stored file.
func URL(name string) string {
	return URLPrefix + url.PathEscape(name)
}

// ServeFile writes the named stored file to w, or 404.
func (s *Store) ServeFile(w http.ResponseWriter, r *http.Request, name string) {
	info, err := s.Stat(name)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	path, _ := s.Path(name)
	f, err := os.Open(path)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	defer f.Close()

	if ct := contentType(name); ct != "" {
		w.Header().Set("Content-Type", ct)
	}
	http.ServeContent(w, r, name, info.ModTime(), f)
}

var mimeTypes = map[string]string{
	".mp3":  "audio/mp3",
	".wav":  "audio/wav",
	".m4a":  "audio/mp4",
	".ogg":  "audio/ogg",
	".flac": "audio/flac",
	".aac":  "audio/aac",
	".webm": "audio/webm",
	".mp4":  "video/mp4",
}

// MIMEType returns the MIME type sent to the transcription service.
// Unknown extensions are treated as mp3.
func MIMEType(name string) string {
	if mt, ok := mimeTypes[strings.ToLower(filepath.Ext(name))]; ok {
		return mt
	}
	return "audio/mp3"
}

func contentType(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".mp3":
		return "audio/mpeg"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case ".mkv":
		return "video/x-matroska"
	}
	if mt, ok := mimeTypes[strings.ToLower(filepath.Ext(name))]; ok {
		return mt
	}
	return ""
}

var sizeUnits = []string{"Bytes", "KB", "MB", "GB"}

// FormatFileSize renders bytes as e.g. "1.5 MB". Zero or negative is "Unknown".
func FormatFileSize(bytes int64) string {
	if bytes <= 0 {
		return "Unknown"
	}
	i := int(math.Floor(math.Log(float64(bytes)) / math.Log(1024)))
	if i >= len(sizeUnits) {
		i = len(sizeUnits) - 1
	}
	v := math.Round(float64(bytes)/math.Pow(1024, float64(i))*100) / 100
	return strconv.FormatFloat(v, 'f', -1, 64) + " " + sizeUnits[i]
}

// Package youtube talks to the video platform: video id parsing, caption
// tracks and video metadata.
package youtube

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	videoIDPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?:m\.)?youtube\.com/watch\?(?:.*&)?v=([a-zA-Z0-9_-]{11})`),
		regexp.MustCompile(`youtu\.be/([a-zA-Z0-9_-]{11})`),
		regexp.MustCompile(`youtube\.com/(?:embed|v|shorts|live)/([a-zA-Z0-9_-]{11})`),
	}
	bareVideoID = regexp.MustCompile(`^[a-zA-Z0-9_-]{11}$`)
)

// ExtractVideoID pulls the 11-character video id out of a watch, short,
// embed, shorts or live URL. A bare id is returned unchanged.
func ExtractVideoID(s string) (string, error) {
	s = strings.TrimSpace(s)
	for _, re := range videoIDPatterns {
		if m := re.FindStringSubmatch(s); len(m) > 1 {
			return m[1], nil
		}
	}
	if bareVideoID.MatchString(s) {
		return s, nil
	}
	return "", fmt.Errorf("could not extract video ID from: %s", s)
}

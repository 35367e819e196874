package domain

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// Video identifies a YouTube video
type Video struct {
	ID  string
	URL string
}

// WatchURL builds the canonical watch URL for a video
func (v *Video) WatchURL() string {
	if v.URL != "" {
		return v.URL
	}
	return fmt.Sprintf("https://www.youtube.com/watch?v=%s", v.ID)
}

// Valid video ID pattern (11 characters: alphanumeric, dash, underscore)
var videoIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

// ParseVideoInput extracts a Video from a URL or ID string.
// Recognized URL forms: youtube.com/watch?v=ID, youtu.be/ID,
// youtube.com/shorts/ID, youtube.com/embed/ID.
func ParseVideoInput(input string) (*Video, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, fmt.Errorf("%w: empty input", ErrUnresolvableID)
	}

	// Bare video ID
	if videoIDPattern.MatchString(input) {
		return &Video{ID: input}, nil
	}

	u, err := url.Parse(input)
	if err == nil && u.Host != "" {
		if id := videoIDFromURL(u); id != "" {
			return &Video{ID: id, URL: input}, nil
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrUnresolvableID, input)
}

func videoIDFromURL(u *url.URL) string {
	host := strings.TrimPrefix(strings.ToLower(u.Host), "www.")

	var id string
	switch {
	case host == "youtu.be":
		id = strings.Trim(u.Path, "/")
	case strings.HasSuffix(host, "youtube.com"):
		switch {
		case strings.HasPrefix(u.Path, "/watch"):
			id = u.Query().Get("v")
		case strings.HasPrefix(u.Path, "/shorts/"):
			id = strings.Trim(strings.TrimPrefix(u.Path, "/shorts/"), "/")
		case strings.HasPrefix(u.Path, "/embed/"):
			id = strings.Trim(strings.TrimPrefix(u.Path, "/embed/"), "/")
		}
	}

	if videoIDPattern.MatchString(id) {
		return id
	}
	return ""
}

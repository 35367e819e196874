package domain

import (
	"fmt"
	"strings"
)

// Envelope is the parsed header and body of a transcript file:
// TITLE:/URL: lines (plus an optional ID: fallback), a blank separator,
// then the transcript body.
type Envelope struct {
	Title string
	URL   string
	ID    string
	Body  string
}

// ParseEnvelope splits a transcript file into its header fields and body.
// The body starts after the first blank line that follows a header line.
func ParseEnvelope(raw string) (*Envelope, error) {
	lines := strings.Split(raw, "\n")
	env := &Envelope{}
	sawHeader := false
	bodyStart := -1

	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "TITLE:"):
			env.Title = strings.TrimSpace(strings.TrimPrefix(line, "TITLE:"))
			sawHeader = true
		case strings.HasPrefix(line, "URL:"):
			env.URL = strings.TrimSpace(strings.TrimPrefix(line, "URL:"))
			sawHeader = true
		case strings.HasPrefix(line, "ID:"):
			env.ID = strings.TrimSpace(strings.TrimPrefix(line, "ID:"))
			sawHeader = true
		}

		if sawHeader && strings.TrimSpace(line) == "" {
			bodyStart = i + 1
			break
		}
	}

	if !sawHeader {
		return nil, fmt.Errorf("%w: no TITLE:, URL: or ID: header line", ErrMalformedEnvelope)
	}
	if env.URL == "" && env.ID == "" {
		return nil, fmt.Errorf("%w: no URL: or ID: header line", ErrMalformedEnvelope)
	}

	if bodyStart >= 0 && bodyStart < len(lines) {
		env.Body = strings.Join(lines[bodyStart:], "\n")
	}
	return env, nil
}

// Resolve extracts the video identity from the envelope header.
// The URL takes precedence; the ID line is a fallback when the URL is
// absent or yields no video ID.
func (e *Envelope) Resolve() (*Video, error) {
	if e.URL != "" {
		video, err := ParseVideoInput(e.URL)
		if err == nil {
			return video, nil
		}
		if e.ID == "" {
			return nil, err
		}
	}
	return ParseVideoInput(e.ID)
}

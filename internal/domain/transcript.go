package domain

import (
	"strings"
	"time"
)

// Source identifies where a transcript came from
type Source string

const (
	SourceScraped Source = "scraped"
	SourceManual  Source = "manual"
)

// Segment represents one time-anchored unit of transcript text
type Segment struct {
	OffsetSeconds int    `json:"offset_seconds"`
	Text          string `json:"text"`
}

// Transcript is the stored transcript for a single video
type Transcript struct {
	VideoID       string    `json:"video_id"`
	Title         string    `json:"title"`
	URL           string    `json:"url"`
	HasTimestamps bool      `json:"has_timestamps"`
	Segments      []Segment `json:"segments"`
	RawText       string    `json:"raw_text"`
	Source        Source    `json:"source"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ToText returns plain text concatenation of all segments
func (t *Transcript) ToText() string {
	var parts []string
	for _, seg := range t.Segments {
		text := strings.TrimSpace(seg.Text)
		if text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, " ")
}

// DurationSeconds returns the offset of the last segment, a lower bound
// on the video length
func (t *Transcript) DurationSeconds() int {
	if len(t.Segments) == 0 {
		return 0
	}
	return t.Segments[len(t.Segments)-1].OffsetSeconds
}

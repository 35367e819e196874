package domain

import (
	"sort"
	"strings"
	"time"
)

// Normalize builds a canonical Transcript from raw transcript text.
//
// It runs timestamp detection, trims and drops empty segments, enforces the
// sorted-by-offset invariant (stable, so ties keep input order), and stamps
// UpdatedAt. Returns ErrEmptyInput when the text has no usable content.
func Normalize(videoID, title, url, rawText string, source Source) (*Transcript, error) {
	trimmed := strings.TrimSpace(rawText)
	if trimmed == "" {
		return nil, ErrEmptyInput
	}

	detected, hasTimestamps := DetectTimestamps(rawText)

	segments := make([]Segment, 0, len(detected))
	for _, seg := range detected {
		seg.Text = strings.TrimSpace(seg.Text)
		if seg.Text != "" {
			segments = append(segments, seg)
		}
	}

	if len(segments) == 0 {
		// Every detected segment was empty (e.g. timestamp markers with no
		// text); keep the document as a single untimed segment
		segments = []Segment{{OffsetSeconds: 0, Text: trimmed}}
		hasTimestamps = false
	}

	sort.SliceStable(segments, func(i, j int) bool {
		return segments[i].OffsetSeconds < segments[j].OffsetSeconds
	})

	return &Transcript{
		VideoID:       videoID,
		Title:         title,
		URL:           url,
		HasTimestamps: hasTimestamps,
		Segments:      segments,
		RawText:       rawText,
		Source:        source,
		UpdatedAt:     time.Now().UTC(),
	}, nil
}

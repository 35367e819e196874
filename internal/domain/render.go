package domain

import (
	"fmt"
	"strings"
)

// Render serializes a transcript back to the envelope file format,
// byte-compatible with what the ingester consumes.
func Render(t *Transcript) string {
	var sb strings.Builder
	sb.WriteString("TITLE: " + t.Title + "\n")
	sb.WriteString("URL: " + t.URL + "\n")
	sb.WriteString("\n")
	sb.WriteString(RenderBody(t))
	return sb.String()
}

// RenderBody serializes just the transcript body: one "[HH:MM:SS] text"
// line per segment, or the raw text when the transcript carries no
// timestamps.
func RenderBody(t *Transcript) string {
	if !t.HasTimestamps {
		if raw := strings.TrimSpace(t.RawText); raw != "" {
			return raw + "\n"
		}
		return t.ToText() + "\n"
	}

	var sb strings.Builder
	for _, seg := range t.Segments {
		sb.WriteString(fmt.Sprintf("[%s] %s\n", FormatTimestamp(seg.OffsetSeconds), seg.Text))
	}
	return sb.String()
}

// FormatTimestamp converts a second count to HH:MM:SS
func FormatTimestamp(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d:%02d", seconds/3600, (seconds%3600)/60, seconds%60)
}

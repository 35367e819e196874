package tui

import (
	"fmt"
	"time"

	"github.com/devbush/ytscribe/internal/domain"
)

// FormatSize formats a byte count with a binary unit suffix
func FormatSize(b int64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := int64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(b)/float64(div), "KMGTPE"[exp])
}

// FormatDate formats a date as "Jan 15" style
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "---"
	}
	return t.Format("Jan 2")
}

// FormatTranscriptLine formats a stored transcript as a single line for
// library listings.
// Example: "dQw4w9WgXcQ  Never Gonna Give You Up...   42 segs  00:03:32  ⏱  Jan 15"
func FormatTranscriptLine(t *domain.Transcript, maxTitleLen int) string {
	title := t.Title
	if len(title) > maxTitleLen {
		title = title[:maxTitleLen-3] + "..."
	}

	titleFmt := fmt.Sprintf("%%-%ds", maxTitleLen)
	paddedTitle := fmt.Sprintf(titleFmt, title)

	marker := " "
	if t.HasTimestamps {
		marker = "⏱"
	}

	return fmt.Sprintf("%s  %s  %4d segs  %s  %s  %s",
		t.VideoID,
		paddedTitle,
		len(t.Segments),
		domain.FormatTimestamp(t.DurationSeconds()),
		marker,
		FormatDate(t.UpdatedAt))
}

package domain

import (
	"regexp"
	"strconv"
	"strings"
)

// timestampMatcher recognizes one timestamp syntax at the start of a line
type timestampMatcher struct {
	name string
	re   *regexp.Regexp
}

// Matchers are tried in order per line; the first lexical match wins.
// Each pattern captures up to three clock components and the remaining text.
var timestampMatchers = []timestampMatcher{
	{"bracket", regexp.MustCompile(`^\[(\d{1,2}):(\d{2})(?::(\d{2}))?\]\s*(.*)$`)}, // [MM:SS] or [H:MM:SS]
	{"angle", regexp.MustCompile(`^<(\d{1,2}):(\d{2})(?::(\d{2}))?>\s*(.*)$`)},     // <MM:SS> or <H:MM:SS>
	{"dash", regexp.MustCompile(`^(\d{1,2}):(\d{2})(?::(\d{2}))?\s+-\s*(.*)$`)},    // MM:SS - text
	{"bare", regexp.MustCompile(`^(\d{1,2}):(\d{2})(?::(\d{2}))?\s+(.*)$`)},        // MM:SS text
}

// DetectTimestamps splits raw transcript text into timed segments.
//
// Lines matching no timestamp syntax are continuations of the previous
// segment; lines before the first timestamped line are folded into that
// segment's text. A line whose timestamp matches lexically but has invalid
// clock components (e.g. 61 seconds) degrades to a continuation as well.
// When no line in the document matches, the whole document becomes a single
// segment at offset 0 and the returned flag is false.
func DetectTimestamps(rawText string) ([]Segment, bool) {
	var segments []Segment
	var leading []string

	for _, raw := range strings.Split(rawText, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		offset, text, ok := matchTimestampLine(line)
		if !ok {
			if len(segments) == 0 {
				leading = append(leading, line)
			} else {
				last := &segments[len(segments)-1]
				last.Text = joinText(last.Text, line)
			}
			continue
		}

		if len(segments) == 0 && len(leading) > 0 {
			text = joinText(strings.Join(leading, " "), text)
			leading = nil
		}
		segments = append(segments, Segment{OffsetSeconds: offset, Text: text})
	}

	if len(segments) == 0 {
		if len(leading) == 0 {
			return nil, false
		}
		return []Segment{{OffsetSeconds: 0, Text: strings.Join(leading, " ")}}, false
	}
	return segments, true
}

// matchTimestampLine tries each timestamp syntax against the line and
// returns the parsed offset and trailing text of the first match
func matchTimestampLine(line string) (offsetSeconds int, text string, ok bool) {
	for _, m := range timestampMatchers {
		groups := m.re.FindStringSubmatch(line)
		if groups == nil {
			continue
		}
		offset, valid := clockSeconds(groups[1], groups[2], groups[3])
		if !valid {
			// Looked like a timestamp but the clock is malformed;
			// the line falls back to continuation text
			return 0, "", false
		}
		return offset, strings.TrimSpace(groups[4]), true
	}
	return 0, "", false
}

// clockSeconds converts captured clock components to a second count.
// Two components are MM:SS, three are H:MM:SS. Non-leading components
// must be below 60.
func clockSeconds(first, second, third string) (int, bool) {
	a, _ := strconv.Atoi(first)
	b, _ := strconv.Atoi(second)

	if third == "" {
		if b >= 60 {
			return 0, false
		}
		return a*60 + b, true
	}

	c, _ := strconv.Atoi(third)
	if b >= 60 || c >= 60 {
		return 0, false
	}
	return a*3600 + b*60 + c, true
}

func joinText(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	}
	return a + " " + b
}

package inbox

import (
	"context"
	"strings"

	"github.com/devbush/ytscribe/internal/ports"
)

// DirectSource wraps a single CLI-supplied URL/ID and transcript body as an
// item source, so direct input flows through the same ingest pipeline as
// dropped files.
type DirectSource struct {
	urlOrID string
	title   string
	body    []byte
}

func NewDirectSource(urlOrID, title string, body []byte) *DirectSource {
	return &DirectSource{
		urlOrID: urlOrID,
		title:   title,
		body:    body,
	}
}

func (s *DirectSource) Items(ctx context.Context) ([]ports.Item, error) {
	var sb strings.Builder
	if s.title != "" {
		sb.WriteString("TITLE: " + s.title + "\n")
	}
	sb.WriteString("URL: " + s.urlOrID + "\n")
	sb.WriteString("\n")
	sb.Write(s.body)

	return []ports.Item{{
		Name:    s.urlOrID,
		Payload: []byte(sb.String()),
	}}, nil
}

// Remove is a no-op: direct input has no backing file to consume
func (s *DirectSource) Remove(ctx context.Context, item ports.Item) error {
	return nil
}

var _ ports.ItemSource = (*DirectSource)(nil)

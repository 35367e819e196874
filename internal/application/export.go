package application

import (
	"context"

	"github.com/devbush/ytscribe/internal/domain"
	"github.com/devbush/ytscribe/internal/ports"
)

// ExportResult contains the rendered transcript ready to write out
type ExportResult struct {
	Transcript *domain.Transcript
	Content    string
}

// ExportService renders stored transcripts back to the envelope file
// format, byte-compatible with what the ingester consumes.
type ExportService struct {
	store ports.TranscriptStore
}

// NewExportService creates a new export service
func NewExportService(store ports.TranscriptStore) *ExportService {
	return &ExportService{store: store}
}

// Export looks up the transcript for a video URL or ID and renders it
func (s *ExportService) Export(ctx context.Context, urlOrID string) (*ExportResult, error) {
	video, err := domain.ParseVideoInput(urlOrID)
	if err != nil {
		return nil, err
	}

	transcript, err := s.store.Get(ctx, video.ID)
	if err != nil {
		return nil, err
	}

	return &ExportResult{
		Transcript: transcript,
		Content:    domain.Render(transcript),
	}, nil
}

package application

import (
	"context"

	"github.com/devbush/ytscribe/internal/domain"
	"github.com/devbush/ytscribe/internal/ports"
)

// LibraryService handles management of the stored transcript library
type LibraryService struct {
	store ports.TranscriptStore
}

// NewLibraryService creates a new library service
func NewLibraryService(store ports.TranscriptStore) *LibraryService {
	return &LibraryService{store: store}
}

// Stats returns library statistics
func (s *LibraryService) Stats(ctx context.Context) (ports.StoreStats, error) {
	return s.store.Stats(ctx)
}

// List returns all stored transcripts, most recently updated first
func (s *LibraryService) List(ctx context.Context) ([]*domain.Transcript, error) {
	return s.store.List(ctx)
}

// Delete removes the stored transcript for a video URL or ID
func (s *LibraryService) Delete(ctx context.Context, urlOrID string) error {
	video, err := domain.ParseVideoInput(urlOrID)
	if err != nil {
		return err
	}
	return s.store.Delete(ctx, video.ID)
}

package ports

import (
	"context"

	"github.com/devbush/ytscribe/internal/domain"
)

// StoreStats summarizes the transcript library
type StoreStats struct {
	Count       int   // stored transcripts
	Timestamped int   // transcripts with per-line timestamps
	TotalSize   int64 // bytes on disk
}

// TranscriptStore handles persistence of transcripts, one record per video.
type TranscriptStore interface {
	// Get retrieves the stored transcript for a video ID, returning
	// domain.ErrNotFound when no record exists.
	Get(ctx context.Context, videoID string) (*domain.Transcript, error)

	// Put stores a transcript, replacing any existing record for the same
	// video ID. The write is durable before Put returns.
	Put(ctx context.Context, transcript *domain.Transcript) error

	// Delete removes the stored transcript for a video ID.
	Delete(ctx context.Context, videoID string) error

	// List returns all stored transcripts, most recently updated first.
	List(ctx context.Context) ([]*domain.Transcript, error)

	// Stats returns library statistics.
	Stats(ctx context.Context) (StoreStats, error)
}

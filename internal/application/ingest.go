package application

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/devbush/ytscribe/internal/domain"
	"github.com/devbush/ytscribe/internal/ports"
)

// Status is the per-item outcome of an ingest run
type Status string

const (
	StatusAccepted Status = "accepted"
	StatusReplaced Status = "replaced"
	StatusRejected Status = "rejected"
	StatusFailed   Status = "failed"
)

// ItemResult records what happened to a single inbox item
type ItemResult struct {
	Name     string
	VideoID  string
	Title    string
	Status   Status
	Err      error
	Duration time.Duration
}

// Failed reports whether the item ended in a failure (rejection is a
// successful no-op, not a failure)
func (r ItemResult) Failed() bool {
	return r.Status == StatusFailed
}

// RunSummary aggregates results from an ingest run
type RunSummary struct {
	Total    int
	Accepted int
	Replaced int
	Rejected int
	Failed   int
	Results  []ItemResult
}

// FailedResults returns only the failed results
func (s *RunSummary) FailedResults() []ItemResult {
	var failed []ItemResult
	for _, r := range s.Results {
		if r.Failed() {
			failed = append(failed, r)
		}
	}
	return failed
}

// RunOptions configures an ingest run
type RunOptions struct {
	Source      domain.Source // provenance stamped on accepted transcripts
	Concurrency int           // worker count, clamped to [1, 16]
}

const maxConcurrency = 16

// IngestService drives the inbox workflow: for each item it parses the
// envelope, resolves the video ID, normalizes the transcript, applies the
// acceptance policy against the stored record, and commits or rolls back
// the item independently of all others.
type IngestService struct {
	store  ports.TranscriptStore
	logger zerolog.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewIngestService creates a new ingest service
func NewIngestService(store ports.TranscriptStore, logger zerolog.Logger) *IngestService {
	return &IngestService{
		store:  store,
		logger: logger,
		locks:  make(map[string]*sync.Mutex),
	}
}

// Run processes every item the source offers. Only a source-level error is
// returned; per-item failures are captured in the summary so one bad file
// never blocks the rest of the batch.
func (s *IngestService) Run(ctx context.Context, source ports.ItemSource, opts RunOptions) (*RunSummary, error) {
	items, err := source.Items(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing inbox items: %w", err)
	}

	concurrency := opts.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}
	if concurrency > maxConcurrency {
		concurrency = maxConcurrency
	}

	results := make([]ItemResult, len(items))
	sem := make(chan struct{}, concurrency)
	var wg sync.WaitGroup

	for i, item := range items {
		wg.Add(1)
		sem <- struct{}{}

		go func(i int, item ports.Item) {
			defer wg.Done()
			defer func() { <-sem }()
			results[i] = s.processItem(ctx, source, item, opts.Source)
		}(i, item)
	}

	wg.Wait()

	summary := &RunSummary{Total: len(items), Results: results}
	for _, r := range results {
		switch r.Status {
		case StatusAccepted:
			summary.Accepted++
		case StatusReplaced:
			summary.Replaced++
		case StatusRejected:
			summary.Rejected++
		case StatusFailed:
			summary.Failed++
		}
	}

	s.logger.Info().
		Int("total", summary.Total).
		Int("accepted", summary.Accepted).
		Int("replaced", summary.Replaced).
		Int("rejected", summary.Rejected).
		Int("failed", summary.Failed).
		Msg("ingest run complete")

	return summary, nil
}

func (s *IngestService) processItem(ctx context.Context, source ports.ItemSource, item ports.Item, provenance domain.Source) ItemResult {
	start := time.Now()
	result := ItemResult{Name: item.Name}

	fail := func(err error) ItemResult {
		result.Status = StatusFailed
		result.Err = err
		result.Duration = time.Since(start)
		s.logger.Error().
			Str("item", item.Name).
			Err(err).
			Msg("item failed")
		return result
	}

	if item.Err != nil {
		return fail(fmt.Errorf("reading item: %w", item.Err))
	}

	envelope, err := domain.ParseEnvelope(string(item.Payload))
	if err != nil {
		return fail(err)
	}

	video, err := envelope.Resolve()
	if err != nil {
		return fail(err)
	}
	result.VideoID = video.ID

	title := envelope.Title
	if title == "" {
		title = "Video " + video.ID
	}
	result.Title = title

	candidate, err := domain.Normalize(video.ID, title, video.WatchURL(), envelope.Body, provenance)
	if err != nil {
		return fail(err)
	}

	unlock := s.lockVideo(video.ID)
	decision, err := s.commit(ctx, candidate)
	unlock()
	if err != nil {
		return fail(err)
	}

	// The item was processed either way (a rejection is still a processed
	// item); consume the source file
	if err := source.Remove(ctx, item); err != nil {
		s.logger.Warn().
			Str("item", item.Name).
			Err(err).
			Msg("could not remove processed file")
	}

	switch decision {
	case domain.DecisionAccept:
		result.Status = StatusAccepted
	case domain.DecisionReplace:
		result.Status = StatusReplaced
	case domain.DecisionReject:
		result.Status = StatusRejected
	}
	result.Duration = time.Since(start)

	s.logger.Info().
		Str("item", item.Name).
		Str("video_id", video.ID).
		Str("decision", decision.String()).
		Bool("timestamped", candidate.HasTimestamps).
		Dur("took", result.Duration).
		Msg("item processed")

	return result
}

// commit runs the read-decide-write sequence. The caller must hold the
// per-video lock so two concurrent writers cannot both read the same stale
// record and both decide to replace it.
func (s *IngestService) commit(ctx context.Context, candidate *domain.Transcript) (domain.Decision, error) {
	existing, err := s.store.Get(ctx, candidate.VideoID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return 0, fmt.Errorf("reading existing transcript: %w", err)
	}

	decision := domain.Decide(existing, candidate)
	if decision != domain.DecisionReject {
		if err := s.store.Put(ctx, candidate); err != nil {
			return 0, fmt.Errorf("storing transcript: %w", err)
		}
	}
	return decision, nil
}

// lockVideo acquires the mutex for a video ID, creating it on first use,
// and returns the release function
func (s *IngestService) lockVideo(videoID string) func() {
	s.mu.Lock()
	l, ok := s.locks[videoID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[videoID] = l
	}
	s.mu.Unlock()

	l.Lock()
	return l.Unlock
}

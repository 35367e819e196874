package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/spf13/afero"

	"github.com/devbush/ytscribe/internal/domain"
)

func newTestStore(t *testing.T) (*FileStore, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	s, err := NewFileStore(fs, "/library")
	if err != nil {
		t.Fatalf("NewFileStore() error = %v", err)
	}
	return s, fs
}

func testTranscript(videoID string, hasTimestamps bool) *domain.Transcript {
	return &domain.Transcript{
		VideoID:       videoID,
		Title:         "Video " + videoID,
		URL:           "https://www.youtube.com/watch?v=" + videoID,
		HasTimestamps: hasTimestamps,
		Segments:      []domain.Segment{{OffsetSeconds: 0, Text: "hello"}},
		RawText:       "hello",
		Source:        domain.SourceManual,
		UpdatedAt:     time.Now().UTC(),
	}
}

func TestFileStore_PutGet(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	tr := testTranscript("dQw4w9WgXcQ", true)
	if err := s.Put(ctx, tr); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	got, err := s.Get(ctx, "dQw4w9WgXcQ")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}

	if got.VideoID != tr.VideoID || got.Title != tr.Title || !got.HasTimestamps {
		t.Errorf("Get() = %+v, want %+v", got, tr)
	}
	if len(got.Segments) != 1 || got.Segments[0].Text != "hello" {
		t.Errorf("segments = %v, want original segments", got.Segments)
	}
}

func TestFileStore_GetMissing(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.Get(context.Background(), "dQw4w9WgXcQ")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Get() error = %v, want ErrNotFound", err)
	}
}

func TestFileStore_PutOverwrites(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	if err := s.Put(ctx, testTranscript("dQw4w9WgXcQ", false)); err != nil {
		t.Fatal(err)
	}

	updated := testTranscript("dQw4w9WgXcQ", true)
	updated.Title = "Updated"
	if err := s.Put(ctx, updated); err != nil {
		t.Fatal(err)
	}

	got, err := s.Get(ctx, "dQw4w9WgXcQ")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Title != "Updated" || !got.HasTimestamps {
		t.Errorf("Get() after overwrite = %+v, want updated record", got)
	}
}

func TestFileStore_PutLeavesNoTempFile(t *testing.T) {
	s, fs := newTestStore(t)

	if err := s.Put(context.Background(), testTranscript("dQw4w9WgXcQ", true)); err != nil {
		t.Fatal(err)
	}

	exists, err := afero.Exists(fs, "/library/dQw4w9WgXcQ.json.tmp")
	if err != nil {
		t.Fatal(err)
	}
	if exists {
		t.Error("temp file left behind after Put()")
	}
}

func TestFileStore_Delete(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	if err := s.Put(ctx, testTranscript("dQw4w9WgXcQ", true)); err != nil {
		t.Fatal(err)
	}

	if err := s.Delete(ctx, "dQw4w9WgXcQ"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	if _, err := s.Get(ctx, "dQw4w9WgXcQ"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Get() after delete error = %v, want ErrNotFound", err)
	}

	if err := s.Delete(ctx, "dQw4w9WgXcQ"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("second Delete() error = %v, want ErrNotFound", err)
	}
}

func TestFileStore_List(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	older := testTranscript("AAAAAAAAAAA", false)
	older.UpdatedAt = time.Now().UTC().Add(-time.Hour)
	newer := testTranscript("dQw4w9WgXcQ", true)

	if err := s.Put(ctx, older); err != nil {
		t.Fatal(err)
	}
	if err := s.Put(ctx, newer); err != nil {
		t.Fatal(err)
	}

	list, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	if len(list) != 2 {
		t.Fatalf("List() returned %d transcripts, want 2", len(list))
	}
	if list[0].VideoID != "dQw4w9WgXcQ" {
		t.Errorf("List()[0] = %s, want most recently updated first", list[0].VideoID)
	}
}

func TestFileStore_ListEmptyLibrary(t *testing.T) {
	s, _ := newTestStore(t)

	list, err := s.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(list) != 0 {
		t.Errorf("List() = %v, want empty", list)
	}
}

func TestFileStore_Stats(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	if err := s.Put(ctx, testTranscript("dQw4w9WgXcQ", true)); err != nil {
		t.Fatal(err)
	}
	if err := s.Put(ctx, testTranscript("AAAAAAAAAAA", false)); err != nil {
		t.Fatal(err)
	}

	stats, err := s.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}

	if stats.Count != 2 {
		t.Errorf("Count = %d, want 2", stats.Count)
	}
	if stats.Timestamped != 1 {
		t.Errorf("Timestamped = %d, want 1", stats.Timestamped)
	}
	if stats.TotalSize <= 0 {
		t.Errorf("TotalSize = %d, want > 0", stats.TotalSize)
	}
}

func TestFileStore_GetUsesCacheAfterPut(t *testing.T) {
	s, fs := newTestStore(t)
	ctx := context.Background()

	tr := testTranscript("dQw4w9WgXcQ", true)
	if err := s.Put(ctx, tr); err != nil {
		t.Fatal(err)
	}

	// Remove the backing file; the read cache should still serve the record
	if err := fs.Remove("/library/dQw4w9WgXcQ.json"); err != nil {
		t.Fatal(err)
	}

	got, err := s.Get(ctx, "dQw4w9WgXcQ")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.VideoID != "dQw4w9WgXcQ" {
		t.Errorf("Get() = %+v, want cached record", got)
	}
}

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/spf13/afero"

	"github.com/devbush/ytscribe/internal/domain"
	"github.com/devbush/ytscribe/internal/ports"
)

// readCacheSize bounds the number of transcripts kept in memory
const readCacheSize = 256

// FileStore persists one JSON document per video ID under a library
// directory, with an LRU cache in front of reads.
type FileStore struct {
	fs      afero.Fs
	baseDir string
	cache   *lru.Cache[string, *domain.Transcript]
}

func NewFileStore(fs afero.Fs, baseDir string) (*FileStore, error) {
	cache, err := lru.New[string, *domain.Transcript](readCacheSize)
	if err != nil {
		return nil, err
	}
	return &FileStore{
		fs:      fs,
		baseDir: baseDir,
		cache:   cache,
	}, nil
}

func (s *FileStore) recordPath(videoID string) string {
	return filepath.Join(s.baseDir, videoID+".json")
}

func (s *FileStore) Get(ctx context.Context, videoID string) (*domain.Transcript, error) {
	if transcript, ok := s.cache.Get(videoID); ok {
		return transcript, nil
	}

	data, err := afero.ReadFile(s.fs, s.recordPath(videoID))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	var transcript domain.Transcript
	if err := json.Unmarshal(data, &transcript); err != nil {
		return nil, fmt.Errorf("corrupt record for %s: %w", videoID, err)
	}

	s.cache.Add(videoID, &transcript)
	return &transcript, nil
}

// Put writes the record to a temp file and renames it into place so an
// interrupted write never leaves a partial record behind.
func (s *FileStore) Put(ctx context.Context, transcript *domain.Transcript) error {
	if err := s.fs.MkdirAll(s.baseDir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(transcript, "", "  ")
	if err != nil {
		return err
	}

	finalPath := s.recordPath(transcript.VideoID)
	tmpPath := finalPath + ".tmp"

	f, err := s.fs.Create(tmpPath)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		_ = s.fs.Remove(tmpPath)
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		_ = s.fs.Remove(tmpPath)
		return err
	}
	if err := f.Close(); err != nil {
		_ = s.fs.Remove(tmpPath)
		return err
	}

	if err := s.fs.Rename(tmpPath, finalPath); err != nil {
		_ = s.fs.Remove(tmpPath)
		return err
	}

	s.cache.Add(transcript.VideoID, transcript)
	return nil
}

func (s *FileStore) Delete(ctx context.Context, videoID string) error {
	s.cache.Remove(videoID)

	err := s.fs.Remove(s.recordPath(videoID))
	if os.IsNotExist(err) {
		return domain.ErrNotFound
	}
	return err
}

func (s *FileStore) List(ctx context.Context) ([]*domain.Transcript, error) {
	entries, err := afero.ReadDir(s.fs, s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var transcripts []*domain.Transcript
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		videoID := strings.TrimSuffix(entry.Name(), ".json")
		transcript, err := s.Get(ctx, videoID)
		if err != nil {
			// Skip records that no longer load; Stats still counts bytes
			continue
		}
		transcripts = append(transcripts, transcript)
	}

	sort.Slice(transcripts, func(i, j int) bool {
		return transcripts[i].UpdatedAt.After(transcripts[j].UpdatedAt)
	})
	return transcripts, nil
}

func (s *FileStore) Stats(ctx context.Context) (ports.StoreStats, error) {
	var stats ports.StoreStats

	entries, err := afero.ReadDir(s.fs, s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return stats, nil
		}
		return stats, err
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		stats.Count++
		stats.TotalSize += entry.Size()

		videoID := strings.TrimSuffix(entry.Name(), ".json")
		if transcript, err := s.Get(ctx, videoID); err == nil && transcript.HasTimestamps {
			stats.Timestamped++
		}
	}

	return stats, nil
}

var _ ports.TranscriptStore = (*FileStore)(nil)

package inbox

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/spf13/afero"

	"github.com/devbush/ytscribe/internal/ports"
)

// File extensions scanned in the drop folder
var filePatterns = []string{"*.txt", "*.srt", "*.vtt"}

// FolderSource lists transcript files dropped into the inbox folder.
// Files are removed individually once their item has been processed, so a
// crashed or aborted run leaves the unprocessed remainder for the next one.
type FolderSource struct {
	fs  afero.Fs
	dir string
}

func NewFolderSource(fs afero.Fs, dir string) *FolderSource {
	return &FolderSource{fs: fs, dir: dir}
}

func (s *FolderSource) Items(ctx context.Context) ([]ports.Item, error) {
	if err := s.fs.MkdirAll(s.dir, 0755); err != nil {
		return nil, fmt.Errorf("inbox folder unavailable: %w", err)
	}

	var paths []string
	for _, pattern := range filePatterns {
		matches, err := afero.Glob(s.fs, filepath.Join(s.dir, pattern))
		if err != nil {
			return nil, fmt.Errorf("scanning inbox folder: %w", err)
		}
		paths = append(paths, matches...)
	}
	sort.Strings(paths)

	items := make([]ports.Item, 0, len(paths))
	for _, path := range paths {
		item := ports.Item{
			Name: filepath.Base(path),
			Path: path,
		}
		// A single unreadable file is a per-item failure, not a run failure
		item.Payload, item.Err = afero.ReadFile(s.fs, path)
		items = append(items, item)
	}
	return items, nil
}

func (s *FolderSource) Remove(ctx context.Context, item ports.Item) error {
	if item.Path == "" {
		return nil
	}
	return s.fs.Remove(item.Path)
}

var _ ports.ItemSource = (*FolderSource)(nil)

package ports

import "context"

// Item is one candidate transcript awaiting ingestion: a file from the
// inbox folder or a single envelope supplied on the command line.
type Item struct {
	Name    string // display name (file base name, or the CLI input)
	Path    string // source file path; empty for direct input
	Payload []byte // envelope text
	Err     error  // set when the item could not be read
}

// ItemSource enumerates candidate transcript items. The drop-folder scan
// and the single CLI-supplied identifier sit behind this same interface so
// the ingest pipeline has one code path regardless of origin.
type ItemSource interface {
	// Items returns the pending items. An error here is fatal to the whole
	// run (e.g. the inbox folder is unreadable), unlike per-item failures.
	Items(ctx context.Context) ([]Item, error)

	// Remove consumes an item after it has been processed. For items not
	// backed by a file this is a no-op.
	Remove(ctx context.Context, item Item) error
}

package storage

import (
	"context"
	"io"
)

// ImageStore persists uploaded image files on durable storage.
// Implementations must resolve names by basename only so a client-supplied
// name can never escape the storage root.
type ImageStore interface {
	// Save writes the content under the given filename, creating the storage
	// root if it does not exist yet
	Save(ctx context.Context, filename string, content io.Reader) error
	// Remove deletes the stored file. Returns ErrNotFound when absent.
	Remove(ctx context.Context, filename string) error
	// Open returns a reader over the stored file and its size in bytes.
	// Returns ErrNotFound when absent.
	Open(filename string) (io.ReadCloser, int64, error)
}

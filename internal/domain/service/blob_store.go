package service

import (
	"context"
	"io"
)

// Blob is one stored object as returned by a read.
type Blob struct {
	Reader      io.ReadCloser
	ContentType string
	Size        int64
}

// BlobStore is the durable content store for finalized media, addressed
// by caller-chosen filenames. Concurrent puts under different filenames
// never interfere; the same filename is last-writer-wins, so callers are
// responsible for uniqueness.
type BlobStore interface {
	Put(ctx context.Context, filename string, data []byte, contentType string) error
	Get(ctx context.Context, filename string) (*Blob, error)
	// Delete succeeds silently when the object does not exist.
	Delete(ctx context.Context, filename string) error
	// URL builds the externally resolvable link for a stored filename.
	URL(filename string) string
	Close() error
}

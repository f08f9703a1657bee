package service

import (
	"context"
)

// StagedObject identifies one transient upload in the staging provider.
type StagedObject struct {
	PublicID string
	URL      string
	Width    int
	Height   int
}

// TransformSpec asks the staging provider for a derived rendition of a
// staged object. Page and the bounding box only apply to paginated
// documents.
type TransformSpec struct {
	Format    string
	Quality   int
	Page      int
	MaxWidth  int
	MaxHeight int
}

// StagingStore is the remote transient object store used as a scratch
// area during transformation. The provider performs the actual encode
// when a rendition is fetched.
type StagingStore interface {
	Put(ctx context.Context, data []byte, publicID, folder string) (*StagedObject, error)
	// FetchRendition downloads the bytes of a transformed rendition of a
	// previously staged object.
	FetchRendition(ctx context.Context, publicID string, spec TransformSpec) ([]byte, error)
	// Delete is best-effort; callers log and move on when it fails.
	Delete(ctx context.Context, publicID string) error
}

package repository

import (
	"context"

	"porosemi/internal/domain/entity"
)

// MediaUpdater is the single write surface the media pipeline needs on
// an entity record. Every repository owning media-bearing entities
// implements it; the orchestrator sees nothing else of the row.
type MediaUpdater interface {
	// UpdateMedia sets the media url and status on one entity. Passing
	// url unchanged with a failed status must leave the previous url
	// intact in the stored record.
	UpdateMedia(ctx context.Context, id string, url string, status entity.MediaStatus) error
	// GetMedia returns the current media state for an entity.
	GetMedia(ctx context.Context, id string) (*entity.Media, error)
}

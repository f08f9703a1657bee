package repository

import (
	"context"

	"porosemi/internal/domain/entity"
)

type ProfileRepository interface {
	MediaUpdater
	Create(ctx context.Context, profile *entity.Profile) error
	GetByID(ctx context.Context, id string) (*entity.Profile, error)
	GetByUserID(ctx context.Context, userID string) (*entity.Profile, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Profile, int64, error)
	Update(ctx context.Context, profile *entity.Profile) error
	Delete(ctx context.Context, id string) error
}

package repository

import (
	"context"

	"porosemi/internal/domain/entity"
)

type AchievementRepository interface {
	MediaUpdater
	Create(ctx context.Context, achievement *entity.Achievement) error
	GetByID(ctx context.Context, id string) (*entity.Achievement, error)
	List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.Achievement, int64, error)
	Update(ctx context.Context, achievement *entity.Achievement) error
	Delete(ctx context.Context, id string) error
}

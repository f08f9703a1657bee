package repository

import (
	"context"

	"porosemi/internal/domain/entity"
)

type ExperienceRepository interface {
	Create(ctx context.Context, experience *entity.Experience) error
	GetByID(ctx context.Context, id string) (*entity.Experience, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Experience, int64, error)
	Update(ctx context.Context, experience *entity.Experience) error
	Delete(ctx context.Context, id string) error
}

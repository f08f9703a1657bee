package repository

import (
	"context"

	"porosemi/internal/domain/entity"
)

type RatingRepository interface {
	Create(ctx context.Context, rating *entity.Rating) error
	List(ctx context.Context, limit, offset int) ([]*entity.Rating, int64, error)
	All(ctx context.Context) ([]*entity.Rating, error)
	Delete(ctx context.Context, id string) error
}

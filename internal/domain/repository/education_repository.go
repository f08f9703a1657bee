package repository

import (
	"context"

	"porosemi/internal/domain/entity"
)

type EducationRepository interface {
	Create(ctx context.Context, education *entity.Education) error
	GetByID(ctx context.Context, id string) (*entity.Education, error)
	ListByProfileID(ctx context.Context, profileID string) ([]*entity.Education, error)
	Update(ctx context.Context, education *entity.Education) error
	Delete(ctx context.Context, id string) error
}

package repository

import (
	"context"

	"porosemi/internal/domain/entity"
)

type ProjectRepository interface {
	MediaUpdater
	Create(ctx context.Context, project *entity.Project) error
	GetByID(ctx context.Context, id string) (*entity.Project, error)
	List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.Project, int64, error)
	Update(ctx context.Context, project *entity.Project) error
	Delete(ctx context.Context, id string) error
}

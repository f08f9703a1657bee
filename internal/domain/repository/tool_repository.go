package repository

import (
	"context"

	"porosemi/internal/domain/entity"
)

type ToolRepository interface {
	MediaUpdater
	Create(ctx context.Context, tool *entity.Tool) error
	GetByID(ctx context.Context, id string) (*entity.Tool, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Tool, int64, error)
	Update(ctx context.Context, tool *entity.Tool) error
	Delete(ctx context.Context, id string) error
}

package repository

import (
	"context"

	"porosemi/internal/domain/entity"
)

type AlbumRepository interface {
	Create(ctx context.Context, album *entity.Album) error
	GetByID(ctx context.Context, id string) (*entity.Album, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Album, int64, error)
	Delete(ctx context.Context, id string) error
}

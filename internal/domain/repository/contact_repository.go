package repository

import (
	"context"

	"porosemi/internal/domain/entity"
)

type ContactRepository interface {
	Create(ctx context.Context, contact *entity.Contact) error
	GetByID(ctx context.Context, id string) (*entity.Contact, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Contact, int64, error)
	Delete(ctx context.Context, id string) error
}

package usecase

import (
	"context"
	"time"

	"porosemi/internal/domain/entity"
	"porosemi/internal/domain/repository"
)

type RoleUseCase struct {
	roleRepo repository.RoleRepository
}

func NewRoleUseCase(roleRepo repository.RoleRepository) *RoleUseCase {
	return &RoleUseCase{roleRepo: roleRepo}
}

type RoleInput struct {
	Name string `json:"name" validate:"required"`
}

func (uc *RoleUseCase) Create(ctx context.Context, input RoleInput) (*entity.Role, error) {
	role := &entity.Role{
		Name:      input.Name,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := uc.roleRepo.Create(ctx, role); err != nil {
		return nil, err
	}

	return role, nil
}

func (uc *RoleUseCase) List(ctx context.Context) ([]*entity.Role, error) {
	return uc.roleRepo.List(ctx)
}

func (uc *RoleUseCase) Update(ctx context.Context, id string, input RoleInput) (*entity.Role, error) {
	role, err := uc.roleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	role.Name = input.Name
	if err := uc.roleRepo.Update(ctx, role); err != nil {
		return nil, err
	}

	return role, nil
}

func (uc *RoleUseCase) Delete(ctx context.Context, id string) error {
	return uc.roleRepo.Delete(ctx, id)
}

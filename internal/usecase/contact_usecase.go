package usecase

import (
	"context"
	"time"

	"porosemi/internal/domain/entity"
	"porosemi/internal/domain/repository"
)

type ContactUseCase struct {
	contactRepo repository.ContactRepository
}

func NewContactUseCase(contactRepo repository.ContactRepository) *ContactUseCase {
	return &ContactUseCase{contactRepo: contactRepo}
}

type ContactInput struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"`
	Email     string `json:"email" validate:"required,email"`
	Country   string `json:"country"`
	Message   string `json:"message" validate:"required"`
}

func (uc *ContactUseCase) Create(ctx context.Context, input ContactInput) (*entity.Contact, error) {
	contact := &entity.Contact{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Country:   input.Country,
		Message:   input.Message,
		CreatedAt: time.Now(),
	}

	if err := uc.contactRepo.Create(ctx, contact); err != nil {
		return nil, err
	}

	return contact, nil
}

func (uc *ContactUseCase) GetByID(ctx context.Context, id string) (*entity.Contact, error) {
	return uc.contactRepo.GetByID(ctx, id)
}

func (uc *ContactUseCase) List(ctx context.Context, limit, offset int) ([]*entity.Contact, int64, error) {
	return uc.contactRepo.List(ctx, limit, offset)
}

func (uc *ContactUseCase) Delete(ctx context.Context, id string) error {
	return uc.contactRepo.Delete(ctx, id)
}

package usecase

import (
	"context"
	"time"

	"porosemi/internal/domain/entity"
	"porosemi/internal/domain/repository"
	"porosemi/pkg/errors"
)

type EducationUseCase struct {
	educationRepo repository.EducationRepository
	profileRepo   repository.ProfileRepository
}

func NewEducationUseCase(educationRepo repository.EducationRepository, profileRepo repository.ProfileRepository) *EducationUseCase {
	return &EducationUseCase{
		educationRepo: educationRepo,
		profileRepo:   profileRepo,
	}
}

type EducationInput struct {
	Degree         string `json:"degree" validate:"required"`
	Institution    string `json:"institution" validate:"required"`
	GraduationYear int    `json:"graduation_year"`
}

func (uc *EducationUseCase) Create(ctx context.Context, userID string, input EducationInput) (*entity.Education, error) {
	profile, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, errors.BadRequest("Create a profile first", err)
	}

	education := &entity.Education{
		ProfileID:      profile.ID,
		Degree:         input.Degree,
		Institution:    input.Institution,
		GraduationYear: input.GraduationYear,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}

	if err := uc.educationRepo.Create(ctx, education); err != nil {
		return nil, err
	}

	return education, nil
}

func (uc *EducationUseCase) ListMine(ctx context.Context, userID string) ([]*entity.Education, error) {
	profile, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return uc.educationRepo.ListByProfileID(ctx, profile.ID)
}

func (uc *EducationUseCase) Update(ctx context.Context, userID, id string, input EducationInput) (*entity.Education, error) {
	education, err := uc.ownedByUser(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	education.Degree = input.Degree
	education.Institution = input.Institution
	education.GraduationYear = input.GraduationYear

	if err := uc.educationRepo.Update(ctx, education); err != nil {
		return nil, err
	}

	return education, nil
}

func (uc *EducationUseCase) Delete(ctx context.Context, userID, id string) error {
	if _, err := uc.ownedByUser(ctx, userID, id); err != nil {
		return err
	}
	return uc.educationRepo.Delete(ctx, id)
}

func (uc *EducationUseCase) ownedByUser(ctx context.Context, userID, id string) (*entity.Education, error) {
	profile, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	education, err := uc.educationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if education.ProfileID != profile.ID {
		return nil, errors.Forbidden("Education entry belongs to another profile", nil)
	}

	return education, nil
}

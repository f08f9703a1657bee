package usecase

import (
	"context"
	"time"

	"porosemi/internal/domain/entity"
	"porosemi/internal/domain/repository"
)

type ExperienceUseCase struct {
	experienceRepo repository.ExperienceRepository
}

func NewExperienceUseCase(experienceRepo repository.ExperienceRepository) *ExperienceUseCase {
	return &ExperienceUseCase{experienceRepo: experienceRepo}
}

type ExperienceInput struct {
	Title            string   `json:"title" validate:"required"`
	Company          string   `json:"company" validate:"required"`
	CompanyLogo      string   `json:"company_logo"`
	Location         string   `json:"location"`
	Period           string   `json:"period"`
	Duration         string   `json:"duration"`
	Type             string   `json:"type"`
	Mode             string   `json:"mode"`
	Responsibilities []string `json:"responsibilities"`
}

func (uc *ExperienceUseCase) Create(ctx context.Context, input ExperienceInput) (*entity.Experience, error) {
	experience := &entity.Experience{
		Title:            input.Title,
		Company:          input.Company,
		CompanyLogo:      input.CompanyLogo,
		Location:         input.Location,
		Period:           input.Period,
		Duration:         input.Duration,
		Type:             input.Type,
		Mode:             input.Mode,
		Responsibilities: input.Responsibilities,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}

	if err := uc.experienceRepo.Create(ctx, experience); err != nil {
		return nil, err
	}

	return experience, nil
}

func (uc *ExperienceUseCase) GetByID(ctx context.Context, id string) (*entity.Experience, error) {
	return uc.experienceRepo.GetByID(ctx, id)
}

func (uc *ExperienceUseCase) List(ctx context.Context, limit, offset int) ([]*entity.Experience, int64, error) {
	return uc.experienceRepo.List(ctx, limit, offset)
}

func (uc *ExperienceUseCase) Update(ctx context.Context, id string, input ExperienceInput) (*entity.Experience, error) {
	experience, err := uc.experienceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	experience.Title = input.Title
	experience.Company = input.Company
	experience.CompanyLogo = input.CompanyLogo
	experience.Location = input.Location
	experience.Period = input.Period
	experience.Duration = input.Duration
	experience.Type = input.Type
	experience.Mode = input.Mode
	experience.Responsibilities = input.Responsibilities

	if err := uc.experienceRepo.Update(ctx, experience); err != nil {
		return nil, err
	}

	return experience, nil
}

func (uc *ExperienceUseCase) Delete(ctx context.Context, id string) error {
	return uc.experienceRepo.Delete(ctx, id)
}

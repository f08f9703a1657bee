package usecase

import (
	"context"
	"time"

	"porosemi/internal/domain/entity"
	"porosemi/internal/domain/repository"
	"porosemi/internal/domain/service"
	"porosemi/pkg/errors"
	"porosemi/pkg/logger"
	"porosemi/pkg/utils"
)

type ProfileUseCase struct {
	profileRepo repository.ProfileRepository
	pipeline    *MediaPipelineUseCase
	blobs       service.BlobStore
}

func NewProfileUseCase(profileRepo repository.ProfileRepository, pipeline *MediaPipelineUseCase, blobs service.BlobStore) *ProfileUseCase {
	return &ProfileUseCase{
		profileRepo: profileRepo,
		pipeline:    pipeline,
		blobs:       blobs,
	}
}

type ProfileInput struct {
	Bio      string   `json:"bio"`
	Year     int      `json:"year"`
	Phone    string   `json:"phone"`
	Location string   `json:"location"`
	Degree   string   `json:"degree"`
	Roles    []string `json:"roles"`
	Tools    []string `json:"tools"`
}

func (uc *ProfileUseCase) Create(ctx context.Context, userID string, input ProfileInput, photo *Upload) (*entity.Profile, error) {
	if existing, err := uc.profileRepo.GetByUserID(ctx, userID); err == nil && existing != nil {
		return nil, errors.Conflict("Profile already exists")
	}

	profile := &entity.Profile{
		UserID:    userID,
		Bio:       input.Bio,
		Year:      input.Year,
		Phone:     input.Phone,
		Location:  input.Location,
		Degree:    input.Degree,
		Roles:     input.Roles,
		Tools:     input.Tools,
		Photo:     entity.Media{Status: entity.MediaStatusNone},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if photo != nil {
		if err := uc.pipeline.Validate(*photo); err != nil {
			return nil, err
		}
		profile.Photo.Status = entity.MediaStatusPending
	}

	if err := uc.profileRepo.Create(ctx, profile); err != nil {
		return nil, err
	}

	if photo != nil {
		uc.pipeline.Launch(uc.profileRepo, profile.ID, *photo)
	}

	return profile, nil
}

func (uc *ProfileUseCase) GetByUserID(ctx context.Context, userID string) (*entity.Profile, error) {
	return uc.profileRepo.GetByUserID(ctx, userID)
}

func (uc *ProfileUseCase) GetByID(ctx context.Context, id string) (*entity.Profile, error) {
	return uc.profileRepo.GetByID(ctx, id)
}

func (uc *ProfileUseCase) List(ctx context.Context, limit, offset int) ([]*entity.Profile, int64, error) {
	return uc.profileRepo.List(ctx, limit, offset)
}

func (uc *ProfileUseCase) Update(ctx context.Context, userID string, input ProfileInput, photo *Upload) (*entity.Profile, error) {
	profile, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if photo != nil {
		if err := uc.pipeline.Validate(*photo); err != nil {
			return nil, err
		}
	}

	profile.Bio = input.Bio
	profile.Year = input.Year
	profile.Phone = input.Phone
	profile.Location = input.Location
	profile.Degree = input.Degree
	profile.Roles = input.Roles
	profile.Tools = input.Tools
	if photo != nil {
		profile.Photo.Status = entity.MediaStatusPending
	}

	if err := uc.profileRepo.Update(ctx, profile); err != nil {
		return nil, err
	}

	if photo != nil {
		uc.pipeline.Launch(uc.profileRepo, profile.ID, *photo)
	}

	return profile, nil
}

func (uc *ProfileUseCase) Delete(ctx context.Context, userID string) error {
	profile, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}

	if err := uc.profileRepo.Delete(ctx, profile.ID); err != nil {
		return err
	}

	if profile.Photo.URL != "" {
		if filename := utils.FilenameFromURL(profile.Photo.URL); filename != "" {
			if err := uc.blobs.Delete(ctx, filename); err != nil {
				logger.Warn("Could not delete blob %s for profile %s: %v", filename, profile.ID, err)
			}
		}
	}

	return nil
}

package usecase

import (
	"context"
	"time"

	"porosemi/internal/domain/entity"
	"porosemi/internal/domain/repository"
	"porosemi/internal/domain/service"
	"porosemi/pkg/logger"
	"porosemi/pkg/utils"
)

type AchievementUseCase struct {
	achievementRepo repository.AchievementRepository
	pipeline        *MediaPipelineUseCase
	blobs           service.BlobStore
}

func NewAchievementUseCase(achievementRepo repository.AchievementRepository, pipeline *MediaPipelineUseCase, blobs service.BlobStore) *AchievementUseCase {
	return &AchievementUseCase{
		achievementRepo: achievementRepo,
		pipeline:        pipeline,
		blobs:           blobs,
	}
}

type AchievementInput struct {
	Title       string   `json:"title" validate:"required"`
	Issuer      string   `json:"issuer" validate:"required"`
	Label       string   `json:"label"`
	IssueDate   string   `json:"issue_date"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Level       string   `json:"level"`
	Tags        []string `json:"tags"`
}

// Create persists the achievement synchronously and, when a file was
// supplied, launches the ingestion pipeline without waiting for it. The
// caller observes completion by polling the record.
func (uc *AchievementUseCase) Create(ctx context.Context, input AchievementInput, upload *Upload) (*entity.Achievement, error) {
	achievement := &entity.Achievement{
		Title:       input.Title,
		Issuer:      input.Issuer,
		Label:       input.Label,
		IssueDate:   input.IssueDate,
		Description: input.Description,
		Category:    input.Category,
		Level:       input.Level,
		Tags:        input.Tags,
		Media:       entity.Media{Status: entity.MediaStatusNone},
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if upload != nil {
		if err := uc.pipeline.Validate(*upload); err != nil {
			return nil, err
		}
		achievement.Media.Status = entity.MediaStatusPending
	}

	if err := uc.achievementRepo.Create(ctx, achievement); err != nil {
		return nil, err
	}

	if upload != nil {
		uc.pipeline.Launch(uc.achievementRepo, achievement.ID, *upload)
	}

	return achievement, nil
}

// Update applies field changes and, when a new file was supplied, runs
// the pipeline again. The previous blob stays referenced until the new
// one is committed.
func (uc *AchievementUseCase) Update(ctx context.Context, id string, input AchievementInput, upload *Upload) (*entity.Achievement, error) {
	achievement, err := uc.achievementRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upload != nil {
		if err := uc.pipeline.Validate(*upload); err != nil {
			return nil, err
		}
	}

	achievement.Title = input.Title
	achievement.Issuer = input.Issuer
	achievement.Label = input.Label
	achievement.IssueDate = input.IssueDate
	achievement.Description = input.Description
	achievement.Category = input.Category
	achievement.Level = input.Level
	achievement.Tags = input.Tags
	if upload != nil {
		achievement.Media.Status = entity.MediaStatusPending
	}

	if err := uc.achievementRepo.Update(ctx, achievement); err != nil {
		return nil, err
	}

	if upload != nil {
		uc.pipeline.Launch(uc.achievementRepo, achievement.ID, *upload)
	}

	return achievement, nil
}

func (uc *AchievementUseCase) GetByID(ctx context.Context, id string) (*entity.Achievement, error) {
	return uc.achievementRepo.GetByID(ctx, id)
}

func (uc *AchievementUseCase) List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.Achievement, int64, error) {
	return uc.achievementRepo.List(ctx, filter, limit, offset)
}

func (uc *AchievementUseCase) SetPinned(ctx context.Context, id string, pinned bool) (*entity.Achievement, error) {
	achievement, err := uc.achievementRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	achievement.Pinned = pinned
	if err := uc.achievementRepo.Update(ctx, achievement); err != nil {
		return nil, err
	}

	return achievement, nil
}

// Delete removes the record first, then its blob. A blob that outlives
// its record is garbage; a record pointing at a deleted blob would
// break the completed-implies-resolvable invariant.
func (uc *AchievementUseCase) Delete(ctx context.Context, id string) error {
	achievement, err := uc.achievementRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.achievementRepo.Delete(ctx, id); err != nil {
		return err
	}

	if achievement.Media.URL != "" {
		if filename := utils.FilenameFromURL(achievement.Media.URL); filename != "" {
			if err := uc.blobs.Delete(ctx, filename); err != nil {
				logger.Warn("Could not delete blob %s for achievement %s: %v", filename, id, err)
			}
		}
	}

	return nil
}

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

// ToolUseCase manages tech-stack entries. Tool icons are small enough
// that the pipeline runs synchronously inside the request; the response
// already reflects the final media status.
type ToolUseCase struct {
	toolRepo repository.ToolRepository
	pipeline *MediaPipelineUseCase
	blobs    service.BlobStore
}

func NewToolUseCase(toolRepo repository.ToolRepository, pipeline *MediaPipelineUseCase, blobs service.BlobStore) *ToolUseCase {
	return &ToolUseCase{
		toolRepo: toolRepo,
		pipeline: pipeline,
		blobs:    blobs,
	}
}

type ToolInput struct {
	Title string `json:"title" validate:"required"`
}

func (uc *ToolUseCase) Create(ctx context.Context, input ToolInput, upload Upload) (*entity.Tool, error) {
	if err := uc.pipeline.Validate(upload); err != nil {
		return nil, err
	}

	tool := &entity.Tool{
		Title:     input.Title,
		Media:     entity.Media{Status: entity.MediaStatusPending},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := uc.toolRepo.Create(ctx, tool); err != nil {
		return nil, err
	}

	// Synchronous variant: the run's status write lands before we read
	// the record back, failure included.
	uc.pipeline.Run(ctx, uc.toolRepo, tool.ID, upload)

	return uc.toolRepo.GetByID(ctx, tool.ID)
}

func (uc *ToolUseCase) Update(ctx context.Context, id string, input ToolInput, upload *Upload) (*entity.Tool, error) {
	tool, err := uc.toolRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upload != nil {
		if err := uc.pipeline.Validate(*upload); err != nil {
			return nil, err
		}
	}

	tool.Title = input.Title
	if upload != nil {
		tool.Media.Status = entity.MediaStatusPending
	}

	if err := uc.toolRepo.Update(ctx, tool); err != nil {
		return nil, err
	}

	if upload != nil {
		uc.pipeline.Run(ctx, uc.toolRepo, tool.ID, *upload)
		return uc.toolRepo.GetByID(ctx, tool.ID)
	}

	return tool, nil
}

func (uc *ToolUseCase) GetByID(ctx context.Context, id string) (*entity.Tool, error) {
	return uc.toolRepo.GetByID(ctx, id)
}

func (uc *ToolUseCase) List(ctx context.Context, limit, offset int) ([]*entity.Tool, int64, error) {
	return uc.toolRepo.List(ctx, limit, offset)
}

func (uc *ToolUseCase) Delete(ctx context.Context, id string) error {
	tool, err := uc.toolRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.toolRepo.Delete(ctx, id); err != nil {
		return err
	}

	if tool.Media.URL != "" {
		if filename := utils.FilenameFromURL(tool.Media.URL); filename != "" {
			if err := uc.blobs.Delete(ctx, filename); err != nil {
				logger.Warn("Could not delete blob %s for tool %s: %v", filename, id, err)
			}
		}
	}

	return nil
}

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

type ProjectUseCase struct {
	projectRepo repository.ProjectRepository
	pipeline    *MediaPipelineUseCase
	blobs       service.BlobStore
}

func NewProjectUseCase(projectRepo repository.ProjectRepository, pipeline *MediaPipelineUseCase, blobs service.BlobStore) *ProjectUseCase {
	return &ProjectUseCase{
		projectRepo: projectRepo,
		pipeline:    pipeline,
		blobs:       blobs,
	}
}

type ProjectInput struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description"`
	TechStack   []string `json:"tech_stack"`
	Features    []string `json:"features"`
	Role        string   `json:"role"`
	DemoURL     string   `json:"demo_url"`
	RepoURL     string   `json:"repo_url"`
}

func (uc *ProjectUseCase) Create(ctx context.Context, input ProjectInput, upload *Upload) (*entity.Project, error) {
	project := &entity.Project{
		Title:       input.Title,
		Description: input.Description,
		TechStack:   input.TechStack,
		Features:    input.Features,
		Role:        input.Role,
		DemoURL:     input.DemoURL,
		RepoURL:     input.RepoURL,
		Media:       entity.Media{Status: entity.MediaStatusNone},
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if upload != nil {
		if err := uc.pipeline.Validate(*upload); err != nil {
			return nil, err
		}
		project.Media.Status = entity.MediaStatusPending
	}

	if err := uc.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}

	if upload != nil {
		uc.pipeline.Launch(uc.projectRepo, project.ID, *upload)
	}

	return project, nil
}

func (uc *ProjectUseCase) Update(ctx context.Context, id string, input ProjectInput, upload *Upload) (*entity.Project, error) {
	project, err := uc.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upload != nil {
		if err := uc.pipeline.Validate(*upload); err != nil {
			return nil, err
		}
	}

	project.Title = input.Title
	project.Description = input.Description
	project.TechStack = input.TechStack
	project.Features = input.Features
	project.Role = input.Role
	project.DemoURL = input.DemoURL
	project.RepoURL = input.RepoURL
	if upload != nil {
		project.Media.Status = entity.MediaStatusPending
	}

	if err := uc.projectRepo.Update(ctx, project); err != nil {
		return nil, err
	}

	if upload != nil {
		uc.pipeline.Launch(uc.projectRepo, project.ID, *upload)
	}

	return project, nil
}

func (uc *ProjectUseCase) SetPublished(ctx context.Context, id string, published bool) (*entity.Project, error) {
	project, err := uc.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	project.Published = published
	if err := uc.projectRepo.Update(ctx, project); err != nil {
		return nil, err
	}

	return project, nil
}

func (uc *ProjectUseCase) SetPinned(ctx context.Context, id string, pinned bool) (*entity.Project, error) {
	project, err := uc.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	project.Pinned = pinned
	if err := uc.projectRepo.Update(ctx, project); err != nil {
		return nil, err
	}

	return project, nil
}

func (uc *ProjectUseCase) GetByID(ctx context.Context, id string) (*entity.Project, error) {
	return uc.projectRepo.GetByID(ctx, id)
}

func (uc *ProjectUseCase) List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.Project, int64, error) {
	return uc.projectRepo.List(ctx, filter, limit, offset)
}

func (uc *ProjectUseCase) Delete(ctx context.Context, id string) error {
	project, err := uc.projectRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.projectRepo.Delete(ctx, id); err != nil {
		return err
	}

	if project.Media.URL != "" {
		if filename := utils.FilenameFromURL(project.Media.URL); filename != "" {
			if err := uc.blobs.Delete(ctx, filename); err != nil {
				logger.Warn("Could not delete blob %s for project %s: %v", filename, id, err)
			}
		}
	}

	return nil
}

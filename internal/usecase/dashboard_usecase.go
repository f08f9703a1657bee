package usecase

import (
	"context"

	"porosemi/internal/domain/repository"
)

// DashboardSummary holds the admin landing-page counters.
type DashboardSummary struct {
	Achievements int64 `json:"achievements"`
	Projects     int64 `json:"projects"`
	Tools        int64 `json:"tools"`
	Contacts     int64 `json:"contacts"`
	Users        int64 `json:"users"`
}

type DashboardUseCase struct {
	achievementRepo repository.AchievementRepository
	projectRepo     repository.ProjectRepository
	toolRepo        repository.ToolRepository
	contactRepo     repository.ContactRepository
	userRepo        repository.UserRepository
}

func NewDashboardUseCase(
	achievementRepo repository.AchievementRepository,
	projectRepo repository.ProjectRepository,
	toolRepo repository.ToolRepository,
	contactRepo repository.ContactRepository,
	userRepo repository.UserRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		achievementRepo: achievementRepo,
		projectRepo:     projectRepo,
		toolRepo:        toolRepo,
		contactRepo:     contactRepo,
		userRepo:        userRepo,
	}
}

// Summary fans the count queries out as list calls with a zero page
// size; repositories report totals without materializing documents.
func (uc *DashboardUseCase) Summary(ctx context.Context) (*DashboardSummary, error) {
	summary := &DashboardSummary{}

	_, total, err := uc.achievementRepo.List(ctx, nil, 1, 0)
	if err != nil {
		return nil, err
	}
	summary.Achievements = total

	_, total, err = uc.projectRepo.List(ctx, nil, 1, 0)
	if err != nil {
		return nil, err
	}
	summary.Projects = total

	_, total, err = uc.toolRepo.List(ctx, 1, 0)
	if err != nil {
		return nil, err
	}
	summary.Tools = total

	_, total, err = uc.contactRepo.List(ctx, 1, 0)
	if err != nil {
		return nil, err
	}
	summary.Contacts = total

	_, total, err = uc.userRepo.List(ctx, 1, 0)
	if err != nil {
		return nil, err
	}
	summary.Users = total

	return summary, nil
}

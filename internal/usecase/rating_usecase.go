package usecase

import (
	"context"
	"time"

	"porosemi/internal/domain/entity"
	"porosemi/internal/domain/repository"
)

type RatingUseCase struct {
	ratingRepo repository.RatingRepository
}

func NewRatingUseCase(ratingRepo repository.RatingRepository) *RatingUseCase {
	return &RatingUseCase{ratingRepo: ratingRepo}
}

type RatingInput struct {
	Label  string `json:"label"`
	Rating int    `json:"rating" validate:"required,min=1,max=5"`
}

func (uc *RatingUseCase) Create(ctx context.Context, input RatingInput) (*entity.Rating, error) {
	rating := &entity.Rating{
		Label:     input.Label,
		Rating:    input.Rating,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := uc.ratingRepo.Create(ctx, rating); err != nil {
		return nil, err
	}

	return rating, nil
}

func (uc *RatingUseCase) List(ctx context.Context, limit, offset int) ([]*entity.Rating, int64, error) {
	return uc.ratingRepo.List(ctx, limit, offset)
}

// Summary aggregates all ratings into an average, a total and a
// per-star distribution. The collection is small so it is folded in
// memory rather than with an aggregation query.
func (uc *RatingUseCase) Summary(ctx context.Context) (*entity.RatingSummary, error) {
	ratings, err := uc.ratingRepo.All(ctx)
	if err != nil {
		return nil, err
	}

	summary := &entity.RatingSummary{
		Distribution: map[int]int64{1: 0, 2: 0, 3: 0, 4: 0, 5: 0},
	}

	var sum int64
	for _, r := range ratings {
		if r.Rating < 1 || r.Rating > 5 {
			continue
		}
		summary.Total++
		summary.Distribution[r.Rating]++
		sum += int64(r.Rating)
	}

	if summary.Total > 0 {
		summary.Average = float64(sum) / float64(summary.Total)
	}

	return summary, nil
}

func (uc *RatingUseCase) Delete(ctx context.Context, id string) error {
	return uc.ratingRepo.Delete(ctx, id)
}

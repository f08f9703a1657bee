package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"porosemi/internal/domain/entity"
	"porosemi/internal/domain/repository"
	"porosemi/pkg/errors"
)

type firestoreAchievementRepository struct {
	client *firestore.Client
}

func NewFirestoreAchievementRepository(client *firestore.Client) repository.AchievementRepository {
	return &firestoreAchievementRepository{
		client: client,
	}
}

func (r *firestoreAchievementRepository) Create(ctx context.Context, achievement *entity.Achievement) error {
	if achievement.ID == "" {
		doc := r.client.Collection("achievements").NewDoc()
		achievement.ID = doc.ID
	}

	now := time.Now()
	if achievement.CreatedAt.IsZero() {
		achievement.CreatedAt = now
	}
	achievement.UpdatedAt = now

	_, err := r.client.Collection("achievements").Doc(achievement.ID).Set(ctx, achievement)
	if err != nil {
		return errors.Internal("Failed to create achievement", err)
	}

	return nil
}

func (r *firestoreAchievementRepository) GetByID(ctx context.Context, id string) (*entity.Achievement, error) {
	doc, err := r.client.Collection("achievements").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Achievement", err)
		}
		return nil, errors.Internal("Failed to get achievement", err)
	}

	var achievement entity.Achievement
	if err := doc.DataTo(&achievement); err != nil {
		return nil, errors.Internal("Failed to parse achievement data", err)
	}

	return &achievement, nil
}

func (r *firestoreAchievementRepository) List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.Achievement, int64, error) {
	query := r.client.Collection("achievements").Query

	for key, value := range filter {
		query = query.Where(key, "==", value)
	}

	query = query.OrderBy("createdAt", firestore.Desc)

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count achievements", err)
	}
	total := int64(len(allDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var achievements []*entity.Achievement

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate achievements", err)
		}
		var achievement entity.Achievement
		if err := doc.DataTo(&achievement); err != nil {
			return nil, 0, errors.Internal("Failed to parse achievement data", err)
		}
		achievements = append(achievements, &achievement)
	}

	return achievements, total, nil
}

func (r *firestoreAchievementRepository) Update(ctx context.Context, achievement *entity.Achievement) error {
	achievement.UpdatedAt = time.Now()

	_, err := r.client.Collection("achievements").Doc(achievement.ID).Set(ctx, achievement)
	if err != nil {
		return errors.Internal("Failed to update achievement", err)
	}

	return nil
}

func (r *firestoreAchievementRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("achievements").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete achievement", err)
	}

	return nil
}

func (r *firestoreAchievementRepository) UpdateMedia(ctx context.Context, id string, url string, mediaStatus entity.MediaStatus) error {
	return updateMediaFields(ctx, r.client, "achievements", id, "media", url, mediaStatus)
}

func (r *firestoreAchievementRepository) GetMedia(ctx context.Context, id string) (*entity.Media, error) {
	achievement, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &achievement.Media, nil
}

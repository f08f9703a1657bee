package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"porosemi/internal/domain/entity"
	"porosemi/internal/domain/repository"
	"porosemi/pkg/errors"
)

type firestoreRatingRepository struct {
	client *firestore.Client
}

func NewFirestoreRatingRepository(client *firestore.Client) repository.RatingRepository {
	return &firestoreRatingRepository{
		client: client,
	}
}

func (r *firestoreRatingRepository) Create(ctx context.Context, rating *entity.Rating) error {
	if rating.ID == "" {
		doc := r.client.Collection("ratings").NewDoc()
		rating.ID = doc.ID
	}

	now := time.Now()
	if rating.CreatedAt.IsZero() {
		rating.CreatedAt = now
	}
	rating.UpdatedAt = now

	_, err := r.client.Collection("ratings").Doc(rating.ID).Set(ctx, rating)
	if err != nil {
		return errors.Internal("Failed to create rating", err)
	}

	return nil
}

func (r *firestoreRatingRepository) List(ctx context.Context, limit, offset int) ([]*entity.Rating, int64, error) {
	query := r.client.Collection("ratings").Query.OrderBy("createdAt", firestore.Desc)

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count ratings", err)
	}
	total := int64(len(allDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var ratings []*entity.Rating

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate ratings", err)
		}
		var rating entity.Rating
		if err := doc.DataTo(&rating); err != nil {
			return nil, 0, errors.Internal("Failed to parse rating data", err)
		}
		ratings = append(ratings, &rating)
	}

	return ratings, total, nil
}

func (r *firestoreRatingRepository) All(ctx context.Context) ([]*entity.Rating, error) {
	iter := r.client.Collection("ratings").Documents(ctx)

	var ratings []*entity.Rating
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate ratings", err)
		}
		var rating entity.Rating
		if err := doc.DataTo(&rating); err != nil {
			return nil, errors.Internal("Failed to parse rating data", err)
		}
		ratings = append(ratings, &rating)
	}

	return ratings, nil
}

func (r *firestoreRatingRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("ratings").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete rating", err)
	}

	return nil
}

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

type firestoreExperienceRepository struct {
	client *firestore.Client
}

func NewFirestoreExperienceRepository(client *firestore.Client) repository.ExperienceRepository {
	return &firestoreExperienceRepository{
		client: client,
	}
}

func (r *firestoreExperienceRepository) Create(ctx context.Context, experience *entity.Experience) error {
	if experience.ID == "" {
		doc := r.client.Collection("experiences").NewDoc()
		experience.ID = doc.ID
	}

	now := time.Now()
	if experience.CreatedAt.IsZero() {
		experience.CreatedAt = now
	}
	experience.UpdatedAt = now

	_, err := r.client.Collection("experiences").Doc(experience.ID).Set(ctx, experience)
	if err != nil {
		return errors.Internal("Failed to create experience", err)
	}

	return nil
}

func (r *firestoreExperienceRepository) GetByID(ctx context.Context, id string) (*entity.Experience, error) {
	doc, err := r.client.Collection("experiences").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Experience", err)
		}
		return nil, errors.Internal("Failed to get experience", err)
	}

	var experience entity.Experience
	if err := doc.DataTo(&experience); err != nil {
		return nil, errors.Internal("Failed to parse experience data", err)
	}

	return &experience, nil
}

func (r *firestoreExperienceRepository) List(ctx context.Context, limit, offset int) ([]*entity.Experience, int64, error) {
	query := r.client.Collection("experiences").Query.OrderBy("createdAt", firestore.Desc)

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count experiences", err)
	}
	total := int64(len(allDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var experiences []*entity.Experience

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate experiences", err)
		}
		var experience entity.Experience
		if err := doc.DataTo(&experience); err != nil {
			return nil, 0, errors.Internal("Failed to parse experience data", err)
		}
		experiences = append(experiences, &experience)
	}

	return experiences, total, nil
}

func (r *firestoreExperienceRepository) Update(ctx context.Context, experience *entity.Experience) error {
	experience.UpdatedAt = time.Now()

	_, err := r.client.Collection("experiences").Doc(experience.ID).Set(ctx, experience)
	if err != nil {
		return errors.Internal("Failed to update experience", err)
	}

	return nil
}

func (r *firestoreExperienceRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("experiences").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete experience", err)
	}

	return nil
}

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

type firestoreEducationRepository struct {
	client *firestore.Client
}

func NewFirestoreEducationRepository(client *firestore.Client) repository.EducationRepository {
	return &firestoreEducationRepository{
		client: client,
	}
}

func (r *firestoreEducationRepository) Create(ctx context.Context, education *entity.Education) error {
	if education.ID == "" {
		doc := r.client.Collection("educations").NewDoc()
		education.ID = doc.ID
	}

	now := time.Now()
	if education.CreatedAt.IsZero() {
		education.CreatedAt = now
	}
	education.UpdatedAt = now

	_, err := r.client.Collection("educations").Doc(education.ID).Set(ctx, education)
	if err != nil {
		return errors.Internal("Failed to create education entry", err)
	}

	return nil
}

func (r *firestoreEducationRepository) GetByID(ctx context.Context, id string) (*entity.Education, error) {
	doc, err := r.client.Collection("educations").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Education entry", err)
		}
		return nil, errors.Internal("Failed to get education entry", err)
	}

	var education entity.Education
	if err := doc.DataTo(&education); err != nil {
		return nil, errors.Internal("Failed to parse education data", err)
	}

	return &education, nil
}

func (r *firestoreEducationRepository) ListByProfileID(ctx context.Context, profileID string) ([]*entity.Education, error) {
	iter := r.client.Collection("educations").
		Where("profileId", "==", profileID).
		OrderBy("graduationYear", firestore.Desc).
		Documents(ctx)

	var entries []*entity.Education
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate education entries", err)
		}
		var education entity.Education
		if err := doc.DataTo(&education); err != nil {
			return nil, errors.Internal("Failed to parse education data", err)
		}
		entries = append(entries, &education)
	}

	return entries, nil
}

func (r *firestoreEducationRepository) Update(ctx context.Context, education *entity.Education) error {
	education.UpdatedAt = time.Now()

	_, err := r.client.Collection("educations").Doc(education.ID).Set(ctx, education)
	if err != nil {
		return errors.Internal("Failed to update education entry", err)
	}

	return nil
}

func (r *firestoreEducationRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("educations").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete education entry", err)
	}

	return nil
}

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

type firestoreProfileRepository struct {
	client *firestore.Client
}

func NewFirestoreProfileRepository(client *firestore.Client) repository.ProfileRepository {
	return &firestoreProfileRepository{
		client: client,
	}
}

func (r *firestoreProfileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	if profile.ID == "" {
		doc := r.client.Collection("profiles").NewDoc()
		profile.ID = doc.ID
	}

	now := time.Now()
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = now
	}
	profile.UpdatedAt = now

	_, err := r.client.Collection("profiles").Doc(profile.ID).Set(ctx, profile)
	if err != nil {
		return errors.Internal("Failed to create profile", err)
	}

	return nil
}

func (r *firestoreProfileRepository) GetByID(ctx context.Context, id string) (*entity.Profile, error) {
	doc, err := r.client.Collection("profiles").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Profile", err)
		}
		return nil, errors.Internal("Failed to get profile", err)
	}

	var profile entity.Profile
	if err := doc.DataTo(&profile); err != nil {
		return nil, errors.Internal("Failed to parse profile data", err)
	}

	return &profile, nil
}

func (r *firestoreProfileRepository) GetByUserID(ctx context.Context, userID string) (*entity.Profile, error) {
	iter := r.client.Collection("profiles").Where("userId", "==", userID).Limit(1).Documents(ctx)
	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, errors.NotFound("Profile", nil)
	}
	if err != nil {
		return nil, errors.Internal("Failed to get profile", err)
	}

	var profile entity.Profile
	if err := doc.DataTo(&profile); err != nil {
		return nil, errors.Internal("Failed to parse profile data", err)
	}

	return &profile, nil
}

func (r *firestoreProfileRepository) List(ctx context.Context, limit, offset int) ([]*entity.Profile, int64, error) {
	query := r.client.Collection("profiles").Query.OrderBy("createdAt", firestore.Asc)

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count profiles", err)
	}
	total := int64(len(allDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var profiles []*entity.Profile

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate profiles", err)
		}
		var profile entity.Profile
		if err := doc.DataTo(&profile); err != nil {
			return nil, 0, errors.Internal("Failed to parse profile data", err)
		}
		profiles = append(profiles, &profile)
	}

	return profiles, total, nil
}

func (r *firestoreProfileRepository) Update(ctx context.Context, profile *entity.Profile) error {
	profile.UpdatedAt = time.Now()

	_, err := r.client.Collection("profiles").Doc(profile.ID).Set(ctx, profile)
	if err != nil {
		return errors.Internal("Failed to update profile", err)
	}

	return nil
}

func (r *firestoreProfileRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("profiles").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete profile", err)
	}

	return nil
}

func (r *firestoreProfileRepository) UpdateMedia(ctx context.Context, id string, url string, mediaStatus entity.MediaStatus) error {
	return updateMediaFields(ctx, r.client, "profiles", id, "photo", url, mediaStatus)
}

func (r *firestoreProfileRepository) GetMedia(ctx context.Context, id string) (*entity.Media, error) {
	profile, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &profile.Photo, nil
}

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

type firestoreRoleRepository struct {
	client *firestore.Client
}

func NewFirestoreRoleRepository(client *firestore.Client) repository.RoleRepository {
	return &firestoreRoleRepository{
		client: client,
	}
}

func (r *firestoreRoleRepository) Create(ctx context.Context, role *entity.Role) error {
	if role.ID == "" {
		doc := r.client.Collection("roles").NewDoc()
		role.ID = doc.ID
	}

	now := time.Now()
	if role.CreatedAt.IsZero() {
		role.CreatedAt = now
	}
	role.UpdatedAt = now

	_, err := r.client.Collection("roles").Doc(role.ID).Set(ctx, role)
	if err != nil {
		return errors.Internal("Failed to create role", err)
	}

	return nil
}

func (r *firestoreRoleRepository) GetByID(ctx context.Context, id string) (*entity.Role, error) {
	doc, err := r.client.Collection("roles").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Role", err)
		}
		return nil, errors.Internal("Failed to get role", err)
	}

	var role entity.Role
	if err := doc.DataTo(&role); err != nil {
		return nil, errors.Internal("Failed to parse role data", err)
	}

	return &role, nil
}

func (r *firestoreRoleRepository) List(ctx context.Context) ([]*entity.Role, error) {
	iter := r.client.Collection("roles").OrderBy("name", firestore.Asc).Documents(ctx)

	var roles []*entity.Role
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate roles", err)
		}
		var role entity.Role
		if err := doc.DataTo(&role); err != nil {
			return nil, errors.Internal("Failed to parse role data", err)
		}
		roles = append(roles, &role)
	}

	return roles, nil
}

func (r *firestoreRoleRepository) Update(ctx context.Context, role *entity.Role) error {
	role.UpdatedAt = time.Now()

	_, err := r.client.Collection("roles").Doc(role.ID).Set(ctx, role)
	if err != nil {
		return errors.Internal("Failed to update role", err)
	}

	return nil
}

func (r *firestoreRoleRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("roles").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete role", err)
	}

	return nil
}

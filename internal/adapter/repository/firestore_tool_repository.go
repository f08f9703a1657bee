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

type firestoreToolRepository struct {
	client *firestore.Client
}

func NewFirestoreToolRepository(client *firestore.Client) repository.ToolRepository {
	return &firestoreToolRepository{
		client: client,
	}
}

func (r *firestoreToolRepository) Create(ctx context.Context, tool *entity.Tool) error {
	if tool.ID == "" {
		doc := r.client.Collection("tools").NewDoc()
		tool.ID = doc.ID
	}

	now := time.Now()
	if tool.CreatedAt.IsZero() {
		tool.CreatedAt = now
	}
	tool.UpdatedAt = now

	_, err := r.client.Collection("tools").Doc(tool.ID).Set(ctx, tool)
	if err != nil {
		return errors.Internal("Failed to create tool", err)
	}

	return nil
}

func (r *firestoreToolRepository) GetByID(ctx context.Context, id string) (*entity.Tool, error) {
	doc, err := r.client.Collection("tools").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Tool", err)
		}
		return nil, errors.Internal("Failed to get tool", err)
	}

	var tool entity.Tool
	if err := doc.DataTo(&tool); err != nil {
		return nil, errors.Internal("Failed to parse tool data", err)
	}

	return &tool, nil
}

func (r *firestoreToolRepository) List(ctx context.Context, limit, offset int) ([]*entity.Tool, int64, error) {
	query := r.client.Collection("tools").Query.OrderBy("title", firestore.Asc)

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count tools", err)
	}
	total := int64(len(allDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var tools []*entity.Tool

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate tools", err)
		}
		var tool entity.Tool
		if err := doc.DataTo(&tool); err != nil {
			return nil, 0, errors.Internal("Failed to parse tool data", err)
		}
		tools = append(tools, &tool)
	}

	return tools, total, nil
}

func (r *firestoreToolRepository) Update(ctx context.Context, tool *entity.Tool) error {
	tool.UpdatedAt = time.Now()

	_, err := r.client.Collection("tools").Doc(tool.ID).Set(ctx, tool)
	if err != nil {
		return errors.Internal("Failed to update tool", err)
	}

	return nil
}

func (r *firestoreToolRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("tools").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete tool", err)
	}

	return nil
}

func (r *firestoreToolRepository) UpdateMedia(ctx context.Context, id string, url string, mediaStatus entity.MediaStatus) error {
	return updateMediaFields(ctx, r.client, "tools", id, "media", url, mediaStatus)
}

func (r *firestoreToolRepository) GetMedia(ctx context.Context, id string) (*entity.Media, error) {
	tool, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &tool.Media, nil
}

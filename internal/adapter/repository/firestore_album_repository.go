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

type firestoreAlbumRepository struct {
	client *firestore.Client
}

func NewFirestoreAlbumRepository(client *firestore.Client) repository.AlbumRepository {
	return &firestoreAlbumRepository{
		client: client,
	}
}

func (r *firestoreAlbumRepository) Create(ctx context.Context, album *entity.Album) error {
	if album.ID == "" {
		doc := r.client.Collection("albums").NewDoc()
		album.ID = doc.ID
	}

	now := time.Now()
	if album.CreatedAt.IsZero() {
		album.CreatedAt = now
	}
	album.UpdatedAt = now

	_, err := r.client.Collection("albums").Doc(album.ID).Set(ctx, album)
	if err != nil {
		return errors.Internal("Failed to create album photo", err)
	}

	return nil
}

func (r *firestoreAlbumRepository) GetByID(ctx context.Context, id string) (*entity.Album, error) {
	doc, err := r.client.Collection("albums").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Album photo", err)
		}
		return nil, errors.Internal("Failed to get album photo", err)
	}

	var album entity.Album
	if err := doc.DataTo(&album); err != nil {
		return nil, errors.Internal("Failed to parse album data", err)
	}

	return &album, nil
}

func (r *firestoreAlbumRepository) List(ctx context.Context, limit, offset int) ([]*entity.Album, int64, error) {
	query := r.client.Collection("albums").Query.OrderBy("createdAt", firestore.Desc)

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count album photos", err)
	}
	total := int64(len(allDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var albums []*entity.Album

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate album photos", err)
		}
		var album entity.Album
		if err := doc.DataTo(&album); err != nil {
			return nil, 0, errors.Internal("Failed to parse album data", err)
		}
		albums = append(albums, &album)
	}

	return albums, total, nil
}

func (r *firestoreAlbumRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("albums").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete album photo", err)
	}

	return nil
}

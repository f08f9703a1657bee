package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"porosemi/internal/domain/entity"
	"porosemi/pkg/errors"
)

// updateMediaFields writes the media status (and url, when one is
// given) with field-path updates so the rest of the document is left
// untouched. An empty url keeps whatever url is already stored, which
// is how a failed run preserves the previous committed value.
func updateMediaFields(ctx context.Context, client *firestore.Client, collection, id, field, url string, mediaStatus entity.MediaStatus) error {
	updates := []firestore.Update{
		{Path: field + ".status", Value: string(mediaStatus)},
		{Path: "updatedAt", Value: time.Now()},
	}
	if url != "" {
		updates = append(updates, firestore.Update{Path: field + ".url", Value: url})
	}

	_, err := client.Collection(collection).Doc(id).Update(ctx, updates)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Record", err)
		}
		return errors.Internal("Failed to update media state", err)
	}

	return nil
}

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

type firestoreContactRepository struct {
	client *firestore.Client
}

func NewFirestoreContactRepository(client *firestore.Client) repository.ContactRepository {
	return &firestoreContactRepository{
		client: client,
	}
}

func (r *firestoreContactRepository) Create(ctx context.Context, contact *entity.Contact) error {
	if contact.ID == "" {
		doc := r.client.Collection("contacts").NewDoc()
		contact.ID = doc.ID
	}

	if contact.CreatedAt.IsZero() {
		contact.CreatedAt = time.Now()
	}

	_, err := r.client.Collection("contacts").Doc(contact.ID).Set(ctx, contact)
	if err != nil {
		return errors.Internal("Failed to create contact message", err)
	}

	return nil
}

func (r *firestoreContactRepository) GetByID(ctx context.Context, id string) (*entity.Contact, error) {
	doc, err := r.client.Collection("contacts").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Contact message", err)
		}
		return nil, errors.Internal("Failed to get contact message", err)
	}

	var contact entity.Contact
	if err := doc.DataTo(&contact); err != nil {
		return nil, errors.Internal("Failed to parse contact data", err)
	}

	return &contact, nil
}

func (r *firestoreContactRepository) List(ctx context.Context, limit, offset int) ([]*entity.Contact, int64, error) {
	query := r.client.Collection("contacts").Query.OrderBy("createdAt", firestore.Desc)

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count contact messages", err)
	}
	total := int64(len(allDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var contacts []*entity.Contact

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate contact messages", err)
		}
		var contact entity.Contact
		if err := doc.DataTo(&contact); err != nil {
			return nil, 0, errors.Internal("Failed to parse contact data", err)
		}
		contacts = append(contacts, &contact)
	}

	return contacts, total, nil
}

func (r *firestoreContactRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("contacts").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete contact message", err)
	}

	return nil
}

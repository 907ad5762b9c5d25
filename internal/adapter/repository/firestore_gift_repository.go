package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"bazarly/internal/domain/entity"
	"bazarly/internal/domain/repository"
	"bazarly/pkg/errors"
)

type firestoreGiftRepository struct {
	client *firestore.Client
}

func NewFirestoreGiftRepository(client *firestore.Client) repository.GiftRepository {
	return &firestoreGiftRepository{client: client}
}

func (r *firestoreGiftRepository) Create(ctx context.Context, gift *entity.Gift) error {
	if gift.ID == "" {
		gift.ID = r.client.Collection("gifts").NewDoc().ID
	}

	now := time.Now()
	if gift.CreatedAt.IsZero() {
		gift.CreatedAt = now
	}
	gift.UpdatedAt = now

	_, err := r.client.Collection("gifts").Doc(gift.ID).Set(ctx, gift)
	if err != nil {
		return errors.Internal("Failed to create gift", err)
	}
	return nil
}

func (r *firestoreGiftRepository) GetByID(ctx context.Context, id string) (*entity.Gift, error) {
	doc, err := r.client.Collection("gifts").Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, errors.NotFound("Gift", err)
		}
		return nil, errors.Internal("Failed to get gift", err)
	}

	var gift entity.Gift
	if err := doc.DataTo(&gift); err != nil {
		return nil, errors.Internal("Failed to parse gift data", err)
	}
	return &gift, nil
}

func (r *firestoreGiftRepository) List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.Gift, int64, error) {
	query := r.client.Collection("gifts").Query
	for key, value := range filter {
		query = query.Where(key, "==", value)
	}
	query = query.OrderBy("points", firestore.Asc)

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count gifts", err)
	}
	total := int64(len(allDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var gifts []*entity.Gift
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate gifts", err)
		}
		var gift entity.Gift
		if err := doc.DataTo(&gift); err != nil {
			return nil, 0, errors.Internal("Failed to parse gift data", err)
		}
		gifts = append(gifts, &gift)
	}

	return gifts, total, nil
}

func (r *firestoreGiftRepository) Update(ctx context.Context, gift *entity.Gift) error {
	gift.UpdatedAt = time.Now()

	_, err := r.client.Collection("gifts").Doc(gift.ID).Set(ctx, gift)
	if err != nil {
		return errors.Internal("Failed to update gift", err)
	}
	return nil
}

func (r *firestoreGiftRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("gifts").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete gift", err)
	}
	return nil
}

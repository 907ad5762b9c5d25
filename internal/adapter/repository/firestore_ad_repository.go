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

type firestoreAdRepository struct {
	client *firestore.Client
}

func NewFirestoreAdRepository(client *firestore.Client) repository.AdRepository {
	return &firestoreAdRepository{client: client}
}

func (r *firestoreAdRepository) Create(ctx context.Context, ad *entity.Ad) error {
	if ad.ID == "" {
		ad.ID = r.client.Collection("ads").NewDoc().ID
	}

	now := time.Now()
	if ad.CreatedAt.IsZero() {
		ad.CreatedAt = now
	}
	if ad.StartsAt.IsZero() {
		ad.StartsAt = now
	}
	ad.UpdatedAt = now

	_, err := r.client.Collection("ads").Doc(ad.ID).Set(ctx, ad)
	if err != nil {
		return errors.Internal("Failed to create ad", err)
	}
	return nil
}

func (r *firestoreAdRepository) GetByID(ctx context.Context, id string) (*entity.Ad, error) {
	doc, err := r.client.Collection("ads").Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, errors.NotFound("Ad", err)
		}
		return nil, errors.Internal("Failed to get ad", err)
	}

	var ad entity.Ad
	if err := doc.DataTo(&ad); err != nil {
		return nil, errors.Internal("Failed to parse ad data", err)
	}
	return &ad, nil
}

func (r *firestoreAdRepository) List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.Ad, int64, error) {
	query := r.client.Collection("ads").Query
	for key, value := range filter {
		query = query.Where(key, "==", value)
	}
	query = query.OrderBy("startsAt", firestore.Desc)

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count ads", err)
	}
	total := int64(len(allDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var ads []*entity.Ad
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate ads", err)
		}
		var ad entity.Ad
		if err := doc.DataTo(&ad); err != nil {
			return nil, 0, errors.Internal("Failed to parse ad data", err)
		}
		ads = append(ads, &ad)
	}

	return ads, total, nil
}

func (r *firestoreAdRepository) Update(ctx context.Context, ad *entity.Ad) error {
	ad.UpdatedAt = time.Now()

	_, err := r.client.Collection("ads").Doc(ad.ID).Set(ctx, ad)
	if err != nil {
		return errors.Internal("Failed to update ad", err)
	}
	return nil
}

func (r *firestoreAdRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("ads").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete ad", err)
	}
	return nil
}

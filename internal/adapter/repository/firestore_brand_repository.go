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

type firestoreBrandRepository struct {
	client *firestore.Client
}

func NewFirestoreBrandRepository(client *firestore.Client) repository.BrandRepository {
	return &firestoreBrandRepository{client: client}
}

func (r *firestoreBrandRepository) Create(ctx context.Context, brand *entity.Brand) error {
	if brand.ID == "" {
		brand.ID = r.client.Collection("brands").NewDoc().ID
	}

	now := time.Now()
	if brand.CreatedAt.IsZero() {
		brand.CreatedAt = now
	}
	brand.UpdatedAt = now

	_, err := r.client.Collection("brands").Doc(brand.ID).Set(ctx, brand)
	if err != nil {
		return errors.Internal("Failed to create brand", err)
	}
	return nil
}

func (r *firestoreBrandRepository) GetByID(ctx context.Context, id string) (*entity.Brand, error) {
	doc, err := r.client.Collection("brands").Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, errors.NotFound("Brand", err)
		}
		return nil, errors.Internal("Failed to get brand", err)
	}

	var brand entity.Brand
	if err := doc.DataTo(&brand); err != nil {
		return nil, errors.Internal("Failed to parse brand data", err)
	}
	return &brand, nil
}

func (r *firestoreBrandRepository) GetBySlug(ctx context.Context, slug string) (*entity.Brand, error) {
	iter := r.client.Collection("brands").Where("slug", "==", slug).Limit(1).Documents(ctx)
	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, errors.NotFound("Brand", nil)
	}
	if err != nil {
		return nil, errors.Internal("Failed to query brand", err)
	}

	var brand entity.Brand
	if err := doc.DataTo(&brand); err != nil {
		return nil, errors.Internal("Failed to parse brand data", err)
	}
	return &brand, nil
}

func (r *firestoreBrandRepository) List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.Brand, int64, error) {
	query := r.client.Collection("brands").Query
	for key, value := range filter {
		query = query.Where(key, "==", value)
	}
	query = query.OrderBy("name", firestore.Asc)

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count brands", err)
	}
	total := int64(len(allDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var brands []*entity.Brand
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate brands", err)
		}
		var brand entity.Brand
		if err := doc.DataTo(&brand); err != nil {
			return nil, 0, errors.Internal("Failed to parse brand data", err)
		}
		brands = append(brands, &brand)
	}

	return brands, total, nil
}

func (r *firestoreBrandRepository) Update(ctx context.Context, brand *entity.Brand) error {
	brand.UpdatedAt = time.Now()

	_, err := r.client.Collection("brands").Doc(brand.ID).Set(ctx, brand)
	if err != nil {
		return errors.Internal("Failed to update brand", err)
	}
	return nil
}

func (r *firestoreBrandRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("brands").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete brand", err)
	}
	return nil
}

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

type firestoreMarketRepository struct {
	client *firestore.Client
}

func NewFirestoreMarketRepository(client *firestore.Client) repository.MarketRepository {
	return &firestoreMarketRepository{client: client}
}

func (r *firestoreMarketRepository) Create(ctx context.Context, market *entity.Market) error {
	if market.ID == "" {
		market.ID = r.client.Collection("markets").NewDoc().ID
	}

	now := time.Now()
	if market.CreatedAt.IsZero() {
		market.CreatedAt = now
	}
	market.UpdatedAt = now

	_, err := r.client.Collection("markets").Doc(market.ID).Set(ctx, market)
	if err != nil {
		return errors.Internal("Failed to create market", err)
	}
	return nil
}

func (r *firestoreMarketRepository) GetByID(ctx context.Context, id string) (*entity.Market, error) {
	doc, err := r.client.Collection("markets").Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, errors.NotFound("Market", err)
		}
		return nil, errors.Internal("Failed to get market", err)
	}

	var market entity.Market
	if err := doc.DataTo(&market); err != nil {
		return nil, errors.Internal("Failed to parse market data", err)
	}
	return &market, nil
}

func (r *firestoreMarketRepository) GetBySlug(ctx context.Context, slug string) (*entity.Market, error) {
	iter := r.client.Collection("markets").Where("slug", "==", slug).Limit(1).Documents(ctx)
	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, errors.NotFound("Market", nil)
	}
	if err != nil {
		return nil, errors.Internal("Failed to query market", err)
	}

	var market entity.Market
	if err := doc.DataTo(&market); err != nil {
		return nil, errors.Internal("Failed to parse market data", err)
	}
	return &market, nil
}

func (r *firestoreMarketRepository) List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.Market, int64, error) {
	query := r.client.Collection("markets").Query
	for key, value := range filter {
		query = query.Where(key, "==", value)
	}
	query = query.OrderBy("name", firestore.Asc)

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count markets", err)
	}
	total := int64(len(allDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var markets []*entity.Market
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate markets", err)
		}
		var market entity.Market
		if err := doc.DataTo(&market); err != nil {
			return nil, 0, errors.Internal("Failed to parse market data", err)
		}
		markets = append(markets, &market)
	}

	return markets, total, nil
}

func (r *firestoreMarketRepository) Update(ctx context.Context, market *entity.Market) error {
	market.UpdatedAt = time.Now()

	_, err := r.client.Collection("markets").Doc(market.ID).Set(ctx, market)
	if err != nil {
		return errors.Internal("Failed to update market", err)
	}
	return nil
}

func (r *firestoreMarketRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("markets").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete market", err)
	}
	return nil
}

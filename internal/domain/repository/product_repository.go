package repository

import (
	"context"

	"bazarly/internal/domain/entity"
)

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	List(ctx context.Context, filter map[string]interface{}, sort string, limit, offset int) ([]*entity.Product, int64, error)
	SearchByName(ctx context.Context, query string, filter map[string]interface{}, limit, offset int) ([]*entity.Product, int64, error)

	// Update writes the editable fields only. Engagement counters are
	// derived state and are never touched by this method.
	Update(ctx context.Context, product *entity.Product) error
	SoftDelete(ctx context.Context, id string) error

	// CountByParentField counts non-deleted products whose foreign-key
	// field equals parentID. Used by the referential guard.
	CountByParentField(ctx context.Context, field, parentID string) (int64, error)

	// IncrementViewCount adds one to the view counter and returns the new
	// total.
	IncrementViewCount(ctx context.Context, id string) (int64, error)

	// AdjustLikeCount applies delta to the like counter, clamping at
	// zero, and returns the new total.
	AdjustLikeCount(ctx context.Context, id string, delta int64) (int64, error)

	SetRatingStats(ctx context.Context, id string, averageRating float64, reviewCount int64) error

	// SetEngagementCounters writes all four counters in a single document
	// update. Used by batch recompute.
	SetEngagementCounters(ctx context.Context, id string, likeCount, viewCount int64, averageRating float64, reviewCount int64) error

	// ListIDs returns the IDs of all non-deleted products.
	ListIDs(ctx context.Context) ([]string, error)
}

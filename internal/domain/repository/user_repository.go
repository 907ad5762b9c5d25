package repository

import (
	"context"
	"time"

	"bazarly/internal/domain/entity"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByDeviceID(ctx context.Context, deviceID string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error

	// ToggleLike flips membership of productID in the user's liked set as
	// one atomic operation and returns the resulting state.
	ToggleLike(ctx context.Context, userID, productID string) (liked bool, err error)

	// UpsertView records a view: bumps the existing entry for productID
	// or appends a fresh one.
	UpsertView(ctx context.Context, userID, productID string, at time.Time) error

	// UpsertReview replaces the user's review for productID, preserving
	// the original CreatedAt when an entry already exists.
	UpsertReview(ctx context.Context, userID, productID string, rating int, comment string, at time.Time) error

	// Aggregation over all users' engagement records, used by the
	// reconciler and batch recompute.
	CountLikes(ctx context.Context, productID string) (int64, error)
	SumViews(ctx context.Context, productID string) (int64, error)
	RatingsFor(ctx context.Context, productID string) ([]int, error)
}

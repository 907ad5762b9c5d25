package repository

import (
	"context"

	"bazarly/internal/domain/entity"
)

type GiftRepository interface {
	Create(ctx context.Context, gift *entity.Gift) error
	GetByID(ctx context.Context, id string) (*entity.Gift, error)
	List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.Gift, int64, error)
	Update(ctx context.Context, gift *entity.Gift) error
	Delete(ctx context.Context, id string) error
}

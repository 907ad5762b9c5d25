package repository

import (
	"context"

	"bazarly/internal/domain/entity"
)

type AdRepository interface {
	Create(ctx context.Context, ad *entity.Ad) error
	GetByID(ctx context.Context, id string) (*entity.Ad, error)
	List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.Ad, int64, error)
	Update(ctx context.Context, ad *entity.Ad) error
	Delete(ctx context.Context, id string) error
}

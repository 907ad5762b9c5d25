package repository

import (
	"context"

	"bazarly/internal/domain/entity"
)

type StoreRepository interface {
	Create(ctx context.Context, store *entity.Store) error
	GetByID(ctx context.Context, id string) (*entity.Store, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Store, error)
	List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.Store, int64, error)
	Update(ctx context.Context, store *entity.Store) error
	Delete(ctx context.Context, id string) error
}

type BrandRepository interface {
	Create(ctx context.Context, brand *entity.Brand) error
	GetByID(ctx context.Context, id string) (*entity.Brand, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Brand, error)
	List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.Brand, int64, error)
	Update(ctx context.Context, brand *entity.Brand) error
	Delete(ctx context.Context, id string) error
}

type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	GetByID(ctx context.Context, id string) (*entity.Company, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Company, error)
	List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.Company, int64, error)
	Update(ctx context.Context, company *entity.Company) error
	Delete(ctx context.Context, id string) error
}

type MarketRepository interface {
	Create(ctx context.Context, market *entity.Market) error
	GetByID(ctx context.Context, id string) (*entity.Market, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Market, error)
	List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.Market, int64, error)
	Update(ctx context.Context, market *entity.Market) error
	Delete(ctx context.Context, id string) error
}

type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Category, error)
	List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.Category, int64, error)
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id string) error
}

package usecase

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"bazarly/internal/domain/entity"
)

// --- Mock repositories ---

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *mockUserRepository) GetByDeviceID(ctx context.Context, deviceID string) (*entity.User, error) {
	args := m.Called(ctx, deviceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *mockUserRepository) Update(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepository) ToggleLike(ctx context.Context, userID, productID string) (bool, error) {
	args := m.Called(ctx, userID, productID)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepository) UpsertView(ctx context.Context, userID, productID string, at time.Time) error {
	args := m.Called(ctx, userID, productID, at)
	return args.Error(0)
}

func (m *mockUserRepository) UpsertReview(ctx context.Context, userID, productID string, rating int, comment string, at time.Time) error {
	args := m.Called(ctx, userID, productID, rating, comment, at)
	return args.Error(0)
}

func (m *mockUserRepository) CountLikes(ctx context.Context, productID string) (int64, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockUserRepository) SumViews(ctx context.Context, productID string) (int64, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockUserRepository) RatingsFor(ctx context.Context, productID string) ([]int, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}

type mockProductRepository struct {
	mock.Mock
}

func (m *mockProductRepository) Create(ctx context.Context, product *entity.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *mockProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Product), args.Error(1)
}

func (m *mockProductRepository) List(ctx context.Context, filter map[string]interface{}, sort string, limit, offset int) ([]*entity.Product, int64, error) {
	args := m.Called(ctx, filter, sort, limit, offset)
	return args.Get(0).([]*entity.Product), args.Get(1).(int64), args.Error(2)
}

func (m *mockProductRepository) SearchByName(ctx context.Context, query string, filter map[string]interface{}, limit, offset int) ([]*entity.Product, int64, error) {
	args := m.Called(ctx, query, filter, limit, offset)
	return args.Get(0).([]*entity.Product), args.Get(1).(int64), args.Error(2)
}

func (m *mockProductRepository) Update(ctx context.Context, product *entity.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *mockProductRepository) SoftDelete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockProductRepository) CountByParentField(ctx context.Context, field, parentID string) (int64, error) {
	args := m.Called(ctx, field, parentID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockProductRepository) IncrementViewCount(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockProductRepository) AdjustLikeCount(ctx context.Context, id string, delta int64) (int64, error) {
	args := m.Called(ctx, id, delta)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockProductRepository) SetRatingStats(ctx context.Context, id string, averageRating float64, reviewCount int64) error {
	args := m.Called(ctx, id, averageRating, reviewCount)
	return args.Error(0)
}

func (m *mockProductRepository) SetEngagementCounters(ctx context.Context, id string, likeCount, viewCount int64, averageRating float64, reviewCount int64) error {
	args := m.Called(ctx, id, likeCount, viewCount, averageRating, reviewCount)
	return args.Error(0)
}

func (m *mockProductRepository) ListIDs(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type mockStoreRepository struct {
	mock.Mock
}

func (m *mockStoreRepository) Create(ctx context.Context, store *entity.Store) error {
	args := m.Called(ctx, store)
	return args.Error(0)
}

func (m *mockStoreRepository) GetByID(ctx context.Context, id string) (*entity.Store, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Store), args.Error(1)
}

func (m *mockStoreRepository) GetBySlug(ctx context.Context, slug string) (*entity.Store, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Store), args.Error(1)
}

func (m *mockStoreRepository) List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.Store, int64, error) {
	args := m.Called(ctx, filter, limit, offset)
	return args.Get(0).([]*entity.Store), args.Get(1).(int64), args.Error(2)
}

func (m *mockStoreRepository) Update(ctx context.Context, store *entity.Store) error {
	args := m.Called(ctx, store)
	return args.Error(0)
}

func (m *mockStoreRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockBrandRepository struct {
	mock.Mock
}

func (m *mockBrandRepository) Create(ctx context.Context, brand *entity.Brand) error {
	args := m.Called(ctx, brand)
	return args.Error(0)
}

func (m *mockBrandRepository) GetByID(ctx context.Context, id string) (*entity.Brand, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Brand), args.Error(1)
}

func (m *mockBrandRepository) GetBySlug(ctx context.Context, slug string) (*entity.Brand, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Brand), args.Error(1)
}

func (m *mockBrandRepository) List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.Brand, int64, error) {
	args := m.Called(ctx, filter, limit, offset)
	return args.Get(0).([]*entity.Brand), args.Get(1).(int64), args.Error(2)
}

func (m *mockBrandRepository) Update(ctx context.Context, brand *entity.Brand) error {
	args := m.Called(ctx, brand)
	return args.Error(0)
}

func (m *mockBrandRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockCompanyRepository struct {
	mock.Mock
}

func (m *mockCompanyRepository) Create(ctx context.Context, company *entity.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

func (m *mockCompanyRepository) GetByID(ctx context.Context, id string) (*entity.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Company), args.Error(1)
}

func (m *mockCompanyRepository) GetBySlug(ctx context.Context, slug string) (*entity.Company, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Company), args.Error(1)
}

func (m *mockCompanyRepository) List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.Company, int64, error) {
	args := m.Called(ctx, filter, limit, offset)
	return args.Get(0).([]*entity.Company), args.Get(1).(int64), args.Error(2)
}

func (m *mockCompanyRepository) Update(ctx context.Context, company *entity.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

func (m *mockCompanyRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockMarketRepository struct {
	mock.Mock
}

func (m *mockMarketRepository) Create(ctx context.Context, market *entity.Market) error {
	args := m.Called(ctx, market)
	return args.Error(0)
}

func (m *mockMarketRepository) GetByID(ctx context.Context, id string) (*entity.Market, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Market), args.Error(1)
}

func (m *mockMarketRepository) GetBySlug(ctx context.Context, slug string) (*entity.Market, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Market), args.Error(1)
}

func (m *mockMarketRepository) List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.Market, int64, error) {
	args := m.Called(ctx, filter, limit, offset)
	return args.Get(0).([]*entity.Market), args.Get(1).(int64), args.Error(2)
}

func (m *mockMarketRepository) Update(ctx context.Context, market *entity.Market) error {
	args := m.Called(ctx, market)
	return args.Error(0)
}

func (m *mockMarketRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockCategoryRepository struct {
	mock.Mock
}

func (m *mockCategoryRepository) Create(ctx context.Context, category *entity.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *mockCategoryRepository) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Category), args.Error(1)
}

func (m *mockCategoryRepository) GetBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Category), args.Error(1)
}

func (m *mockCategoryRepository) List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.Category, int64, error) {
	args := m.Called(ctx, filter, limit, offset)
	return args.Get(0).([]*entity.Category), args.Get(1).(int64), args.Error(2)
}

func (m *mockCategoryRepository) Update(ctx context.Context, category *entity.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *mockCategoryRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

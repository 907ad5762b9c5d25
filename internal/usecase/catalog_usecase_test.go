package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bazarly/internal/domain/entity"
	"bazarly/pkg/errors"
)

type catalogFixture struct {
	storeRepo    *mockStoreRepository
	brandRepo    *mockBrandRepository
	companyRepo  *mockCompanyRepository
	marketRepo   *mockMarketRepository
	categoryRepo *mockCategoryRepository
	productRepo  *mockProductRepository
	uc           *CatalogUseCase
}

func newCatalogFixture() *catalogFixture {
	f := &catalogFixture{
		storeRepo:    new(mockStoreRepository),
		brandRepo:    new(mockBrandRepository),
		companyRepo:  new(mockCompanyRepository),
		marketRepo:   new(mockMarketRepository),
		categoryRepo: new(mockCategoryRepository),
		productRepo:  new(mockProductRepository),
	}
	f.uc = NewCatalogUseCase(f.storeRepo, f.brandRepo, f.companyRepo, f.marketRepo, f.categoryRepo, f.productRepo)
	return f
}

func TestCanDeleteParentWithNoReferences(t *testing.T) {
	f := newCatalogFixture()
	ctx := context.Background()

	f.productRepo.On("CountByParentField", ctx, "brandId", "b1").Return(int64(0), nil)

	check, err := f.uc.CanDeleteParent(ctx, entity.KindBrand, "b1")
	require.NoError(t, err)
	assert.True(t, check.Allowed)
	assert.Equal(t, int64(0), check.BlockingCount)
}

func TestCanDeleteParentBlockedByProducts(t *testing.T) {
	f := newCatalogFixture()
	ctx := context.Background()

	f.productRepo.On("CountByParentField", ctx, "brandId", "b1").Return(int64(2), nil)

	check, err := f.uc.CanDeleteParent(ctx, entity.KindBrand, "b1")
	require.NoError(t, err)
	assert.False(t, check.Allowed)
	assert.Equal(t, int64(2), check.BlockingCount)
}

func TestCanDeleteParentRejectsUnknownKind(t *testing.T) {
	f := newCatalogFixture()

	_, err := f.uc.CanDeleteParent(context.Background(), entity.ParentKind("widgets"), "x1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	f.productRepo.AssertNotCalled(t, "CountByParentField", mock.Anything, mock.Anything, mock.Anything)
}

func TestCanDeleteParentRejectsEmptyID(t *testing.T) {
	f := newCatalogFixture()

	_, err := f.uc.CanDeleteParent(context.Background(), entity.KindStore, "   ")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestDeleteParentBlockedLeavesParentInPlace(t *testing.T) {
	f := newCatalogFixture()
	ctx := context.Background()

	f.productRepo.On("CountByParentField", ctx, "brandId", "b1").Return(int64(2), nil)

	err := f.uc.DeleteParent(ctx, entity.KindBrand, "b1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "PARENT_IN_USE"))

	appErr := err.(*errors.AppError)
	details := appErr.Details.(map[string]interface{})
	assert.Equal(t, int64(2), details["blocking_count"])

	f.brandRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeleteParentUnreferencedDeletes(t *testing.T) {
	f := newCatalogFixture()
	ctx := context.Background()

	f.productRepo.On("CountByParentField", ctx, "storeId", "s1").Return(int64(0), nil)
	f.storeRepo.On("GetByID", ctx, "s1").Return(&entity.Store{ID: "s1"}, nil)
	f.storeRepo.On("Delete", ctx, "s1").Return(nil)

	require.NoError(t, f.uc.DeleteParent(ctx, entity.KindStore, "s1"))
	f.storeRepo.AssertExpectations(t)
}

func TestDeleteParentMissingParent(t *testing.T) {
	f := newCatalogFixture()
	ctx := context.Background()

	f.productRepo.On("CountByParentField", ctx, "marketId", "m1").Return(int64(0), nil)
	f.marketRepo.On("GetByID", ctx, "m1").Return(nil, errors.NotFound("Market", nil))

	err := f.uc.DeleteParent(ctx, entity.KindMarket, "m1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "NOT_FOUND"))

	f.marketRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestGuardCoversEveryParentKind(t *testing.T) {
	cases := []struct {
		kind  entity.ParentKind
		field string
	}{
		{entity.KindStore, "storeId"},
		{entity.KindBrand, "brandId"},
		{entity.KindCompany, "companyId"},
		{entity.KindMarket, "marketId"},
		{entity.KindCategory, "categoryId"},
	}

	for _, tc := range cases {
		f := newCatalogFixture()
		ctx := context.Background()

		f.productRepo.On("CountByParentField", ctx, tc.field, "x1").Return(int64(1), nil)

		err := f.uc.DeleteParent(ctx, tc.kind, "x1")
		require.Error(t, err, "kind %s", tc.kind)
		assert.True(t, errors.Is(err, "PARENT_IN_USE"), "kind %s", tc.kind)
	}
}

func TestCreateStoreValidatesMarket(t *testing.T) {
	f := newCatalogFixture()
	ctx := context.Background()

	f.storeRepo.On("GetBySlug", ctx, "corner-shop").Return(nil, errors.NotFound("Store", nil))
	f.marketRepo.On("GetByID", ctx, "m1").Return(nil, errors.NotFound("Market", nil))

	_, err := f.uc.CreateStore(ctx, StoreInput{Name: "Corner Shop", MarketID: "m1", Status: "active"})
	require.Error(t, err)

	f.storeRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateStoreRejectsDuplicateSlug(t *testing.T) {
	f := newCatalogFixture()
	ctx := context.Background()

	f.storeRepo.On("GetBySlug", ctx, "corner-shop").Return(&entity.Store{ID: "existing", Slug: "corner-shop"}, nil)

	_, err := f.uc.CreateStore(ctx, StoreInput{Name: "Corner Shop", MarketID: "m1", Status: "active"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	f.storeRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateStoreSlugCheckErrorStopsCreate(t *testing.T) {
	f := newCatalogFixture()
	ctx := context.Background()

	f.storeRepo.On("GetBySlug", ctx, "corner-shop").Return(nil, errors.Internal("Failed to query store", nil))

	_, err := f.uc.CreateStore(ctx, StoreInput{Name: "Corner Shop", MarketID: "m1", Status: "active"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, "INTERNAL_ERROR"))
	f.storeRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateBrandValidatesCompany(t *testing.T) {
	f := newCatalogFixture()
	ctx := context.Background()

	f.brandRepo.On("GetBySlug", ctx, "acme").Return(nil, errors.NotFound("Brand", nil))
	f.companyRepo.On("GetByID", ctx, "c1").Return(nil, errors.NotFound("Company", nil))

	_, err := f.uc.CreateBrand(ctx, BrandInput{Name: "Acme", CompanyID: "c1", Status: "active"})
	require.Error(t, err)

	f.brandRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "corner-shop", slugify("  Corner Shop "))
	assert.Equal(t, "erbil-city-market", slugify("Erbil City Market"))
}

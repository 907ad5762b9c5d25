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

type productFixture struct {
	productRepo  *mockProductRepository
	storeRepo    *mockStoreRepository
	brandRepo    *mockBrandRepository
	categoryRepo *mockCategoryRepository
	uc           *ProductUseCase
}

func newProductFixture() *productFixture {
	f := &productFixture{
		productRepo:  new(mockProductRepository),
		storeRepo:    new(mockStoreRepository),
		brandRepo:    new(mockBrandRepository),
		categoryRepo: new(mockCategoryRepository),
	}
	f.uc = NewProductUseCase(f.productRepo, f.storeRepo, f.brandRepo, f.categoryRepo)
	return f
}

func validProductInput() CreateProductInput {
	return CreateProductInput{
		StoreID:    "s1",
		BrandID:    "b1",
		CategoryID: "c1",
		Name:       "Olive Oil 1L",
		Price:      9.5,
		Stock:      40,
		Status:     "active",
	}
}

func TestCreateProductDenormalizesParentIDs(t *testing.T) {
	f := newProductFixture()
	ctx := context.Background()

	f.storeRepo.On("GetByID", ctx, "s1").Return(&entity.Store{ID: "s1", MarketID: "m1"}, nil)
	f.brandRepo.On("GetByID", ctx, "b1").Return(&entity.Brand{ID: "b1", CompanyID: "co1"}, nil)
	f.categoryRepo.On("GetByID", ctx, "c1").Return(&entity.Category{ID: "c1"}, nil)
	f.productRepo.On("Create", ctx, mock.AnythingOfType("*entity.Product")).Return(nil)

	product, err := f.uc.CreateProduct(ctx, validProductInput(), nil)
	require.NoError(t, err)

	assert.Equal(t, "m1", product.MarketID)
	assert.Equal(t, "co1", product.CompanyID)
	assert.Equal(t, "olive-oil-1l", product.Slug)

	// Counters start at zero and belong to the engagement pipeline.
	assert.Zero(t, product.LikeCount)
	assert.Zero(t, product.ViewCount)
	assert.Zero(t, product.AverageRating)
	assert.Zero(t, product.ReviewCount)
}

func TestCreateProductRejectsUnknownStore(t *testing.T) {
	f := newProductFixture()
	ctx := context.Background()

	f.storeRepo.On("GetByID", ctx, "s1").Return(nil, errors.NotFound("Store", nil))

	_, err := f.uc.CreateProduct(ctx, validProductInput(), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	f.productRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateProductRejectsForeignCategoryType(t *testing.T) {
	f := newProductFixture()
	ctx := context.Background()

	f.storeRepo.On("GetByID", ctx, "s1").Return(&entity.Store{ID: "s1"}, nil)
	f.brandRepo.On("GetByID", ctx, "b1").Return(&entity.Brand{ID: "b1"}, nil)
	f.categoryRepo.On("GetByID", ctx, "c1").Return(&entity.Category{
		ID:    "c1",
		Types: []entity.CategoryType{{ID: "t1", Name: "Fresh"}},
	}, nil)

	input := validProductInput()
	input.CategoryTypeID = "t2"

	_, err := f.uc.CreateProduct(ctx, input, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestUpdateProductKeepsCounters(t *testing.T) {
	f := newProductFixture()
	ctx := context.Background()

	existing := &entity.Product{
		ID:            "p1",
		Name:          "Old Name",
		LikeCount:     12,
		ViewCount:     340,
		AverageRating: 4.2,
		ReviewCount:   9,
	}

	f.productRepo.On("GetByID", ctx, "p1").Return(existing, nil)
	f.storeRepo.On("GetByID", ctx, "s1").Return(&entity.Store{ID: "s1", MarketID: "m1"}, nil)
	f.brandRepo.On("GetByID", ctx, "b1").Return(&entity.Brand{ID: "b1", CompanyID: "co1"}, nil)
	f.categoryRepo.On("GetByID", ctx, "c1").Return(&entity.Category{ID: "c1"}, nil)
	f.productRepo.On("Update", ctx, mock.AnythingOfType("*entity.Product")).Return(nil)

	product, err := f.uc.UpdateProduct(ctx, "p1", validProductInput(), nil)
	require.NoError(t, err)

	assert.Equal(t, "Olive Oil 1L", product.Name)
	assert.Equal(t, int64(12), product.LikeCount)
	assert.Equal(t, int64(340), product.ViewCount)
	assert.Equal(t, 4.2, product.AverageRating)
	assert.Equal(t, int64(9), product.ReviewCount)
}

func TestDeleteProductSoftDeletes(t *testing.T) {
	f := newProductFixture()
	ctx := context.Background()

	f.productRepo.On("GetByID", ctx, "p1").Return(&entity.Product{ID: "p1"}, nil)
	f.productRepo.On("SoftDelete", ctx, "p1").Return(nil)

	require.NoError(t, f.uc.DeleteProduct(ctx, "p1"))
	f.productRepo.AssertExpectations(t)
}

func TestSearchProductsRequiresQuery(t *testing.T) {
	f := newProductFixture()

	_, _, err := f.uc.SearchProducts(context.Background(), "", ProductListFilter{}, 1, 20)
	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"bazarly/internal/domain/entity"
	"bazarly/internal/domain/repository"
	"bazarly/pkg/errors"
)

type ProductUseCase struct {
	productRepo  repository.ProductRepository
	storeRepo    repository.StoreRepository
	brandRepo    repository.BrandRepository
	categoryRepo repository.CategoryRepository
}

func NewProductUseCase(
	productRepo repository.ProductRepository,
	storeRepo repository.StoreRepository,
	brandRepo repository.BrandRepository,
	categoryRepo repository.CategoryRepository,
) *ProductUseCase {
	return &ProductUseCase{
		productRepo:  productRepo,
		storeRepo:    storeRepo,
		brandRepo:    brandRepo,
		categoryRepo: categoryRepo,
	}
}

type CreateProductInput struct {
	StoreID        string
	BrandID        string
	CategoryID     string
	CategoryTypeID string
	Name           string
	Description    string
	Price          float64
	Barcode        string
	Stock          int
	Status         string
	Featured       bool
}

type ProductImageInput struct {
	URL          string
	DisplayOrder int
}

type ProductListFilter struct {
	StoreID    string
	BrandID    string
	CompanyID  string
	MarketID   string
	CategoryID string
	Status     string
	Featured   *bool
}

func (uc *ProductUseCase) CreateProduct(ctx context.Context, input CreateProductInput, images []ProductImageInput) (*entity.Product, error) {
	store, err := uc.storeRepo.GetByID(ctx, input.StoreID)
	if err != nil {
		return nil, errors.BadRequest("Invalid store", err)
	}

	brand, err := uc.brandRepo.GetByID(ctx, input.BrandID)
	if err != nil {
		return nil, errors.BadRequest("Invalid brand", err)
	}

	category, err := uc.categoryRepo.GetByID(ctx, input.CategoryID)
	if err != nil {
		return nil, errors.BadRequest("Invalid category", err)
	}

	if input.CategoryTypeID != "" && !categoryHasType(category, input.CategoryTypeID) {
		return nil, errors.BadRequest("Category type does not belong to category", nil)
	}

	productImages := make([]entity.ProductImage, len(images))
	for i, img := range images {
		productImages[i] = entity.ProductImage{
			ID:           uuid.NewString(),
			URL:          img.URL,
			DisplayOrder: img.DisplayOrder,
		}
	}

	product := &entity.Product{
		StoreID:        store.ID,
		BrandID:        brand.ID,
		CategoryID:     category.ID,
		CategoryTypeID: input.CategoryTypeID,
		// Denormalized from the referenced store and brand so the
		// referential guard can count per parent kind with one filter.
		MarketID:    store.MarketID,
		CompanyID:   brand.CompanyID,
		Name:        input.Name,
		Slug:        slugify(input.Name),
		Description: input.Description,
		Price:       input.Price,
		Barcode:     input.Barcode,
		Images:      productImages,
		Status:      input.Status,
		Stock:       input.Stock,
		Featured:    input.Featured,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (uc *ProductUseCase) GetProductByID(ctx context.Context, id string) (*entity.Product, error) {
	return uc.productRepo.GetByID(ctx, id)
}

func (uc *ProductUseCase) ListProducts(ctx context.Context, filter ProductListFilter, sort string, page, limit int) ([]*entity.Product, int64, error) {
	query := make(map[string]interface{})
	if filter.StoreID != "" {
		query["storeId"] = filter.StoreID
	}
	if filter.BrandID != "" {
		query["brandId"] = filter.BrandID
	}
	if filter.CompanyID != "" {
		query["companyId"] = filter.CompanyID
	}
	if filter.MarketID != "" {
		query["marketId"] = filter.MarketID
	}
	if filter.CategoryID != "" {
		query["categoryId"] = filter.CategoryID
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Featured != nil {
		query["featured"] = *filter.Featured
	}

	offset := (page - 1) * limit
	if offset < 0 {
		offset = 0
	}

	return uc.productRepo.List(ctx, query, sort, limit, offset)
}

func (uc *ProductUseCase) SearchProducts(ctx context.Context, query string, filter ProductListFilter, page, limit int) ([]*entity.Product, int64, error) {
	if query == "" {
		return nil, 0, errors.BadRequest("Search query is required", nil)
	}

	fields := make(map[string]interface{})
	if filter.StoreID != "" {
		fields["storeId"] = filter.StoreID
	}
	if filter.CategoryID != "" {
		fields["categoryId"] = filter.CategoryID
	}

	offset := (page - 1) * limit
	if offset < 0 {
		offset = 0
	}

	return uc.productRepo.SearchByName(ctx, query, fields, limit, offset)
}

// UpdateProduct edits the descriptive fields. Engagement counters are a
// derived projection and survive any administrative edit untouched.
func (uc *ProductUseCase) UpdateProduct(ctx context.Context, id string, input CreateProductInput, images []ProductImageInput) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	store, err := uc.storeRepo.GetByID(ctx, input.StoreID)
	if err != nil {
		return nil, errors.BadRequest("Invalid store", err)
	}

	brand, err := uc.brandRepo.GetByID(ctx, input.BrandID)
	if err != nil {
		return nil, errors.BadRequest("Invalid brand", err)
	}

	category, err := uc.categoryRepo.GetByID(ctx, input.CategoryID)
	if err != nil {
		return nil, errors.BadRequest("Invalid category", err)
	}

	if input.CategoryTypeID != "" && !categoryHasType(category, input.CategoryTypeID) {
		return nil, errors.BadRequest("Category type does not belong to category", nil)
	}

	if images != nil {
		productImages := make([]entity.ProductImage, len(images))
		for i, img := range images {
			productImages[i] = entity.ProductImage{
				ID:           uuid.NewString(),
				URL:          img.URL,
				DisplayOrder: img.DisplayOrder,
			}
		}
		product.Images = productImages
	}

	product.StoreID = store.ID
	product.BrandID = brand.ID
	product.CategoryID = category.ID
	product.CategoryTypeID = input.CategoryTypeID
	product.MarketID = store.MarketID
	product.CompanyID = brand.CompanyID
	product.Name = input.Name
	product.Slug = slugify(input.Name)
	product.Description = input.Description
	product.Price = input.Price
	product.Barcode = input.Barcode
	product.Status = input.Status
	product.Stock = input.Stock
	product.Featured = input.Featured
	product.UpdatedAt = time.Now()

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (uc *ProductUseCase) DeleteProduct(ctx context.Context, id string) error {
	if _, err := uc.productRepo.GetByID(ctx, id); err != nil {
		return err
	}

	return uc.productRepo.SoftDelete(ctx, id)
}

func categoryHasType(category *entity.Category, typeID string) bool {
	for _, t := range category.Types {
		if t.ID == typeID {
			return true
		}
	}
	return false
}

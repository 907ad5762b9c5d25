package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"bazarly/internal/domain/entity"
	"bazarly/internal/domain/repository"
	"bazarly/pkg/errors"
)

// CatalogUseCase manages the parent entities products reference (stores,
// brands, companies, markets, categories) and guards their deletion: a
// parent still referenced by at least one product must not be removed,
// since the store has no native foreign-key constraints.
type CatalogUseCase struct {
	storeRepo    repository.StoreRepository
	brandRepo    repository.BrandRepository
	companyRepo  repository.CompanyRepository
	marketRepo   repository.MarketRepository
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
}

func NewCatalogUseCase(
	storeRepo repository.StoreRepository,
	brandRepo repository.BrandRepository,
	companyRepo repository.CompanyRepository,
	marketRepo repository.MarketRepository,
	categoryRepo repository.CategoryRepository,
	productRepo repository.ProductRepository,
) *CatalogUseCase {
	return &CatalogUseCase{
		storeRepo:    storeRepo,
		brandRepo:    brandRepo,
		companyRepo:  companyRepo,
		marketRepo:   marketRepo,
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
	}
}

func slugify(name string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", "-"))
}

// DeleteCheck is the referential guard verdict for one parent.
type DeleteCheck struct {
	Allowed       bool  `json:"allowed"`
	BlockingCount int64 `json:"blocking_count"`
}

// CanDeleteParent counts products referencing the parent. Read-only; an
// absent parent is not an error here, the guard only cares about
// children.
func (uc *CatalogUseCase) CanDeleteParent(ctx context.Context, kind entity.ParentKind, parentID string) (*DeleteCheck, error) {
	if !kind.Valid() {
		return nil, errors.BadRequest("Unknown catalog entity kind", nil)
	}
	if strings.TrimSpace(parentID) == "" {
		return nil, errors.BadRequest("Invalid identifier", nil)
	}

	count, err := uc.productRepo.CountByParentField(ctx, kind.ProductField(), parentID)
	if err != nil {
		return nil, err
	}

	return &DeleteCheck{Allowed: count == 0, BlockingCount: count}, nil
}

// DeleteParent runs the guard and then deletes. The check and the delete
// are two store operations; a product created in between can slip
// through. That window is accepted, not closed.
func (uc *CatalogUseCase) DeleteParent(ctx context.Context, kind entity.ParentKind, parentID string) error {
	check, err := uc.CanDeleteParent(ctx, kind, parentID)
	if err != nil {
		return err
	}
	if !check.Allowed {
		return errors.ParentInUse(kindLabel(kind), check.BlockingCount)
	}

	switch kind {
	case entity.KindStore:
		if _, err := uc.storeRepo.GetByID(ctx, parentID); err != nil {
			return err
		}
		return uc.storeRepo.Delete(ctx, parentID)
	case entity.KindBrand:
		if _, err := uc.brandRepo.GetByID(ctx, parentID); err != nil {
			return err
		}
		return uc.brandRepo.Delete(ctx, parentID)
	case entity.KindCompany:
		if _, err := uc.companyRepo.GetByID(ctx, parentID); err != nil {
			return err
		}
		return uc.companyRepo.Delete(ctx, parentID)
	case entity.KindMarket:
		if _, err := uc.marketRepo.GetByID(ctx, parentID); err != nil {
			return err
		}
		return uc.marketRepo.Delete(ctx, parentID)
	case entity.KindCategory:
		if _, err := uc.categoryRepo.GetByID(ctx, parentID); err != nil {
			return err
		}
		return uc.categoryRepo.Delete(ctx, parentID)
	}

	return errors.BadRequest("Unknown catalog entity kind", nil)
}

func kindLabel(kind entity.ParentKind) string {
	switch kind {
	case entity.KindStore:
		return "Store"
	case entity.KindBrand:
		return "Brand"
	case entity.KindCompany:
		return "Company"
	case entity.KindMarket:
		return "Market"
	case entity.KindCategory:
		return "Category"
	}
	return "Entity"
}

// --- Stores ---

type StoreInput struct {
	Name        string
	Description string
	Logo        string
	Banner      string
	Phone       string
	Address     string
	MarketID    string
	Status      string
}

func (uc *CatalogUseCase) CreateStore(ctx context.Context, input StoreInput) (*entity.Store, error) {
	slug := slugify(input.Name)

	existing, err := uc.storeRepo.GetBySlug(ctx, slug)
	if err != nil && !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}
	if existing != nil {
		return nil, errors.BadRequest("Store with this name already exists", nil)
	}

	if input.MarketID != "" {
		if _, err := uc.marketRepo.GetByID(ctx, input.MarketID); err != nil {
			return nil, errors.BadRequest("Invalid market", err)
		}
	}

	store := &entity.Store{
		Name:        input.Name,
		Slug:        slug,
		Description: input.Description,
		Logo:        input.Logo,
		Banner:      input.Banner,
		Phone:       input.Phone,
		Address:     input.Address,
		MarketID:    input.MarketID,
		Status:      input.Status,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := uc.storeRepo.Create(ctx, store); err != nil {
		return nil, err
	}

	return store, nil
}

func (uc *CatalogUseCase) GetStoreByID(ctx context.Context, id string) (*entity.Store, error) {
	return uc.storeRepo.GetByID(ctx, id)
}

func (uc *CatalogUseCase) GetStoreBySlug(ctx context.Context, slug string) (*entity.Store, error) {
	return uc.storeRepo.GetBySlug(ctx, slug)
}

func (uc *CatalogUseCase) ListStores(ctx context.Context, status, marketID string, limit, offset int) ([]*entity.Store, int64, error) {
	filter := make(map[string]interface{})
	if status != "" {
		filter["status"] = status
	}
	if marketID != "" {
		filter["marketId"] = marketID
	}
	return uc.storeRepo.List(ctx, filter, limit, offset)
}

func (uc *CatalogUseCase) UpdateStore(ctx context.Context, id string, input StoreInput) (*entity.Store, error) {
	store, err := uc.storeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.MarketID != "" && input.MarketID != store.MarketID {
		if _, err := uc.marketRepo.GetByID(ctx, input.MarketID); err != nil {
			return nil, errors.BadRequest("Invalid market", err)
		}
	}

	store.Name = input.Name
	store.Slug = slugify(input.Name)
	store.Description = input.Description
	store.Logo = input.Logo
	store.Banner = input.Banner
	store.Phone = input.Phone
	store.Address = input.Address
	store.MarketID = input.MarketID
	store.Status = input.Status
	store.UpdatedAt = time.Now()

	if err := uc.storeRepo.Update(ctx, store); err != nil {
		return nil, err
	}

	return store, nil
}

func (uc *CatalogUseCase) DeleteStore(ctx context.Context, id string) error {
	return uc.DeleteParent(ctx, entity.KindStore, id)
}

// --- Brands ---

type BrandInput struct {
	Name      string
	Logo      string
	CompanyID string
	Status    string
}

func (uc *CatalogUseCase) CreateBrand(ctx context.Context, input BrandInput) (*entity.Brand, error) {
	slug := slugify(input.Name)

	existing, err := uc.brandRepo.GetBySlug(ctx, slug)
	if err != nil && !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}
	if existing != nil {
		return nil, errors.BadRequest("Brand with this name already exists", nil)
	}

	if input.CompanyID != "" {
		if _, err := uc.companyRepo.GetByID(ctx, input.CompanyID); err != nil {
			return nil, errors.BadRequest("Invalid company", err)
		}
	}

	brand := &entity.Brand{
		Name:      input.Name,
		Slug:      slug,
		Logo:      input.Logo,
		CompanyID: input.CompanyID,
		Status:    input.Status,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := uc.brandRepo.Create(ctx, brand); err != nil {
		return nil, err
	}

	return brand, nil
}

func (uc *CatalogUseCase) GetBrandByID(ctx context.Context, id string) (*entity.Brand, error) {
	return uc.brandRepo.GetByID(ctx, id)
}

func (uc *CatalogUseCase) ListBrands(ctx context.Context, status, companyID string, limit, offset int) ([]*entity.Brand, int64, error) {
	filter := make(map[string]interface{})
	if status != "" {
		filter["status"] = status
	}
	if companyID != "" {
		filter["companyId"] = companyID
	}
	return uc.brandRepo.List(ctx, filter, limit, offset)
}

func (uc *CatalogUseCase) UpdateBrand(ctx context.Context, id string, input BrandInput) (*entity.Brand, error) {
	brand, err := uc.brandRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.CompanyID != "" && input.CompanyID != brand.CompanyID {
		if _, err := uc.companyRepo.GetByID(ctx, input.CompanyID); err != nil {
			return nil, errors.BadRequest("Invalid company", err)
		}
	}

	brand.Name = input.Name
	brand.Slug = slugify(input.Name)
	brand.Logo = input.Logo
	brand.CompanyID = input.CompanyID
	brand.Status = input.Status
	brand.UpdatedAt = time.Now()

	if err := uc.brandRepo.Update(ctx, brand); err != nil {
		return nil, err
	}

	return brand, nil
}

func (uc *CatalogUseCase) DeleteBrand(ctx context.Context, id string) error {
	return uc.DeleteParent(ctx, entity.KindBrand, id)
}

// --- Companies ---

type CompanyInput struct {
	Name    string
	Logo    string
	Country string
	Status  string
}

func (uc *CatalogUseCase) CreateCompany(ctx context.Context, input CompanyInput) (*entity.Company, error) {
	slug := slugify(input.Name)

	existing, err := uc.companyRepo.GetBySlug(ctx, slug)
	if err != nil && !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}
	if existing != nil {
		return nil, errors.BadRequest("Company with this name already exists", nil)
	}

	company := &entity.Company{
		Name:      input.Name,
		Slug:      slug,
		Logo:      input.Logo,
		Country:   input.Country,
		Status:    input.Status,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := uc.companyRepo.Create(ctx, company); err != nil {
		return nil, err
	}

	return company, nil
}

func (uc *CatalogUseCase) GetCompanyByID(ctx context.Context, id string) (*entity.Company, error) {
	return uc.companyRepo.GetByID(ctx, id)
}

func (uc *CatalogUseCase) ListCompanies(ctx context.Context, status string, limit, offset int) ([]*entity.Company, int64, error) {
	filter := make(map[string]interface{})
	if status != "" {
		filter["status"] = status
	}
	return uc.companyRepo.List(ctx, filter, limit, offset)
}

func (uc *CatalogUseCase) UpdateCompany(ctx context.Context, id string, input CompanyInput) (*entity.Company, error) {
	company, err := uc.companyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	company.Name = input.Name
	company.Slug = slugify(input.Name)
	company.Logo = input.Logo
	company.Country = input.Country
	company.Status = input.Status
	company.UpdatedAt = time.Now()

	if err := uc.companyRepo.Update(ctx, company); err != nil {
		return nil, err
	}

	return company, nil
}

func (uc *CatalogUseCase) DeleteCompany(ctx context.Context, id string) error {
	return uc.DeleteParent(ctx, entity.KindCompany, id)
}

// --- Markets ---

type MarketInput struct {
	Name    string
	City    string
	Address string
	Status  string
}

func (uc *CatalogUseCase) CreateMarket(ctx context.Context, input MarketInput) (*entity.Market, error) {
	slug := slugify(input.Name)

	existing, err := uc.marketRepo.GetBySlug(ctx, slug)
	if err != nil && !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}
	if existing != nil {
		return nil, errors.BadRequest("Market with this name already exists", nil)
	}

	market := &entity.Market{
		Name:      input.Name,
		Slug:      slug,
		City:      input.City,
		Address:   input.Address,
		Status:    input.Status,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := uc.marketRepo.Create(ctx, market); err != nil {
		return nil, err
	}

	return market, nil
}

func (uc *CatalogUseCase) GetMarketByID(ctx context.Context, id string) (*entity.Market, error) {
	return uc.marketRepo.GetByID(ctx, id)
}

func (uc *CatalogUseCase) ListMarkets(ctx context.Context, status string, limit, offset int) ([]*entity.Market, int64, error) {
	filter := make(map[string]interface{})
	if status != "" {
		filter["status"] = status
	}
	return uc.marketRepo.List(ctx, filter, limit, offset)
}

func (uc *CatalogUseCase) UpdateMarket(ctx context.Context, id string, input MarketInput) (*entity.Market, error) {
	market, err := uc.marketRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	market.Name = input.Name
	market.Slug = slugify(input.Name)
	market.City = input.City
	market.Address = input.Address
	market.Status = input.Status
	market.UpdatedAt = time.Now()

	if err := uc.marketRepo.Update(ctx, market); err != nil {
		return nil, err
	}

	return market, nil
}

func (uc *CatalogUseCase) DeleteMarket(ctx context.Context, id string) error {
	return uc.DeleteParent(ctx, entity.KindMarket, id)
}

// --- Categories ---

type CategoryTypeInput struct {
	ID     string
	Name   string
	NameKu string
	NameAr string
	Icon   string
}

type CategoryInput struct {
	Name   string
	NameKu string
	NameAr string
	Icon   string
	Types  []CategoryTypeInput
	Status string
}

func (uc *CatalogUseCase) CreateCategory(ctx context.Context, input CategoryInput) (*entity.Category, error) {
	slug := slugify(input.Name)

	existing, err := uc.categoryRepo.GetBySlug(ctx, slug)
	if err != nil && !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}
	if existing != nil {
		return nil, errors.BadRequest("Category with this name already exists", nil)
	}

	category := &entity.Category{
		Name:      input.Name,
		NameKu:    input.NameKu,
		NameAr:    input.NameAr,
		Slug:      slug,
		Icon:      input.Icon,
		Types:     convertCategoryTypes(input.Types),
		Status:    input.Status,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

func (uc *CatalogUseCase) GetCategoryByID(ctx context.Context, id string) (*entity.Category, error) {
	return uc.categoryRepo.GetByID(ctx, id)
}

func (uc *CatalogUseCase) GetCategoryBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	return uc.categoryRepo.GetBySlug(ctx, slug)
}

func (uc *CatalogUseCase) ListCategories(ctx context.Context, status string, limit, offset int) ([]*entity.Category, int64, error) {
	filter := make(map[string]interface{})
	if status == "" {
		status = "active"
	}
	filter["status"] = status
	return uc.categoryRepo.List(ctx, filter, limit, offset)
}

func (uc *CatalogUseCase) UpdateCategory(ctx context.Context, id string, input CategoryInput) (*entity.Category, error) {
	category, err := uc.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	category.Name = input.Name
	category.NameKu = input.NameKu
	category.NameAr = input.NameAr
	category.Slug = slugify(input.Name)
	category.Icon = input.Icon
	category.Types = convertCategoryTypes(input.Types)
	category.Status = input.Status
	category.UpdatedAt = time.Now()

	if err := uc.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

func (uc *CatalogUseCase) DeleteCategory(ctx context.Context, id string) error {
	return uc.DeleteParent(ctx, entity.KindCategory, id)
}

func convertCategoryTypes(inputs []CategoryTypeInput) []entity.CategoryType {
	types := make([]entity.CategoryType, len(inputs))
	for i, t := range inputs {
		id := t.ID
		if id == "" {
			id = uuid.NewString()
		}
		types[i] = entity.CategoryType{
			ID:     id,
			Name:   t.Name,
			NameKu: t.NameKu,
			NameAr: t.NameAr,
			Icon:   t.Icon,
		}
	}
	return types
}

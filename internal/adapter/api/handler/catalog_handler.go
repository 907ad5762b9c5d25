package handler

import (
	"bazarly/internal/domain/entity"
	"bazarly/internal/usecase"
	"bazarly/pkg/response"
	"bazarly/pkg/utils"

	"github.com/labstack/echo/v4"
)

// CatalogHandler serves the five parent catalog entities and the
// deletion guard endpoints that protect them.
type CatalogHandler struct {
	catalogUseCase *usecase.CatalogUseCase
}

func NewCatalogHandler(catalogUseCase *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{
		catalogUseCase: catalogUseCase,
	}
}

// --- Deletion guard ---

// CheckParentUsage reports whether a parent entity can be deleted and
// how many products currently reference it.
func (h *CatalogHandler) CheckParentUsage(c echo.Context) error {
	kind := entity.ParentKind(c.Param("kind"))
	id := c.Param("id")

	check, err := h.catalogUseCase.CanDeleteParent(c.Request().Context(), kind, id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, check)
}

// DeleteParent deletes a parent entity of any kind, refusing when
// products still reference it.
func (h *CatalogHandler) DeleteParent(c echo.Context) error {
	kind := entity.ParentKind(c.Param("kind"))
	id := c.Param("id")

	if err := h.catalogUseCase.DeleteParent(c.Request().Context(), kind, id); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Deleted successfully",
	})
}

// --- Stores ---

type storeRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Logo        string `json:"logo" validate:"omitempty,url"`
	Banner      string `json:"banner" validate:"omitempty,url"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	MarketID    string `json:"market_id" validate:"required"`
	Status      string `json:"status" validate:"required,oneof=active inactive"`
}

func (r storeRequest) toInput() usecase.StoreInput {
	return usecase.StoreInput{
		Name:        r.Name,
		Description: r.Description,
		Logo:        r.Logo,
		Banner:      r.Banner,
		Phone:       r.Phone,
		Address:     r.Address,
		MarketID:    r.MarketID,
		Status:      r.Status,
	}
}

func (h *CatalogHandler) CreateStore(c echo.Context) error {
	var req storeRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	store, err := h.catalogUseCase.CreateStore(c.Request().Context(), req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, store)
}

func (h *CatalogHandler) GetStore(c echo.Context) error {
	store, err := h.catalogUseCase.GetStoreByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, store)
}

func (h *CatalogHandler) GetStoreBySlug(c echo.Context) error {
	store, err := h.catalogUseCase.GetStoreBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, store)
}

func (h *CatalogHandler) ListStores(c echo.Context) error {
	status := c.QueryParam("status")
	marketID := c.QueryParam("market_id")
	pagination := utils.GetPaginationParams(c)

	stores, total, err := h.catalogUseCase.ListStores(
		c.Request().Context(),
		status,
		marketID,
		pagination.PageSize,
		pagination.Offset,
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, stores, total, pagination.Page, pagination.PageSize)
}

func (h *CatalogHandler) UpdateStore(c echo.Context) error {
	var req storeRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	store, err := h.catalogUseCase.UpdateStore(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, store)
}

func (h *CatalogHandler) DeleteStore(c echo.Context) error {
	if err := h.catalogUseCase.DeleteStore(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Store deleted successfully",
	})
}

// --- Brands ---

type brandRequest struct {
	Name      string `json:"name" validate:"required"`
	Logo      string `json:"logo" validate:"omitempty,url"`
	CompanyID string `json:"company_id" validate:"required"`
	Status    string `json:"status" validate:"required,oneof=active inactive"`
}

func (h *CatalogHandler) CreateBrand(c echo.Context) error {
	var req brandRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	brand, err := h.catalogUseCase.CreateBrand(c.Request().Context(), usecase.BrandInput{
		Name:      req.Name,
		Logo:      req.Logo,
		CompanyID: req.CompanyID,
		Status:    req.Status,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, brand)
}

func (h *CatalogHandler) GetBrand(c echo.Context) error {
	brand, err := h.catalogUseCase.GetBrandByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, brand)
}

func (h *CatalogHandler) ListBrands(c echo.Context) error {
	status := c.QueryParam("status")
	companyID := c.QueryParam("company_id")
	pagination := utils.GetPaginationParams(c)

	brands, total, err := h.catalogUseCase.ListBrands(
		c.Request().Context(),
		status,
		companyID,
		pagination.PageSize,
		pagination.Offset,
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, brands, total, pagination.Page, pagination.PageSize)
}

func (h *CatalogHandler) UpdateBrand(c echo.Context) error {
	var req brandRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	brand, err := h.catalogUseCase.UpdateBrand(c.Request().Context(), c.Param("id"), usecase.BrandInput{
		Name:      req.Name,
		Logo:      req.Logo,
		CompanyID: req.CompanyID,
		Status:    req.Status,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, brand)
}

func (h *CatalogHandler) DeleteBrand(c echo.Context) error {
	if err := h.catalogUseCase.DeleteBrand(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Brand deleted successfully",
	})
}

// --- Companies ---

type companyRequest struct {
	Name    string `json:"name" validate:"required"`
	Logo    string `json:"logo" validate:"omitempty,url"`
	Country string `json:"country"`
	Status  string `json:"status" validate:"required,oneof=active inactive"`
}

func (h *CatalogHandler) CreateCompany(c echo.Context) error {
	var req companyRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	company, err := h.catalogUseCase.CreateCompany(c.Request().Context(), usecase.CompanyInput{
		Name:    req.Name,
		Logo:    req.Logo,
		Country: req.Country,
		Status:  req.Status,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, company)
}

func (h *CatalogHandler) GetCompany(c echo.Context) error {
	company, err := h.catalogUseCase.GetCompanyByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, company)
}

func (h *CatalogHandler) ListCompanies(c echo.Context) error {
	status := c.QueryParam("status")
	pagination := utils.GetPaginationParams(c)

	companies, total, err := h.catalogUseCase.ListCompanies(
		c.Request().Context(),
		status,
		pagination.PageSize,
		pagination.Offset,
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, companies, total, pagination.Page, pagination.PageSize)
}

func (h *CatalogHandler) UpdateCompany(c echo.Context) error {
	var req companyRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	company, err := h.catalogUseCase.UpdateCompany(c.Request().Context(), c.Param("id"), usecase.CompanyInput{
		Name:    req.Name,
		Logo:    req.Logo,
		Country: req.Country,
		Status:  req.Status,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, company)
}

func (h *CatalogHandler) DeleteCompany(c echo.Context) error {
	if err := h.catalogUseCase.DeleteCompany(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Company deleted successfully",
	})
}

// --- Markets ---

type marketRequest struct {
	Name    string `json:"name" validate:"required"`
	City    string `json:"city"`
	Address string `json:"address"`
	Status  string `json:"status" validate:"required,oneof=active inactive"`
}

func (h *CatalogHandler) CreateMarket(c echo.Context) error {
	var req marketRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	market, err := h.catalogUseCase.CreateMarket(c.Request().Context(), usecase.MarketInput{
		Name:    req.Name,
		City:    req.City,
		Address: req.Address,
		Status:  req.Status,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, market)
}

func (h *CatalogHandler) GetMarket(c echo.Context) error {
	market, err := h.catalogUseCase.GetMarketByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, market)
}

func (h *CatalogHandler) ListMarkets(c echo.Context) error {
	status := c.QueryParam("status")
	pagination := utils.GetPaginationParams(c)

	markets, total, err := h.catalogUseCase.ListMarkets(
		c.Request().Context(),
		status,
		pagination.PageSize,
		pagination.Offset,
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, markets, total, pagination.Page, pagination.PageSize)
}

func (h *CatalogHandler) UpdateMarket(c echo.Context) error {
	var req marketRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	market, err := h.catalogUseCase.UpdateMarket(c.Request().Context(), c.Param("id"), usecase.MarketInput{
		Name:    req.Name,
		City:    req.City,
		Address: req.Address,
		Status:  req.Status,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, market)
}

func (h *CatalogHandler) DeleteMarket(c echo.Context) error {
	if err := h.catalogUseCase.DeleteMarket(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Market deleted successfully",
	})
}

// --- Categories ---

type categoryTypeRequest struct {
	ID     string `json:"id"`
	Name   string `json:"name" validate:"required"`
	NameKu string `json:"name_ku"`
	NameAr string `json:"name_ar"`
	Icon   string `json:"icon" validate:"omitempty,url"`
}

type categoryRequest struct {
	Name   string                `json:"name" validate:"required"`
	NameKu string                `json:"name_ku"`
	NameAr string                `json:"name_ar"`
	Icon   string                `json:"icon" validate:"omitempty,url"`
	Types  []categoryTypeRequest `json:"types" validate:"dive"`
	Status string                `json:"status" validate:"required,oneof=active inactive"`
}

func (r categoryRequest) toInput() usecase.CategoryInput {
	types := make([]usecase.CategoryTypeInput, len(r.Types))
	for i, t := range r.Types {
		types[i] = usecase.CategoryTypeInput{
			ID:     t.ID,
			Name:   t.Name,
			NameKu: t.NameKu,
			NameAr: t.NameAr,
			Icon:   t.Icon,
		}
	}

	return usecase.CategoryInput{
		Name:   r.Name,
		NameKu: r.NameKu,
		NameAr: r.NameAr,
		Icon:   r.Icon,
		Types:  types,
		Status: r.Status,
	}
}

func (h *CatalogHandler) CreateCategory(c echo.Context) error {
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	category, err := h.catalogUseCase.CreateCategory(c.Request().Context(), req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, category)
}

func (h *CatalogHandler) GetCategory(c echo.Context) error {
	category, err := h.catalogUseCase.GetCategoryByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, category)
}

func (h *CatalogHandler) GetCategoryBySlug(c echo.Context) error {
	category, err := h.catalogUseCase.GetCategoryBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, category)
}

func (h *CatalogHandler) ListCategories(c echo.Context) error {
	status := c.QueryParam("status")
	pagination := utils.GetPaginationParams(c)

	categories, total, err := h.catalogUseCase.ListCategories(
		c.Request().Context(),
		status,
		pagination.PageSize,
		pagination.Offset,
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, categories, total, pagination.Page, pagination.PageSize)
}

func (h *CatalogHandler) UpdateCategory(c echo.Context) error {
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	category, err := h.catalogUseCase.UpdateCategory(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, category)
}

func (h *CatalogHandler) DeleteCategory(c echo.Context) error {
	if err := h.catalogUseCase.DeleteCategory(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Category deleted successfully",
	})
}

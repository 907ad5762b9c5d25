package handler

import (
	"strconv"

	"bazarly/internal/usecase"
	"bazarly/pkg/errors"
	"bazarly/pkg/response"
	"bazarly/pkg/utils"

	"github.com/labstack/echo/v4"
)

type ProductHandler struct {
	productUseCase *usecase.ProductUseCase
}

func NewProductHandler(productUseCase *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{
		productUseCase: productUseCase,
	}
}

type productImageRequest struct {
	URL          string `json:"url" validate:"required,url"`
	DisplayOrder int    `json:"display_order"`
}

type productRequest struct {
	StoreID        string                `json:"store_id" validate:"required"`
	BrandID        string                `json:"brand_id" validate:"required"`
	CategoryID     string                `json:"category_id" validate:"required"`
	CategoryTypeID string                `json:"category_type_id"`
	Name           string                `json:"name" validate:"required"`
	Description    string                `json:"description"`
	Price          float64               `json:"price" validate:"required,gt=0"`
	Barcode        string                `json:"barcode"`
	Stock          int                   `json:"stock" validate:"gte=0"`
	Status         string                `json:"status" validate:"required,oneof=draft active inactive"`
	Featured       bool                  `json:"featured"`
	Images         []productImageRequest `json:"images" validate:"dive"`
}

func (r productRequest) toInput() (usecase.CreateProductInput, []usecase.ProductImageInput) {
	images := make([]usecase.ProductImageInput, len(r.Images))
	for i, img := range r.Images {
		images[i] = usecase.ProductImageInput{
			URL:          img.URL,
			DisplayOrder: img.DisplayOrder,
		}
	}

	return usecase.CreateProductInput{
		StoreID:        r.StoreID,
		BrandID:        r.BrandID,
		CategoryID:     r.CategoryID,
		CategoryTypeID: r.CategoryTypeID,
		Name:           r.Name,
		Description:    r.Description,
		Price:          r.Price,
		Barcode:        r.Barcode,
		Stock:          r.Stock,
		Status:         r.Status,
		Featured:       r.Featured,
	}, images
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	input, images := req.toInput()

	product, err := h.productUseCase.CreateProduct(c.Request().Context(), input, images)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, product)
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	product, err := h.productUseCase.GetProductByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}

func filterFromQuery(c echo.Context) usecase.ProductListFilter {
	filter := usecase.ProductListFilter{
		StoreID:    c.QueryParam("store_id"),
		BrandID:    c.QueryParam("brand_id"),
		CompanyID:  c.QueryParam("company_id"),
		MarketID:   c.QueryParam("market_id"),
		CategoryID: c.QueryParam("category_id"),
		Status:     c.QueryParam("status"),
	}

	if featuredStr := c.QueryParam("featured"); featuredStr != "" {
		if featured, err := strconv.ParseBool(featuredStr); err == nil {
			filter.Featured = &featured
		}
	}

	return filter
}

func (h *ProductHandler) ListProducts(c echo.Context) error {
	sort := c.QueryParam("sort")
	pagination := utils.GetPaginationParams(c)

	products, total, err := h.productUseCase.ListProducts(
		c.Request().Context(),
		filterFromQuery(c),
		sort,
		pagination.Page,
		pagination.PageSize,
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, products, total, pagination.Page, pagination.PageSize)
}

func (h *ProductHandler) SearchProducts(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return response.Error(c, errors.BadRequest("Search query is required", nil))
	}

	pagination := utils.GetPaginationParams(c)

	products, total, err := h.productUseCase.SearchProducts(
		c.Request().Context(),
		query,
		filterFromQuery(c),
		pagination.Page,
		pagination.PageSize,
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, products, total, pagination.Page, pagination.PageSize)
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	input, images := req.toInput()

	product, err := h.productUseCase.UpdateProduct(c.Request().Context(), c.Param("id"), input, images)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	if err := h.productUseCase.DeleteProduct(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Product deleted successfully",
	})
}

package handler

import (
	"time"

	"bazarly/internal/usecase"
	"bazarly/pkg/response"
	"bazarly/pkg/utils"

	"github.com/labstack/echo/v4"
)

type AdHandler struct {
	adUseCase *usecase.AdUseCase
}

func NewAdHandler(adUseCase *usecase.AdUseCase) *AdHandler {
	return &AdHandler{
		adUseCase: adUseCase,
	}
}

type adRequest struct {
	Title       string    `json:"title" validate:"required"`
	Image       string    `json:"image" validate:"required,url"`
	Placement   string    `json:"placement" validate:"required,oneof=home_banner home_strip category_banner"`
	ProductID   string    `json:"product_id"`
	StoreID     string    `json:"store_id"`
	ExternalURL string    `json:"external_url" validate:"omitempty,url"`
	StartsAt    time.Time `json:"starts_at" validate:"required"`
	EndsAt      time.Time `json:"ends_at" validate:"required,gtfield=StartsAt"`
	Status      string    `json:"status" validate:"required,oneof=active inactive"`
}

func (r adRequest) toInput() usecase.AdInput {
	return usecase.AdInput{
		Title:       r.Title,
		Image:       r.Image,
		Placement:   r.Placement,
		ProductID:   r.ProductID,
		StoreID:     r.StoreID,
		ExternalURL: r.ExternalURL,
		StartsAt:    r.StartsAt,
		EndsAt:      r.EndsAt,
		Status:      r.Status,
	}
}

func (h *AdHandler) CreateAd(c echo.Context) error {
	var req adRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	ad, err := h.adUseCase.CreateAd(c.Request().Context(), req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, ad)
}

func (h *AdHandler) GetAd(c echo.Context) error {
	ad, err := h.adUseCase.GetAdByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, ad)
}

// ListLiveAds is the public surface: only ads inside their schedule
// window and marked active are returned.
func (h *AdHandler) ListLiveAds(c echo.Context) error {
	placement := c.QueryParam("placement")

	ads, err := h.adUseCase.ListLiveAds(c.Request().Context(), placement)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, ads)
}

func (h *AdHandler) ListAds(c echo.Context) error {
	status := c.QueryParam("status")
	pagination := utils.GetPaginationParams(c)

	ads, total, err := h.adUseCase.ListAds(
		c.Request().Context(),
		status,
		pagination.Page,
		pagination.PageSize,
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, ads, total, pagination.Page, pagination.PageSize)
}

func (h *AdHandler) UpdateAd(c echo.Context) error {
	var req adRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	ad, err := h.adUseCase.UpdateAd(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, ad)
}

func (h *AdHandler) DeleteAd(c echo.Context) error {
	if err := h.adUseCase.DeleteAd(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Ad deleted successfully",
	})
}

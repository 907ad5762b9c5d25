package handler

import (
	"bazarly/internal/usecase"
	"bazarly/pkg/response"
	"bazarly/pkg/utils"

	"github.com/labstack/echo/v4"
)

type GiftHandler struct {
	giftUseCase *usecase.GiftUseCase
}

func NewGiftHandler(giftUseCase *usecase.GiftUseCase) *GiftHandler {
	return &GiftHandler{
		giftUseCase: giftUseCase,
	}
}

type giftRequest struct {
	Name        string `json:"name" validate:"required"`
	NameKu      string `json:"name_ku"`
	NameAr      string `json:"name_ar"`
	Description string `json:"description"`
	Image       string `json:"image" validate:"omitempty,url"`
	Points      int    `json:"points" validate:"required,gt=0"`
	Status      string `json:"status" validate:"required,oneof=active inactive"`
}

func (r giftRequest) toInput() usecase.GiftInput {
	return usecase.GiftInput{
		Name:        r.Name,
		NameKu:      r.NameKu,
		NameAr:      r.NameAr,
		Description: r.Description,
		Image:       r.Image,
		Points:      r.Points,
		Status:      r.Status,
	}
}

func (h *GiftHandler) CreateGift(c echo.Context) error {
	var req giftRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	gift, err := h.giftUseCase.CreateGift(c.Request().Context(), req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, gift)
}

func (h *GiftHandler) GetGift(c echo.Context) error {
	gift, err := h.giftUseCase.GetGiftByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, gift)
}

func (h *GiftHandler) ListGifts(c echo.Context) error {
	status := c.QueryParam("status")
	pagination := utils.GetPaginationParams(c)

	gifts, total, err := h.giftUseCase.ListGifts(
		c.Request().Context(),
		status,
		pagination.Page,
		pagination.PageSize,
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, gifts, total, pagination.Page, pagination.PageSize)
}

func (h *GiftHandler) UpdateGift(c echo.Context) error {
	var req giftRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	gift, err := h.giftUseCase.UpdateGift(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, gift)
}

func (h *GiftHandler) DeleteGift(c echo.Context) error {
	if err := h.giftUseCase.DeleteGift(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Gift deleted successfully",
	})
}

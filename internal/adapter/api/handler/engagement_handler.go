package handler

import (
	"bazarly/internal/usecase"
	"bazarly/pkg/errors"
	"bazarly/pkg/response"

	"github.com/labstack/echo/v4"
)

// EngagementHandler serves likes, views, and reviews, plus the admin
// counter recompute endpoints.
type EngagementHandler struct {
	engagementUseCase *usecase.EngagementUseCase
}

func NewEngagementHandler(engagementUseCase *usecase.EngagementUseCase) *EngagementHandler {
	return &EngagementHandler{
		engagementUseCase: engagementUseCase,
	}
}

type likeRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

func (h *EngagementHandler) ToggleLike(c echo.Context) error {
	var req likeRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	result, err := h.engagementUseCase.ToggleLike(c.Request().Context(), uid, req.ProductID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}

type viewRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	DeviceID  string `json:"device_id"`
}

// RecordView accepts both authenticated users and anonymous device
// actors. An anonymous call must carry a device_id.
func (h *EngagementHandler) RecordView(c echo.Context) error {
	var req viewRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	actor := usecase.ActorRef{DeviceID: req.DeviceID}
	if uid, ok := c.Get("uid").(string); ok && uid != "" {
		actor.UserID = uid
	}

	if actor.UserID == "" && actor.DeviceID == "" {
		return response.Error(c, errors.BadRequest("Either authentication or device_id is required", nil))
	}

	result, err := h.engagementUseCase.RecordView(c.Request().Context(), actor, req.ProductID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}

type reviewRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Comment   string `json:"comment" validate:"max=2000"`
}

func (h *EngagementHandler) SubmitReview(c echo.Context) error {
	var req reviewRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	result, err := h.engagementUseCase.SubmitReview(
		c.Request().Context(),
		uid,
		req.ProductID,
		req.Rating,
		req.Comment,
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}

// GetMyEngagement returns the caller's likes, views, and reviews.
func (h *EngagementHandler) GetMyEngagement(c echo.Context) error {
	uid := c.Get("uid").(string)

	user, err := h.engagementUseCase.GetUserEngagement(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"liked_products":  user.LikedProducts,
		"viewed_products": user.ViewedProducts,
		"reviews":         user.Reviews,
	})
}

func (h *EngagementHandler) RecomputeProduct(c echo.Context) error {
	id := c.Param("id")

	if err := h.engagementUseCase.RecomputeProduct(c.Request().Context(), id); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Counters recomputed successfully",
	})
}

func (h *EngagementHandler) RecomputeAll(c echo.Context) error {
	summary, err := h.engagementUseCase.RecomputeAll(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, summary)
}

package router

import (
	"bazarly/internal/adapter/api/handler"
	"bazarly/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupGiftRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	giftHandler := handler.GetGiftHandler()

	e.GET("/v1/gifts", giftHandler.ListGifts)
	e.GET("/v1/gifts/:id", giftHandler.GetGift)

	admin := e.Group("/v1/admin/gifts")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)

	admin.POST("", giftHandler.CreateGift)
	admin.PUT("/:id", giftHandler.UpdateGift)
	admin.DELETE("/:id", giftHandler.DeleteGift)
}

package router

import (
	"bazarly/internal/adapter/api/handler"
	"bazarly/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupAdRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	adHandler := handler.GetAdHandler()

	e.GET("/v1/ads", adHandler.ListLiveAds)

	admin := e.Group("/v1/admin/ads")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)

	admin.GET("", adHandler.ListAds)
	admin.GET("/:id", adHandler.GetAd)
	admin.POST("", adHandler.CreateAd)
	admin.PUT("/:id", adHandler.UpdateAd)
	admin.DELETE("/:id", adHandler.DeleteAd)
}

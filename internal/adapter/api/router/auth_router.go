package router

import (
	"bazarly/internal/adapter/api/handler"
	"bazarly/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupAuthRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	authHandler := handler.GetAuthHandler()

	// Public routes
	e.POST("/v1/auth/register", authHandler.Register)
	e.POST("/v1/auth/login", authHandler.Login)

	// Protected routes
	protected := e.Group("/v1/users")
	protected.Use(authMiddleware.Authenticate)

	protected.GET("/me", authHandler.GetProfile)
	protected.PATCH("/me", authHandler.UpdateProfile)
	protected.POST("/me/password", authHandler.ChangePassword)
}

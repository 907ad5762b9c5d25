package router

import (
	"bazarly/internal/adapter/api/middleware"
	"bazarly/internal/infrastructure/ratelimit"

	"github.com/labstack/echo/v4"
)

func Setup(
	e *echo.Echo,
	authMiddleware *middleware.AuthMiddleware,
	adminMiddleware *middleware.AdminMiddleware,
	engagementLimiter *ratelimit.RateLimiter,
) {
	SetupAuthRouter(e, authMiddleware)
	SetupCatalogRouter(e, authMiddleware, adminMiddleware)
	SetupProductRouter(e, authMiddleware, adminMiddleware)
	SetupGiftRouter(e, authMiddleware, adminMiddleware)
	SetupAdRouter(e, authMiddleware, adminMiddleware)
	SetupEngagementRouter(e, authMiddleware, adminMiddleware, engagementLimiter)
	SetupFileRouter(e, authMiddleware, adminMiddleware)
	SetupHealthRouter(e)
}

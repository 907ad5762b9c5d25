package router

import (
	"bazarly/internal/adapter/api/handler"
	"bazarly/internal/adapter/api/middleware"
	"bazarly/internal/infrastructure/ratelimit"

	"github.com/labstack/echo/v4"
)

// SetupEngagementRouter wires likes, views, and reviews. Likes and
// reviews require an authenticated user; views also accept anonymous
// device actors, so that route only verifies a token when present.
func SetupEngagementRouter(
	e *echo.Echo,
	authMiddleware *middleware.AuthMiddleware,
	adminMiddleware *middleware.AdminMiddleware,
	limiter *ratelimit.RateLimiter,
) {
	engagementHandler := handler.GetEngagementHandler()

	engagement := e.Group("/v1/engagement")

	views := engagement.Group("")
	views.Use(authMiddleware.OptionalAuthenticate)
	views.Use(middleware.EngagementRateLimit(limiter))
	views.POST("/view", engagementHandler.RecordView)

	authed := engagement.Group("")
	authed.Use(authMiddleware.Authenticate)
	authed.Use(middleware.EngagementRateLimit(limiter))
	authed.POST("/like", engagementHandler.ToggleLike)
	authed.POST("/review", engagementHandler.SubmitReview)
	authed.GET("/me", engagementHandler.GetMyEngagement)

	admin := e.Group("/v1/admin/engagement")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)

	admin.POST("/recompute", engagementHandler.RecomputeAll)
	admin.POST("/recompute/:id", engagementHandler.RecomputeProduct)
}

package middleware

import (
	"net/http"

	"bazarly/internal/infrastructure/ratelimit"
	"bazarly/pkg/logger"

	"github.com/labstack/echo/v4"
)

// EngagementRateLimit throttles engagement calls per actor. The key is
// the authenticated UID when present, otherwise the device id from the
// body is unavailable at middleware time, so the client IP stands in.
func EngagementRateLimit(limiter *ratelimit.RateLimiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key, ok := c.Get("uid").(string)
			if !ok || key == "" {
				key = "ip:" + c.RealIP()
			}

			allowed, wait := limiter.Allow(key)
			if !allowed {
				logger.Warn("rate limited engagement call from %s", key)
				return c.JSON(http.StatusTooManyRequests, map[string]interface{}{
					"error":       "Rate limit exceeded",
					"retry_after": int(wait.Seconds()),
				})
			}

			return next(c)
		}
	}
}

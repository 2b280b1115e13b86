package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/tlevasseur/blog-api/internal/config"
)

// NewRateLimit returns a fixed-window limiter for mutating routes. The
// counter key combines the client IP and the matched route so one noisy
// client cannot starve others; counters live in Redis and expire with
// the window. When Redis is unavailable the request is allowed through:
// losing rate limiting is preferable to failing writes.
func NewRateLimit(cfg config.RateLimitConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}

	windowSecs := int64(cfg.Window / time.Second)
	if windowSecs < 1 {
		windowSecs = 1
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			window := time.Now().Unix() / windowSecs
			key := fmt.Sprintf("%s:%s:%s:%d", cfg.Prefix, c.RealIP(), c.Path(), window)

			n, err := rdb.Incr(ctx, key).Result()
			if err != nil {
				return next(c)
			}
			if n == 1 {
				_ = rdb.Expire(ctx, key, cfg.Window).Err()
			}
			if n > int64(cfg.Limit) {
				c.Response().Header().Set("Retry-After", strconv.Itoa(int(windowSecs)))
				return c.JSON(http.StatusTooManyRequests, echo.Map{"error": "rate limit exceeded"})
			}
			return next(c)
		}
	}
}

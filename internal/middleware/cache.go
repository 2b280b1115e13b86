package middleware

import (
	"bytes"
	"crypto/sha1"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/tlevasseur/blog-api/internal/config"
)

// bodyRecorder captures the response body and status while still
// forwarding everything to the client.
type bodyRecorder struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
}

func (b *bodyRecorder) WriteHeader(code int) {
	b.status = code
	b.ResponseWriter.WriteHeader(code)
}

func (b *bodyRecorder) Write(p []byte) (int, error) {
	b.buf.Write(p)
	return b.ResponseWriter.Write(p)
}

// cacheKey builds a stable Redis key from the concrete request path and
// the raw query string. The request path, not the matched route, so
// /v1/articles/1 and /v1/articles/2 never share an entry. Hashing keeps
// arbitrary paths and query strings out of the keyspace.
func cacheKey(prefix string, c echo.Context) string {
	sum := sha1.Sum([]byte(c.Request().URL.Path + "?" + c.Request().URL.RawQuery))
	return fmt.Sprintf("%s:%x", prefix, sum)
}

// NewResponseCache returns a middleware that caches successful GET
// responses in Redis for the configured TTL. Reads on this API are
// public, so cached bodies are shared by all callers; mutations are
// never cached. With caching disabled or no Redis available the
// middleware is a pass-through.
func NewResponseCache(cfg config.CacheConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 30 * time.Second
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Method != http.MethodGet {
				return next(c)
			}

			ctx := c.Request().Context()
			key := cacheKey(cfg.Prefix, c)

			if body, err := rdb.Get(ctx, key).Bytes(); err == nil {
				c.Response().Header().Set("X-Cache", "HIT")
				return c.JSONBlob(http.StatusOK, body)
			}

			rec := &bodyRecorder{ResponseWriter: c.Response().Writer, status: http.StatusOK}
			c.Response().Writer = rec
			c.Response().Header().Set("X-Cache", "MISS")

			if err := next(c); err != nil {
				return err
			}

			if rec.status == http.StatusOK && rec.buf.Len() > 0 &&
				(cfg.MaxBodyBytes <= 0 || rec.buf.Len() <= cfg.MaxBodyBytes) {
				_ = rdb.SetEx(ctx, key, rec.buf.Bytes(), ttl).Err()
			}
			return nil
		}
	}
}

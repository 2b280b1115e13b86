package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tlevasseur/blog-api/internal/config"
)

// getCtx builds a context the way echo does for a matched GET route:
// the concrete URL in the request, the route template on the context.
func getCtx(t *testing.T, target string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/v1/articles/:id")
	return c, rec
}

func TestCacheKey_DistinguishesRequestPaths(t *testing.T) {
	// Two requests matched by the same route template must never share
	// a cache entry, or article 1's body is served for article 2.
	c1, _ := getCtx(t, "/v1/articles/1")
	c2, _ := getCtx(t, "/v1/articles/2")

	k1 := cacheKey("cache", c1)
	k2 := cacheKey("cache", c2)
	if k1 == k2 {
		t.Fatalf("distinct request paths share key %s", k1)
	}
}

func TestCacheKey_StableForSameRequest(t *testing.T) {
	c1, _ := getCtx(t, "/v1/articles/1")
	c2, _ := getCtx(t, "/v1/articles/1")
	if cacheKey("cache", c1) != cacheKey("cache", c2) {
		t.Fatal("identical requests must share a key")
	}
}

func TestCacheKey_DistinguishesQueryStrings(t *testing.T) {
	c1, _ := getCtx(t, "/v1/categories?limit=2")
	c2, _ := getCtx(t, "/v1/categories?limit=3")
	if cacheKey("cache", c1) == cacheKey("cache", c2) {
		t.Fatal("different query strings must not share a key")
	}
}

func TestResponseCache_PassThroughWhenDisabled(t *testing.T) {
	cfg := config.CacheConfig{Enabled: false, TTL: 30 * time.Second, Prefix: "cache"}
	mw := NewResponseCache(cfg, nil)

	calls := 0
	h := mw(func(c echo.Context) error {
		calls++
		return c.String(http.StatusOK, "fresh")
	})

	c, rec := getCtx(t, "/v1/articles/1")
	if err := h(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected handler to run once, ran %d times", calls)
	}
	if rec.Body.String() != "fresh" {
		t.Errorf("unexpected body %q", rec.Body.String())
	}
}

func TestResponseCache_PassThroughWithoutRedis(t *testing.T) {
	cfg := config.CacheConfig{Enabled: true, TTL: 30 * time.Second, Prefix: "cache"}
	mw := NewResponseCache(cfg, nil)

	calls := 0
	h := mw(func(c echo.Context) error {
		calls++
		return c.String(http.StatusOK, "fresh")
	})

	for i := 0; i < 2; i++ {
		c, _ := getCtx(t, "/v1/articles/1")
		if err := h(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
	}
	if calls != 2 {
		t.Fatalf("expected handler to run every time without redis, ran %d times", calls)
	}
}

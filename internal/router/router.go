package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // Echo web framework used for routing

	"github.com/tlevasseur/blog-api/internal/auth"
	"github.com/tlevasseur/blog-api/internal/handler"
	"github.com/tlevasseur/blog-api/internal/middleware"
)

// RegisterRoutes registers routes that never require authentication.
// Currently this is only the health check used by load balancers.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterPublic registers the unauthenticated read endpoints. Reads are
// public by design on this API: articles and categories are readable by
// anyone, and successful responses go through the shared response cache.
func RegisterPublic(e *echo.Echo, h *handler.ContentHandler, cache echo.MiddlewareFunc) {
	g := e.Group("/v1", cache)
	g.GET("/articles/:id", h.ShowArticle)
	g.GET("/categories", h.ListCategories)
	g.GET("/categories/:id", h.ShowCategory)
}

// RegisterAuth registers the token-issuing endpoints under /v1/auth.
// Neither requires an existing session.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
}

// RegisterContent registers every mutating endpoint. All writes require
// a verified token from the `token` header; everything except comment
// creation additionally requires the admin role. The rate limiter, when
// enabled, applies to the whole write surface.
func RegisterContent(e *echo.Echo, h *handler.ContentHandler, v *auth.Verifier, limit echo.MiddlewareFunc) {
	// Admin-gated writes.
	admin := e.Group(
		"/v1",
		limit,
		middleware.TokenAuth(v),
		middleware.RequireRole(auth.RoleAdmin),
	)

	// ---- Articles ----
	admin.POST("/articles", h.CreateArticle)
	admin.PATCH("/articles/:id", h.UpdateArticle)
	admin.DELETE("/articles/:id", h.DeleteArticle)

	// ---- Categories ----
	admin.POST("/categories", h.CreateCategory)
	admin.PATCH("/categories/:id", h.UpdateCategory)
	admin.DELETE("/categories/:id", h.DeleteCategory)

	// ---- Comment moderation ----
	admin.PATCH("/comments/:id", h.ModerateComment)

	// Comment creation only needs a verified identity, no role.
	e.POST("/v1/articles/:id/comments", h.CreateComment, limit, middleware.TokenAuth(v))
}

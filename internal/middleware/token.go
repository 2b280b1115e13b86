package middleware // middleware provides shared request processing for handlers

import (
	"errors"   // errors provides Is for matching typed auth failures
	"net/http" // HTTP status codes for responses

	"github.com/labstack/echo/v4" // Echo framework used for defining middleware and handlers

	"github.com/tlevasseur/blog-api/internal/auth" // token verification and principal types
)

// principalKey is the context key under which the verified principal is
// stored for downstream middleware and handlers.
const principalKey = "principal"

// TokenAuth returns an Echo middleware that verifies the bearer token
// carried in the `token` request header and injects the resulting
// principal into the request context. Both a missing and an invalid
// token are rejected with 403; the messages are stable and never carry
// text from the underlying JWT library.
func TokenAuth(v *auth.Verifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := c.Request().Header.Get("token")
			p, err := v.Verify(raw)
			if err != nil {
				if errors.Is(err, auth.ErrTokenMissing) {
					return c.JSON(http.StatusForbidden, echo.Map{"error": "no token provided"})
				}
				return c.JSON(http.StatusForbidden, echo.Map{"error": "invalid token"})
			}
			c.Set(principalKey, p)
			return next(c)
		}
	}
}

// RequireRole returns a middleware that enforces that the authenticated
// principal carries the named capability. It assumes TokenAuth ran
// earlier in the chain; a request with no principal is treated the same
// as one lacking the role.
func RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, ok := c.Get(principalKey).(auth.Principal)
			if !ok || !p.HasRole(role) {
				return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
			}
			return next(c)
		}
	}
}

// PrincipalFrom extracts the verified principal stored by TokenAuth.
// The boolean is false when no principal is present, which only happens
// on routes that forgot to apply the middleware.
func PrincipalFrom(c echo.Context) (auth.Principal, bool) {
	p, ok := c.Get(principalKey).(auth.Principal)
	return p, ok
}

package handler

import (
	"errors"   // errors matches repository sentinels
	"net/http" // HTTP status codes and primitives
	"strings"  // string manipulation utilities
	"time"     // token TTL arithmetic

	"github.com/labstack/echo/v4" // Echo framework for HTTP routing

	"github.com/tlevasseur/blog-api/internal/auth"       // token issuing and verification
	"github.com/tlevasseur/blog-api/internal/config"     // app configuration
	"github.com/tlevasseur/blog-api/internal/repository" // DB repositories
	"github.com/tlevasseur/blog-api/internal/utils"      // helper functions (hashing)
)

// AuthHandler bundles dependencies for the auth endpoints.
type AuthHandler struct {
	Cfg      config.Config
	Users    UserStore
	Verifier *auth.Verifier
}

func NewAuthHandler(cfg config.Config, users UserStore, verifier *auth.Verifier) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: users, Verifier: verifier}
}

// ----- DTOs -----

type registerReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenPart struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}
type userPart struct {
	ID    uint64   `json:"id"`
	Email string   `json:"email"`
	Roles []string `json:"roles"`
}
type authResp struct {
	User  userPart  `json:"user"`
	Token tokenPart `json:"token"`
}

// Register creates a user and returns a token immediately. Registered
// users carry no roles; the admin role is granted out of band (seeded),
// never through this endpoint.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email/password required"})
	}

	ctx := c.Request().Context()
	uid, err := h.Users.Create(ctx, req.Email, req.Password, nil, h.Cfg.BcryptCost)
	if err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "email already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create user failed"})
	}

	signed, exp, err := h.Verifier.Issue(uid, nil, time.Duration(h.Cfg.AccessTTLMin)*time.Minute)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue token failed"})
	}
	return c.JSON(http.StatusCreated, authResp{
		User:  userPart{ID: uid, Email: req.Email},
		Token: tokenPart{Token: signed, Expires: exp},
	})
}

// Login verifies credentials and returns a fresh token carrying the
// user's id and roles.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email/password required"})
	}

	ctx := c.Request().Context()
	u, err := h.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if !utils.VerifyPassword(u.PasswordHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}

	signed, exp, err := h.Verifier.Issue(u.ID, u.Roles, time.Duration(h.Cfg.AccessTTLMin)*time.Minute)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue token failed"})
	}
	return c.JSON(http.StatusOK, authResp{
		User:  userPart{ID: u.ID, Email: u.Email, Roles: u.Roles},
		Token: tokenPart{Token: signed, Expires: exp},
	})
}

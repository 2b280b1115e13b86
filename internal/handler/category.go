package handler // handler package contains the category endpoints

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/tlevasseur/blog-api/internal/model"
	"github.com/tlevasseur/blog-api/internal/repository"
	"github.com/tlevasseur/blog-api/internal/validation"
)

// defaultCategoryLimit caps GET /v1/categories when no limit is given.
const defaultCategoryLimit = 3

// ListCategories handles GET /v1/categories and returns the most recent
// categories. The optional ?limit= query controls how many, default 3.
func (h *ContentHandler) ListCategories(c echo.Context) error {
	limit := defaultCategoryLimit
	if s := c.QueryParam("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			limit = n
		}
	}
	items, err := h.Categories.FindLast(c.Request().Context(), limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, items)
}

// ShowCategory handles GET /v1/categories/:id and returns the category
// together with its articles. Public, like every read endpoint.
func (h *ContentHandler) ShowCategory(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx := c.Request().Context()

	category, err := h.Categories.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "category not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	articles, err := h.Articles.ListByCategory(ctx, category.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"category": category, "articles": articles})
}

// CreateCategory handles POST /v1/categories. Admin only. The creation
// field is `name` for historical API compatibility even though the
// entity stores it as Title.
func (h *ContentHandler) CreateCategory(c echo.Context) error {
	body, err := bindFields(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if missing := validation.CheckRequired(body, "name"); len(missing) > 0 {
		return missingFields(c, missing)
	}

	category := &model.Category{Title: body.String("name")}
	if vs := validation.ValidateCategory(category); len(vs) > 0 {
		return invalidEntity(c, vs)
	}
	if err := h.Categories.Create(c.Request().Context(), category); err != nil {
		if errors.Is(err, repository.ErrDuplicateEntry) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "category title already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create category"})
	}
	return c.JSON(http.StatusCreated, category)
}

// UpdateCategory handles PATCH /v1/categories/:id.
func (h *ContentHandler) UpdateCategory(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	body, err := bindFields(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	ctx := c.Request().Context()

	category, err := h.Categories.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "category not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}

	appliers := []validation.FieldApplier{
		{Name: "name", Apply: func(v any) error {
			category.Title = body.String("name")
			return nil
		}},
	}
	changed, err := validation.ApplyPartial(body, appliers)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if changed == 0 {
		return nothingToUpdate(c)
	}

	if vs := validation.ValidateCategory(category); len(vs) > 0 {
		return invalidEntity(c, vs)
	}
	if err := h.Categories.Update(ctx, category); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "category not found"})
		}
		if errors.Is(err, repository.ErrDuplicateEntry) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "category title already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, category)
}

// DeleteCategory handles DELETE /v1/categories/:id.
func (h *ContentHandler) DeleteCategory(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx := c.Request().Context()

	if _, err := h.Categories.GetByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "category not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if err := h.Categories.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "category not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.NoContent(http.StatusNoContent)
}

package handler // handler package contains the article endpoints

import (
	"errors"   // errors provides Is for matching repository sentinels
	"fmt"      // fmt renders non-string state values for the validator
	"net/http" // http provides status code constants
	"time"     // time formats event timestamps

	"github.com/labstack/echo/v4" // echo is the web framework used for handlers

	"github.com/tlevasseur/blog-api/internal/middleware"
	"github.com/tlevasseur/blog-api/internal/model"
	"github.com/tlevasseur/blog-api/internal/queue"
	"github.com/tlevasseur/blog-api/internal/repository"
	"github.com/tlevasseur/blog-api/internal/validation"
)

// ShowArticle handles GET /v1/articles/:id. Reads are public by design:
// no token is required and the response carries the article together
// with its comments.
func (h *ContentHandler) ShowArticle(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx := c.Request().Context()

	article, err := h.Articles.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrArticleNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "article not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	comments, err := h.Comments.ListByArticle(ctx, article.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"article": article, "comments": comments})
}

// CreateArticle handles POST /v1/articles. The route is gated by
// TokenAuth and RequireRole(admin); the handler checks required fields,
// resolves the category, validates the assembled entity and persists it.
// New articles always start in the draft state.
func (h *ContentHandler) CreateArticle(c echo.Context) error {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}
	body, err := bindFields(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if missing := validation.CheckRequired(body, "title", "content", "category"); len(missing) > 0 {
		return missingFields(c, missing)
	}
	ctx := c.Request().Context()

	category, err := h.Categories.GetByID(ctx, body.Uint("category"))
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "category not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}

	article := model.NewArticle()
	article.Title = body.String("title")
	article.Content = body.String("content")
	article.CategoryID = category.ID
	article.Category = category
	article.AuthorID = p.UserID
	if author, err := h.Users.GetByID(ctx, p.UserID); err == nil {
		article.Author = &author
	}

	if vs := validation.ValidateArticle(article); len(vs) > 0 {
		return invalidEntity(c, vs)
	}
	if err := h.Articles.Create(ctx, article); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create article"})
	}
	return c.JSON(http.StatusCreated, article)
}

// UpdateArticle handles PATCH /v1/articles/:id. Only the fields present
// in the body are applied; a request that changes nothing short-circuits
// with 200 before validation or persistence. Setting the state runs the
// publication state machine, so the publication date always tracks the
// published state.
func (h *ContentHandler) UpdateArticle(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	body, err := bindFields(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	ctx := c.Request().Context()

	article, err := h.Articles.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrArticleNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "article not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	wasPublished := article.State == model.StatePublished

	appliers := []validation.FieldApplier{
		{Name: "title", Apply: func(v any) error {
			article.Title = body.String("title")
			return nil
		}},
		{Name: "content", Apply: func(v any) error {
			article.Content = body.String("content")
			return nil
		}},
		{Name: "category", Apply: func(v any) error {
			category, err := h.Categories.GetByID(ctx, body.Uint("category"))
			if err != nil {
				return err
			}
			article.CategoryID = category.ID
			article.Category = category
			return nil
		}},
		{Name: "state", Apply: func(v any) error {
			s, ok := v.(string)
			if !ok {
				// non-string states must reach the validator, not collapse to ""
				s = fmt.Sprint(v)
			}
			article.SetState(model.PublicationState(s))
			return nil
		}},
	}

	changed, err := validation.ApplyPartial(body, appliers)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "category not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if changed == 0 {
		return nothingToUpdate(c)
	}

	if vs := validation.ValidateArticle(article); len(vs) > 0 {
		return invalidEntity(c, vs)
	}
	if err := h.Articles.Update(ctx, article); err != nil {
		if errors.Is(err, repository.ErrArticleNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "article not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}

	if !wasPublished && article.State == model.StatePublished && h.Events != nil {
		_ = h.Events.ArticlePublished(ctx, queue.ArticlePublishedEvent{
			ArticleID:   article.ID,
			Title:       article.Title,
			CategoryID:  article.CategoryID,
			AuthorID:    article.AuthorID,
			PublishedAt: article.PublishedAt.Format(time.RFC3339),
		})
	}
	return c.JSON(http.StatusOK, article)
}

// DeleteArticle handles DELETE /v1/articles/:id.
func (h *ContentHandler) DeleteArticle(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx := c.Request().Context()

	if _, err := h.Articles.GetByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrArticleNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "article not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if err := h.Articles.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrArticleNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "article not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.NoContent(http.StatusNoContent)
}

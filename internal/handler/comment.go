package handler // handler package contains the comment endpoints

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tlevasseur/blog-api/internal/middleware"
	"github.com/tlevasseur/blog-api/internal/model"
	"github.com/tlevasseur/blog-api/internal/queue"
	"github.com/tlevasseur/blog-api/internal/repository"
	"github.com/tlevasseur/blog-api/internal/validation"
)

// CreateComment handles POST /v1/articles/:id/comments. Unlike every
// other mutation this one requires only a verified identity, not a role:
// any authenticated user may comment. New comments start pending and a
// comment.submitted event alerts moderators out of band.
func (h *ContentHandler) CreateComment(c echo.Context) error {
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

	p, ok := middleware.PrincipalFrom(c)
	if !ok || p.UserID == 0 {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}

	body, err := bindFields(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if missing := validation.CheckRequired(body, "comment"); len(missing) > 0 {
		return missingFields(c, missing)
	}

	comment := model.NewComment()
	comment.Text = body.String("comment")
	comment.ArticleID = article.ID
	comment.AuthorID = p.UserID
	if author, err := h.Users.GetByID(ctx, p.UserID); err == nil {
		comment.Author = &author
	}

	if vs := validation.ValidateComment(comment); len(vs) > 0 {
		return invalidEntity(c, vs)
	}
	if err := h.Comments.Create(ctx, comment); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create comment"})
	}

	if h.Events != nil {
		_ = h.Events.CommentSubmitted(ctx, queue.CommentSubmittedEvent{
			CommentID:   comment.ID,
			ArticleID:   comment.ArticleID,
			AuthorID:    comment.AuthorID,
			State:       string(comment.State),
			SubmittedAt: comment.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return c.JSON(http.StatusCreated, comment)
}

// ModerateComment handles PATCH /v1/comments/:id. Admin only. The only
// recognized field is `state`; a moderator may move a comment to any of
// the defined moderation states, and anything outside the set is
// rejected by the validator.
func (h *ContentHandler) ModerateComment(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	body, err := bindFields(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	ctx := c.Request().Context()

	comment, err := h.Comments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCommentNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "comment not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}

	appliers := []validation.FieldApplier{
		{Name: "state", Apply: func(v any) error {
			s, ok := v.(string)
			if !ok {
				// non-string states must reach the validator, not collapse to ""
				s = fmt.Sprint(v)
			}
			comment.State = model.ModerationState(s)
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

	if vs := validation.ValidateComment(comment); len(vs) > 0 {
		return invalidEntity(c, vs)
	}
	if err := h.Comments.Update(ctx, comment); err != nil {
		if errors.Is(err, repository.ErrCommentNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "comment not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, comment)
}

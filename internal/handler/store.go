// Package handler defines HTTP handlers for the content API. Every
// mutation runs the same pipeline: the middleware authenticates and
// authorizes, the handler checks required fields (create) or applies the
// present ones (update), validates the resulting entity, and only then
// persists through the store interfaces below.
package handler

import (
	"context"

	"github.com/tlevasseur/blog-api/internal/model"
	"github.com/tlevasseur/blog-api/internal/queue"
)

// ArticleStore is the persistence collaborator for articles. The MySQL
// repository satisfies it; tests substitute in-memory fakes. Store
// failures are not retried and fail the whole request.
type ArticleStore interface {
	Create(ctx context.Context, a *model.Article) error
	GetByID(ctx context.Context, id uint64) (*model.Article, error)
	ListByCategory(ctx context.Context, categoryID uint64) ([]*model.Article, error)
	Update(ctx context.Context, a *model.Article) error
	Delete(ctx context.Context, id uint64) error
}

// CategoryStore is the persistence collaborator for categories.
type CategoryStore interface {
	Create(ctx context.Context, c *model.Category) error
	GetByID(ctx context.Context, id uint64) (*model.Category, error)
	FindLast(ctx context.Context, limit int) ([]*model.Category, error)
	Update(ctx context.Context, c *model.Category) error
	Delete(ctx context.Context, id uint64) error
}

// CommentStore is the persistence collaborator for comments.
type CommentStore interface {
	Create(ctx context.Context, c *model.Comment) error
	GetByID(ctx context.Context, id uint64) (*model.Comment, error)
	ListByArticle(ctx context.Context, articleID uint64) ([]*model.Comment, error)
	Update(ctx context.Context, c *model.Comment) error
}

// UserStore is the identity collaborator used to attach authors to
// created articles and comments once the principal is established.
type UserStore interface {
	Create(ctx context.Context, email, password string, roles []string, cost int) (uint64, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
	GetByID(ctx context.Context, id uint64) (model.User, error)
}

// EventPublisher pushes domain events to the message broker after a
// successful persist. Publishing is best-effort: callers log and ignore
// failures so a broker outage never fails the request.
type EventPublisher interface {
	ArticlePublished(ctx context.Context, ev queue.ArticlePublishedEvent) error
	CommentSubmitted(ctx context.Context, ev queue.CommentSubmittedEvent) error
}

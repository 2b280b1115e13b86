// This file defines repository methods for the Article entity. Articles
// carry a publication state; the published_at column is non-null exactly
// when state is 'published', which the model's state machine guarantees
// before rows ever reach this layer.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/tlevasseur/blog-api/internal/model"
)

// ErrArticleNotFound is returned when an article cannot be found in the DB.
var ErrArticleNotFound = errors.New("article not found")

// ArticleRepo encapsulates all database queries related to articles.
type ArticleRepo struct {
	db *sql.DB
}

// NewArticleRepo constructs an ArticleRepo with the provided DB handle.
func NewArticleRepo(db *sql.DB) *ArticleRepo {
	return &ArticleRepo{db: db}
}

// Create inserts a new article and populates the generated ID and
// timestamp columns on the passed model.
func (r *ArticleRepo) Create(ctx context.Context, a *model.Article) error {
	const qInsert = `INSERT INTO articles (title, content, category_id, author_id, state, published_at)
	                 VALUES (?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, qInsert,
		a.Title, a.Content, a.CategoryID, a.AuthorID, string(a.State), a.PublishedAt)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	a.ID = uint64(id)

	const qSelect = "SELECT created_at, updated_at FROM articles WHERE id = ?"
	return r.db.QueryRowContext(ctx, qSelect, a.ID).Scan(&a.CreatedAt, &a.UpdatedAt)
}

// GetByID fetches an article by its ID together with its category.
// It returns ErrArticleNotFound if no row is found.
func (r *ArticleRepo) GetByID(ctx context.Context, id uint64) (*model.Article, error) {
	const q = `SELECT a.id, a.title, a.content, a.category_id, a.author_id,
	                  a.state, a.published_at, a.created_at, a.updated_at,
	                  c.id, c.title, c.created_at, c.updated_at
	           FROM articles a
	           JOIN categories c ON c.id = a.category_id
	           WHERE a.id = ?`
	var a model.Article
	var c model.Category
	var state string
	if err := r.db.QueryRowContext(ctx, q, id).Scan(
		&a.ID, &a.Title, &a.Content, &a.CategoryID, &a.AuthorID,
		&state, &a.PublishedAt, &a.CreatedAt, &a.UpdatedAt,
		&c.ID, &c.Title, &c.CreatedAt, &c.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}
	a.State = model.PublicationState(state)
	a.Category = &c
	return &a, nil
}

// ListByCategory returns all articles in a category ordered by id.
func (r *ArticleRepo) ListByCategory(ctx context.Context, categoryID uint64) ([]*model.Article, error) {
	const q = `SELECT id, title, content, category_id, author_id, state, published_at, created_at, updated_at
	           FROM articles WHERE category_id = ? ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q, categoryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Article
	for rows.Next() {
		a := new(model.Article)
		var state string
		if err := rows.Scan(&a.ID, &a.Title, &a.Content, &a.CategoryID, &a.AuthorID,
			&state, &a.PublishedAt, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		a.State = model.PublicationState(state)
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update persists all mutable article fields, including the state and
// publication date pair set by the state machine. It returns
// ErrArticleNotFound when no row was affected.
func (r *ArticleRepo) Update(ctx context.Context, a *model.Article) error {
	const q = `UPDATE articles
	           SET title = ?, content = ?, category_id = ?, state = ?, published_at = ?,
	               updated_at = CURRENT_TIMESTAMP
	           WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q,
		a.Title, a.Content, a.CategoryID, string(a.State), a.PublishedAt, a.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrArticleNotFound
	}
	return nil
}

// Delete removes an article and its comments. The two deletes run in a
// transaction so a failure leaves both tables untouched.
func (r *ArticleRepo) Delete(ctx context.Context, id uint64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			_ = tx.Commit()
		}
	}()
	if _, err = tx.ExecContext(ctx, "DELETE FROM comments WHERE article_id = ?", id); err != nil {
		return err
	}
	var res sql.Result
	if res, err = tx.ExecContext(ctx, "DELETE FROM articles WHERE id = ?", id); err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		err = ErrArticleNotFound
		return err
	}
	return nil
}

package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/tlevasseur/blog-api/internal/model"
)

// ErrCommentNotFound is returned when a comment cannot be found in the DB.
var ErrCommentNotFound = errors.New("comment not found")

type CommentRepo struct {
	db *sql.DB
}

func NewCommentRepo(db *sql.DB) *CommentRepo {
	return &CommentRepo{db: db}
}

// Create inserts a comment and populates its generated ID and timestamps.
func (r *CommentRepo) Create(ctx context.Context, c *model.Comment) error {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO comments (text, article_id, author_id, state) VALUES (?,?,?,?)",
		c.Text, c.ArticleID, c.AuthorID, string(c.State))
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	c.ID = uint64(id)
	return r.db.QueryRowContext(ctx,
		"SELECT created_at, updated_at FROM comments WHERE id = ?", c.ID).
		Scan(&c.CreatedAt, &c.UpdatedAt)
}

// GetByID fetches a comment by id.
func (r *CommentRepo) GetByID(ctx context.Context, id uint64) (*model.Comment, error) {
	var c model.Comment
	var state string
	err := r.db.QueryRowContext(ctx,
		"SELECT id, text, article_id, author_id, state, created_at, updated_at FROM comments WHERE id = ?",
		id).Scan(&c.ID, &c.Text, &c.ArticleID, &c.AuthorID, &state, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	c.State = model.ModerationState(state)
	return &c, nil
}

// ListByArticle returns all comments on an article ordered by id.
func (r *CommentRepo) ListByArticle(ctx context.Context, articleID uint64) ([]*model.Comment, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, text, article_id, author_id, state, created_at, updated_at FROM comments WHERE article_id = ? ORDER BY id",
		articleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Comment
	for rows.Next() {
		c := new(model.Comment)
		var state string
		if err := rows.Scan(&c.ID, &c.Text, &c.ArticleID, &c.AuthorID, &state, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		c.State = model.ModerationState(state)
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update persists the mutable comment fields (moderation state).
func (r *CommentRepo) Update(ctx context.Context, c *model.Comment) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE comments SET state = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		string(c.State), c.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrCommentNotFound
	}
	return nil
}

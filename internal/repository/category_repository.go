// This file defines repository methods for the Category entity. A
// category groups articles; the public API lists the most recent ones
// and shows a single category together with its articles.
package repository

import (
	"context"      // context allows passing deadlines and cancellation signals to DB operations
	"database/sql" // sql provides generic database operations and drivers
	"errors"       // errors is used to define custom error values

	"github.com/tlevasseur/blog-api/internal/model"
)

// ErrCategoryNotFound is returned when a category cannot be found in the DB.
var ErrCategoryNotFound = errors.New("category not found")

// CategoryRepo encapsulates all database queries related to categories.
// It depends on a sql.DB connection which should be configured elsewhere.
type CategoryRepo struct {
	db *sql.DB
}

// NewCategoryRepo constructs a CategoryRepo with the provided DB handle.
func NewCategoryRepo(db *sql.DB) *CategoryRepo {
	return &CategoryRepo{db: db}
}

// Create inserts a new category. On success the ID field is populated
// with the auto-generated value and a follow-up SELECT fills the
// timestamp columns so callers receive a fully populated record.
func (r *CategoryRepo) Create(ctx context.Context, c *model.Category) error {
	const qInsert = "INSERT INTO categories (title) VALUES (?)"
	res, err := r.db.ExecContext(ctx, qInsert, c.Title)
	if err != nil {
		if isDuplicate(err) {
			return ErrDuplicateEntry
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	c.ID = uint64(id)

	const qSelect = "SELECT created_at, updated_at FROM categories WHERE id = ?"
	return r.db.QueryRowContext(ctx, qSelect, c.ID).Scan(&c.CreatedAt, &c.UpdatedAt)
}

// GetByID fetches a category by its ID. It returns ErrCategoryNotFound
// when no row exists.
func (r *CategoryRepo) GetByID(ctx context.Context, id uint64) (*model.Category, error) {
	const q = "SELECT id, title, created_at, updated_at FROM categories WHERE id = ?"
	var c model.Category
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&c.ID, &c.Title, &c.CreatedAt, &c.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &c, nil
}

// FindLast returns the most recently created categories, newest first,
// capped at limit.
func (r *CategoryRepo) FindLast(ctx context.Context, limit int) ([]*model.Category, error) {
	const q = `SELECT id, title, created_at, updated_at
	           FROM categories ORDER BY id DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Category
	for rows.Next() {
		c := new(model.Category)
		if err := rows.Scan(&c.ID, &c.Title, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update persists the mutable category fields. It returns
// ErrCategoryNotFound when no row was affected.
func (r *CategoryRepo) Update(ctx context.Context, c *model.Category) error {
	const q = `UPDATE categories
	           SET title = ?, updated_at = CURRENT_TIMESTAMP
	           WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, c.Title, c.ID)
	if err != nil {
		if isDuplicate(err) {
			return ErrDuplicateEntry
		}
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

// Delete removes a category by id. Articles referencing the category are
// left to the database's foreign-key rules; the core performs no cascade.
func (r *CategoryRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM categories WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

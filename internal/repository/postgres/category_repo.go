// internal/repository/postgres/category_repo.go
package postgres

import (
	"context"
	"errors"
	"fmt"

	"catalog-service/internal/domain/category"
	xerrors "catalog-service/internal/pkg/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const categoryColumns = `id, name, slug, description, icon, color, image_url, display_order, created_at`

type CategoryRepository struct {
	db *pgxpool.Pool
}

func NewCategoryRepository(db *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func scanCategory(row pgx.Row) (*category.Category, error) {
	var c category.Category
	err := row.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.Icon, &c.Color, &c.ImageURL, &c.DisplayOrder, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// List returns categories by display order, then name
func (r *CategoryRepository) List(ctx context.Context) ([]category.Category, error) {
	rows, err := r.db.Query(ctx, `SELECT `+categoryColumns+` FROM categories ORDER BY display_order ASC, name ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	categories := []category.Category{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// Create inserts a category
func (r *CategoryRepository) Create(ctx context.Context, c *category.Category) error {
	query := `
		INSERT INTO categories (name, slug, description, icon, color, display_order)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, c.Name, c.Slug, c.Description, c.Icon, c.Color, c.DisplayOrder).
		Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

// Update applies changes and returns the stored category
func (r *CategoryRepository) Update(ctx context.Context, id uuid.UUID, changes *category.Changes) (*category.Category, error) {
	var b setBuilder
	if changes.Name != nil {
		b.add("name", *changes.Name)
	}
	if changes.Slug != nil {
		b.add("slug", *changes.Slug)
	}
	if changes.Description != nil {
		b.add("description", *changes.Description)
	}
	if changes.Icon != nil {
		b.add("icon", *changes.Icon)
	}
	if changes.Color != nil {
		b.add("color", *changes.Color)
	}
	if changes.DisplayOrder != nil {
		b.add("display_order", *changes.DisplayOrder)
	}
	if b.empty() {
		return nil, xerrors.ErrInvalidInput
	}

	query, args := b.build("categories", id, categoryColumns)
	c, err := scanCategory(r.db.QueryRow(ctx, query, args...))
	if err != nil && !errors.Is(err, xerrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return c, err
}

// SetImageURL stores the category's CDN image URL
func (r *CategoryRepository) SetImageURL(ctx context.Context, id uuid.UUID, url string) (*category.Category, error) {
	query := `UPDATE categories SET image_url = $1 WHERE id = $2 RETURNING ` + categoryColumns

	c, err := scanCategory(r.db.QueryRow(ctx, query, url, id))
	if err != nil && !errors.Is(err, xerrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to set category image: %w", err)
	}
	return c, err
}

// Exists reports whether a category with id exists
func (r *CategoryRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM categories WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check category: %w", err)
	}
	return exists, nil
}

// Delete removes a category
func (r *CategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

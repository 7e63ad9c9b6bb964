// internal/repository/postgres/brand_repo.go
package postgres

import (
	"context"
	"errors"
	"fmt"

	"catalog-service/internal/domain/brand"
	xerrors "catalog-service/internal/pkg/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BrandRepository struct {
	db *pgxpool.Pool
}

func NewBrandRepository(db *pgxpool.Pool) *BrandRepository {
	return &BrandRepository{db: db}
}

// List returns brands ordered by name
func (r *BrandRepository) List(ctx context.Context) ([]brand.Brand, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, slug, created_at FROM brands ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list brands: %w", err)
	}
	defer rows.Close()

	brands := []brand.Brand{}
	for rows.Next() {
		var b brand.Brand
		if err := rows.Scan(&b.ID, &b.Name, &b.Slug, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan brand: %w", err)
		}
		brands = append(brands, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list brands: %w", err)
	}
	return brands, nil
}

// Create inserts a brand
func (r *BrandRepository) Create(ctx context.Context, b *brand.Brand) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO brands (name, slug) VALUES ($1, $2) RETURNING id, created_at`,
		b.Name, b.Slug,
	).Scan(&b.ID, &b.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create brand: %w", err)
	}
	return nil
}

// Update renames a brand
func (r *BrandRepository) Update(ctx context.Context, id uuid.UUID, name, slug string) (*brand.Brand, error) {
	var b brand.Brand
	err := r.db.QueryRow(ctx,
		`UPDATE brands SET name = $1, slug = $2 WHERE id = $3 RETURNING id, name, slug, created_at`,
		name, slug, id,
	).Scan(&b.ID, &b.Name, &b.Slug, &b.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update brand: %w", err)
	}
	return &b, nil
}

// Delete removes a brand
func (r *BrandRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM brands WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete brand: %w", err)
	}
	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

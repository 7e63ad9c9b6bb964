// internal/repository/postgres/product_repo.go
package postgres

import (
	"context"
	"errors"
	"fmt"

	"catalog-service/internal/domain/product"
	xerrors "catalog-service/internal/pkg/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const productColumns = `id, code, name, slug, description, category_id, brand_id, status,
	is_featured, is_new, length, width, height, created_at, updated_at`

const catalogQuery = `
	SELECT p.id, p.code, p.name, p.slug, p.description, p.category_id, p.brand_id, p.status,
	       p.is_featured, p.is_new, p.length, p.width, p.height, p.created_at, p.updated_at,
	       c.id, c.name, c.slug, c.icon, c.color,
	       b.id, b.name, b.slug
	FROM products p
	LEFT JOIN categories c ON c.id = p.category_id
	LEFT JOIN brands b ON b.id = p.brand_id
`

type ProductRepository struct {
	db *pgxpool.Pool
}

func NewProductRepository(db *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{db: db}
}

func scanProduct(row pgx.Row) (*product.Product, error) {
	var p product.Product
	err := row.Scan(
		&p.ID, &p.Code, &p.Name, &p.Slug, &p.Description, &p.CategoryID, &p.BrandID, &p.Status,
		&p.IsFeatured, &p.IsNew, &p.Length, &p.Width, &p.Height, &p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func scanCatalogProduct(row pgx.Row) (*product.Product, error) {
	var (
		p                    product.Product
		catID, brandID       uuid.NullUUID
		catName, catSlug     *string
		catIcon, catColor    *string
		brandName, brandSlug *string
	)
	err := row.Scan(
		&p.ID, &p.Code, &p.Name, &p.Slug, &p.Description, &p.CategoryID, &p.BrandID, &p.Status,
		&p.IsFeatured, &p.IsNew, &p.Length, &p.Width, &p.Height, &p.CreatedAt, &p.UpdatedAt,
		&catID, &catName, &catSlug, &catIcon, &catColor,
		&brandID, &brandName, &brandSlug,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if catID.Valid {
		p.Category = &product.CategoryRef{
			ID:    catID.UUID,
			Name:  deref(catName),
			Slug:  deref(catSlug),
			Icon:  catIcon,
			Color: catColor,
		}
	}
	if brandID.Valid {
		p.Brand = &product.BrandRef{ID: brandID.UUID, Name: deref(brandName), Slug: deref(brandSlug)}
	}
	p.Images = []product.Image{}
	return &p, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// List returns catalog products for filter with nested category, brand and
// ordered images
func (r *ProductRepository) List(ctx context.Context, filter product.Filter) ([]product.Product, error) {
	var query string
	switch filter {
	case product.FilterComingSoon:
		query = catalogQuery + ` WHERE p.is_featured = true ORDER BY p.name ASC`
	case product.FilterNew:
		query = catalogQuery + ` WHERE p.is_new = true ORDER BY p.created_at DESC`
	default:
		query = catalogQuery + ` ORDER BY p.created_at DESC`
	}

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	products := []product.Product{}
	ids := []uuid.UUID{}
	for rows.Next() {
		p, err := scanCatalogProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, *p)
		ids = append(ids, p.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	if len(ids) == 0 {
		return products, nil
	}

	images, err := r.imagesFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if imgs, ok := images[products[i].ID]; ok {
			products[i].Images = imgs
		}
	}
	return products, nil
}

// FindByID retrieves a catalog product with its category, brand and images
func (r *ProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*product.Product, error) {
	p, err := scanCatalogProduct(r.db.QueryRow(ctx, catalogQuery+` WHERE p.id = $1`, id))
	if err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find product: %w", err)
	}

	images, err := r.imagesFor(ctx, []uuid.UUID{id})
	if err != nil {
		return nil, err
	}
	if imgs, ok := images[id]; ok {
		p.Images = imgs
	}
	return p, nil
}

func (r *ProductRepository) imagesFor(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID][]product.Image, error) {
	query := `
		SELECT id, product_id, url, public_id, display_order, created_at
		FROM product_images
		WHERE product_id = ANY($1)
		ORDER BY display_order ASC, created_at ASC
	`
	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to list product images: %w", err)
	}
	defer rows.Close()

	out := make(map[uuid.UUID][]product.Image, len(ids))
	for rows.Next() {
		var img product.Image
		if err := rows.Scan(&img.ID, &img.ProductID, &img.URL, &img.PublicID, &img.DisplayOrder, &img.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan product image: %w", err)
		}
		out[img.ProductID] = append(out[img.ProductID], img)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list product images: %w", err)
	}

	for id := range out {
		product.SortImages(out[id])
	}
	return out, nil
}

// Create inserts a product
func (r *ProductRepository) Create(ctx context.Context, p *product.Product) error {
	query := `
		INSERT INTO products (
			code, name, slug, description, category_id, brand_id, status,
			is_featured, is_new, length, width, height
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRow(
		ctx, query,
		p.Code, p.Name, p.Slug, p.Description, p.CategoryID, p.BrandID, p.Status,
		p.IsFeatured, p.IsNew, p.Length, p.Width, p.Height,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)

	if hasCode(err, codeForeignKeyViolation) {
		return xerrors.ErrInvalidInput
	}
	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update applies changes and returns the stored product
func (r *ProductRepository) Update(ctx context.Context, id uuid.UUID, changes *product.Changes) (*product.Product, error) {
	var b setBuilder
	if changes.Code != nil {
		b.add("code", *changes.Code)
	}
	if changes.Name != nil {
		b.add("name", *changes.Name)
	}
	if changes.Slug != nil {
		b.add("slug", *changes.Slug)
	}
	if changes.Description != nil {
		b.add("description", *changes.Description)
	}
	if changes.CategoryID != nil {
		b.add("category_id", *changes.CategoryID)
	}
	if changes.BrandID != nil {
		b.add("brand_id", *changes.BrandID)
	}
	if changes.Status != nil {
		b.add("status", *changes.Status)
	}
	if changes.IsFeatured != nil {
		b.add("is_featured", *changes.IsFeatured)
	}
	if changes.IsNew != nil {
		b.add("is_new", *changes.IsNew)
	}
	if changes.Length != nil {
		b.add("length", *changes.Length)
	}
	if changes.Width != nil {
		b.add("width", *changes.Width)
	}
	if changes.Height != nil {
		b.add("height", *changes.Height)
	}
	if b.empty() {
		return nil, xerrors.ErrInvalidInput
	}
	b.raw("updated_at = NOW()")

	query, args := b.build("products", id, productColumns)
	p, err := scanProduct(r.db.QueryRow(ctx, query, args...))
	if hasCode(err, codeForeignKeyViolation) {
		return nil, xerrors.ErrInvalidInput
	}
	if err != nil && !errors.Is(err, xerrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return p, err
}

// Delete removes a product
func (r *ProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

// MaxImageOrder returns the highest display order of a product's images, nil
// when it has none
func (r *ProductRepository) MaxImageOrder(ctx context.Context, productID uuid.UUID) (*int, error) {
	var order *int
	err := r.db.QueryRow(ctx, `SELECT MAX(display_order) FROM product_images WHERE product_id = $1`, productID).Scan(&order)
	if err != nil {
		return nil, fmt.Errorf("failed to read image order: %w", err)
	}
	return order, nil
}

// AddImage inserts an image row
func (r *ProductRepository) AddImage(ctx context.Context, img *product.Image) error {
	query := `
		INSERT INTO product_images (product_id, url, public_id, display_order)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, img.ProductID, img.URL, img.PublicID, img.DisplayOrder).
		Scan(&img.ID, &img.CreatedAt)
	if hasCode(err, codeForeignKeyViolation) {
		return xerrors.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to add product image: %w", err)
	}
	return nil
}

// DeleteImage removes an image belonging to productID
func (r *ProductRepository) DeleteImage(ctx context.Context, productID, imageID uuid.UUID) (*product.Image, error) {
	query := `
		DELETE FROM product_images
		WHERE id = $1 AND product_id = $2
		RETURNING id, product_id, url, public_id, display_order, created_at
	`
	var img product.Image
	err := r.db.QueryRow(ctx, query, imageID, productID).
		Scan(&img.ID, &img.ProductID, &img.URL, &img.PublicID, &img.DisplayOrder, &img.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to delete product image: %w", err)
	}
	return &img, nil
}

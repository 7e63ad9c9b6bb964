// internal/domain/category/entity.go
package category

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Category struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Slug         string    `json:"slug" db:"slug"`
	Description  *string   `json:"description" db:"description"`
	Icon         *string   `json:"icon" db:"icon"`
	Color        *string   `json:"color" db:"color"`
	ImageURL     *string   `json:"image_url" db:"image_url"`
	DisplayOrder int       `json:"display_order" db:"display_order"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

type CreateRequest struct {
	Name         string  `json:"name" binding:"required"`
	Description  *string `json:"description"`
	Icon         *string `json:"icon"`
	Color        *string `json:"color"`
	DisplayOrder int     `json:"display_order"`
}

type UpdateRequest struct {
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	Icon         *string `json:"icon"`
	Color        *string `json:"color"`
	DisplayOrder *int    `json:"display_order"`
}

func (r *UpdateRequest) Empty() bool {
	return r.Name == nil && r.Description == nil && r.Icon == nil &&
		r.Color == nil && r.DisplayOrder == nil
}

// Changes is a validated partial update. Slug is set whenever Name is.
type Changes struct {
	Name         *string
	Slug         *string
	Description  *string
	Icon         *string
	Color        *string
	DisplayOrder *int
}

type Repository interface {
	List(ctx context.Context) ([]Category, error)
	Create(ctx context.Context, c *Category) error
	Update(ctx context.Context, id uuid.UUID, changes *Changes) (*Category, error)
	SetImageURL(ctx context.Context, id uuid.UUID, url string) (*Category, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// internal/domain/brand/entity.go
package brand

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Brand struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Slug      string    `json:"slug" db:"slug"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type CreateRequest struct {
	Name string `json:"name" binding:"required"`
}

type UpdateRequest struct {
	Name *string `json:"name"`
}

type Repository interface {
	List(ctx context.Context) ([]Brand, error)
	Create(ctx context.Context, b *Brand) error
	Update(ctx context.Context, id uuid.UUID, name, slug string) (*Brand, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

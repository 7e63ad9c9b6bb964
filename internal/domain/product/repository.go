package product

import (
	"context"

	"github.com/google/uuid"
)

// Filter selects a catalog listing.
type Filter string

const (
	FilterAll        Filter = "all"
	FilterComingSoon Filter = "coming_soon"
	FilterNew        Filter = "new"
)

type Repository interface {
	// List returns products with their category, brand and images.
	List(ctx context.Context, filter Filter) ([]Product, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)
	Create(ctx context.Context, p *Product) error
	Update(ctx context.Context, id uuid.UUID, changes *Changes) (*Product, error)
	Delete(ctx context.Context, id uuid.UUID) error

	MaxImageOrder(ctx context.Context, productID uuid.UUID) (*int, error)
	AddImage(ctx context.Context, img *Image) error
	// DeleteImage removes the image row and returns it.
	DeleteImage(ctx context.Context, productID, imageID uuid.UUID) (*Image, error)
}

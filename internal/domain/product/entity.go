// internal/domain/product/entity.go
package product

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusAvailable  Status = "available"
	StatusOutOfStock Status = "out_of_stock"
)

func (s Status) Valid() bool {
	return s == StatusAvailable || s == StatusOutOfStock
}

type Product struct {
	ID          uuid.UUID     `json:"id" db:"id"`
	Code        string        `json:"code" db:"code"`
	Name        string        `json:"name" db:"name"`
	Slug        string        `json:"slug" db:"slug"`
	Description *string       `json:"description" db:"description"`
	CategoryID  uuid.NullUUID `json:"category_id" db:"category_id"`
	BrandID     uuid.NullUUID `json:"brand_id" db:"brand_id"`
	Status      Status        `json:"status" db:"status"`
	IsFeatured  bool          `json:"is_featured" db:"is_featured"`
	IsNew       bool          `json:"is_new" db:"is_new"`
	Length      *float64      `json:"length" db:"length"`
	Width       *float64      `json:"width" db:"width"`
	Height      *float64      `json:"height" db:"height"`
	CreatedAt   time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at" db:"updated_at"`

	// Populated by catalog reads only.
	Category *CategoryRef `json:"category,omitempty"`
	Brand    *BrandRef    `json:"brand,omitempty"`
	Images   []Image      `json:"images,omitempty"`
}

// CategoryRef is the category summary embedded in catalog reads.
type CategoryRef struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Slug  string    `json:"slug"`
	Icon  *string   `json:"icon"`
	Color *string   `json:"color"`
}

// BrandRef is the brand summary embedded in catalog reads.
type BrandRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Slug string    `json:"slug"`
}

type Image struct {
	ID           uuid.UUID `json:"id" db:"id"`
	ProductID    uuid.UUID `json:"product_id" db:"product_id"`
	URL          string    `json:"url" db:"url"`
	PublicID     *string   `json:"-" db:"public_id"`
	DisplayOrder int       `json:"display_order" db:"display_order"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// SortImages orders images by display order, keeping insertion order for
// ties.
func SortImages(images []Image) {
	sort.SliceStable(images, func(i, j int) bool {
		return images[i].DisplayOrder < images[j].DisplayOrder
	})
}

// NextDisplayOrder returns the order for an image appended after current,
// the highest existing order (nil when there are none).
func NextDisplayOrder(current *int) int {
	if current == nil {
		return 0
	}
	return *current + 1
}

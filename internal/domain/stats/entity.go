// internal/domain/stats/entity.go
package stats

import "context"

// Dashboard holds the admin overview counters.
type Dashboard struct {
	TotalProducts     int64 `json:"totalProducts"`
	AvailableProducts int64 `json:"availableProducts"`
	OutOfStock        int64 `json:"outOfStock"`
	TotalCategories   int64 `json:"totalCategories"`
	TotalBrands       int64 `json:"totalBrands"`
	UnreadMessages    int64 `json:"unreadMessages"`
}

type Repository interface {
	Dashboard(ctx context.Context) (*Dashboard, error)
}

// internal/repository/postgres/stats_repo.go
package postgres

import (
	"context"
	"fmt"

	"catalog-service/internal/domain/stats"

	"github.com/jackc/pgx/v5/pgxpool"
)

type StatsRepository struct {
	db *pgxpool.Pool
}

func NewStatsRepository(db *pgxpool.Pool) *StatsRepository {
	return &StatsRepository{db: db}
}

// Dashboard counts catalog and inbox totals in one round trip
func (r *StatsRepository) Dashboard(ctx context.Context) (*stats.Dashboard, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM products) AS total_products,
			(SELECT COUNT(*) FROM products WHERE status = 'available') AS available_products,
			(SELECT COUNT(*) FROM categories) AS total_categories,
			(SELECT COUNT(*) FROM brands) AS total_brands,
			(SELECT COUNT(*) FROM contacts WHERE is_read = false) AS unread_messages
	`

	var d stats.Dashboard
	err := r.db.QueryRow(ctx, query).Scan(
		&d.TotalProducts,
		&d.AvailableProducts,
		&d.TotalCategories,
		&d.TotalBrands,
		&d.UnreadMessages,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}

	d.OutOfStock = d.TotalProducts - d.AvailableProducts
	return &d, nil
}

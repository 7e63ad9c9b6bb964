// internal/service/stats/stats.go
package stats

import (
	"context"

	"catalog-service/internal/domain/stats"
	xerrors "catalog-service/internal/pkg/errors"

	"go.uber.org/zap"
)

type StatsService struct {
	repo   stats.Repository
	logger *zap.Logger
}

func NewStatsService(repo stats.Repository, logger *zap.Logger) *StatsService {
	return &StatsService{repo: repo, logger: logger}
}

// Dashboard returns the admin overview counters
func (s *StatsService) Dashboard(ctx context.Context) (*stats.Dashboard, error) {
	d, err := s.repo.Dashboard(ctx)
	if err != nil {
		s.logger.Error("failed to load dashboard stats", zap.Error(err))
		return nil, xerrors.Upstream("Error al obtener estadísticas", err)
	}
	return d, nil
}

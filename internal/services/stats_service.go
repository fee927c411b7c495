package services

import (
	"context"
	"errors"

	"github.com/tropicaldog17/fxledger/internal/db"
	apperrors "github.com/tropicaldog17/fxledger/internal/errors"
	"github.com/tropicaldog17/fxledger/internal/models"
	"github.com/tropicaldog17/fxledger/internal/repositories"
)

// statsService implements the StatsService interface
type statsService struct {
	stats repositories.DailyStatRepository
}

// NewStatsService creates a new stats service
func NewStatsService(database *db.DB) StatsService {
	return &statsService{stats: repositories.NewDailyStatRepository(database)}
}

// GetTodayStat returns today's stat, or nil when no transaction has folded
// into today yet.
func (s *statsService) GetTodayStat(ctx context.Context) (*models.DailyStat, error) {
	stat, err := s.stats.GetByDate(ctx, models.Today())
	if err != nil {
		var notFound *apperrors.ErrNotFound
		if errors.As(err, &notFound) {
			return nil, nil
		}
		return nil, err
	}
	return stat, nil
}

func (s *statsService) GetStatByDate(ctx context.Context, date string) (*models.DailyStat, error) {
	return s.stats.GetByDate(ctx, date)
}

func (s *statsService) ListStats(ctx context.Context, limit int) ([]*models.DailyStat, error) {
	return s.stats.List(ctx, limit)
}

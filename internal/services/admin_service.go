package services

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/tropicaldog17/fxledger/internal/db"
	apperrors "github.com/tropicaldog17/fxledger/internal/errors"
	"github.com/tropicaldog17/fxledger/internal/models"
	"github.com/tropicaldog17/fxledger/internal/repositories"
)

// adminService implements the AdminService interface
type adminService struct {
	db           *db.DB
	currencies   repositories.CurrencyRepository
	positions    repositories.PositionRepository
	transactions repositories.TransactionRepository
	stats        repositories.DailyStatRepository
	logger       *zap.Logger
}

// NewAdminService creates a new admin service
func NewAdminService(database *db.DB, logger *zap.Logger) AdminService {
	return &adminService{
		db:           database,
		currencies:   repositories.NewCurrencyRepository(database),
		positions:    repositories.NewPositionRepository(database),
		transactions: repositories.NewTransactionRepository(database),
		stats:        repositories.NewDailyStatRepository(database),
		logger:       logger,
	}
}

// ResetAll zeroes every position (re-seeding its average buy price from the
// currency's current market rate), deletes the entire transaction history and
// resets today's stat, all in one store transaction. Idempotent. Destructive
// and irreversible; confirming with the operator is the caller's concern.
func (s *adminService) ResetAll(ctx context.Context) error {
	err := s.db.WithContext(ctx).Transaction(func(gtx *gorm.DB) error {
		currencies := s.currencies.WithTx(gtx)
		positions := s.positions.WithTx(gtx)
		transactions := s.transactions.WithTx(gtx)
		stats := s.stats.WithTx(gtx)

		all, err := currencies.List(ctx)
		if err != nil {
			return err
		}

		for _, currency := range all {
			position, err := positions.GetByCurrencyID(ctx, currency.ID)
			if err != nil {
				var notFound *apperrors.ErrNotFound
				if !errors.As(err, &notFound) {
					return err
				}
				position = &models.Position{CurrencyID: currency.ID}
			}
			position.Reset(currency.Rate)
			if err := positions.Upsert(ctx, position); err != nil {
				return err
			}
		}

		if err := transactions.DeleteAll(ctx); err != nil {
			return err
		}

		today := models.Today()
		stat, err := stats.GetByDate(ctx, today)
		if err != nil {
			var notFound *apperrors.ErrNotFound
			if !errors.As(err, &notFound) {
				return err
			}
			stat = &models.DailyStat{Date: today}
		}
		stat.Profit = decimal.Zero
		stat.TransactionCount = 0
		return stats.Save(ctx, stat)
	})
	if err != nil {
		return err
	}

	s.logger.Warn("ledger reset: all positions zeroed, transaction history deleted")
	return nil
}

// DeleteTransaction removes a ledger row without reversing its accounting
// effects. Out-of-band correction path only; the inventory position and daily
// stats are left as they are.
func (s *adminService) DeleteTransaction(ctx context.Context, id string) error {
	if err := s.transactions.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Warn("transaction deleted out of band", zap.String("transaction_id", id))
	return nil
}

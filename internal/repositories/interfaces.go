package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/tropicaldog17/fxledger/internal/models"
)

// CurrencyRepository handles currency master-data persistence.
type CurrencyRepository interface {
	Create(ctx context.Context, currency *models.Currency) error
	GetByID(ctx context.Context, id uint) (*models.Currency, error)
	GetByCode(ctx context.Context, code string) (*models.Currency, error)
	List(ctx context.Context) ([]*models.Currency, error)
	Update(ctx context.Context, currency *models.Currency) error
	WithTx(tx *gorm.DB) CurrencyRepository
}

// PositionRepository handles inventory position persistence.
type PositionRepository interface {
	GetByCurrencyID(ctx context.Context, currencyID uint) (*models.Position, error)
	Upsert(ctx context.Context, position *models.Position) error
	List(ctx context.Context) ([]*models.Position, error)
	WithTx(tx *gorm.DB) PositionRepository
}

// TransactionRepository handles the immutable transaction log.
type TransactionRepository interface {
	Create(ctx context.Context, tx *models.Transaction) error
	GetByID(ctx context.Context, id string) (*models.Transaction, error)
	List(ctx context.Context, filter *models.TransactionFilter) ([]*models.Transaction, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
	WithTx(tx *gorm.DB) TransactionRepository
}

// DailyStatRepository handles the per-date realized profit aggregate.
type DailyStatRepository interface {
	GetByDate(ctx context.Context, date string) (*models.DailyStat, error)
	Save(ctx context.Context, stat *models.DailyStat) error
	List(ctx context.Context, limit int) ([]*models.DailyStat, error)
	WithTx(tx *gorm.DB) DailyStatRepository
}

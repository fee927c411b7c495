package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/tropicaldog17/fxledger/internal/models"
)

// Config holds behavior switches resolved once at wiring time.
type Config struct {
	// CountBuysInDailyStat controls whether buy transactions increment the
	// daily stat's transaction count. Buys never contribute profit either way;
	// the default (false) counts only profit-realizing sells.
	CountBuysInDailyStat bool
}

// BuyRequest is one user-submitted purchase intent.
type BuyRequest struct {
	CurrencyID uint
	Amount     decimal.Decimal
	Rate       decimal.Decimal
	Note       *string
}

// SellRequest is one user-submitted sale intent.
type SellRequest struct {
	CurrencyID uint
	Amount     decimal.Decimal
	Rate       decimal.Decimal
	Note       *string
}

// TransactionService turns buy/sell intents into consistent persisted changes.
type TransactionService interface {
	ProcessBuy(ctx context.Context, req *BuyRequest) (*models.Transaction, error)
	ProcessSell(ctx context.Context, req *SellRequest) (*models.Transaction, error)
	GetTransaction(ctx context.Context, id string) (*models.Transaction, error)
	ListTransactions(ctx context.Context, filter *models.TransactionFilter) ([]*models.Transaction, error)
}

// CurrencyService manages currency master data and its inventory positions.
type CurrencyService interface {
	CreateCurrency(ctx context.Context, currency *models.Currency) (*models.CurrencyInventory, error)
	UpdateRate(ctx context.Context, currencyID uint, rate decimal.Decimal) (*models.Currency, error)
	GetCurrency(ctx context.Context, currencyID uint) (*models.Currency, error)
	ListCurrencies(ctx context.Context) ([]*models.Currency, error)
	ListCurrenciesWithInventory(ctx context.Context) ([]*models.CurrencyInventory, error)
}

// StatsService exposes the daily realized-profit aggregates.
type StatsService interface {
	GetTodayStat(ctx context.Context) (*models.DailyStat, error)
	GetStatByDate(ctx context.Context, date string) (*models.DailyStat, error)
	ListStats(ctx context.Context, limit int) ([]*models.DailyStat, error)
}

// AdminService holds destructive administrative operations.
type AdminService interface {
	ResetAll(ctx context.Context) error
	DeleteTransaction(ctx context.Context, id string) error
}

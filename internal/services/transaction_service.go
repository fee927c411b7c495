package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/tropicaldog17/fxledger/internal/db"
	apperrors "github.com/tropicaldog17/fxledger/internal/errors"
	"github.com/tropicaldog17/fxledger/internal/models"
	"github.com/tropicaldog17/fxledger/internal/repositories"
)

// transactionService implements the TransactionService interface
type transactionService struct {
	db           *db.DB
	currencies   repositories.CurrencyRepository
	positions    repositories.PositionRepository
	transactions repositories.TransactionRepository
	stats        repositories.DailyStatRepository
	logger       *zap.Logger
	cfg          Config
}

// NewTransactionService creates a new transaction service
func NewTransactionService(database *db.DB, logger *zap.Logger, cfg Config) TransactionService {
	return &transactionService{
		db:           database,
		currencies:   repositories.NewCurrencyRepository(database),
		positions:    repositories.NewPositionRepository(database),
		transactions: repositories.NewTransactionRepository(database),
		stats:        repositories.NewDailyStatRepository(database),
		logger:       logger,
		cfg:          cfg,
	}
}

// ProcessBuy records a purchase: the position's amount grows by the bought
// amount and its average buy price is re-weighted. The position update, the
// transaction insert and any stat fold commit as one unit or not at all.
func (s *transactionService) ProcessBuy(ctx context.Context, req *BuyRequest) (*models.Transaction, error) {
	if err := validateIntent(req.CurrencyID, req.Amount, req.Rate); err != nil {
		return nil, err
	}

	var created *models.Transaction
	err := s.db.WithContext(ctx).Transaction(func(gtx *gorm.DB) error {
		currencies := s.currencies.WithTx(gtx)
		positions := s.positions.WithTx(gtx)
		transactions := s.transactions.WithTx(gtx)

		currency, err := currencies.GetByID(ctx, req.CurrencyID)
		if err != nil {
			return err
		}

		// Re-read the position inside the transaction scope so concurrent
		// buys cannot blend against a stale amount.
		position, err := positions.GetByCurrencyID(ctx, req.CurrencyID)
		if err != nil {
			var notFound *apperrors.ErrNotFound
			if !errors.As(err, &notFound) {
				return err
			}
			position = &models.Position{
				CurrencyID:  currency.ID,
				AvgBuyPrice: currency.Rate,
			}
		}

		if err := position.ApplyBuy(req.Amount, req.Rate); err != nil {
			return err
		}
		if err := positions.Upsert(ctx, position); err != nil {
			return err
		}

		tx := &models.Transaction{
			ID:         uuid.NewString(),
			CurrencyID: req.CurrencyID,
			Type:       models.TypeBuy,
			Amount:     req.Amount,
			Rate:       req.Rate,
			Note:       req.Note,
			Profit:     decimal.Zero,
		}
		if err := tx.PreSave(); err != nil {
			return err
		}
		if err := transactions.Create(ctx, tx); err != nil {
			return err
		}

		if s.cfg.CountBuysInDailyStat {
			if err := s.foldDailyStat(ctx, gtx, decimal.Zero); err != nil {
				return err
			}
		}

		created = tx
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("buy processed",
		zap.Uint("currency_id", created.CurrencyID),
		zap.String("transaction_id", created.ID),
		zap.String("amount", created.Amount.String()),
		zap.String("rate", created.Rate.String()))
	return created, nil
}

// ProcessSell records a sale: stock sufficiency is checked against the
// position read inside the transaction scope, profit is realized against the
// unchanged average buy price, and the day's stat absorbs the profit.
func (s *transactionService) ProcessSell(ctx context.Context, req *SellRequest) (*models.Transaction, error) {
	if err := validateIntent(req.CurrencyID, req.Amount, req.Rate); err != nil {
		return nil, err
	}

	var created *models.Transaction
	err := s.db.WithContext(ctx).Transaction(func(gtx *gorm.DB) error {
		positions := s.positions.WithTx(gtx)
		transactions := s.transactions.WithTx(gtx)

		// Selling a currency never bought is invalid.
		position, err := positions.GetByCurrencyID(ctx, req.CurrencyID)
		if err != nil {
			return err
		}

		profit, err := position.ApplySell(req.Amount, req.Rate)
		if err != nil {
			return err
		}
		if err := positions.Upsert(ctx, position); err != nil {
			return err
		}

		tx := &models.Transaction{
			ID:         uuid.NewString(),
			CurrencyID: req.CurrencyID,
			Type:       models.TypeSell,
			Amount:     req.Amount,
			Rate:       req.Rate,
			Note:       req.Note,
			Profit:     profit,
		}
		if err := tx.PreSave(); err != nil {
			return err
		}
		if err := transactions.Create(ctx, tx); err != nil {
			return err
		}

		if err := s.foldDailyStat(ctx, gtx, profit); err != nil {
			return err
		}

		created = tx
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("sell processed",
		zap.Uint("currency_id", created.CurrencyID),
		zap.String("transaction_id", created.ID),
		zap.String("amount", created.Amount.String()),
		zap.String("rate", created.Rate.String()),
		zap.String("profit", created.Profit.String()))
	return created, nil
}

// foldDailyStat adds one transaction's profit into today's stat, creating the
// row lazily on the first fold of the day. Callers must hold the transaction
// scope; all stat updates route through here so the aggregate has one writer
// path.
func (s *transactionService) foldDailyStat(ctx context.Context, gtx *gorm.DB, profit decimal.Decimal) error {
	stats := s.stats.WithTx(gtx)

	today := models.Today()
	stat, err := stats.GetByDate(ctx, today)
	if err != nil {
		var notFound *apperrors.ErrNotFound
		if !errors.As(err, &notFound) {
			return err
		}
		stat = &models.DailyStat{Date: today}
	}

	stat.Fold(profit)
	return stats.Save(ctx, stat)
}

func (s *transactionService) GetTransaction(ctx context.Context, id string) (*models.Transaction, error) {
	return s.transactions.GetByID(ctx, id)
}

func (s *transactionService) ListTransactions(ctx context.Context, filter *models.TransactionFilter) ([]*models.Transaction, error) {
	return s.transactions.List(ctx, filter)
}

func validateIntent(currencyID uint, amount, rate decimal.Decimal) error {
	if currencyID == 0 {
		return &apperrors.ErrValidation{Field: "currency_id", Message: "is required"}
	}
	if !amount.IsPositive() {
		return &apperrors.ErrValidation{Field: "amount", Message: "must be positive"}
	}
	if !rate.IsPositive() {
		return &apperrors.ErrValidation{Field: "rate", Message: "must be positive"}
	}
	return nil
}

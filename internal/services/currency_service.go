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

// currencyService implements the CurrencyService interface
type currencyService struct {
	db         *db.DB
	currencies repositories.CurrencyRepository
	positions  repositories.PositionRepository
	logger     *zap.Logger
}

// NewCurrencyService creates a new currency service
func NewCurrencyService(database *db.DB, logger *zap.Logger) CurrencyService {
	return &currencyService{
		db:         database,
		currencies: repositories.NewCurrencyRepository(database),
		positions:  repositories.NewPositionRepository(database),
		logger:     logger,
	}
}

// CreateCurrency creates the currency and its zeroed inventory position as one
// unit. The position's average buy price is seeded from the creation rate.
func (s *currencyService) CreateCurrency(ctx context.Context, currency *models.Currency) (*models.CurrencyInventory, error) {
	currency.Normalize()
	if err := currency.Validate(); err != nil {
		return nil, err
	}

	var result *models.CurrencyInventory
	err := s.db.WithContext(ctx).Transaction(func(gtx *gorm.DB) error {
		currencies := s.currencies.WithTx(gtx)
		positions := s.positions.WithTx(gtx)

		if _, err := currencies.GetByCode(ctx, currency.Code); err == nil {
			return &apperrors.ErrConflict{Field: "code", Value: currency.Code}
		} else {
			var notFound *apperrors.ErrNotFound
			if !errors.As(err, &notFound) {
				return err
			}
		}

		if err := currencies.Create(ctx, currency); err != nil {
			return err
		}

		position := &models.Position{
			CurrencyID:  currency.ID,
			Amount:      decimal.Zero,
			AvgBuyPrice: currency.Rate,
			TotalValue:  decimal.Zero,
		}
		if err := positions.Upsert(ctx, position); err != nil {
			return err
		}

		result = &models.CurrencyInventory{Currency: *currency, Position: *position}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("currency created",
		zap.Uint("currency_id", result.Currency.ID),
		zap.String("code", result.Currency.Code),
		zap.String("rate", result.Currency.Rate.String()))
	return result, nil
}

// UpdateRate sets the currency's current market rate. It never touches the
// inventory position; cost basis only moves on buys.
func (s *currencyService) UpdateRate(ctx context.Context, currencyID uint, rate decimal.Decimal) (*models.Currency, error) {
	if !rate.IsPositive() {
		return nil, &apperrors.ErrValidation{Field: "rate", Message: "must be positive"}
	}

	currency, err := s.currencies.GetByID(ctx, currencyID)
	if err != nil {
		return nil, err
	}

	currency.Rate = rate
	if err := s.currencies.Update(ctx, currency); err != nil {
		return nil, err
	}

	s.logger.Info("rate updated",
		zap.Uint("currency_id", currency.ID),
		zap.String("code", currency.Code),
		zap.String("rate", rate.String()))
	return currency, nil
}

func (s *currencyService) GetCurrency(ctx context.Context, currencyID uint) (*models.Currency, error) {
	return s.currencies.GetByID(ctx, currencyID)
}

func (s *currencyService) ListCurrencies(ctx context.Context) ([]*models.Currency, error) {
	return s.currencies.List(ctx)
}

// ListCurrenciesWithInventory returns every currency paired with its position.
// A currency missing its position row (pre-migration data) shows as zeroed.
func (s *currencyService) ListCurrenciesWithInventory(ctx context.Context) ([]*models.CurrencyInventory, error) {
	currencies, err := s.currencies.List(ctx)
	if err != nil {
		return nil, err
	}
	positions, err := s.positions.List(ctx)
	if err != nil {
		return nil, err
	}

	byCurrency := make(map[uint]*models.Position, len(positions))
	for _, p := range positions {
		byCurrency[p.CurrencyID] = p
	}

	result := make([]*models.CurrencyInventory, 0, len(currencies))
	for _, c := range currencies {
		inv := &models.CurrencyInventory{Currency: *c}
		if p, ok := byCurrency[c.ID]; ok {
			inv.Position = *p
		} else {
			inv.Position = models.Position{CurrencyID: c.ID, AvgBuyPrice: c.Rate}
		}
		result = append(result, inv)
	}
	return result, nil
}

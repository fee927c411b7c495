package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/tropicaldog17/fxledger/internal/db"
	apperrors "github.com/tropicaldog17/fxledger/internal/errors"
	"github.com/tropicaldog17/fxledger/internal/models"
)

type currencyRepository struct {
	db *gorm.DB
}

// NewCurrencyRepository creates a new currency repository
func NewCurrencyRepository(database *db.DB) CurrencyRepository {
	return &currencyRepository{db: database.DB}
}

func (r *currencyRepository) WithTx(tx *gorm.DB) CurrencyRepository {
	return &currencyRepository{db: tx}
}

func (r *currencyRepository) Create(ctx context.Context, currency *models.Currency) error {
	if err := r.db.WithContext(ctx).Create(currency).Error; err != nil {
		return &apperrors.ErrStorage{Op: "create currency", Err: err}
	}
	return nil
}

func (r *currencyRepository) GetByID(ctx context.Context, id uint) (*models.Currency, error) {
	var currency models.Currency
	if err := r.db.WithContext(ctx).First(&currency, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &apperrors.ErrNotFound{Entity: "currency", ID: fmt.Sprintf("%d", id)}
		}
		return nil, &apperrors.ErrStorage{Op: "get currency", Err: err}
	}
	return &currency, nil
}

func (r *currencyRepository) GetByCode(ctx context.Context, code string) (*models.Currency, error) {
	var currency models.Currency
	if err := r.db.WithContext(ctx).First(&currency, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &apperrors.ErrNotFound{Entity: "currency", ID: code}
		}
		return nil, &apperrors.ErrStorage{Op: "get currency by code", Err: err}
	}
	return &currency, nil
}

func (r *currencyRepository) List(ctx context.Context) ([]*models.Currency, error) {
	var currencies []*models.Currency
	if err := r.db.WithContext(ctx).Order("code ASC").Find(&currencies).Error; err != nil {
		return nil, &apperrors.ErrStorage{Op: "list currencies", Err: err}
	}
	return currencies, nil
}

func (r *currencyRepository) Update(ctx context.Context, currency *models.Currency) error {
	result := r.db.WithContext(ctx).Model(&models.Currency{}).
		Where("id = ?", currency.ID).
		Updates(map[string]interface{}{
			"name":    currency.Name,
			"country": currency.Country,
			"rate":    currency.Rate,
		})
	if result.Error != nil {
		return &apperrors.ErrStorage{Op: "update currency", Err: result.Error}
	}
	if result.RowsAffected == 0 {
		return &apperrors.ErrNotFound{Entity: "currency", ID: fmt.Sprintf("%d", currency.ID)}
	}
	return nil
}

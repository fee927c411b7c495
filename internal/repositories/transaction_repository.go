package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/tropicaldog17/fxledger/internal/db"
	apperrors "github.com/tropicaldog17/fxledger/internal/errors"
	"github.com/tropicaldog17/fxledger/internal/models"
)

type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(database *db.DB) TransactionRepository {
	return &transactionRepository{db: database.DB}
}

func (r *transactionRepository) WithTx(tx *gorm.DB) TransactionRepository {
	return &transactionRepository{db: tx}
}

func (r *transactionRepository) Create(ctx context.Context, tx *models.Transaction) error {
	if err := r.db.WithContext(ctx).Create(tx).Error; err != nil {
		return &apperrors.ErrStorage{Op: "create transaction", Err: err}
	}
	return nil
}

func (r *transactionRepository) GetByID(ctx context.Context, id string) (*models.Transaction, error) {
	var tx models.Transaction
	if err := r.db.WithContext(ctx).First(&tx, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &apperrors.ErrNotFound{Entity: "transaction", ID: id}
		}
		return nil, &apperrors.ErrStorage{Op: "get transaction", Err: err}
	}
	return &tx, nil
}

// List returns transactions ordered newest-first, optionally filtered by
// currency and type, with limit/offset pagination.
func (r *transactionRepository) List(ctx context.Context, filter *models.TransactionFilter) ([]*models.Transaction, error) {
	query := r.db.WithContext(ctx)

	if filter != nil {
		if filter.CurrencyID != nil {
			query = query.Where("currency_id = ?", *filter.CurrencyID)
		}
		if filter.Type != nil && *filter.Type != "" {
			query = query.Where("type = ?", *filter.Type)
		}
	}

	query = query.Order("created_at DESC, id DESC")

	if filter != nil && filter.Limit > 0 {
		query = query.Limit(filter.Limit)
		if filter.Offset > 0 {
			query = query.Offset(filter.Offset)
		}
	}

	var transactions []*models.Transaction
	if err := query.Find(&transactions).Error; err != nil {
		return nil, &apperrors.ErrStorage{Op: "list transactions", Err: err}
	}
	return transactions, nil
}

func (r *transactionRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Transaction{})
	if result.Error != nil {
		return &apperrors.ErrStorage{Op: "delete transaction", Err: result.Error}
	}
	if result.RowsAffected == 0 {
		return &apperrors.ErrNotFound{Entity: "transaction", ID: id}
	}
	return nil
}

func (r *transactionRepository) DeleteAll(ctx context.Context) error {
	if err := r.db.WithContext(ctx).Where("1 = 1").Delete(&models.Transaction{}).Error; err != nil {
		return &apperrors.ErrStorage{Op: "delete all transactions", Err: err}
	}
	return nil
}

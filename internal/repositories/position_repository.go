package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tropicaldog17/fxledger/internal/db"
	apperrors "github.com/tropicaldog17/fxledger/internal/errors"
	"github.com/tropicaldog17/fxledger/internal/models"
)

type positionRepository struct {
	db *gorm.DB
}

// NewPositionRepository creates a new position repository
func NewPositionRepository(database *db.DB) PositionRepository {
	return &positionRepository{db: database.DB}
}

func (r *positionRepository) WithTx(tx *gorm.DB) PositionRepository {
	return &positionRepository{db: tx}
}

func (r *positionRepository) GetByCurrencyID(ctx context.Context, currencyID uint) (*models.Position, error) {
	var position models.Position
	if err := r.db.WithContext(ctx).First(&position, "currency_id = ?", currencyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &apperrors.ErrNotFound{Entity: "position", ID: fmt.Sprintf("%d", currencyID)}
		}
		return nil, &apperrors.ErrStorage{Op: "get position", Err: err}
	}
	return &position, nil
}

// Upsert persists the position. A fresh position is inserted with
// insert-or-update-on-conflict semantics keyed by currency_id, so a lazy
// creation racing an existing row folds into an update; a loaded position is
// saved in place.
func (r *positionRepository) Upsert(ctx context.Context, position *models.Position) error {
	var err error
	if position.ID == 0 {
		err = r.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "currency_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"amount", "avg_buy_price", "total_value", "updated_at",
			}),
		}).Create(position).Error
	} else {
		err = r.db.WithContext(ctx).Save(position).Error
	}
	if err != nil {
		return &apperrors.ErrStorage{Op: "upsert position", Err: err}
	}
	return nil
}

func (r *positionRepository) List(ctx context.Context) ([]*models.Position, error) {
	var positions []*models.Position
	if err := r.db.WithContext(ctx).Order("currency_id ASC").Find(&positions).Error; err != nil {
		return nil, &apperrors.ErrStorage{Op: "list positions", Err: err}
	}
	return positions, nil
}

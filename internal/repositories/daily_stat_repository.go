package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/tropicaldog17/fxledger/internal/db"
	apperrors "github.com/tropicaldog17/fxledger/internal/errors"
	"github.com/tropicaldog17/fxledger/internal/models"
)

type dailyStatRepository struct {
	db *gorm.DB
}

// NewDailyStatRepository creates a new daily stat repository
func NewDailyStatRepository(database *db.DB) DailyStatRepository {
	return &dailyStatRepository{db: database.DB}
}

func (r *dailyStatRepository) WithTx(tx *gorm.DB) DailyStatRepository {
	return &dailyStatRepository{db: tx}
}

func (r *dailyStatRepository) GetByDate(ctx context.Context, date string) (*models.DailyStat, error) {
	var stat models.DailyStat
	if err := r.db.WithContext(ctx).First(&stat, "date = ?", date).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &apperrors.ErrNotFound{Entity: "daily stat", ID: date}
		}
		return nil, &apperrors.ErrStorage{Op: "get daily stat", Err: err}
	}
	return &stat, nil
}

// Save inserts a new stat row or writes back a loaded one.
func (r *dailyStatRepository) Save(ctx context.Context, stat *models.DailyStat) error {
	if err := r.db.WithContext(ctx).Save(stat).Error; err != nil {
		return &apperrors.ErrStorage{Op: "save daily stat", Err: err}
	}
	return nil
}

func (r *dailyStatRepository) List(ctx context.Context, limit int) ([]*models.DailyStat, error) {
	query := r.db.WithContext(ctx).Order("date DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var stats []*models.DailyStat
	if err := query.Find(&stats).Error; err != nil {
		return nil, &apperrors.ErrStorage{Op: "list daily stats", Err: err}
	}
	return stats, nil
}

package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	apperrors "github.com/tropicaldog17/fxledger/internal/errors"
)

// Currency represents one tradable currency and its current market rate.
type Currency struct {
	ID        uint            `json:"id" gorm:"primaryKey;column:id;autoIncrement"`
	Code      string          `json:"code" gorm:"column:code;type:varchar(10);not null;uniqueIndex"`
	Name      string          `json:"name" gorm:"column:name;type:varchar(100);not null"`
	Country   string          `json:"country" gorm:"column:country;type:varchar(100)"`
	Rate      decimal.Decimal `json:"rate" gorm:"column:rate;type:decimal(30,18);not null"`
	CreatedAt time.Time       `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time       `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

// TableName returns the table name for the Currency model
func (Currency) TableName() string {
	return "currencies"
}

// CurrencyInventory pairs a currency with its inventory position for listing.
type CurrencyInventory struct {
	Currency Currency `json:"currency"`
	Position Position `json:"position"`
}

// Normalize uppercases and trims the code before validation or storage.
func (c *Currency) Normalize() {
	c.Code = strings.ToUpper(strings.TrimSpace(c.Code))
	c.Name = strings.TrimSpace(c.Name)
	c.Country = strings.TrimSpace(c.Country)
}

// Validate validates the currency data
func (c *Currency) Validate() error {
	if c.Code == "" {
		return &apperrors.ErrValidation{Field: "code", Message: "is required"}
	}
	if len(c.Code) > 10 {
		return &apperrors.ErrValidation{Field: "code", Message: "must be 10 characters or less"}
	}
	if c.Name == "" {
		return &apperrors.ErrValidation{Field: "name", Message: "is required"}
	}
	if !c.Rate.IsPositive() {
		return &apperrors.ErrValidation{Field: "rate", Message: "must be positive"}
	}
	return nil
}

package models

import (
	"time"

	"github.com/shopspring/decimal"

	apperrors "github.com/tropicaldog17/fxledger/internal/errors"
)

// Transaction types. The tag is closed: a transaction is exactly a buy or a sell.
const (
	TypeBuy  = "buy"
	TypeSell = "sell"
)

// Transaction is an immutable historical record of one buy or sell.
// Total is stored redundantly for audit even though it is derivable.
// Profit is zero for buys and signed for sells (positive = gain).
type Transaction struct {
	ID         string          `json:"id" gorm:"primaryKey;column:id;type:varchar(36)"`
	CurrencyID uint            `json:"currency_id" gorm:"column:currency_id;not null;index"`
	Type       string          `json:"type" gorm:"column:type;type:varchar(10);not null;index"`
	Amount     decimal.Decimal `json:"amount" gorm:"column:amount;type:decimal(30,18);not null"`
	Rate       decimal.Decimal `json:"rate" gorm:"column:rate;type:decimal(30,18);not null"`
	Total      decimal.Decimal `json:"total" gorm:"column:total;type:decimal(30,18);not null"`
	Note       *string         `json:"note" gorm:"column:note;type:text"`
	Profit     decimal.Decimal `json:"profit" gorm:"column:profit;type:decimal(30,18);not null;default:0"`
	CreatedAt  time.Time       `json:"created_at" gorm:"column:created_at;autoCreateTime;index"`
}

// TableName returns the table name for the Transaction model
func (Transaction) TableName() string {
	return "transactions"
}

// TransactionFilter represents filters for querying transactions
type TransactionFilter struct {
	CurrencyID *uint
	Type       *string
	Limit      int
	Offset     int
}

// Validate validates the transaction data
func (t *Transaction) Validate() error {
	if t.Type != TypeBuy && t.Type != TypeSell {
		return &apperrors.ErrValidation{Field: "type", Message: "must be 'buy' or 'sell'"}
	}
	if t.CurrencyID == 0 {
		return &apperrors.ErrValidation{Field: "currency_id", Message: "is required"}
	}
	if !t.Amount.IsPositive() {
		return &apperrors.ErrValidation{Field: "amount", Message: "must be positive"}
	}
	if !t.Rate.IsPositive() {
		return &apperrors.ErrValidation{Field: "rate", Message: "must be positive"}
	}
	if t.Type == TypeBuy && !t.Profit.IsZero() {
		return &apperrors.ErrValidation{Field: "profit", Message: "must be zero for buys"}
	}
	return nil
}

// CalculateTotal derives and sets the audit total from amount and rate.
func (t *Transaction) CalculateTotal() {
	t.Total = t.Amount.Mul(t.Rate)
}

// PreSave prepares the transaction for saving by deriving the total and validating.
func (t *Transaction) PreSave() error {
	t.CalculateTotal()
	return t.Validate()
}

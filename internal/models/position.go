package models

import (
	"time"

	"github.com/shopspring/decimal"

	apperrors "github.com/tropicaldog17/fxledger/internal/errors"
)

// Position is the inventory held for one currency: the running amount and the
// weighted-average purchase price it was acquired at. It is a materialized
// aggregate over the currency's transactions, never independent data.
type Position struct {
	ID          uint            `json:"id" gorm:"primaryKey;column:id;autoIncrement"`
	CurrencyID  uint            `json:"currency_id" gorm:"column:currency_id;not null;uniqueIndex"`
	Amount      decimal.Decimal `json:"amount" gorm:"column:amount;type:decimal(30,18);not null;default:0"`
	AvgBuyPrice decimal.Decimal `json:"avg_buy_price" gorm:"column:avg_buy_price;type:decimal(30,18);not null;default:0"`
	TotalValue  decimal.Decimal `json:"total_value" gorm:"column:total_value;type:decimal(30,18);not null;default:0"`
	UpdatedAt   time.Time       `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

// TableName returns the table name for the Position model
func (Position) TableName() string {
	return "positions"
}

// ApplyBuy adds a purchased amount at the given rate and recomputes the
// weighted-average buy price:
//
//	newAvg = (oldAmount*oldAvg + amount*rate) / (oldAmount + amount)
//
// A buy into an empty position seeds the average at exactly the incoming rate,
// with no division involved.
func (p *Position) ApplyBuy(amount, rate decimal.Decimal) error {
	if !amount.IsPositive() {
		return &apperrors.ErrValidation{Field: "amount", Message: "must be positive"}
	}
	if !rate.IsPositive() {
		return &apperrors.ErrValidation{Field: "rate", Message: "must be positive"}
	}

	if p.Amount.IsZero() {
		p.Amount = amount
		p.AvgBuyPrice = rate
	} else {
		newAmount := p.Amount.Add(amount)
		totalCost := p.Amount.Mul(p.AvgBuyPrice).Add(amount.Mul(rate))
		p.AvgBuyPrice = totalCost.Div(newAmount)
		p.Amount = newAmount
	}

	p.TotalValue = p.Amount.Mul(p.AvgBuyPrice)
	return nil
}

// SellProfit computes the profit a sell of the given amount at the given rate
// would realize against the current average buy price. Positive means gain,
// negative means loss. Read-only.
func (p *Position) SellProfit(amount, rate decimal.Decimal) decimal.Decimal {
	return amount.Mul(rate.Sub(p.AvgBuyPrice))
}

// ApplySell validates stock sufficiency, reduces the held amount and returns
// the realized profit. The average buy price is carried forward unchanged:
// selling reduces quantity but never the cost basis of what remains.
func (p *Position) ApplySell(amount, rate decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, &apperrors.ErrValidation{Field: "amount", Message: "must be positive"}
	}
	if !rate.IsPositive() {
		return decimal.Zero, &apperrors.ErrValidation{Field: "rate", Message: "must be positive"}
	}
	if amount.GreaterThan(p.Amount) {
		return decimal.Zero, &apperrors.ErrInsufficientStock{
			Requested: amount,
			Available: p.Amount,
		}
	}

	profit := p.SellProfit(amount, rate)
	p.Amount = p.Amount.Sub(amount)
	p.TotalValue = p.Amount.Mul(p.AvgBuyPrice)
	return profit, nil
}

// Reset zeroes the position in place and re-seeds the average buy price from
// the given market rate, so the next buy starts from a clean basis.
func (p *Position) Reset(rate decimal.Decimal) {
	p.Amount = decimal.Zero
	p.AvgBuyPrice = rate
	p.TotalValue = decimal.Zero
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the canonical calendar-date key for daily stats.
const DateLayout = "2006-01-02"

// DailyStat is the realized-profit aggregate for one calendar date.
// It is derived data: given no out-of-band corrections, Profit equals the sum
// of profit across the date's profit-realizing transactions and
// TransactionCount the number of them.
type DailyStat struct {
	ID               uint            `json:"id" gorm:"primaryKey;column:id;autoIncrement"`
	Date             string          `json:"date" gorm:"column:date;type:varchar(10);not null;uniqueIndex"`
	Profit           decimal.Decimal `json:"profit" gorm:"column:profit;type:decimal(30,18);not null;default:0"`
	TransactionCount int             `json:"transaction_count" gorm:"column:transaction_count;not null;default:0"`
	CreatedAt        time.Time       `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time       `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

// TableName returns the table name for the DailyStat model
func (DailyStat) TableName() string {
	return "daily_stats"
}

// Today returns the stat key for the current date.
func Today() string {
	return time.Now().Format(DateLayout)
}

// Fold adds one transaction's realized profit into the aggregate.
func (s *DailyStat) Fold(profit decimal.Decimal) {
	s.Profit = s.Profit.Add(profit)
	s.TransactionCount++
}

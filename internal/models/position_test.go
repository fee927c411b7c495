package models

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	apperrors "github.com/tropicaldog17/fxledger/internal/errors"
)

func TestPositionApplyBuyWeightedAverage(t *testing.T) {
	tests := []struct {
		name       string
		buys       [][2]string // amount, rate
		wantAmount string
		wantAvg    string
		wantTotal  string
	}{
		{
			name:       "first buy seeds average at incoming rate",
			buys:       [][2]string{{"100", "80"}},
			wantAmount: "100",
			wantAvg:    "80",
			wantTotal:  "8000",
		},
		{
			name:       "two buys blend into weighted average",
			buys:       [][2]string{{"100", "80"}, {"50", "83"}},
			wantAmount: "150",
			wantAvg:    "81",
			wantTotal:  "12150",
		},
		{
			name:       "three buys accumulate correctly",
			buys:       [][2]string{{"10", "100"}, {"10", "200"}, {"20", "150"}},
			wantAmount: "40",
			wantAvg:    "150",
			wantTotal:  "6000",
		},
		{
			name:       "fractional amounts stay exact",
			buys:       [][2]string{{"0.5", "100.10"}, {"0.5", "100.30"}},
			wantAmount: "1",
			wantAvg:    "100.2",
			wantTotal:  "100.2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Position{}
			for _, b := range tt.buys {
				amount := decimal.RequireFromString(b[0])
				rate := decimal.RequireFromString(b[1])
				if err := p.ApplyBuy(amount, rate); err != nil {
					t.Fatalf("ApplyBuy(%s, %s) failed: %v", b[0], b[1], err)
				}
			}

			if !p.Amount.Equal(decimal.RequireFromString(tt.wantAmount)) {
				t.Errorf("expected amount %s, got %s", tt.wantAmount, p.Amount)
			}
			if !p.AvgBuyPrice.Equal(decimal.RequireFromString(tt.wantAvg)) {
				t.Errorf("expected avg buy price %s, got %s", tt.wantAvg, p.AvgBuyPrice)
			}
			if !p.TotalValue.Equal(decimal.RequireFromString(tt.wantTotal)) {
				t.Errorf("expected total value %s, got %s", tt.wantTotal, p.TotalValue)
			}
		})
	}
}

func TestPositionApplyBuyRejectsNonPositiveInputs(t *testing.T) {
	p := &Position{}

	if err := p.ApplyBuy(decimal.Zero, decimal.NewFromInt(80)); err == nil {
		t.Error("expected error for zero amount")
	}
	if err := p.ApplyBuy(decimal.NewFromInt(-5), decimal.NewFromInt(80)); err == nil {
		t.Error("expected error for negative amount")
	}
	if err := p.ApplyBuy(decimal.NewFromInt(5), decimal.Zero); err == nil {
		t.Error("expected error for zero rate")
	}

	if !p.Amount.IsZero() {
		t.Errorf("position mutated by rejected buys: amount %s", p.Amount)
	}
}

func TestPositionSellNeverMutatesAvgBuyPrice(t *testing.T) {
	p := &Position{}
	if err := p.ApplyBuy(decimal.NewFromInt(100), decimal.NewFromInt(80)); err != nil {
		t.Fatalf("ApplyBuy failed: %v", err)
	}

	profit, err := p.ApplySell(decimal.NewFromInt(40), decimal.NewFromInt(90))
	if err != nil {
		t.Fatalf("ApplySell failed: %v", err)
	}

	if !profit.Equal(decimal.NewFromInt(400)) {
		t.Errorf("expected profit 400, got %s", profit)
	}
	if !p.Amount.Equal(decimal.NewFromInt(60)) {
		t.Errorf("expected remaining amount 60, got %s", p.Amount)
	}
	if !p.AvgBuyPrice.Equal(decimal.NewFromInt(80)) {
		t.Errorf("expected avg buy price unchanged at 80, got %s", p.AvgBuyPrice)
	}
	if !p.TotalValue.Equal(decimal.NewFromInt(4800)) {
		t.Errorf("expected total value 4800, got %s", p.TotalValue)
	}
}

func TestPositionSellAtLossYieldsNegativeProfit(t *testing.T) {
	p := &Position{}
	if err := p.ApplyBuy(decimal.NewFromInt(100), decimal.NewFromInt(80)); err != nil {
		t.Fatalf("ApplyBuy failed: %v", err)
	}

	profit, err := p.ApplySell(decimal.NewFromInt(50), decimal.NewFromInt(75))
	if err != nil {
		t.Fatalf("ApplySell failed: %v", err)
	}
	if !profit.Equal(decimal.NewFromInt(-250)) {
		t.Errorf("expected profit -250, got %s", profit)
	}
}

func TestPositionApplySellInsufficientStock(t *testing.T) {
	p := &Position{}
	if err := p.ApplyBuy(decimal.NewFromInt(60), decimal.NewFromInt(80)); err != nil {
		t.Fatalf("ApplyBuy failed: %v", err)
	}

	_, err := p.ApplySell(decimal.NewFromInt(100), decimal.NewFromInt(90))
	var insufficient *apperrors.ErrInsufficientStock
	if !errors.As(err, &insufficient) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}
	if !insufficient.Available.Equal(decimal.NewFromInt(60)) {
		t.Errorf("expected available 60, got %s", insufficient.Available)
	}

	// Position must be untouched after a rejected sell.
	if !p.Amount.Equal(decimal.NewFromInt(60)) {
		t.Errorf("expected amount still 60, got %s", p.Amount)
	}
	if !p.AvgBuyPrice.Equal(decimal.NewFromInt(80)) {
		t.Errorf("expected avg buy price still 80, got %s", p.AvgBuyPrice)
	}
}

func TestPositionSellEntireHolding(t *testing.T) {
	p := &Position{}
	if err := p.ApplyBuy(decimal.NewFromInt(25), decimal.NewFromInt(4)); err != nil {
		t.Fatalf("ApplyBuy failed: %v", err)
	}

	profit, err := p.ApplySell(decimal.NewFromInt(25), decimal.NewFromInt(5))
	if err != nil {
		t.Fatalf("ApplySell failed: %v", err)
	}
	if !profit.Equal(decimal.NewFromInt(25)) {
		t.Errorf("expected profit 25, got %s", profit)
	}
	if !p.Amount.IsZero() {
		t.Errorf("expected zero amount, got %s", p.Amount)
	}

	// A buy after closing out seeds a fresh basis.
	if err := p.ApplyBuy(decimal.NewFromInt(10), decimal.NewFromInt(7)); err != nil {
		t.Fatalf("ApplyBuy after close failed: %v", err)
	}
	if !p.AvgBuyPrice.Equal(decimal.NewFromInt(7)) {
		t.Errorf("expected avg re-seeded at 7, got %s", p.AvgBuyPrice)
	}
}

func TestPositionReset(t *testing.T) {
	p := &Position{}
	if err := p.ApplyBuy(decimal.NewFromInt(100), decimal.NewFromInt(80)); err != nil {
		t.Fatalf("ApplyBuy failed: %v", err)
	}

	marketRate := decimal.NewFromFloat(82.5)
	p.Reset(marketRate)

	if !p.Amount.IsZero() {
		t.Errorf("expected zero amount, got %s", p.Amount)
	}
	if !p.AvgBuyPrice.Equal(marketRate) {
		t.Errorf("expected avg re-seeded at %s, got %s", marketRate, p.AvgBuyPrice)
	}
	if !p.TotalValue.IsZero() {
		t.Errorf("expected zero total value, got %s", p.TotalValue)
	}
}

package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
)

func TestErrValidation(t *testing.T) {
	err := &ErrValidation{Field: "amount", Message: "must be positive"}
	if err.Error() != "amount: must be positive" {
		t.Errorf("unexpected message: %s", err.Error())
	}
}

func TestErrInsufficientStockCarriesAvailable(t *testing.T) {
	err := &ErrInsufficientStock{
		Requested: decimal.NewFromInt(100),
		Available: decimal.NewFromInt(60),
	}

	var target *ErrInsufficientStock
	if !stderrors.As(err, &target) {
		t.Fatal("expected errors.As to match ErrInsufficientStock")
	}
	if !target.Available.Equal(decimal.NewFromInt(60)) {
		t.Errorf("expected available 60, got %s", target.Available)
	}
	if err.Error() != "insufficient stock: requested 100, available 60" {
		t.Errorf("unexpected message: %s", err.Error())
	}
}

func TestErrStorageUnwrap(t *testing.T) {
	cause := stderrors.New("connection reset")
	err := &ErrStorage{Op: "process sell", Err: cause}

	if !stderrors.Is(err, cause) {
		t.Error("expected errors.Is to see the wrapped cause")
	}

	wrapped := fmt.Errorf("failed to sell: %w", err)
	var target *ErrStorage
	if !stderrors.As(wrapped, &target) {
		t.Fatal("expected errors.As to match ErrStorage through wrapping")
	}
	if target.Op != "process sell" {
		t.Errorf("unexpected op: %s", target.Op)
	}
}

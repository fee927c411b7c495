package errors

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrValidation reports malformed or out-of-range input on a single field.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return e.Field + ": " + e.Message
}

// ErrNotFound reports a missing entity referenced by id or code.
type ErrNotFound struct {
	Entity string
	ID     string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Entity, e.ID)
}

// ErrConflict reports a uniqueness violation, e.g. a duplicate currency code.
type ErrConflict struct {
	Field string
	Value string
}

func (e *ErrConflict) Error() string {
	return fmt.Sprintf("%s already exists: %s", e.Field, e.Value)
}

// ErrInsufficientStock reports a sell that exceeds the held amount.
// Available is included so callers can render user feedback.
type ErrInsufficientStock struct {
	Requested decimal.Decimal
	Available decimal.Decimal
}

func (e *ErrInsufficientStock) Error() string {
	return fmt.Sprintf("insufficient stock: requested %s, available %s",
		e.Requested.String(), e.Available.String())
}

// ErrStorage wraps an underlying persistence failure. It is surfaced as-is;
// retry policy belongs to the caller.
type ErrStorage struct {
	Op  string
	Err error
}

func (e *ErrStorage) Error() string {
	return fmt.Sprintf("storage failure during %s: %v", e.Op, e.Err)
}

func (e *ErrStorage) Unwrap() error {
	return e.Err
}

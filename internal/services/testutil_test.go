package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tropicaldog17/fxledger/internal/db"
	"github.com/tropicaldog17/fxledger/internal/models"
)

// setupTestDB opens a throwaway sqlite database with the full schema.
func setupTestDB(t *testing.T) *db.DB {
	t.Helper()

	cfg := &db.Config{
		Driver:     "sqlite",
		SQLitePath: filepath.Join(t.TempDir(), "fxledger_test.db"),
	}
	database, err := db.Connect(cfg)
	require.NoError(t, err, "failed to open test database")
	require.NoError(t, database.Migrate(), "failed to migrate test schema")

	t.Cleanup(func() { database.Close() })
	return database
}

// createTestCurrency inserts a currency with its zeroed position and returns it.
func createTestCurrency(t *testing.T, database *db.DB, code string, rate string) *models.Currency {
	t.Helper()

	service := NewCurrencyService(database, zap.NewNop())
	inventory, err := service.CreateCurrency(context.Background(), &models.Currency{
		Code: code,
		Name: code + " test currency",
		Rate: decimal.RequireFromString(rate),
	})
	require.NoError(t, err, "failed to create test currency %s", code)
	return &inventory.Currency
}

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	return decimal.RequireFromString(s)
}

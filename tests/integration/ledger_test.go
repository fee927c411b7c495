// Package integration runs the ledger flows against a real PostgreSQL
// instance started with testcontainers. These tests require Docker and are
// skipped in short mode: go test -short ./... stays container-free.
package integration

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"

	"github.com/tropicaldog17/fxledger/internal/db"
	"github.com/tropicaldog17/fxledger/internal/models"
	"github.com/tropicaldog17/fxledger/internal/services"
)

type testDB struct {
	container testcontainers.Container
	database  *db.DB
}

func setupTestDB(t *testing.T) *testDB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container-based DB tests in short mode")
	}
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("fxledger_test"),
		postgres.WithUsername("fxledger_user"),
		postgres.WithPassword("fxledger_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	if err != nil {
		t.Fatalf("Failed to start PostgreSQL container: %v", err)
	}

	host, err := pgContainer.Host(ctx)
	if err != nil {
		t.Fatalf("Failed to get container host: %v", err)
	}
	port, err := pgContainer.MappedPort(ctx, "5432")
	if err != nil {
		t.Fatalf("Failed to get container port: %v", err)
	}

	database, err := db.Connect(&db.Config{
		Driver:   "postgres",
		Host:     host,
		Port:     port.Port(),
		User:     "fxledger_user",
		Password: "fxledger_password",
		Name:     "fxledger_test",
		SSLMode:  "disable",
	})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	if err := database.Migrate(); err != nil {
		t.Fatalf("Failed to migrate test schema: %v", err)
	}

	t.Cleanup(func() {
		database.Close()
		if err := pgContainer.Terminate(context.Background()); err != nil {
			t.Logf("Failed to terminate container: %v", err)
		}
	})

	return &testDB{container: pgContainer, database: database}
}

// TestLedgerLifecycle walks the full flow on postgres: create a currency,
// buy twice, sell at a gain, check the stat, then reset.
func TestLedgerLifecycle(t *testing.T) {
	tdb := setupTestDB(t)
	ctx := context.Background()

	currencyService := services.NewCurrencyService(tdb.database, zap.NewNop())
	txService := services.NewTransactionService(tdb.database, zap.NewNop(), services.Config{})
	statsService := services.NewStatsService(tdb.database)
	adminService := services.NewAdminService(tdb.database, zap.NewNop())

	inventory, err := currencyService.CreateCurrency(ctx, &models.Currency{
		Code:    "usd",
		Name:    "US Dollar",
		Country: "United States",
		Rate:    decimal.RequireFromString("25000"),
	})
	require.NoError(t, err)
	require.Equal(t, "USD", inventory.Currency.Code)
	currencyID := inventory.Currency.ID

	_, err = txService.ProcessBuy(ctx, &services.BuyRequest{
		CurrencyID: currencyID,
		Amount:     decimal.RequireFromString("100"),
		Rate:       decimal.RequireFromString("24800"),
	})
	require.NoError(t, err)
	_, err = txService.ProcessBuy(ctx, &services.BuyRequest{
		CurrencyID: currencyID,
		Amount:     decimal.RequireFromString("100"),
		Rate:       decimal.RequireFromString("25200"),
	})
	require.NoError(t, err)

	sell, err := txService.ProcessSell(ctx, &services.SellRequest{
		CurrencyID: currencyID,
		Amount:     decimal.RequireFromString("50"),
		Rate:       decimal.RequireFromString("25500"),
	})
	require.NoError(t, err)
	// avg is 25000 after the two buys, so 50 * (25500 - 25000)
	assert.True(t, sell.Profit.Equal(decimal.RequireFromString("25000")),
		"expected profit 25000, got %s", sell.Profit)

	inventories, err := currencyService.ListCurrenciesWithInventory(ctx)
	require.NoError(t, err)
	require.Len(t, inventories, 1)
	assert.True(t, inventories[0].Position.Amount.Equal(decimal.RequireFromString("150")),
		"expected amount 150, got %s", inventories[0].Position.Amount)
	assert.True(t, inventories[0].Position.AvgBuyPrice.Equal(decimal.RequireFromString("25000")),
		"expected avg 25000, got %s", inventories[0].Position.AvgBuyPrice)

	stat, err := statsService.GetTodayStat(ctx)
	require.NoError(t, err)
	require.NotNil(t, stat)
	assert.True(t, stat.Profit.Equal(decimal.RequireFromString("25000")))
	assert.Equal(t, 1, stat.TransactionCount)

	transactions, err := txService.ListTransactions(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, transactions, 3)

	require.NoError(t, adminService.ResetAll(ctx))

	transactions, err = txService.ListTransactions(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, transactions)

	inventories, err = currencyService.ListCurrenciesWithInventory(ctx)
	require.NoError(t, err)
	require.Len(t, inventories, 1)
	assert.True(t, inventories[0].Position.Amount.IsZero())
	assert.True(t, inventories[0].Position.AvgBuyPrice.Equal(inventories[0].Currency.Rate),
		"reset must re-seed avg from the market rate")
}

package main

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/tropicaldog17/fxledger/internal/db"
	"github.com/tropicaldog17/fxledger/internal/handlers"
	"github.com/tropicaldog17/fxledger/internal/logger"
	"github.com/tropicaldog17/fxledger/internal/services"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	log, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	// Database connection
	config := db.NewConfig()
	database, err := db.Connect(config)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer database.Close()

	if err := database.Migrate(); err != nil {
		log.Fatal("failed to migrate schema", zap.Error(err))
	}
	log.Info("database connection established", zap.String("driver", config.Driver))

	cfg := services.Config{
		CountBuysInDailyStat: os.Getenv("COUNT_BUYS_IN_DAILY_STAT") == "true",
	}

	// Initialize services
	currencyService := services.NewCurrencyService(database, log)
	transactionService := services.NewTransactionService(database, log, cfg)
	statsService := services.NewStatsService(database)
	adminService := services.NewAdminService(database, log)

	// Initialize handlers
	currencyHandler := handlers.NewCurrencyHandler(currencyService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	statsHandler := handlers.NewStatsHandler(statsService)
	adminHandler := handlers.NewAdminHandler(adminService)

	// Routes
	router := mux.NewRouter()

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := database.Health(); err != nil {
			http.Error(w, "unhealthy: "+err.Error(), http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"healthy","service":"fxledger"}`))
	}).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/currencies", currencyHandler.CreateCurrency).Methods(http.MethodPost)
	api.HandleFunc("/currencies", currencyHandler.ListCurrencies).Methods(http.MethodGet)
	api.HandleFunc("/currencies/{id}", currencyHandler.GetCurrency).Methods(http.MethodGet)
	api.HandleFunc("/currencies/{id}/rate", currencyHandler.UpdateRate).Methods(http.MethodPut)

	api.HandleFunc("/transactions/buy", transactionHandler.Buy).Methods(http.MethodPost)
	api.HandleFunc("/transactions/sell", transactionHandler.Sell).Methods(http.MethodPost)
	api.HandleFunc("/transactions", transactionHandler.ListTransactions).Methods(http.MethodGet)
	api.HandleFunc("/transactions/{id}", transactionHandler.GetTransaction).Methods(http.MethodGet)
	api.HandleFunc("/transactions/{id}", adminHandler.DeleteTransaction).Methods(http.MethodDelete)

	api.HandleFunc("/stats/today", statsHandler.GetTodayStat).Methods(http.MethodGet)
	api.HandleFunc("/stats", statsHandler.ListStats).Methods(http.MethodGet)

	api.HandleFunc("/admin/reset", adminHandler.Reset).Methods(http.MethodPost)

	// CORS middleware
	corsHandler := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	log.Info("server starting", zap.String("port", port))
	if err := http.ListenAndServe(":"+port, corsHandler(router)); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

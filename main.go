package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"kharcha/api"
	_ "kharcha/docs"
	"kharcha/kv"
	"kharcha/ledger"
)

// @title Kharcha Expense Ledger API
// @version 1.0
// @description A local-first backend for recording personal income and expense transactions.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8880
// @BasePath /api/v1
// @schemes http

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the API token. Only enforced when API_TOKEN is configured.

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		logger.Info().Msg(".env file not found, using environment variables")
	}

	// Get data directory from environment or use default
	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = filepath.Join(".", "data")
	}

	// Open the key-value store
	backend, err := kv.OpenBadger(dataDir)
	if err != nil {
		logger.Fatal().Err(err).Str("data_dir", dataDir).Msg("failed to open data store")
	}
	defer backend.Close()

	// Reclaim value-log space periodically
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			if err := backend.RunGC(); err != nil {
				logger.Warn().Err(err).Msg("value log gc failed")
			}
		}
	}()

	// Build the ledger and load the persisted state
	store := ledger.NewStore(backend, logger)
	store.Load()
	settings := ledger.NewSettings(backend, logger)

	// Set up router
	router := api.SetupRouter(store, settings)

	// Get port from environment or use default
	port := os.Getenv("PORT")
	if port == "" {
		port = "8880"
	}

	// Create server
	server := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		logger.Info().Str("port", port).Int("transactions", len(store.Transactions())).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("shutting down server")

	// Create context with timeout for shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Shutdown server
	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("server forced to shutdown")
	}

	logger.Info().Msg("server exited properly")
}

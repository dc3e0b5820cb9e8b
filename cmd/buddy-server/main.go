// Package main provides the entry point for the buddy HTTP server.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/raphaelgruber/beingbuddy-go/internal/buddy"
	"github.com/raphaelgruber/beingbuddy-go/internal/config"
	"github.com/raphaelgruber/beingbuddy-go/internal/db"
	"github.com/raphaelgruber/beingbuddy-go/internal/llm"
	"github.com/raphaelgruber/beingbuddy-go/internal/metrics"
	"github.com/raphaelgruber/beingbuddy-go/internal/server"
	"github.com/raphaelgruber/beingbuddy-go/internal/store"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	// Setup logger (dual output: stderr text + file JSON)
	logger, cleanup := config.SetupLogger(cfg.LogFile, cfg.LogLevel)
	defer cleanup()

	logger.Info("buddy-server starting",
		"version", server.Version,
		"listen_addr", cfg.ListenAddr,
		"store_backend", cfg.StoreBackend,
		"llm_provider", cfg.LLMProvider,
	)

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	// Choose the storage backend
	var repo store.Repository
	switch cfg.StoreBackend {
	case config.StoreSurreal:
		dbCfg := db.Config{
			URL:       cfg.SurrealDBURL,
			Namespace: cfg.SurrealDBNamespace,
			Database:  cfg.SurrealDBDatabase,
			Username:  cfg.SurrealDBUser,
			Password:  cfg.SurrealDBPass,
			AuthLevel: cfg.SurrealDBAuthLevel,
		}

		connectCtx, connectCancel := context.WithTimeout(ctx, 30*time.Second)
		dbClient, err := db.NewClient(connectCtx, dbCfg, logger)
		connectCancel()
		if err != nil {
			logger.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer func() {
			logger.Info("closing database connection")
			_ = dbClient.Close(context.Background())
		}()

		if err := dbClient.InitSchema(ctx); err != nil {
			logger.Error("failed to initialize database schema", "error", err)
			os.Exit(1)
		}

		repo = store.NewSurrealRepository(dbClient)

	case config.StoreMemory:
		repo = store.NewMemoryRepository()

	default:
		logger.Error("unknown store backend", "backend", cfg.StoreBackend)
		os.Exit(1)
	}

	// Optional generative augmentation; "none" leaves the deterministic
	// fallback replies in place.
	var augmenter llm.Augmenter
	if cfg.LLMProvider != config.ProviderNone {
		model, err := llm.NewModel(cfg)
		if err != nil {
			logger.Error("failed to create augmenter", "error", err)
			os.Exit(1)
		}
		augmenter = model
		logger.Info("augmenter initialized", "model", model.Model())
	} else {
		logger.Info("augmenter disabled, using fallback replies")
	}

	collector := metrics.NewCollector()
	service := buddy.NewService(repo, logger, collector)

	srv := server.New(server.Options{
		ListenAddr: cfg.ListenAddr,
		EnableCORS: cfg.EnableCORS,
	}, service, augmenter, collector, logger)

	logger.Info("server ready")

	if err := srv.Run(ctx); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}

	logger.Info("shutdown complete")
}

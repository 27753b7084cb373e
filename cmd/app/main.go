package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/questward/craftforge/internal/catalog"
	"github.com/questward/craftforge/internal/concurrency"
	"github.com/questward/craftforge/internal/config"
	"github.com/questward/craftforge/internal/crafting"
	"github.com/questward/craftforge/internal/database"
	"github.com/questward/craftforge/internal/database/postgres"
	"github.com/questward/craftforge/internal/event"
	"github.com/questward/craftforge/internal/inventory"
	"github.com/questward/craftforge/internal/leveling"
	"github.com/questward/craftforge/internal/metrics"
	"github.com/questward/craftforge/internal/progression"
	"github.com/questward/craftforge/internal/server"
)

const (
	dbMaxConns      = 10
	dbMaxIdleTime   = 5 * time.Minute
	dbMaxLifetime   = 30 * time.Minute
	shutdownTimeout = 15 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)

	ctx := context.Background()
	connString := cfg.GetDBConnString()

	if err := database.Migrate(ctx, connString); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	dbPool, err := database.NewPool(connString, dbMaxConns, dbMaxIdleTime, dbMaxLifetime)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// Wire the services
	repo := postgres.NewCraftingRepository(dbPool)
	strategy := leveling.NewDefault()
	bus := event.NewMemoryBus()

	if err := metrics.NewEventMetricsCollector().Register(bus); err != nil {
		slog.Error("Failed to register event metrics", "error", err)
		os.Exit(1)
	}

	catalogService := catalog.NewService(repo)
	progressionTracker := progression.NewTracker(repo, strategy)
	inventoryLedger := inventory.NewLedger(repo)
	craftingService := crafting.NewService(repo, strategy, concurrency.NewKeyedMutex(), bus)

	srv := server.NewServer(cfg.Port, cfg.APIKey, nil, dbPool, craftingService, catalogService, progressionTracker, inventoryLedger)

	// Start the server and wait for a shutdown signal
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	case sig := <-stop:
		slog.Info("Shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
		os.Exit(1)
	}

	slog.Info("Server stopped")
}

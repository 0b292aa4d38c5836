package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/food-ordering-api/internal/config"
	"github.com/phrazzld/food-ordering-api/internal/platform/mongo"
	"github.com/phrazzld/food-ordering-api/internal/platform/postgres"
	"github.com/phrazzld/food-ordering-api/internal/store"
)

// Supported values of database.driver.
const (
	driverPostgres = "postgres"
	driverMongo    = "mongo"
)

// gateway openers, swapped in tests.
var (
	openPostgres = func(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (store.Gateway, error) {
		return postgres.Open(ctx, cfg, logger)
	}
	openMongo = func(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (store.Gateway, error) {
		return mongo.Connect(ctx, cfg, logger)
	}
)

// openGateway connects to the backend selected by database.driver.
// The returned gateway has already answered a ping.
func openGateway(ctx context.Context, cfg *config.Config, logger *slog.Logger) (store.Gateway, error) {
	var open func(context.Context, config.DatabaseConfig, *slog.Logger) (store.Gateway, error)
	switch cfg.Database.Driver {
	case driverPostgres, "":
		open = openPostgres
	case driverMongo:
		open = openMongo
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}

	gateway, err := open(ctx, cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", driverName(cfg.Database.Driver), err)
	}

	logger.Info("Database connection established", "driver", driverName(cfg.Database.Driver))
	return gateway, nil
}

func driverName(driver string) string {
	if driver == "" {
		return driverPostgres
	}
	return driver
}

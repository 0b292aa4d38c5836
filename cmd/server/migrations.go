package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/food-ordering-api/internal/platform/postgres"
	"github.com/phrazzld/food-ordering-api/internal/store"
)

// runMigrations runs a goose command when the gateway is backed by Postgres.
// The Mongo backend has no schema; its unique index is created on connect,
// so the command is skipped.
func runMigrations(ctx context.Context, gateway store.Gateway, command string, logger *slog.Logger) error {
	pg, ok := gateway.(*postgres.Gateway)
	if !ok {
		logger.Info("Skipping migrations for non-SQL store", "command", command)
		return nil
	}

	logger.Info("Executing migrations", "command", command)
	if err := postgres.RunMigrations(ctx, pg.DB(), command, logger); err != nil {
		return fmt.Errorf("migration command %q failed: %w", command, err)
	}
	return nil
}

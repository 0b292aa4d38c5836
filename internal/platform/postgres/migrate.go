package postgres

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// migrationsDir is the directory inside migrationFS holding the goose files.
const migrationsDir = "migrations"

// MigrationCommands lists the goose commands RunMigrations accepts.
var MigrationCommands = []string{"up", "down", "reset", "status", "version"}

// ErrUnknownMigrationCommand is returned for a command not in MigrationCommands.
var ErrUnknownMigrationCommand = errors.New("unknown migration command")

// gooseRun is a seam for tests.
var gooseRun = func(ctx context.Context, db *sql.DB, dir, command string) error {
	return goose.RunContext(ctx, command, db, dir)
}

// slogGooseLogger adapts the goose logger interface to slog.
type slogGooseLogger struct {
	logger *slog.Logger
}

func (l *slogGooseLogger) Printf(format string, v ...interface{}) {
	l.logger.Info(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

// Fatalf logs at error level. Unlike goose's default it does not exit;
// the error is returned to the caller instead.
func (l *slogGooseLogger) Fatalf(format string, v ...interface{}) {
	l.logger.Error(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

// Migrate applies every pending embedded migration to db.
func Migrate(ctx context.Context, db *sql.DB) error {
	return RunMigrations(ctx, db, "up", nil)
}

// RunMigrations runs a goose command against the embedded migrations.
// If logger is nil, the default logger is used.
func RunMigrations(ctx context.Context, db *sql.DB, command string, logger *slog.Logger) error {
	if !slices.Contains(MigrationCommands, command) {
		return fmt.Errorf("%w: %q (expected one of %s)",
			ErrUnknownMigrationCommand, command, strings.Join(MigrationCommands, ", "))
	}
	if logger == nil {
		logger = slog.Default()
	}
	log := logger.With(slog.String("component", "migrations"), slog.String("command", command))

	goose.SetBaseFS(migrationFS)
	goose.SetLogger(&slogGooseLogger{logger: log})
	if err := goose.SetDialect("pgx"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	start := time.Now()
	if err := gooseRun(ctx, db, migrationsDir, command); err != nil {
		log.Error("migration command failed",
			"error", err,
			"duration_ms", time.Since(start).Milliseconds())
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("migration command executed successfully",
		"duration_ms", time.Since(start).Milliseconds())
	return nil
}

// Package main implements the entry point for the food ordering API server,
// which registers accounts, issues session tokens and places orders.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/phrazzld/food-ordering-api/internal/platform/postgres"
)

// options holds the command line flags.
type options struct {
	// migrate names a goose command to run instead of serving.
	migrate string
}

func parseFlags(args []string, output io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&opts.migrate, "migrate", "",
		"run a migration command and exit ("+strings.Join(postgres.MigrationCommands, ", ")+")")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	return opts, nil
}

// main loads configuration, sets up logging, opens the store and either runs
// a migration command or serves HTTP until SIGINT or SIGTERM.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:]); err != nil {
		log.Fatalf("Failed to run application: %v", err)
	}
}

func run(ctx context.Context, args []string) error {
	opts, err := parseFlags(args, os.Stderr)
	if err != nil {
		return err
	}

	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	logger, err := setupAppLogger(cfg)
	if err != nil {
		return err
	}

	gateway, err := openGateway(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := gateway.Close(); err != nil {
			logger.Error("Error closing store", "error", err)
		}
	}()

	if opts.migrate != "" {
		return runMigrations(ctx, gateway, opts.migrate, logger)
	}
	if cfg.Database.MigrateOnStart {
		if err := runMigrations(ctx, gateway, "up", logger); err != nil {
			return err
		}
	}

	app, err := newApplication(cfg, logger, gateway)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	slog.Info("Food ordering API starting", "driver", cfg.Database.Driver)
	return app.Run(ctx)
}

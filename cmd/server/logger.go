package main

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/food-ordering-api/internal/config"
	"github.com/phrazzld/food-ordering-api/internal/platform/logger"
)

// setupAppLogger configures the default logger from config and logs the
// loaded settings.
func setupAppLogger(cfg *config.Config) (*slog.Logger, error) {
	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}
	logConfig(cfg, l)
	return l, nil
}

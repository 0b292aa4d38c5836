package main

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/food-ordering-api/internal/config"
)

// loadAppConfig loads the application configuration from environment variables or config file.
func loadAppConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// logConfig reports what was loaded without printing secrets.
func logConfig(cfg *config.Config, logger *slog.Logger) {
	logger.Info("Server configuration loaded",
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"driver", cfg.Database.Driver)
	logger.Debug("Database configuration", "url_present", cfg.Database.URL != "", "name", cfg.Database.Name)
	logger.Debug("Auth configuration", "jwt_secret_present", cfg.Auth.JWTSecret != "", "bcrypt_cost", cfg.Auth.BcryptCost)
}

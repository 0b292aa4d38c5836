package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/food-ordering-api/internal/config"
	"github.com/phrazzld/food-ordering-api/internal/service"
	"github.com/phrazzld/food-ordering-api/internal/service/auth"
	"github.com/phrazzld/food-ordering-api/internal/store"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	gateway store.Gateway

	tokens       auth.TokenService
	hasher       auth.PasswordHasher
	authService  service.AuthService
	orderService service.OrderService
}

// newApplication creates the services on top of an already opened gateway.
// The application does not take ownership of the gateway; callers close it.
func newApplication(cfg *config.Config, logger *slog.Logger, gateway store.Gateway) (*application, error) {
	if gateway == nil {
		return nil, fmt.Errorf("store gateway is required")
	}

	app := &application{
		config:  cfg,
		logger:  logger,
		gateway: gateway,
	}

	var err error
	app.tokens, err = auth.NewTokenService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token service: %w", err)
	}
	logger.Info("Token service initialized", "token_lifetime", auth.TokenLifetime.String())

	app.hasher = auth.NewBcryptHasher(cfg.Auth.BcryptCost)

	app.authService = service.NewAuthService(gateway, app.hasher, app.tokens, logger)
	app.orderService = service.NewOrderService(gateway, app.tokens, logger)

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

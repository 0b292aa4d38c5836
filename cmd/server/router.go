package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/phrazzld/food-ordering-api/internal/api"
	apiMiddleware "github.com/phrazzld/food-ordering-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: app.config.Server.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders: []string{apiMiddleware.TraceHeader},
		MaxAge:         300,
	}))
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))
	r.Use(apiMiddleware.Recoverer)

	authHandler := api.NewAuthHandler(app.authService)
	orderHandler := api.NewOrderHandler(app.orderService)
	healthHandler := api.NewHealthHandler(app.gateway)

	r.Post("/signup", authHandler.Signup)
	r.Post("/login", authHandler.Login)
	r.Post("/place-order", orderHandler.PlaceOrder)
	r.Get("/health", healthHandler.Health)

	return r
}

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
	"github.com/phrazzld/food-ordering-api/internal/config"
	"github.com/phrazzld/food-ordering-api/internal/store"
)

// pingTimeout bounds the connectivity check performed by Open.
const pingTimeout = 5 * time.Second

// Gateway implements store.Gateway over a database/sql pool.
type Gateway struct {
	db     *sql.DB
	logger *slog.Logger
}

// Ensure Gateway implements store.Gateway interface
var _ store.Gateway = (*Gateway)(nil)

// NewGateway wraps an already opened pool. The gateway takes ownership of db.
// If logger is nil, the default logger is used.
func NewGateway(db *sql.DB, logger *slog.Logger) *Gateway {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Gateway{
		db:     db,
		logger: logger.With(slog.String("component", "postgres_gateway")),
	}
}

// Open creates the pool described by cfg, applies the pool limits and
// checks connectivity before returning.
func Open(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*Gateway, error) {
	db, err := sql.Open("pgx", cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetimeMinutes) * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return NewGateway(db, logger), nil
}

// DB returns the underlying pool, for migrations.
func (g *Gateway) DB() *sql.DB {
	return g.db
}

// WithUsers implements store.Gateway.WithUsers.
func (g *Gateway) WithUsers(
	ctx context.Context,
	fn func(ctx context.Context, users store.UserCollection) error,
) error {
	return g.withConn(ctx, "user", func(conn store.DBTX) error {
		return fn(ctx, NewUserCollection(conn))
	})
}

// WithOrders implements store.Gateway.WithOrders.
func (g *Gateway) WithOrders(
	ctx context.Context,
	fn func(ctx context.Context, orders store.OrderCollection) error,
) error {
	return g.withConn(ctx, "order", func(conn store.DBTX) error {
		return fn(ctx, NewOrderCollection(conn))
	})
}

// withConn leases a dedicated connection for the duration of fn.
// The connection goes back to the pool on every exit path, panics included.
func (g *Gateway) withConn(ctx context.Context, entity string, fn func(conn store.DBTX) error) error {
	conn, err := g.db.Conn(ctx)
	if err != nil {
		return store.NewStoreError(entity, "acquire", "failed to acquire connection", err)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil && !errors.Is(cerr, sql.ErrConnDone) {
			g.logger.Warn("failed to release connection",
				slog.String("entity", entity),
				slog.String("error", cerr.Error()))
		}
	}()

	return fn(conn)
}

// Ping implements store.Gateway.Ping.
func (g *Gateway) Ping(ctx context.Context) error {
	if err := g.db.PingContext(ctx); err != nil {
		return store.NewStoreError("database", "ping", "database unreachable", err)
	}
	return nil
}

// Close implements store.Gateway.Close.
func (g *Gateway) Close() error {
	return g.db.Close()
}

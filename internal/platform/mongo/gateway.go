package mongo

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/food-ordering-api/internal/config"
	"github.com/phrazzld/food-ordering-api/internal/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection and index names.
const (
	UsersCollection  = "users"
	OrdersCollection = "orders"
	EmailIndexName   = "users_email_key"
)

const (
	pingTimeout       = 5 * time.Second
	disconnectTimeout = 10 * time.Second
)

// Gateway implements store.Gateway over a MongoDB database.
type Gateway struct {
	db     *mongo.Database
	logger *slog.Logger
}

// Ensure Gateway implements store.Gateway interface
var _ store.Gateway = (*Gateway)(nil)

// NewGateway wraps a database handle. The gateway takes ownership of its client.
// If logger is nil, the default logger is used.
func NewGateway(db *mongo.Database, logger *slog.Logger) *Gateway {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Gateway{
		db:     db,
		logger: logger.With(slog.String("component", "mongo_gateway")),
	}
}

// Connect creates a client for cfg.URL, checks connectivity and makes sure
// the unique email index exists.
func Connect(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*Gateway, error) {
	opts := options.Client().ApplyURI(cfg.URL)
	if cfg.MaxOpenConns > 0 {
		opts.SetMaxPoolSize(uint64(cfg.MaxOpenConns))
	}
	if cfg.ConnMaxLifetimeMinutes > 0 {
		opts.SetMaxConnIdleTime(time.Duration(cfg.ConnMaxLifetimeMinutes) * time.Minute)
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create mongo client: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	gw := NewGateway(client.Database(cfg.Name), logger)
	if err := gw.EnsureIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return gw, nil
}

// EnsureIndexes creates the unique email index if it does not exist yet.
func (g *Gateway) EnsureIndexes(ctx context.Context) error {
	_, err := g.db.Collection(UsersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName(EmailIndexName),
	})
	if err != nil {
		return fmt.Errorf("failed to create %s index: %w", EmailIndexName, err)
	}
	return nil
}

// WithUsers implements store.Gateway.WithUsers.
func (g *Gateway) WithUsers(
	ctx context.Context,
	fn func(ctx context.Context, users store.UserCollection) error,
) error {
	return g.withSession(ctx, "user", func(sc context.Context) error {
		return fn(sc, NewUserCollection(g.db.Collection(UsersCollection)))
	})
}

// WithOrders implements store.Gateway.WithOrders.
func (g *Gateway) WithOrders(
	ctx context.Context,
	fn func(ctx context.Context, orders store.OrderCollection) error,
) error {
	return g.withSession(ctx, "order", func(sc context.Context) error {
		return fn(sc, NewOrderCollection(g.db.Collection(OrdersCollection)))
	})
}

// withSession runs fn with a session-bound context. The session is ended on
// every exit path, panics included.
func (g *Gateway) withSession(ctx context.Context, entity string, fn func(sc context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return store.NewStoreError(entity, "acquire", "failed to start session", err)
	}

	sess, err := g.db.Client().StartSession()
	if err != nil {
		return store.NewStoreError(entity, "acquire", "failed to start session", err)
	}
	defer sess.EndSession(context.Background())

	return mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		return fn(sc)
	})
}

// Ping implements store.Gateway.Ping.
func (g *Gateway) Ping(ctx context.Context) error {
	if err := g.db.Client().Ping(ctx, readpref.Primary()); err != nil {
		return store.NewStoreError("database", "ping", "database unreachable", err)
	}
	return nil
}

// Close implements store.Gateway.Close.
func (g *Gateway) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), disconnectTimeout)
	defer cancel()
	return g.db.Client().Disconnect(ctx)
}

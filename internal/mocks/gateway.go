package mocks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/phrazzld/food-ordering-api/internal/domain"
	"github.com/phrazzld/food-ordering-api/internal/store"
)

// Gateway is an in-memory store.Gateway for tests.
type Gateway struct {
	mu       sync.Mutex
	users    map[string]domain.User // keyed by email
	orders   []domain.Order
	nextID   int
	acquired int
	released int
	closed   bool

	// Error injection. A non-nil value is returned by the matching operation.
	AcquireErr     error
	FindUserErr    error
	InsertUserErr  error
	InsertOrderErr error
	PingErr        error

	// BeforeUserInsert runs just before a user insert checks uniqueness,
	// outside the lock. Tests use it to simulate a concurrent signup.
	BeforeUserInsert func()

	// Now is the clock used for CreatedAt and PlacedAt.
	Now func() time.Time
}

// Ensure Gateway implements store.Gateway interface
var _ store.Gateway = (*Gateway)(nil)

// NewGateway creates an empty in-memory gateway.
func NewGateway() *Gateway {
	return &Gateway{
		users: make(map[string]domain.User),
		Now:   time.Now,
	}
}

// WithUsers implements store.Gateway.WithUsers.
func (g *Gateway) WithUsers(
	ctx context.Context,
	fn func(ctx context.Context, users store.UserCollection) error,
) error {
	if err := g.acquire(ctx, "user"); err != nil {
		return err
	}
	defer g.release()
	return fn(ctx, &userCollection{g: g})
}

// WithOrders implements store.Gateway.WithOrders.
func (g *Gateway) WithOrders(
	ctx context.Context,
	fn func(ctx context.Context, orders store.OrderCollection) error,
) error {
	if err := g.acquire(ctx, "order"); err != nil {
		return err
	}
	defer g.release()
	return fn(ctx, &orderCollection{g: g})
}

func (g *Gateway) acquire(ctx context.Context, entity string) error {
	if err := ctx.Err(); err != nil {
		return store.NewStoreError(entity, "acquire", "context done", err)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return store.NewStoreError(entity, "acquire", "gateway closed", nil)
	}
	if g.AcquireErr != nil {
		return store.NewStoreError(entity, "acquire", "failed to acquire lease", g.AcquireErr)
	}
	g.acquired++
	return nil
}

func (g *Gateway) release() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.released++
}

// Ping implements store.Gateway.Ping.
func (g *Gateway) Ping(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.PingErr != nil {
		return store.NewStoreError("database", "ping", "database unreachable", g.PingErr)
	}
	return nil
}

// Close implements store.Gateway.Close.
func (g *Gateway) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.closed = true
	return nil
}

// Leases returns how many leases were acquired and released so far.
func (g *Gateway) Leases() (acquired, released int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.acquired, g.released
}

// SeedUser stores a user directly, bypassing the collection.
func (g *Gateway) SeedUser(user domain.User) domain.User {
	g.mu.Lock()
	defer g.mu.Unlock()
	if user.ID == "" {
		user.ID = g.newID("user")
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = g.Now()
	}
	g.users[user.Email] = user
	return user
}

// User returns the stored user with email, if any.
func (g *Gateway) User(email string) (domain.User, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	user, ok := g.users[email]
	return user, ok
}

// UserCount returns the number of stored users.
func (g *Gateway) UserCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.users)
}

// Orders returns a copy of the stored orders in insertion order.
func (g *Gateway) Orders() []domain.Order {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]domain.Order, len(g.orders))
	copy(out, g.orders)
	return out
}

// newID must be called with g.mu held.
func (g *Gateway) newID(prefix string) string {
	g.nextID++
	return fmt.Sprintf("%s-%d", prefix, g.nextID)
}

type userCollection struct {
	g *Gateway
}

func (c *userCollection) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	c.g.mu.Lock()
	defer c.g.mu.Unlock()
	if c.g.FindUserErr != nil {
		return nil, store.NewStoreError("user", "find_by_email", "injected failure", c.g.FindUserErr)
	}
	user, ok := c.g.users[email]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return &user, nil
}

func (c *userCollection) Insert(ctx context.Context, user *domain.User) (string, error) {
	if err := user.Validate(); err != nil {
		return "", err
	}
	if c.g.BeforeUserInsert != nil {
		c.g.BeforeUserInsert()
	}

	c.g.mu.Lock()
	defer c.g.mu.Unlock()
	if c.g.InsertUserErr != nil {
		return "", store.NewStoreError("user", "insert", "injected failure", c.g.InsertUserErr)
	}
	if _, exists := c.g.users[user.Email]; exists {
		return "", store.ErrEmailExists
	}
	user.ID = c.g.newID("user")
	user.CreatedAt = c.g.Now()
	c.g.users[user.Email] = *user
	return user.ID, nil
}

type orderCollection struct {
	g *Gateway
}

func (c *orderCollection) Insert(ctx context.Context, order *domain.Order) (string, error) {
	if err := order.Validate(); err != nil {
		return "", err
	}

	c.g.mu.Lock()
	defer c.g.mu.Unlock()
	if c.g.InsertOrderErr != nil {
		return "", store.NewStoreError("order", "insert", "injected failure", c.g.InsertOrderErr)
	}
	order.ID = c.g.newID("order")
	order.PlacedAt = c.g.Now()
	c.g.orders = append(c.g.orders, *order)
	return order.ID, nil
}

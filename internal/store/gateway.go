package store

import (
	"context"

	"github.com/phrazzld/food-ordering-api/internal/domain"
)

// UserCollection is scoped access to stored users.
type UserCollection interface {
	// FindByEmail returns the user with exactly this email.
	// Returns ErrUserNotFound if no such user exists.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)

	// Insert stores a new user and returns the id assigned by the store.
	// user.ID and user.CreatedAt are set on success.
	// Returns ErrEmailExists if the unique email index rejects the insert.
	Insert(ctx context.Context, user *domain.User) (string, error)
}

// OrderCollection is scoped access to stored orders.
type OrderCollection interface {
	// Insert stores a new order and returns the id assigned by the store.
	// order.ID and order.PlacedAt are set on success.
	Insert(ctx context.Context, order *domain.Order) (string, error)
}

// Gateway owns the connection pool and hands out scoped collection access.
//
// The backend acquires a lease before calling fn and releases it when fn
// returns, on every exit path. The collection passed to fn must not be
// retained after fn returns.
type Gateway interface {
	WithUsers(ctx context.Context, fn func(ctx context.Context, users UserCollection) error) error
	WithOrders(ctx context.Context, fn func(ctx context.Context, orders OrderCollection) error) error

	// Ping checks that the store is reachable.
	Ping(ctx context.Context) error

	// Close releases the pool. The gateway must not be used afterwards.
	Close() error
}

// Users runs fn with scoped user access and returns its result.
func Users[T any](
	ctx context.Context,
	g Gateway,
	fn func(ctx context.Context, users UserCollection) (T, error),
) (T, error) {
	var result T
	err := g.WithUsers(ctx, func(ctx context.Context, users UserCollection) error {
		var err error
		result, err = fn(ctx, users)
		return err
	})
	return result, err
}

// Orders runs fn with scoped order access and returns its result.
func Orders[T any](
	ctx context.Context,
	g Gateway,
	fn func(ctx context.Context, orders OrderCollection) (T, error),
) (T, error) {
	var result T
	err := g.WithOrders(ctx, func(ctx context.Context, orders OrderCollection) error {
		var err error
		result, err = fn(ctx, orders)
		return err
	})
	return result, err
}

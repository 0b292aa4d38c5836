package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/food-ordering-api/internal/domain"
	"github.com/phrazzld/food-ordering-api/internal/service/auth"
	"github.com/phrazzld/food-ordering-api/internal/store"
)

// PlaceOrderInput is the order body sent by the client. It carries no
// identity; the owner of the order always comes from the session token.
type PlaceOrderInput struct {
	Address domain.Address
	Items   []domain.OrderItem
	Contact *domain.Contact
}

// OrderConfirmation is returned once an order is stored.
type OrderConfirmation struct {
	OrderID  string
	PlacedAt time.Time
}

// OrderService places orders for authenticated users.
type OrderService interface {
	// Authenticate extracts and verifies the bearer token in authHeader.
	//
	// Returns auth.ErrMissingToken or auth.ErrMalformedAuthHeader when there is
	// no usable token, and auth.ErrInvalidToken or auth.ErrExpiredToken when the
	// token does not verify.
	Authenticate(ctx context.Context, authHeader string) (auth.Identity, error)

	// PlaceOrderFor stores the order under an identity returned by Authenticate.
	// Returns domain.ErrValidation for a bad order body.
	PlaceOrderFor(ctx context.Context, identity auth.Identity, in PlaceOrderInput) (*OrderConfirmation, error)

	// PlaceOrder runs Authenticate and then PlaceOrderFor.
	PlaceOrder(ctx context.Context, authHeader string, in PlaceOrderInput) (*OrderConfirmation, error)
}

// orderServiceImpl implements the OrderService interface
type orderServiceImpl struct {
	gateway store.Gateway
	tokens  auth.TokenService
	logger  *slog.Logger
}

// Ensure orderServiceImpl implements OrderService interface
var _ OrderService = (*orderServiceImpl)(nil)

// NewOrderService creates a new OrderService. If logger is nil, the default logger is used.
func NewOrderService(gateway store.Gateway, tokens auth.TokenService, logger *slog.Logger) OrderService {
	if gateway == nil || tokens == nil {
		panic("order service dependencies cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &orderServiceImpl{
		gateway: gateway,
		tokens:  tokens,
		logger:  logger.With("component", "order_service"),
	}
}

// Authenticate implements OrderService.Authenticate.
func (s *orderServiceImpl) Authenticate(ctx context.Context, authHeader string) (auth.Identity, error) {
	raw, err := auth.BearerToken(authHeader)
	if err != nil {
		s.logger.Debug("order rejected: no bearer token", "error", err)
		return auth.Identity{}, err
	}

	claims, err := s.tokens.Verify(ctx, raw)
	if err != nil {
		s.logger.Debug("order rejected: token verification failed", "error", err)
		if errors.Is(err, auth.ErrExpiredToken) || errors.Is(err, auth.ErrInvalidToken) {
			return auth.Identity{}, err
		}
		return auth.Identity{}, fmt.Errorf("%w: %v", auth.ErrInvalidToken, err)
	}

	return claims.Identity(), nil
}

// PlaceOrderFor implements OrderService.PlaceOrderFor.
func (s *orderServiceImpl) PlaceOrderFor(
	ctx context.Context,
	identity auth.Identity,
	in PlaceOrderInput,
) (*OrderConfirmation, error) {
	order, err := domain.NewOrder(identity.UserID, identity.Email, in.Address, in.Items, in.Contact)
	if err != nil {
		s.logger.Debug("order rejected: invalid body", "error", err, "user_id", identity.UserID)
		return nil, err
	}

	orderID, err := store.Orders(ctx, s.gateway,
		func(ctx context.Context, orders store.OrderCollection) (string, error) {
			return orders.Insert(ctx, order)
		})
	if err != nil {
		s.logger.Error("failed to store order", "error", err, "user_id", identity.UserID)
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	s.logger.Info("order placed",
		"order_id", orderID,
		"user_id", identity.UserID,
		"item_count", len(order.Items))

	return &OrderConfirmation{OrderID: orderID, PlacedAt: order.PlacedAt}, nil
}

// PlaceOrder implements OrderService.PlaceOrder.
func (s *orderServiceImpl) PlaceOrder(
	ctx context.Context,
	authHeader string,
	in PlaceOrderInput,
) (*OrderConfirmation, error) {
	identity, err := s.Authenticate(ctx, authHeader)
	if err != nil {
		return nil, err
	}
	return s.PlaceOrderFor(ctx, identity, in)
}

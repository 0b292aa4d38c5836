package api

import "github.com/phrazzld/food-ordering-api/internal/domain"

// SignupRequest defines the payload for the signup endpoint.
type SignupRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest defines the payload for the login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// PlaceOrderRequest defines the payload for the place-order endpoint.
// Identity fields such as email or userId are not part of it; any sent by
// the client are dropped during decoding.
type PlaceOrderRequest struct {
	Address domain.Address     `json:"address"`
	Items   []domain.OrderItem `json:"items"`

	// Name and Phone are optional recipient details.
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// contact returns the recipient details, or nil when none were sent.
func (r PlaceOrderRequest) contact() *domain.Contact {
	c := &domain.Contact{Name: r.Name, Phone: r.Phone}
	if c.IsZero() {
		return nil
	}
	return c
}

// Success messages.
const (
	MsgSignedUp    = "signup successful"
	MsgLoggedIn    = "login successful"
	MsgOrderPlaced = "Order placed successfully"
	MsgHealthy     = "ok"
)

package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Order schema versions. Version 1 is the early flat shape (contact details
// and address only); version 2 carries a cart of items and is the only shape
// accepted for new orders.
const (
	OrderSchemaFlat = 1
	OrderSchemaCart = 2
)

// Order is a placed order. Identity fields always come from a verified token.
type Order struct {
	ID            string      `json:"id"`
	UserID        string      `json:"userId"`
	Email         string      `json:"email"`
	Address       Address     `json:"address"`
	Contact       *Contact    `json:"contact,omitempty"`
	Items         []OrderItem `json:"items"`
	SchemaVersion int         `json:"schemaVersion"`
	PlacedAt      time.Time   `json:"placedAt"`
}

// Contact holds optional recipient details.
type Contact struct {
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// IsZero reports whether no contact detail is set.
func (c *Contact) IsZero() bool {
	return c == nil || (strings.TrimSpace(c.Name) == "" && strings.TrimSpace(c.Phone) == "")
}

// NewOrder builds a cart-shaped order for the given identity and validates it.
// The store assigns ID and PlacedAt on insert.
func NewOrder(userID, email string, address Address, items []OrderItem, contact *Contact) (*Order, error) {
	if contact.IsZero() {
		contact = nil
	}
	order := &Order{
		UserID:        userID,
		Email:         email,
		Address:       address,
		Contact:       contact,
		Items:         normalizeItems(items),
		SchemaVersion: OrderSchemaCart,
	}
	if err := order.Validate(); err != nil {
		return nil, err
	}
	return order, nil
}

// Validate checks identity, address and items.
func (o *Order) Validate() error {
	if o.UserID == "" || o.Email == "" {
		return NewValidationError("identity", "is required", ErrEmptyField)
	}
	if o.SchemaVersion != OrderSchemaCart {
		return NewValidationError("schemaVersion", fmt.Sprintf("unsupported version %d", o.SchemaVersion), ErrValidation)
	}
	if o.Address.IsZero() {
		return NewValidationError("address", "is required", ErrEmptyField)
	}
	if len(o.Items) == 0 {
		return NewValidationError("items", "must contain at least one item", ErrEmptyItems)
	}
	for i, item := range o.Items {
		if err := item.Validate(); err != nil {
			return NewValidationError(fmt.Sprintf("items[%d]", i), err.Error(), err)
		}
	}
	return nil
}

func normalizeItems(items []OrderItem) []OrderItem {
	out := make([]OrderItem, len(items))
	for i, item := range items {
		if item.Quantity == nil {
			one := 1
			item.Quantity = &one
		}
		out[i] = item
	}
	return out
}

// OrderItem is a single cart entry.
type OrderItem struct {
	ID       ItemID `json:"id"`
	Quantity *int   `json:"qty,omitempty"`
	Name     string `json:"name,omitempty"`
}

// Qty returns the item quantity, treating an omitted quantity as 1.
func (i OrderItem) Qty() int {
	if i.Quantity == nil {
		return 1
	}
	return *i.Quantity
}

// Validate checks the item id and quantity.
func (i OrderItem) Validate() error {
	if i.ID == "" {
		return fmt.Errorf("id: %w", ErrEmptyField)
	}
	if i.Qty() <= 0 {
		return ErrInvalidQuantity
	}
	return nil
}

// ItemID identifies a product in a cart entry. Clients send either a JSON
// number or a string; both are kept as their textual form.
type ItemID string

// UnmarshalJSON accepts a JSON string or number.
func (id *ItemID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ItemID(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return ErrInvalidItemID
	}
	*id = ItemID(n.String())
	return nil
}

// MarshalJSON writes integer ids back as numbers and everything else as strings.
func (id ItemID) MarshalJSON() ([]byte, error) {
	if _, err := strconv.ParseInt(string(id), 10, 64); err == nil {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

// Address is where an order is delivered. Clients send either a single line
// of text or a structured object.
type Address struct {
	Text       string `json:"text,omitempty"`
	Street     string `json:"street,omitempty"`
	City       string `json:"city,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
	Country    string `json:"country,omitempty"`
}

// addressFields avoids recursion into Address.UnmarshalJSON.
type addressFields Address

// UnmarshalJSON accepts a JSON string or object.
func (a *Address) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*a = Address{}
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Address{Text: s}
		return nil
	case len(data) > 0 && data[0] == '{':
		var f addressFields
		if err := json.Unmarshal(data, &f); err != nil {
			return err
		}
		*a = Address(f)
		return nil
	default:
		return ErrInvalidAddress
	}
}

// IsZero reports whether every part of the address is blank.
func (a Address) IsZero() bool {
	for _, part := range []string{a.Text, a.Street, a.City, a.PostalCode, a.Country} {
		if strings.TrimSpace(part) != "" {
			return false
		}
	}
	return true
}

// String renders the address on a single line.
func (a Address) String() string {
	if strings.TrimSpace(a.Text) != "" {
		return a.Text
	}
	parts := make([]string, 0, 4)
	for _, part := range []string{a.Street, a.City, a.PostalCode, a.Country} {
		if p := strings.TrimSpace(part); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

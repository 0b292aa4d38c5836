package postgres

import (
	"context"
	"encoding/json"

	"github.com/phrazzld/food-ordering-api/internal/domain"
	"github.com/phrazzld/food-ordering-api/internal/store"
)

const insertOrderQuery = `
	INSERT INTO orders (user_id, email, address, contact, items, schema_version)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING id::text, placed_at`

// OrderCollection implements store.OrderCollection on the orders table.
// Address, contact and items are stored as JSONB documents.
type OrderCollection struct {
	db store.DBTX
}

// Ensure OrderCollection implements store.OrderCollection interface
var _ store.OrderCollection = (*OrderCollection)(nil)

// NewOrderCollection binds the orders table to a connection or transaction.
func NewOrderCollection(db store.DBTX) *OrderCollection {
	return &OrderCollection{db: db}
}

// Insert implements store.OrderCollection.Insert.
func (c *OrderCollection) Insert(ctx context.Context, order *domain.Order) (string, error) {
	if err := order.Validate(); err != nil {
		return "", err
	}

	address, err := json.Marshal(order.Address)
	if err != nil {
		return "", store.NewStoreError("order", "insert", "failed to encode address", err)
	}
	items, err := json.Marshal(order.Items)
	if err != nil {
		return "", store.NewStoreError("order", "insert", "failed to encode items", err)
	}
	var contact any // NULL when absent
	if !order.Contact.IsZero() {
		encoded, err := json.Marshal(order.Contact)
		if err != nil {
			return "", store.NewStoreError("order", "insert", "failed to encode contact", err)
		}
		contact = encoded
	}

	err = c.db.QueryRowContext(
		ctx,
		insertOrderQuery,
		order.UserID,
		order.Email,
		address,
		contact,
		items,
		order.SchemaVersion,
	).Scan(&order.ID, &order.PlacedAt)
	if err != nil {
		return "", MapError("order", "insert", err)
	}
	return order.ID, nil
}

package mongo

import (
	"context"
	"time"

	"github.com/phrazzld/food-ordering-api/internal/domain"
	"github.com/phrazzld/food-ordering-api/internal/store"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// OrderCollection implements store.OrderCollection on the orders collection.
type OrderCollection struct {
	coll *mongo.Collection
	now  func() time.Time
}

// Ensure OrderCollection implements store.OrderCollection interface
var _ store.OrderCollection = (*OrderCollection)(nil)

// NewOrderCollection wraps the orders collection.
func NewOrderCollection(coll *mongo.Collection) *OrderCollection {
	return &OrderCollection{coll: coll, now: time.Now}
}

// Insert implements store.OrderCollection.Insert.
func (c *OrderCollection) Insert(ctx context.Context, order *domain.Order) (string, error) {
	if err := order.Validate(); err != nil {
		return "", err
	}

	doc := newOrderDocument(order)
	doc.ID = primitive.NewObjectID()
	doc.PlacedAt = c.now().UTC().Truncate(time.Millisecond)

	if _, err := c.coll.InsertOne(ctx, doc); err != nil {
		return "", MapError("order", "insert", err)
	}

	order.ID = doc.ID.Hex()
	order.PlacedAt = doc.PlacedAt
	return order.ID, nil
}

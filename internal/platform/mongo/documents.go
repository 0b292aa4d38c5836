package mongo

import (
	"time"

	"github.com/phrazzld/food-ordering-api/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type userDocument struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"passwordHash"`
	CreatedAt    time.Time          `bson:"createdAt"`
}

func (d userDocument) toDomain() *domain.User {
	return &domain.User{
		ID:           d.ID.Hex(),
		Name:         d.Name,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		CreatedAt:    d.CreatedAt,
	}
}

type addressDocument struct {
	Text       string `bson:"text,omitempty"`
	Street     string `bson:"street,omitempty"`
	City       string `bson:"city,omitempty"`
	PostalCode string `bson:"postalCode,omitempty"`
	Country    string `bson:"country,omitempty"`
}

type contactDocument struct {
	Name  string `bson:"name,omitempty"`
	Phone string `bson:"phone,omitempty"`
}

type itemDocument struct {
	ID   string `bson:"id"`
	Qty  int    `bson:"qty"`
	Name string `bson:"name,omitempty"`
}

type orderDocument struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	UserID        string             `bson:"userId"`
	Email         string             `bson:"email"`
	Address       addressDocument    `bson:"address"`
	Contact       *contactDocument   `bson:"contact,omitempty"`
	Items         []itemDocument     `bson:"items"`
	SchemaVersion int                `bson:"schemaVersion"`
	PlacedAt      time.Time          `bson:"placedAt"`
}

func newOrderDocument(order *domain.Order) orderDocument {
	doc := orderDocument{
		UserID: order.UserID,
		Email:  order.Email,
		Address: addressDocument{
			Text:       order.Address.Text,
			Street:     order.Address.Street,
			City:       order.Address.City,
			PostalCode: order.Address.PostalCode,
			Country:    order.Address.Country,
		},
		Items:         make([]itemDocument, len(order.Items)),
		SchemaVersion: order.SchemaVersion,
	}
	if !order.Contact.IsZero() {
		doc.Contact = &contactDocument{Name: order.Contact.Name, Phone: order.Contact.Phone}
	}
	for i, item := range order.Items {
		doc.Items[i] = itemDocument{ID: string(item.ID), Qty: item.Qty(), Name: item.Name}
	}
	return doc
}

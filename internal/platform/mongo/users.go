package mongo

import (
	"context"
	"time"

	"github.com/phrazzld/food-ordering-api/internal/domain"
	"github.com/phrazzld/food-ordering-api/internal/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// UserCollection implements store.UserCollection on the users collection.
type UserCollection struct {
	coll *mongo.Collection
	now  func() time.Time
}

// Ensure UserCollection implements store.UserCollection interface
var _ store.UserCollection = (*UserCollection)(nil)

// NewUserCollection wraps the users collection.
func NewUserCollection(coll *mongo.Collection) *UserCollection {
	return &UserCollection{coll: coll, now: time.Now}
}

// FindByEmail implements store.UserCollection.FindByEmail.
func (c *UserCollection) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var doc userDocument
	err := c.coll.FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&doc)
	if err != nil {
		mapped := MapError("user", "find_by_email", err)
		if store.IsNotFoundError(mapped) {
			return nil, store.ErrUserNotFound
		}
		return nil, mapped
	}
	return doc.toDomain(), nil
}

// Insert implements store.UserCollection.Insert.
// A duplicate key on the email index is reported as store.ErrEmailExists.
func (c *UserCollection) Insert(ctx context.Context, user *domain.User) (string, error) {
	if err := user.Validate(); err != nil {
		return "", err
	}

	doc := userDocument{
		ID:           primitive.NewObjectID(),
		Name:         user.Name,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		// BSON dates have millisecond precision.
		CreatedAt: c.now().UTC().Truncate(time.Millisecond),
	}

	if _, err := c.coll.InsertOne(ctx, doc); err != nil {
		mapped := MapError("user", "insert", err)
		if store.IsDuplicateError(mapped) {
			return "", store.ErrEmailExists
		}
		return "", mapped
	}

	user.ID = doc.ID.Hex()
	user.CreatedAt = doc.CreatedAt
	return user.ID, nil
}

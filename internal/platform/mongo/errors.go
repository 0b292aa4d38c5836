package mongo

import (
	"errors"
	"fmt"

	"github.com/phrazzld/food-ordering-api/internal/store"
	"go.mongodb.org/mongo-driver/mongo"
)

// MapError maps a driver error to a store error, in the same way as the
// PostgreSQL backend: no documents becomes store.ErrNotFound, a duplicate
// key becomes store.ErrDuplicate, and anything else is a *store.StoreError.
func MapError(entity, operation string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("%w: %s", store.ErrNotFound, entity)
	}
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%w: %s", store.ErrDuplicate, entity)
	}
	return store.NewStoreError(entity, operation, "database error", err)
}

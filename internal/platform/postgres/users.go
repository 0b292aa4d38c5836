package postgres

import (
	"context"

	"github.com/phrazzld/food-ordering-api/internal/domain"
	"github.com/phrazzld/food-ordering-api/internal/store"
)

const (
	findUserByEmailQuery = `
		SELECT id::text, name, email, password_hash, created_at
		FROM users
		WHERE email = $1`

	insertUserQuery = `
		INSERT INTO users (name, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id::text, created_at`
)

// UserCollection implements store.UserCollection on the users table.
type UserCollection struct {
	db store.DBTX
}

// Ensure UserCollection implements store.UserCollection interface
var _ store.UserCollection = (*UserCollection)(nil)

// NewUserCollection binds the users table to a connection or transaction.
func NewUserCollection(db store.DBTX) *UserCollection {
	return &UserCollection{db: db}
}

// FindByEmail implements store.UserCollection.FindByEmail.
// The match is exact and case-sensitive.
func (c *UserCollection) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := c.db.QueryRowContext(ctx, findUserByEmailQuery, email).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
	)
	if err != nil {
		mapped := MapError("user", "find_by_email", err)
		if store.IsNotFoundError(mapped) {
			return nil, store.ErrUserNotFound
		}
		return nil, mapped
	}
	return &user, nil
}

// Insert implements store.UserCollection.Insert.
// A violation of users_email_key is reported as store.ErrEmailExists.
func (c *UserCollection) Insert(ctx context.Context, user *domain.User) (string, error) {
	if err := user.Validate(); err != nil {
		return "", err
	}

	err := c.db.QueryRowContext(ctx, insertUserQuery, user.Name, user.Email, user.PasswordHash).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		if IsUniqueViolation(err) {
			return "", store.ErrEmailExists
		}
		return "", MapError("user", "insert", err)
	}
	return user.ID, nil
}

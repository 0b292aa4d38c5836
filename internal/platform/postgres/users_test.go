package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/phrazzld/food-ordering-api/internal/domain"
	"github.com/phrazzld/food-ordering-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	findUserPattern   = `(?s)SELECT\s+id::text,\s*name,\s*email,\s*password_hash,\s*created_at\s+FROM\s+users\s+WHERE\s+email\s*=\s*\$1`
	insertUserPattern = `(?s)INSERT\s+INTO\s+users\s*\(name,\s*email,\s*password_hash\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3\)\s*RETURNING\s+id::text,\s*created_at`
)

func newUsersWithMock(t *testing.T) (*UserCollection, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewUserCollection(db), mock
}

func TestUserCollectionFindByEmail(t *testing.T) {
	t.Parallel()

	t.Run("found", func(t *testing.T) {
		t.Parallel()
		users, mock := newUsersWithMock(t)
		created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		mock.ExpectQuery(findUserPattern).
			WithArgs("a@x.com").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "password_hash", "created_at"}).
				AddRow("u-1", "A", "a@x.com", "$2a$10$hash", created))

		user, err := users.FindByEmail(context.Background(), "a@x.com")
		require.NoError(t, err)
		assert.Equal(t, &domain.User{
			ID:           "u-1",
			Name:         "A",
			Email:        "a@x.com",
			PasswordHash: "$2a$10$hash",
			CreatedAt:    created,
		}, user)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		users, mock := newUsersWithMock(t)
		mock.ExpectQuery(findUserPattern).
			WithArgs("nobody@x.com").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "password_hash", "created_at"}))

		user, err := users.FindByEmail(context.Background(), "nobody@x.com")
		assert.Nil(t, user)
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})

	t.Run("database error", func(t *testing.T) {
		t.Parallel()
		users, mock := newUsersWithMock(t)
		mock.ExpectQuery(findUserPattern).
			WithArgs("a@x.com").
			WillReturnError(errors.New("db down"))

		_, err := users.FindByEmail(context.Background(), "a@x.com")
		assert.ErrorIs(t, err, store.ErrPersistence)
		assert.NotErrorIs(t, err, store.ErrUserNotFound)
	})
}

func TestUserCollectionInsert(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		users, mock := newUsersWithMock(t)
		created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		mock.ExpectQuery(insertUserPattern).
			WithArgs("A", "a@x.com", "hash").
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow("u-1", created))

		user := &domain.User{Name: "A", Email: "a@x.com", PasswordHash: "hash"}
		id, err := users.Insert(context.Background(), user)
		require.NoError(t, err)
		assert.Equal(t, "u-1", id)
		assert.Equal(t, "u-1", user.ID)
		assert.Equal(t, created, user.CreatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unique violation", func(t *testing.T) {
		t.Parallel()
		users, mock := newUsersWithMock(t)
		mock.ExpectQuery(insertUserPattern).
			WithArgs("A", "a@x.com", "hash").
			WillReturnError(newUniqueViolation())

		_, err := users.Insert(context.Background(), &domain.User{Name: "A", Email: "a@x.com", PasswordHash: "hash"})
		assert.ErrorIs(t, err, store.ErrEmailExists)
	})

	t.Run("invalid user is rejected before the query", func(t *testing.T) {
		t.Parallel()
		users, mock := newUsersWithMock(t)

		_, err := users.Insert(context.Background(), &domain.User{Name: "A", Email: "a@x.com"})
		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

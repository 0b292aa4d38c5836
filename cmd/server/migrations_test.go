package main

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/food-ordering-api/internal/mocks"
	"github.com/phrazzld/food-ordering-api/internal/platform/logger"
	"github.com/phrazzld/food-ordering-api/internal/platform/postgres"
)

func TestRunMigrations_SkipsNonSQLStore(t *testing.T) {
	log, buf := logger.NewBufferLogger()

	err := runMigrations(context.Background(), mocks.NewGateway(), "up", log)

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Skipping migrations")
}

func TestRunMigrations_RejectsUnknownCommand(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	log, _ := logger.NewBufferLogger()
	gw := postgres.NewGateway(db, log)
	defer gw.Close()

	err = runMigrations(context.Background(), gw, "sideways", log)

	assert.ErrorIs(t, err, postgres.ErrUnknownMigrationCommand)
	assert.NoError(t, mock.ExpectationsWereMet())
}

//go:build integration

// Package testdb provides helpers for integration tests that need a real
// PostgreSQL database.
//
// Tests call GetTestDBWithT, which skips the test unless DATABASE_URL (or
// FOOD_TEST_DB_URL) is set, opens a pool, applies the embedded migrations
// and closes the pool when the test ends. WithTx runs a test body inside a
// transaction that is always rolled back, so tests can run in parallel
// against the same schema.
//
//	func TestSomething(t *testing.T) {
//		db := testdb.GetTestDBWithT(t)
//		testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//			users := postgres.NewUserCollection(tx)
//			// ...
//		})
//	}
package testdb

// Package postgres implements store.Gateway on PostgreSQL through
// database/sql and the pgx stdlib driver. Each scoped call leases a
// dedicated *sql.Conn from the pool and returns it when the callback ends.
// Schema migrations are embedded and applied with goose.
package postgres

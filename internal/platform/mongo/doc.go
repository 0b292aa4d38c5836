// Package mongo implements store.Gateway on MongoDB using the official Go
// driver. The client owns the connection pool; every scoped call runs inside
// its own client session, ended when the callback returns. Email uniqueness
// is enforced by a unique index created at startup.
package mongo

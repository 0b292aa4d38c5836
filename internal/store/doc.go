// Package store defines the persistence gateway used by the services.
// The gateway hands out scoped access to the users and orders collections
// and owns the underlying connection lifecycle, so business code never
// touches a raw connection. Backends live under internal/platform.
package store

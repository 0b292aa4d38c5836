// Package mocks provides centralized mock implementations for testing.
//
// MockTokenService and MockPasswordHasher use function fields for custom
// behaviour and fall back to simple default values. Gateway is an in-memory
// store.Gateway that enforces unique emails and counts leases, so tests can
// check that every scoped call releases what it acquired.
//
//	gw := mocks.NewGateway()
//	svc := service.NewAuthService(gw, mocks.NewMockPasswordHasher(), tokens, nil)
//	// ...
//	acquired, released := gw.Leases()
package mocks

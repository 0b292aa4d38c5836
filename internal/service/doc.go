// Package service contains the application use cases: account signup and
// login (AuthService) and order placement (OrderService).
//
// Services depend on the store.Gateway contract and the auth primitives,
// never on a concrete backend. They return sentinel errors from the domain,
// store, auth and service packages, wrapped with context, so the API layer
// can map them to status codes with errors.Is.
package service

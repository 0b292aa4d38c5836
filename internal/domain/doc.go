// Package domain contains the core business entities, value objects, and
// validation rules of the application: users, orders and their cart entries.
// It is independent of any specific infrastructure or delivery mechanism.
package domain

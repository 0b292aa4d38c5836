// Package api handles incoming HTTP requests, request validation and
// response formatting. It adapts JSON requests into calls on the auth and
// order services and translates their errors into the {msg, status}
// envelope and an HTTP status code.
package api

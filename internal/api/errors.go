package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/phrazzld/food-ordering-api/internal/api/shared"
	"github.com/phrazzld/food-ordering-api/internal/domain"
	"github.com/phrazzld/food-ordering-api/internal/service"
	"github.com/phrazzld/food-ordering-api/internal/service/auth"
	"github.com/phrazzld/food-ordering-api/internal/store"
)

// Client-facing error messages.
const (
	MsgInvalidBody        = "invalid request body"
	MsgValidation         = "validation failed"
	MsgEmailExists        = "email already exists"
	MsgInvalidCredentials = "invalid credentials"
	MsgUnauthorized       = "unauthorized"
	MsgForbidden          = "forbidden"
	MsgInternal           = "internal server error"
	MsgUnavailable        = "service unavailable"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes without
// leaking internal error types to clients.
func MapErrorToStatusCode(err error) int {
	var verrs validator.ValidationErrors
	switch {
	case err == nil:
		return http.StatusOK

	// Missing or rejected token
	case errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrMalformedAuthHeader):
		return http.StatusUnauthorized
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken):
		return http.StatusForbidden

	// Bad input, duplicate email and bad credentials all share 400
	case errors.Is(err, shared.ErrInvalidBody),
		errors.Is(err, domain.ErrValidation),
		errors.As(err, &verrs),
		errors.Is(err, store.ErrEmailExists),
		errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns the message shown to the client for err.
// Persistence and unknown errors collapse into a generic message.
func GetSafeErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	var verr *domain.ValidationError

	switch {
	case err == nil:
		return MsgInternal
	case errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrMalformedAuthHeader):
		return MsgUnauthorized
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken):
		return MsgForbidden
	case errors.Is(err, store.ErrEmailExists):
		return MsgEmailExists
	case errors.Is(err, service.ErrInvalidCredentials):
		return MsgInvalidCredentials
	case errors.Is(err, shared.ErrInvalidBody):
		return MsgInvalidBody
	case errors.As(err, &verrs):
		return SanitizeValidationError(verrs)
	case errors.As(err, &verr):
		return strings.TrimSpace(fmt.Sprintf("%s %s", verr.Field, verr.Message))
	case errors.Is(err, domain.ErrValidation):
		return MsgValidation
	default:
		return MsgInternal
	}
}

// SanitizeValidationError turns validator errors into a short message
// naming the first offending field.
func SanitizeValidationError(verrs validator.ValidationErrors) string {
	if len(verrs) == 0 {
		return MsgValidation
	}
	fe := verrs[0]
	return fmt.Sprintf("%s %s", fe.Field(), getValidationTagMessage(fe.Tag()))
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "is required"
	case "email":
		return "is not a valid email"
	case "min":
		return "is too short"
	case "max":
		return "is too long"
	default:
		return "is invalid"
	}
}

// HandleAPIError writes the status and safe message for err and logs the
// redacted cause. Token rejections are logged at WARN.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	status := MapErrorToStatusCode(err)
	var opts []shared.ResponseOption
	if status == http.StatusForbidden {
		opts = append(opts, shared.WithElevatedLogLevel())
	}
	shared.RespondWithErrorAndLog(w, r, status, GetSafeErrorMessage(err), err, opts...)
}

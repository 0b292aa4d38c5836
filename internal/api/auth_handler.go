package api

import (
	"net/http"

	"github.com/phrazzld/food-ordering-api/internal/api/shared"
	"github.com/phrazzld/food-ordering-api/internal/service"
)

// AuthHandler handles the signup and login endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	if authService == nil {
		panic("auth handler requires an auth service")
	}
	return &AuthHandler{authService: authService}
}

// Signup handles POST /signup.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		HandleAPIError(w, r, err)
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	result, err := h.authService.Signup(r.Context(), service.SignupInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithSuccess(w, r, shared.Response{
		Msg:         MsgSignedUp,
		AccessToken: result.AccessToken,
	})
}

// Login handles POST /login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		HandleAPIError(w, r, err)
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	result, err := h.authService.Login(r.Context(), service.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithSuccess(w, r, shared.Response{
		Msg:         MsgLoggedIn,
		AccessToken: result.AccessToken,
	})
}

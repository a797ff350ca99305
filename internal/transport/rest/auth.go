package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/foodgram-backend/internal/domain"
	"github.com/heartmarshall/foodgram-backend/internal/service/auth"
	"github.com/heartmarshall/foodgram-backend/internal/transport/middleware"
)

// authService defines the minimal interface needed by AuthHandler.
type authService interface {
	Login(ctx context.Context, input auth.LoginInput) (string, error)
	Logout(ctx context.Context, token string) error
}

// AuthHandler serves token login and logout.
type AuthHandler struct {
	base
	svc authService
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc authService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{base: base{log: logger.With("handler", "auth")}, svc: svc}
}

type tokenResponse struct {
	AuthToken string `json:"auth_token"`
}

// Login handles POST /auth/token/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input auth.LoginInput
	if err := decodeJSON(r, &input); err != nil {
		h.handleError(w, r, err)
		return
	}

	token, err := h.svc.Login(r.Context(), input)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{AuthToken: token})
}

// Logout handles POST /auth/token/logout. The presented token is revoked.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token := middleware.RawToken(r)
	if token == "" {
		h.handleError(w, r, domain.ErrUnauthorized)
		return
	}

	if err := h.svc.Logout(r.Context(), token); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

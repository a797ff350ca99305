package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/foodgram-backend/internal/config"
	"github.com/heartmarshall/foodgram-backend/internal/domain"
	"github.com/heartmarshall/foodgram-backend/internal/service/auth"
	"github.com/heartmarshall/foodgram-backend/internal/service/user"
)

type registrar interface {
	Register(ctx context.Context, input auth.RegisterInput) (*domain.User, error)
}

type userService interface {
	GetMe(ctx context.Context) (*domain.User, error)
	UpdateMe(ctx context.Context, input user.UpdateProfileInput) (*domain.User, error)
	SetPassword(ctx context.Context, input user.SetPasswordInput) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context, page domain.Page) ([]domain.User, int, error)
}

// UserHandler serves account and profile endpoints.
type UserHandler struct {
	base
	reg        registrar
	users      userService
	pagination config.PaginationConfig
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(reg registrar, users userService, pagination config.PaginationConfig, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		base:       base{log: logger.With("handler", "user")},
		reg:        reg,
		users:      users,
		pagination: pagination,
	}
}

// Register handles POST /users.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input auth.RegisterInput
	if err := decodeJSON(r, &input); err != nil {
		h.handleError(w, r, err)
		return
	}

	u, err := h.reg.Register(r.Context(), input)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toRegisteredResponse(u))
}

// List handles GET /users.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r, h.pagination)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	users, total, err := h.users.List(r.Context(), page)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	results, err := presentUsers(r.Context(), users)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	env, err := newPageEnvelope(r, page, total, results)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, env)
}

// Get handles GET /users/{id}.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	u, err := h.users.GetByID(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp, err := presentUser(r.Context(), *u)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Me handles GET /users/me.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	u, err := h.users.GetMe(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(*u, false))
}

// UpdateMe handles PATCH /users/me.
func (h *UserHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	var input user.UpdateProfileInput
	if err := decodeJSON(r, &input); err != nil {
		h.handleError(w, r, err)
		return
	}

	u, err := h.users.UpdateMe(r.Context(), input)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(*u, false))
}

// SetPassword handles POST /users/set_password.
func (h *UserHandler) SetPassword(w http.ResponseWriter, r *http.Request) {
	var input user.SetPasswordInput
	if err := decodeJSON(r, &input); err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := h.users.SetPassword(r.Context(), input); err != nil {
		h.handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/foodgram-backend/internal/config"
	"github.com/heartmarshall/foodgram-backend/internal/domain"
)

type subscriptionService interface {
	Subscribe(ctx context.Context, authorID int64, recipesLimit int) (*domain.Author, error)
	Unsubscribe(ctx context.Context, authorID int64) error
	List(ctx context.Context, page domain.Page, recipesLimit int) ([]domain.Author, int, error)
}

// SubscriptionHandler serves following authors.
type SubscriptionHandler struct {
	base
	svc        subscriptionService
	pagination config.PaginationConfig
}

// NewSubscriptionHandler creates a SubscriptionHandler.
func NewSubscriptionHandler(svc subscriptionService, pagination config.PaginationConfig, logger *slog.Logger) *SubscriptionHandler {
	return &SubscriptionHandler{
		base:       base{log: logger.With("handler", "subscription")},
		svc:        svc,
		pagination: pagination,
	}
}

// List handles GET /users/subscriptions.
func (h *SubscriptionHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r, h.pagination)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	authors, total, err := h.svc.List(r.Context(), page, queryInt(r, "recipes_limit", 0))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	env, err := newPageEnvelope(r, page, total, presentAuthors(authors))
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, env)
}

// Subscribe handles POST /users/{id}/subscribe.
func (h *SubscriptionHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	author, err := h.svc.Subscribe(r.Context(), id, queryInt(r, "recipes_limit", 0))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, presentAuthors([]domain.Author{*author})[0])
}

// Unsubscribe handles DELETE /users/{id}/subscribe.
func (h *SubscriptionHandler) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := h.svc.Unsubscribe(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/foodgram-backend/internal/domain"
)

type catalogService interface {
	ListTags(ctx context.Context) ([]domain.Tag, error)
	GetTag(ctx context.Context, id int64) (*domain.Tag, error)
	SearchIngredients(ctx context.Context, prefix string) ([]domain.Ingredient, error)
	GetIngredient(ctx context.Context, id int64) (*domain.Ingredient, error)
}

// CatalogHandler serves the read-only tag and ingredient catalogs.
// Neither list is paginated.
type CatalogHandler struct {
	base
	svc catalogService
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(svc catalogService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{base: base{log: logger.With("handler", "catalog")}, svc: svc}
}

// ListTags handles GET /tags.
func (h *CatalogHandler) ListTags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.svc.ListTags(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	out := make([]tagResponse, 0, len(tags))
	for _, t := range tags {
		out = append(out, toTagResponse(t))
	}
	writeJSON(w, http.StatusOK, out)
}

// GetTag handles GET /tags/{id}.
func (h *CatalogHandler) GetTag(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	t, err := h.svc.GetTag(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTagResponse(*t))
}

// SearchIngredients handles GET /ingredients?name=<prefix>.
func (h *CatalogHandler) SearchIngredients(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.SearchIngredients(r.Context(), r.URL.Query().Get("name"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	out := make([]ingredientResponse, 0, len(items))
	for _, i := range items {
		out = append(out, toIngredientResponse(i))
	}
	writeJSON(w, http.StatusOK, out)
}

// GetIngredient handles GET /ingredients/{id}.
func (h *CatalogHandler) GetIngredient(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	i, err := h.svc.GetIngredient(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toIngredientResponse(*i))
}

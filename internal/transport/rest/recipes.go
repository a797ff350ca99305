package rest

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/heartmarshall/foodgram-backend/internal/config"
	"github.com/heartmarshall/foodgram-backend/internal/domain"
	"github.com/heartmarshall/foodgram-backend/internal/service/cart"
	"github.com/heartmarshall/foodgram-backend/internal/service/recipe"
)

type recipeService interface {
	Create(ctx context.Context, input recipe.CreateInput) (*domain.Recipe, error)
	Update(ctx context.Context, id int64, input recipe.UpdateInput) (*domain.Recipe, error)
	Delete(ctx context.Context, id int64) error
	Get(ctx context.Context, id int64) (*domain.Recipe, error)
	List(ctx context.Context, input recipe.ListInput) ([]domain.Recipe, int, error)
}

// membershipService is implemented by both the favorite and cart services.
type membershipService interface {
	Add(ctx context.Context, recipeID int64) (*domain.Recipe, error)
	Remove(ctx context.Context, recipeID int64) error
}

type cartService interface {
	membershipService
	DownloadShoppingList(ctx context.Context) (*cart.ShoppingList, error)
}

// RecipeHandler serves recipes together with the favorite and shopping
// cart toggles that hang off them.
type RecipeHandler struct {
	base
	recipes    recipeService
	favorites  membershipService
	cart       cartService
	pagination config.PaginationConfig
}

// NewRecipeHandler creates a RecipeHandler.
func NewRecipeHandler(
	recipes recipeService,
	favorites membershipService,
	cart cartService,
	pagination config.PaginationConfig,
	logger *slog.Logger,
) *RecipeHandler {
	return &RecipeHandler{
		base:       base{log: logger.With("handler", "recipe")},
		recipes:    recipes,
		favorites:  favorites,
		cart:       cart,
		pagination: pagination,
	}
}

// List handles GET /recipes with the author, tags, is_favorited and
// is_in_shopping_cart filters.
func (h *RecipeHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r, h.pagination)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	input := recipe.ListInput{
		TagSlugs:    r.URL.Query()["tags"],
		IsFavorited: queryFlag(r, "is_favorited"),
		IsInCart:    queryFlag(r, "is_in_shopping_cart"),
		Page:        page,
	}
	if raw := r.URL.Query().Get("author"); raw != "" {
		authorID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.handleError(w, r, domain.NewValidationError("author",
				fmt.Sprintf("Select a valid choice. %s is not one of the available choices.", raw)))
			return
		}
		input.AuthorID = &authorID
	}

	recipes, total, err := h.recipes.List(r.Context(), input)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	results, err := presentRecipes(r.Context(), recipes)
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

// Get handles GET /recipes/{id}.
func (h *RecipeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	rec, err := h.recipes.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeRecipe(w, r, http.StatusOK, rec)
}

// Create handles POST /recipes.
func (h *RecipeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input recipe.CreateInput
	if err := decodeJSON(r, &input); err != nil {
		h.handleError(w, r, err)
		return
	}

	rec, err := h.recipes.Create(r.Context(), input)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeRecipe(w, r, http.StatusCreated, rec)
}

// Update handles PATCH /recipes/{id}.
func (h *RecipeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var input recipe.UpdateInput
	if err := decodeJSON(r, &input); err != nil {
		h.handleError(w, r, err)
		return
	}

	rec, err := h.recipes.Update(r.Context(), id, input)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeRecipe(w, r, http.StatusOK, rec)
}

// Delete handles DELETE /recipes/{id}.
func (h *RecipeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := h.recipes.Delete(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AddFavorite handles POST /recipes/{id}/favorite.
func (h *RecipeHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	h.addMembership(w, r, h.favorites)
}

// RemoveFavorite handles DELETE /recipes/{id}/favorite.
func (h *RecipeHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	h.removeMembership(w, r, h.favorites)
}

// AddToCart handles POST /recipes/{id}/shopping_cart.
func (h *RecipeHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	h.addMembership(w, r, h.cart)
}

// RemoveFromCart handles DELETE /recipes/{id}/shopping_cart.
func (h *RecipeHandler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	h.removeMembership(w, r, h.cart)
}

// DownloadShoppingCart handles GET /recipes/download_shopping_cart.
func (h *RecipeHandler) DownloadShoppingCart(w http.ResponseWriter, r *http.Request) {
	list, err := h.cart.DownloadShoppingList(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", list.Filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(list.Content))
}

func (h *RecipeHandler) addMembership(w http.ResponseWriter, r *http.Request, svc membershipService) {
	id, err := pathID(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	rec, err := svc.Add(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toShortRecipe(*rec))
}

func (h *RecipeHandler) removeMembership(w http.ResponseWriter, r *http.Request, svc membershipService) {
	id, err := pathID(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := svc.Remove(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *RecipeHandler) writeRecipe(w http.ResponseWriter, r *http.Request, status int, rec *domain.Recipe) {
	resp, err := presentRecipe(r.Context(), *rec)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, status, resp)
}

// Package cart implements the shopping cart and the shopping list download.
package cart

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/foodgram-backend/internal/domain"
	"github.com/heartmarshall/foodgram-backend/internal/metrics"
	"github.com/heartmarshall/foodgram-backend/pkg/ctxutil"
)

// ErrDuplicate is returned when the recipe is already in the cart.
var ErrDuplicate = domain.NewValidationError("non_field_errors", "This recipe already in shopping cart")

type recipeRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Recipe, error)
}

type cartRepo interface {
	Add(ctx context.Context, userID, recipeID int64) (*domain.CartEntry, error)
	Remove(ctx context.Context, userID, recipeID int64) error
	Exists(ctx context.Context, userID, recipeID int64) (bool, error)
	ListIngredients(ctx context.Context, userID int64) ([]domain.CartRecipe, error)
}

// Service implements shopping cart operations.
type Service struct {
	log     *slog.Logger
	recipes recipeRepo
	cart    cartRepo
	now     func() time.Time
}

// NewService creates a new cart service instance.
func NewService(logger *slog.Logger, recipes recipeRepo, cart cartRepo) *Service {
	return &Service{
		log:     logger.With("service", "cart"),
		recipes: recipes,
		cart:    cart,
		now:     time.Now,
	}
}

// Add puts the recipe into the authenticated user's cart and returns it.
// A second Add of the same recipe fails with ErrDuplicate.
func (s *Service) Add(ctx context.Context, recipeID int64) (*domain.Recipe, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	rec, err := s.recipes.GetByID(ctx, recipeID)
	if err != nil {
		return nil, fmt.Errorf("cart.Add: %w", err)
	}

	exists, err := s.cart.Exists(ctx, userID, recipeID)
	if err != nil {
		return nil, fmt.Errorf("cart.Add: %w", err)
	}
	if exists {
		return nil, ErrDuplicate
	}

	if _, err := s.cart.Add(ctx, userID, recipeID); err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("cart.Add: %w", err)
	}

	s.log.InfoContext(ctx, "recipe added to cart",
		slog.Int64("user_id", userID),
		slog.Int64("recipe_id", recipeID))
	return rec, nil
}

// Remove takes the recipe out of the cart.
// Returns ErrNotFound when it was not in the cart.
func (s *Service) Remove(ctx context.Context, recipeID int64) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.cart.Remove(ctx, userID, recipeID); err != nil {
		return fmt.Errorf("cart.Remove: %w", err)
	}

	s.log.InfoContext(ctx, "recipe removed from cart",
		slog.Int64("user_id", userID),
		slog.Int64("recipe_id", recipeID))
	return nil
}

// ShoppingList is a rendered shopping list ready for download.
type ShoppingList struct {
	Filename string
	Content  string
}

// DownloadShoppingList aggregates the ingredients of every recipe in the
// cart and renders them as plain text. The cart is left unchanged.
func (s *Service) DownloadShoppingList(ctx context.Context) (*ShoppingList, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	entries, err := s.cart.ListIngredients(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("cart.DownloadShoppingList: %w", err)
	}

	list := domain.AggregateShoppingList(entries)
	metrics.ShoppingListsDownloaded.Inc()

	s.log.InfoContext(ctx, "shopping list downloaded",
		slog.Int64("user_id", userID),
		slog.Int("items", len(list)))

	return &ShoppingList{
		Filename: domain.ShoppingListFilename(s.now()),
		Content:  list.Render(),
	}, nil
}

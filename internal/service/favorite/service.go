// Package favorite implements adding recipes to and removing them from a
// user's favorites.
package favorite

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/foodgram-backend/internal/domain"
	"github.com/heartmarshall/foodgram-backend/pkg/ctxutil"
)

// ErrDuplicate is returned when the recipe is already a favorite.
var ErrDuplicate = domain.NewValidationError("non_field_errors", "This recipe already in favorites")

type recipeRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Recipe, error)
}

type favoriteRepo interface {
	Add(ctx context.Context, userID, recipeID int64) (*domain.Favorite, error)
	Remove(ctx context.Context, userID, recipeID int64) error
	Exists(ctx context.Context, userID, recipeID int64) (bool, error)
}

// Service implements favorite toggles.
type Service struct {
	log       *slog.Logger
	recipes   recipeRepo
	favorites favoriteRepo
}

// NewService creates a new favorite service instance.
func NewService(logger *slog.Logger, recipes recipeRepo, favorites favoriteRepo) *Service {
	return &Service{
		log:       logger.With("service", "favorite"),
		recipes:   recipes,
		favorites: favorites,
	}
}

// Add favorites the recipe for the authenticated user and returns it.
// A second Add of the same recipe fails with ErrDuplicate.
func (s *Service) Add(ctx context.Context, recipeID int64) (*domain.Recipe, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	rec, err := s.recipes.GetByID(ctx, recipeID)
	if err != nil {
		return nil, fmt.Errorf("favorite.Add: %w", err)
	}

	exists, err := s.favorites.Exists(ctx, userID, recipeID)
	if err != nil {
		return nil, fmt.Errorf("favorite.Add: %w", err)
	}
	if exists {
		return nil, ErrDuplicate
	}

	if _, err := s.favorites.Add(ctx, userID, recipeID); err != nil {
		// Lost a race with a concurrent identical request.
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("favorite.Add: %w", err)
	}

	s.log.InfoContext(ctx, "recipe favorited",
		slog.Int64("user_id", userID),
		slog.Int64("recipe_id", recipeID))
	return rec, nil
}

// Remove drops the recipe from the user's favorites.
// Returns ErrNotFound when it was not a favorite.
func (s *Service) Remove(ctx context.Context, recipeID int64) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.favorites.Remove(ctx, userID, recipeID); err != nil {
		return fmt.Errorf("favorite.Remove: %w", err)
	}

	s.log.InfoContext(ctx, "recipe unfavorited",
		slog.Int64("user_id", userID),
		slog.Int64("recipe_id", recipeID))
	return nil
}

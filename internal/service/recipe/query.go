package recipe

import (
	"context"
	"fmt"

	"github.com/heartmarshall/foodgram-backend/internal/domain"
	"github.com/heartmarshall/foodgram-backend/pkg/ctxutil"
)

// Get returns a recipe by id.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Recipe, error) {
	rec, err := s.recipes.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("recipe.Get: %w", err)
	}
	return rec, nil
}

// ListInput holds the list query. The favorited and in-cart flags only
// apply to an authenticated viewer.
type ListInput struct {
	AuthorID    *int64
	TagSlugs    []string
	IsFavorited bool
	IsInCart    bool
	Page        domain.Page
}

// List returns one page of recipes, newest first, and the total count.
func (s *Service) List(ctx context.Context, input ListInput) ([]domain.Recipe, int, error) {
	f := domain.RecipeFilter{
		AuthorID: input.AuthorID,
		TagSlugs: input.TagSlugs,
		Page:     input.Page,
	}

	if viewer, ok := ctxutil.UserIDFromCtx(ctx); ok {
		if input.IsFavorited {
			f.FavoritedBy = &viewer
		}
		if input.IsInCart {
			f.InCartOf = &viewer
		}
	}

	recipes, total, err := s.recipes.List(ctx, f)
	if err != nil {
		return nil, 0, fmt.Errorf("recipe.List: %w", err)
	}
	return recipes, total, nil
}

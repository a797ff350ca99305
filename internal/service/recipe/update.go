package recipe

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/foodgram-backend/internal/domain"
	"github.com/heartmarshall/foodgram-backend/pkg/ctxutil"
)

// Update applies a partial update. Only the author may change a recipe, and
// ownership is checked before the input is validated. Present scalar fields
// are reassigned; present tags and ingredients replace the stored sets.
func (s *Service) Update(ctx context.Context, id int64, input UpdateInput) (*domain.Recipe, error) {
	current, err := s.ownedRecipe(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		v := domain.CompactSpaces(*input.Name)
		input.Name = &v
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var tagIDs []int64
	if input.Tags != nil {
		tagIDs = *input.Tags
		if tagIDs == nil {
			tagIDs = []int64{}
		}
		if err := s.checkTags(ctx, tagIDs); err != nil {
			return nil, err
		}
	}

	var items []IngredientInput
	if input.Ingredients != nil {
		items = *input.Ingredients
		if items == nil {
			items = []IngredientInput{}
		}
		if err := s.checkIngredients(ctx, items); err != nil {
			return nil, err
		}
	}

	next := *current
	if input.Name != nil {
		next.Name = *input.Name
	}
	if input.Text != nil {
		next.Text = *input.Text
	}
	if input.CookingTime != nil {
		next.CookingTime = *input.CookingTime
	}
	var imageKey string
	if input.Image != nil && *input.Image != "" {
		img, err := s.decodeImage(*input.Image)
		if err != nil {
			return nil, err
		}
		if imageKey, next.Image, err = s.storeImage(ctx, img); err != nil {
			return nil, fmt.Errorf("recipe.Update: %w", err)
		}
	}

	var updated *domain.Recipe
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		rec, err := s.recipes.Update(txCtx, next)
		if err != nil {
			return fmt.Errorf("update recipe: %w", err)
		}

		if err := s.setRelations(txCtx, rec.ID, tagIDs, items); err != nil {
			return err
		}

		updated = rec
		return nil
	})
	if err != nil {
		s.discardImage(ctx, imageKey)
		return nil, fmt.Errorf("recipe.Update: %w", err)
	}

	s.log.InfoContext(ctx, "recipe updated",
		slog.Int64("user_id", current.AuthorID),
		slog.Int64("recipe_id", id))

	return updated, nil
}

// Delete removes a recipe. Only the author may delete it.
func (s *Service) Delete(ctx context.Context, id int64) error {
	current, err := s.ownedRecipe(ctx, id)
	if err != nil {
		return err
	}

	if err := s.recipes.Delete(ctx, id); err != nil {
		return fmt.Errorf("recipe.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "recipe deleted",
		slog.Int64("user_id", current.AuthorID),
		slog.Int64("recipe_id", id))
	return nil
}

// ownedRecipe loads the recipe and checks that the caller is its author.
func (s *Service) ownedRecipe(ctx context.Context, id int64) (*domain.Recipe, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	rec, err := s.recipes.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get recipe: %w", err)
	}
	if rec.AuthorID != userID {
		return nil, domain.ErrForbidden
	}
	return rec, nil
}

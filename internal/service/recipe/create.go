package recipe

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/foodgram-backend/internal/domain"
	"github.com/heartmarshall/foodgram-backend/internal/metrics"
	"github.com/heartmarshall/foodgram-backend/pkg/ctxutil"
)

// Create validates the input, stores the image and inserts the recipe with
// its tags and interned ingredient amounts in one transaction. The author is
// the authenticated user.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Recipe, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.Name = domain.CompactSpaces(input.Name)
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkTags(ctx, input.Tags); err != nil {
		return nil, err
	}
	if err := s.checkIngredients(ctx, input.Ingredients); err != nil {
		return nil, err
	}

	var imageKey, imageURL string
	if input.Image != "" {
		img, err := s.decodeImage(input.Image)
		if err != nil {
			return nil, err
		}
		if imageKey, imageURL, err = s.storeImage(ctx, img); err != nil {
			return nil, fmt.Errorf("recipe.Create: %w", err)
		}
	}

	var created *domain.Recipe
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		rec, err := s.recipes.Create(txCtx, domain.Recipe{
			AuthorID:    userID,
			Name:        input.Name,
			Image:       imageURL,
			Text:        input.Text,
			CookingTime: input.CookingTime,
		})
		if err != nil {
			return fmt.Errorf("create recipe: %w", err)
		}

		if err := s.setRelations(txCtx, rec.ID, input.Tags, input.Ingredients); err != nil {
			return err
		}

		created = rec
		return nil
	})
	if err != nil {
		s.discardImage(ctx, imageKey)
		return nil, fmt.Errorf("recipe.Create: %w", err)
	}

	metrics.RecipesCreated.Inc()
	s.log.InfoContext(ctx, "recipe created",
		slog.Int64("user_id", userID),
		slog.Int64("recipe_id", created.ID))

	return created, nil
}

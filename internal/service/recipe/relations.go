package recipe

import (
	"context"
	"errors"
	"fmt"

	"github.com/heartmarshall/foodgram-backend/internal/domain"
)

// checkTags reports unknown tag ids as a validation error on "tags".
func (s *Service) checkTags(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	found, err := s.tags.GetByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("load tags: %w", err)
	}

	known := make(map[int64]bool, len(found))
	for _, t := range found {
		known[t.ID] = true
	}

	var errs []domain.FieldError
	for _, id := range ids {
		if !known[id] {
			errs = append(errs, domain.FieldError{
				Field:   "tags",
				Message: fmt.Sprintf("Invalid pk \"%d\" - object does not exist.", id),
			})
		}
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// checkIngredients reports unknown ingredient ids as a validation error
// on "ingredients".
func (s *Service) checkIngredients(ctx context.Context, items []IngredientInput) error {
	if len(items) == 0 {
		return nil
	}

	ids := make([]int64, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}

	found, err := s.ingredients.GetByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("load ingredients: %w", err)
	}

	known := make(map[int64]bool, len(found))
	for _, ing := range found {
		known[ing.ID] = true
	}

	var errs []domain.FieldError
	for i, id := range ids {
		if !known[id] {
			errs = append(errs, domain.FieldError{
				Field:   fmt.Sprintf("ingredients[%d].id", i),
				Message: fmt.Sprintf("Invalid pk \"%d\" - object does not exist.", id),
			})
		}
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// internAmounts resolves each (ingredient, amount) pair to its shared row,
// keeping input order. A pair lost to a concurrent insert is looked up once
// more; the second attempt sees the committed row.
func (s *Service) internAmounts(ctx context.Context, items []IngredientInput) ([]int64, error) {
	ids := make([]int64, 0, len(items))
	for _, it := range items {
		ia, err := s.amounts.GetOrCreate(ctx, it.ID, it.Amount)
		if errors.Is(err, domain.ErrAlreadyExists) {
			ia, err = s.amounts.GetOrCreate(ctx, it.ID, it.Amount)
		}
		if err != nil {
			return nil, fmt.Errorf("intern amount %d/%d: %w", it.ID, it.Amount, err)
		}
		ids = append(ids, ia.ID)
	}
	return ids, nil
}

// setRelations replaces the tag and ingredient sets of a recipe. A nil
// slice leaves that relation untouched.
func (s *Service) setRelations(ctx context.Context, recipeID int64, tagIDs []int64, items []IngredientInput) error {
	if tagIDs != nil {
		if err := s.recipes.ReplaceTags(ctx, recipeID, tagIDs); err != nil {
			return fmt.Errorf("replace tags: %w", err)
		}
	}

	if items != nil {
		amountIDs, err := s.internAmounts(ctx, items)
		if err != nil {
			return err
		}
		if err := s.recipes.ReplaceIngredients(ctx, recipeID, amountIDs); err != nil {
			return fmt.Errorf("replace ingredients: %w", err)
		}
	}

	return nil
}

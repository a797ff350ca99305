package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/foodgram-backend/internal/domain"
)

// ListTags returns every tag.
func (s *Service) ListTags(ctx context.Context) ([]domain.Tag, error) {
	tags, err := s.tags.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog.ListTags: %w", err)
	}
	return tags, nil
}

// GetTag returns a tag by id.
func (s *Service) GetTag(ctx context.Context, id int64) (*domain.Tag, error) {
	tag, err := s.tags.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("catalog.GetTag: %w", err)
	}
	return tag, nil
}

// SearchIngredients returns ingredients whose name starts with prefix,
// ignoring case. An empty prefix lists the whole catalog.
func (s *Service) SearchIngredients(ctx context.Context, prefix string) ([]domain.Ingredient, error) {
	items, err := s.ingredients.Search(ctx, strings.TrimSpace(prefix))
	if err != nil {
		return nil, fmt.Errorf("catalog.SearchIngredients: %w", err)
	}
	return items, nil
}

// GetIngredient returns an ingredient by id.
func (s *Service) GetIngredient(ctx context.Context, id int64) (*domain.Ingredient, error) {
	ing, err := s.ingredients.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("catalog.GetIngredient: %w", err)
	}
	return ing, nil
}

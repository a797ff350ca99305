// Package catalog serves the read-only reference data: tags and ingredients.
package catalog

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/foodgram-backend/internal/domain"
)

type tagRepo interface {
	List(ctx context.Context) ([]domain.Tag, error)
	GetByID(ctx context.Context, id int64) (*domain.Tag, error)
	CreateMany(ctx context.Context, tags []domain.Tag) (int64, error)
}

type ingredientRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Ingredient, error)
	Search(ctx context.Context, prefix string) ([]domain.Ingredient, error)
	CreateMany(ctx context.Context, items []domain.Ingredient) (int64, error)
}

// Service implements catalog queries and bulk loading.
type Service struct {
	log         *slog.Logger
	tags        tagRepo
	ingredients ingredientRepo
}

// NewService creates a new catalog service instance.
func NewService(logger *slog.Logger, tags tagRepo, ingredients ingredientRepo) *Service {
	return &Service{
		log:         logger.With("service", "catalog"),
		tags:        tags,
		ingredients: ingredients,
	}
}

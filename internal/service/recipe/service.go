package recipe

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/foodgram-backend/internal/config"
	"github.com/heartmarshall/foodgram-backend/internal/domain"
)

// recipeRepo defines the recipe repository interface needed by recipe service.
type recipeRepo interface {
	Create(ctx context.Context, rec domain.Recipe) (*domain.Recipe, error)
	Update(ctx context.Context, rec domain.Recipe) (*domain.Recipe, error)
	Delete(ctx context.Context, id int64) error
	ReplaceTags(ctx context.Context, recipeID int64, tagIDs []int64) error
	ReplaceIngredients(ctx context.Context, recipeID int64, amountIDs []int64) error
	GetByID(ctx context.Context, id int64) (*domain.Recipe, error)
	List(ctx context.Context, f domain.RecipeFilter) ([]domain.Recipe, int, error)
}

// amountRepo interns (ingredient, amount) pairs.
type amountRepo interface {
	GetOrCreate(ctx context.Context, ingredientID int64, amount int) (domain.IngredientAmount, error)
}

type tagRepo interface {
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Tag, error)
}

type ingredientRepo interface {
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Ingredient, error)
}

// imageStore persists decoded recipe images and returns their public URL.
type imageStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}

// txManager defines the transaction manager interface needed by recipe service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements recipe operations.
type Service struct {
	log         *slog.Logger
	recipes     recipeRepo
	amounts     amountRepo
	tags        tagRepo
	ingredients ingredientRepo
	images      imageStore
	tx          txManager
	imageCfg    config.ImageConfig
}

// NewService creates a new recipe service instance.
func NewService(
	logger *slog.Logger,
	recipes recipeRepo,
	amounts amountRepo,
	tags tagRepo,
	ingredients ingredientRepo,
	images imageStore,
	tx txManager,
	imageCfg config.ImageConfig,
) *Service {
	return &Service{
		log:         logger.With("service", "recipe"),
		recipes:     recipes,
		amounts:     amounts,
		tags:        tags,
		ingredients: ingredients,
		images:      images,
		tx:          tx,
		imageCfg:    imageCfg,
	}
}

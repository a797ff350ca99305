// Package dataloader provides per-request DataLoaders that batch the
// relations and viewer flags of recipe listings into single SQL calls.
// Loaders call repositories directly, bypassing the service layer.
package dataloader

import (
	"context"
	"time"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/foodgram-backend/internal/adapter/postgres/recipe"
	"github.com/heartmarshall/foodgram-backend/internal/adapter/postgres/tag"
	"github.com/heartmarshall/foodgram-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

// ---------------------------------------------------------------------------
// Repository interfaces (consumer-defined)
// ---------------------------------------------------------------------------

type tagRepo interface {
	GetByRecipeIDs(ctx context.Context, recipeIDs []int64) ([]tag.TagWithRecipeID, error)
}

type ingredientRepo interface {
	GetIngredientsByRecipeIDs(ctx context.Context, recipeIDs []int64) ([]recipe.IngredientWithRecipeID, error)
}

type userRepo interface {
	GetByIDs(ctx context.Context, ids []int64) ([]domain.User, error)
}

type favoriteRepo interface {
	FavoritedAmong(ctx context.Context, userID int64, recipeIDs []int64) ([]int64, error)
}

type cartRepo interface {
	InCartAmong(ctx context.Context, userID int64, recipeIDs []int64) ([]int64, error)
}

type subscriptionRepo interface {
	SubscribedAmong(ctx context.Context, userID int64, authorIDs []int64) ([]int64, error)
}

// ---------------------------------------------------------------------------
// Repos aggregates all repositories needed by DataLoaders.
// ---------------------------------------------------------------------------

// Repos holds all repositories required by DataLoaders.
type Repos struct {
	Tag          tagRepo
	Ingredient   ingredientRepo
	User         userRepo
	Favorite     favoriteRepo
	Cart         cartRepo
	Subscription subscriptionRepo
}

// ---------------------------------------------------------------------------
// Loaders holds all per-request DataLoader instances.
// ---------------------------------------------------------------------------

// Loaders contains the per-request DataLoaders. Created via NewLoaders.
type Loaders struct {
	TagsByRecipeID        *dataloader.Loader[int64, []domain.Tag]
	IngredientsByRecipeID *dataloader.Loader[int64, []domain.RecipeIngredient]
	UserByID              *dataloader.Loader[int64, *domain.User]
	FavoritedByRecipeID   *dataloader.Loader[int64, bool]
	InCartByRecipeID      *dataloader.Loader[int64, bool]
	SubscribedByAuthorID  *dataloader.Loader[int64, bool]
}

// NewLoaders creates a new set of DataLoaders backed by the given repositories.
// Must be called per-request (loaders cache results within a single request).
func NewLoaders(repos *Repos) *Loaders {
	return &Loaders{
		TagsByRecipeID:        newLoader(newTagsBatchFn(repos.Tag)),
		IngredientsByRecipeID: newLoader(newIngredientsBatchFn(repos.Ingredient)),
		UserByID:              newLoader(newUserBatchFn(repos.User)),
		FavoritedByRecipeID:   newLoader(newViewerFlagBatchFn(repos.Favorite.FavoritedAmong)),
		InCartByRecipeID:      newLoader(newViewerFlagBatchFn(repos.Cart.InCartAmong)),
		SubscribedByAuthorID:  newLoader(newViewerFlagBatchFn(repos.Subscription.SubscribedAmong)),
	}
}

// newLoader creates a dataloader.Loader with standard batch parameters.
func newLoader[V any](batchFn dataloader.BatchFunc[int64, V]) *dataloader.Loader[int64, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[int64, V](wait),
		dataloader.WithBatchCapacity[int64, V](maxBatch),
	)
}

// ---------------------------------------------------------------------------
// Context helpers
// ---------------------------------------------------------------------------

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context.
// Panics if loaders are not present (indicates middleware misconfiguration).
func FromContext(ctx context.Context) *Loaders {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	if !ok || l == nil {
		panic("dataloader: loaders not found in context, is the middleware configured?")
	}
	return l
}

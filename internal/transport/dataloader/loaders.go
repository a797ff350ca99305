package dataloader

import (
	"context"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/foodgram-backend/internal/domain"
	"github.com/heartmarshall/foodgram-backend/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// Tags by RecipeID
// ---------------------------------------------------------------------------

func newTagsBatchFn(repo tagRepo) dataloader.BatchFunc[int64, []domain.Tag] {
	return func(ctx context.Context, keys []int64) []*dataloader.Result[[]domain.Tag] {
		rows, err := repo.GetByRecipeIDs(ctx, keys)
		if err != nil {
			return errorResults[[]domain.Tag](len(keys), err)
		}

		grouped := make(map[int64][]domain.Tag, len(keys))
		for _, r := range rows {
			grouped[r.RecipeID] = append(grouped[r.RecipeID], r.Tag)
		}

		return mapResults(keys, grouped, emptySlice[domain.Tag])
	}
}

// ---------------------------------------------------------------------------
// Ingredients by RecipeID
// ---------------------------------------------------------------------------

func newIngredientsBatchFn(repo ingredientRepo) dataloader.BatchFunc[int64, []domain.RecipeIngredient] {
	return func(ctx context.Context, keys []int64) []*dataloader.Result[[]domain.RecipeIngredient] {
		rows, err := repo.GetIngredientsByRecipeIDs(ctx, keys)
		if err != nil {
			return errorResults[[]domain.RecipeIngredient](len(keys), err)
		}

		grouped := make(map[int64][]domain.RecipeIngredient, len(keys))
		for _, r := range rows {
			grouped[r.RecipeID] = append(grouped[r.RecipeID], r.RecipeIngredient)
		}

		return mapResults(keys, grouped, emptySlice[domain.RecipeIngredient])
	}
}

// ---------------------------------------------------------------------------
// User by ID
// ---------------------------------------------------------------------------

func newUserBatchFn(repo userRepo) dataloader.BatchFunc[int64, *domain.User] {
	return func(ctx context.Context, keys []int64) []*dataloader.Result[*domain.User] {
		users, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			return errorResults[*domain.User](len(keys), err)
		}

		byID := make(map[int64]*domain.User, len(users))
		for i := range users {
			u := users[i]
			byID[u.ID] = &u
		}

		results := make([]*dataloader.Result[*domain.User], len(keys))
		for i, key := range keys {
			if u, ok := byID[key]; ok {
				results[i] = &dataloader.Result[*domain.User]{Data: u}
			} else {
				results[i] = &dataloader.Result[*domain.User]{Error: domain.ErrNotFound}
			}
		}
		return results
	}
}

// ---------------------------------------------------------------------------
// Viewer-relative flags
// ---------------------------------------------------------------------------

type amongFunc func(ctx context.Context, userID int64, ids []int64) ([]int64, error)

// newViewerFlagBatchFn answers "does the viewer have a membership row for
// this id". Anonymous viewers get false for every key without a query.
func newViewerFlagBatchFn(among amongFunc) dataloader.BatchFunc[int64, bool] {
	return func(ctx context.Context, keys []int64) []*dataloader.Result[bool] {
		userID, ok := ctxutil.UserIDFromCtx(ctx)
		if !ok {
			return mapResults(keys, map[int64]bool{}, falseValue)
		}

		hits, err := among(ctx, userID, keys)
		if err != nil {
			return errorResults[bool](len(keys), err)
		}

		set := make(map[int64]bool, len(hits))
		for _, id := range hits {
			set[id] = true
		}
		return mapResults(keys, set, falseValue)
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// errorResults returns n results all carrying the same error.
func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// mapResults maps grouped results back to key order, using defaultFn for missing keys.
func mapResults[V any](keys []int64, grouped map[int64]V, defaultFn func() V) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], len(keys))
	for i, key := range keys {
		if v, ok := grouped[key]; ok {
			results[i] = &dataloader.Result[V]{Data: v}
		} else {
			results[i] = &dataloader.Result[V]{Data: defaultFn()}
		}
	}
	return results
}

// emptySlice returns a non-nil empty slice.
func emptySlice[T any]() []T {
	return []T{}
}

func falseValue() bool { return false }

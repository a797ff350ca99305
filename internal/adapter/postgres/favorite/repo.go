// Package favorite implements the favorites repository using PostgreSQL.
package favorite

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/foodgram-backend/internal/adapter/postgres"
	"github.com/heartmarshall/foodgram-backend/internal/domain"
)

// Repo provides favorite persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new favorite repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const (
	addSQL = `
INSERT INTO favorites (user_id, recipe_id)
VALUES ($1, $2)
RETURNING id, user_id, recipe_id, created_at`

	removeSQL = `DELETE FROM favorites WHERE user_id = $1 AND recipe_id = $2`

	existsSQL = `SELECT EXISTS(SELECT 1 FROM favorites WHERE user_id = $1 AND recipe_id = $2)`

	favoritedAmongSQL = `
SELECT recipe_id FROM favorites
WHERE user_id = $1 AND recipe_id = ANY($2::bigint[])`
)

// Add favorites a recipe. Returns domain.ErrAlreadyExists for a duplicate
// and domain.ErrNotFound for an unknown recipe.
func (r *Repo) Add(ctx context.Context, userID, recipeID int64) (*domain.Favorite, error) {
	var f domain.Favorite
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, addSQL, userID, recipeID).
		Scan(&f.ID, &f.UserID, &f.RecipeID, &f.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "favorite", recipeID)
	}
	return &f, nil
}

// Remove deletes the favorite. Returns domain.ErrNotFound when absent.
func (r *Repo) Remove(ctx context.Context, userID, recipeID int64) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, removeSQL, userID, recipeID)
	if err != nil {
		return postgres.MapError(err, "favorite", recipeID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("favorite %d: %w", recipeID, domain.ErrNotFound)
	}
	return nil
}

// Exists reports whether the user favorited the recipe.
func (r *Repo) Exists(ctx context.Context, userID, recipeID int64) (bool, error) {
	var ok bool
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, existsSQL, userID, recipeID).Scan(&ok); err != nil {
		return false, fmt.Errorf("check favorite: %w", err)
	}
	return ok, nil
}

// FavoritedAmong returns the subset of recipeIDs the user favorited
// (batch for DataLoader).
func (r *Repo) FavoritedAmong(ctx context.Context, userID int64, recipeIDs []int64) ([]int64, error) {
	if len(recipeIDs) == 0 {
		return []int64{}, nil
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, favoritedAmongSQL, userID, recipeIDs)
	if err != nil {
		return nil, fmt.Errorf("get favorited recipes: %w", err)
	}
	defer rows.Close()

	out := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan favorite: %w", err)
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

// Package cart implements the shopping cart repository using PostgreSQL.
package cart

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/foodgram-backend/internal/adapter/postgres"
	"github.com/heartmarshall/foodgram-backend/internal/domain"
)

// Repo provides shopping cart persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new shopping cart repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const (
	addSQL = `
INSERT INTO shopping_cart (user_id, recipe_id)
VALUES ($1, $2)
RETURNING id, user_id, recipe_id, created_at`

	removeSQL = `DELETE FROM shopping_cart WHERE user_id = $1 AND recipe_id = $2`

	existsSQL = `SELECT EXISTS(SELECT 1 FROM shopping_cart WHERE user_id = $1 AND recipe_id = $2)`

	inCartAmongSQL = `
SELECT recipe_id FROM shopping_cart
WHERE user_id = $1 AND recipe_id = ANY($2::bigint[])`

	// Cart entries in insertion order, each recipe's ingredients in stored order.
	// LEFT JOINs keep recipes without ingredients.
	listIngredientsSQL = `
SELECT sc.recipe_id, i.id, i.name, i.measurement_unit, ia.amount
FROM shopping_cart sc
LEFT JOIN recipe_ingredient_amounts ria ON ria.recipe_id = sc.recipe_id
LEFT JOIN ingredient_amounts ia ON ia.id = ria.ingredient_amount_id
LEFT JOIN ingredients i ON i.id = ia.ingredient_id
WHERE sc.user_id = $1
ORDER BY sc.id, ria.position`
)

// Add puts a recipe into the cart. Returns domain.ErrAlreadyExists for a
// duplicate and domain.ErrNotFound for an unknown recipe.
func (r *Repo) Add(ctx context.Context, userID, recipeID int64) (*domain.CartEntry, error) {
	var e domain.CartEntry
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, addSQL, userID, recipeID).
		Scan(&e.ID, &e.UserID, &e.RecipeID, &e.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "cart_entry", recipeID)
	}
	return &e, nil
}

// Remove takes a recipe out of the cart. Returns domain.ErrNotFound when absent.
func (r *Repo) Remove(ctx context.Context, userID, recipeID int64) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, removeSQL, userID, recipeID)
	if err != nil {
		return postgres.MapError(err, "cart_entry", recipeID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("cart_entry %d: %w", recipeID, domain.ErrNotFound)
	}
	return nil
}

// Exists reports whether the recipe is in the user's cart.
func (r *Repo) Exists(ctx context.Context, userID, recipeID int64) (bool, error) {
	var ok bool
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, existsSQL, userID, recipeID).Scan(&ok); err != nil {
		return false, fmt.Errorf("check cart entry: %w", err)
	}
	return ok, nil
}

// InCartAmong returns the subset of recipeIDs in the user's cart
// (batch for DataLoader).
func (r *Repo) InCartAmong(ctx context.Context, userID int64, recipeIDs []int64) ([]int64, error) {
	if len(recipeIDs) == 0 {
		return []int64{}, nil
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, inCartAmongSQL, userID, recipeIDs)
	if err != nil {
		return nil, fmt.Errorf("get cart recipes: %w", err)
	}
	defer rows.Close()

	out := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan cart entry: %w", err)
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

// ListIngredients returns the user's cart as recipes with their ingredients,
// ready for shopping list aggregation.
func (r *Repo) ListIngredients(ctx context.Context, userID int64) ([]domain.CartRecipe, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, listIngredientsSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list cart ingredients: %w", err)
	}
	defer rows.Close()

	out := make([]domain.CartRecipe, 0)
	for rows.Next() {
		var (
			recipeID int64
			ingID    *int64
			name     *string
			unit     *string
			amount   *int
		)
		if err := rows.Scan(&recipeID, &ingID, &name, &unit, &amount); err != nil {
			return nil, fmt.Errorf("scan cart ingredient: %w", err)
		}

		if len(out) == 0 || out[len(out)-1].RecipeID != recipeID {
			out = append(out, domain.CartRecipe{RecipeID: recipeID})
		}
		if ingID == nil {
			continue
		}
		last := &out[len(out)-1]
		last.Ingredients = append(last.Ingredients, domain.RecipeIngredient{
			IngredientID:    *ingID,
			Name:            *name,
			MeasurementUnit: *unit,
			Amount:          *amount,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cart ingredients: %w", err)
	}
	return out, nil
}

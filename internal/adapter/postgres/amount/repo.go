// Package amount implements interning of ingredient amounts using PostgreSQL.
// Each (ingredient_id, amount) pair is stored once and shared by recipes.
package amount

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/foodgram-backend/internal/adapter/postgres"
	"github.com/heartmarshall/foodgram-backend/internal/domain"
)

// Repo provides ingredient amount persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new ingredient amount repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// The insert and the fallback select share one snapshot. When a concurrent
// transaction commits the same pair between them, neither branch returns a
// row; GetOrCreate reports that as ErrAlreadyExists so the caller retries.
const getOrCreateSQL = `
WITH ins AS (
    INSERT INTO ingredient_amounts (ingredient_id, amount)
    VALUES ($1, $2)
    ON CONFLICT (ingredient_id, amount) DO NOTHING
    RETURNING id, ingredient_id, amount
)
SELECT id, ingredient_id, amount FROM ins
UNION ALL
SELECT id, ingredient_id, amount
FROM ingredient_amounts
WHERE ingredient_id = $1 AND amount = $2
LIMIT 1`

// GetOrCreate returns the interned row for (ingredientID, amount), inserting it
// when missing. Returns domain.ErrNotFound for an unknown ingredient and
// domain.ErrAlreadyExists when it lost a race with a concurrent insert.
func (r *Repo) GetOrCreate(ctx context.Context, ingredientID int64, amount int) (domain.IngredientAmount, error) {
	var ia domain.IngredientAmount
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, getOrCreateSQL, ingredientID, amount).
		Scan(&ia.ID, &ia.IngredientID, &ia.Amount)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.IngredientAmount{}, fmt.Errorf("ingredient_amount %d/%d: %w", ingredientID, amount, domain.ErrAlreadyExists)
	}
	if err != nil {
		return domain.IngredientAmount{}, postgres.MapError(err, "ingredient_amount", ingredientID)
	}
	return ia, nil
}

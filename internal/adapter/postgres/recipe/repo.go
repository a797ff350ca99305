// Package recipe implements the Recipe repository using PostgreSQL.
// Tags and ingredient amounts are linked through the recipe_tags and
// recipe_ingredient_amounts join tables and are always replaced as whole sets.
package recipe

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/foodgram-backend/internal/adapter/postgres"
	"github.com/heartmarshall/foodgram-backend/internal/domain"
)

// IngredientWithRecipeID is the batch result type for GetIngredientsByRecipeIDs.
type IngredientWithRecipeID struct {
	RecipeID int64
	domain.RecipeIngredient
}

// Repo provides recipe persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new recipe repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const recipeColumns = `r.id, r.author_id, r.name, r.image, r.text, r.cooking_time, r.created_at`

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

const (
	createSQL = `
INSERT INTO recipes AS r (author_id, name, image, text, cooking_time)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + recipeColumns

	updateSQL = `
UPDATE recipes AS r
SET name = $2, image = $3, text = $4, cooking_time = $5
WHERE r.id = $1
RETURNING ` + recipeColumns

	deleteSQL = `DELETE FROM recipes WHERE id = $1`

	getByIDSQL = `SELECT ` + recipeColumns + ` FROM recipes r WHERE r.id = $1`

	deleteTagsSQL = `DELETE FROM recipe_tags WHERE recipe_id = $1`

	insertTagsSQL = `
INSERT INTO recipe_tags (recipe_id, tag_id)
SELECT $1, t.id FROM unnest($2::bigint[]) AS t(id)`

	deleteIngredientsSQL = `DELETE FROM recipe_ingredient_amounts WHERE recipe_id = $1`

	insertIngredientsSQL = `
INSERT INTO recipe_ingredient_amounts (recipe_id, ingredient_amount_id, position)
SELECT $1, a.id, a.pos FROM unnest($2::bigint[]) WITH ORDINALITY AS a(id, pos)`

	getIngredientsByRecipeIDsSQL = `
SELECT ria.recipe_id, i.id, i.name, i.measurement_unit, ia.amount
FROM recipe_ingredient_amounts ria
JOIN ingredient_amounts ia ON ia.id = ria.ingredient_amount_id
JOIN ingredients i ON i.id = ia.ingredient_id
WHERE ria.recipe_id = ANY($1::bigint[])
ORDER BY ria.recipe_id, ria.position`

	// rn numbers each author's recipes newest first; a negative $2 keeps all.
	listByAuthorIDsSQL = `
SELECT ` + recipeColumns + `
FROM (
    SELECT r.*, ROW_NUMBER() OVER (
        PARTITION BY r.author_id ORDER BY r.created_at DESC, r.id DESC
    ) AS rn
    FROM recipes r
    WHERE r.author_id = ANY($1::bigint[])
) r
WHERE $2::int < 0 OR r.rn <= $2::int
ORDER BY r.author_id, r.rn`

	countByAuthorIDsSQL = `
SELECT author_id, count(*)
FROM recipes
WHERE author_id = ANY($1::bigint[])
GROUP BY author_id`
)

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts the scalar columns of a recipe. Relations are set with
// ReplaceTags and ReplaceIngredients.
func (r *Repo) Create(ctx context.Context, rec domain.Recipe) (*domain.Recipe, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, createSQL,
		rec.AuthorID, rec.Name, rec.Image, rec.Text, rec.CookingTime,
	)
	created, err := scanRecipe(row)
	if err != nil {
		return nil, postgres.MapError(err, "recipe", 0)
	}
	return &created, nil
}

// Update rewrites the mutable scalar columns. author_id and created_at never change.
func (r *Repo) Update(ctx context.Context, rec domain.Recipe) (*domain.Recipe, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, updateSQL,
		rec.ID, rec.Name, rec.Image, rec.Text, rec.CookingTime,
	)
	updated, err := scanRecipe(row)
	if err != nil {
		return nil, postgres.MapError(err, "recipe", rec.ID)
	}
	return &updated, nil
}

// Delete removes the recipe row. Its join rows cascade; interned ingredient
// amounts stay.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "recipe", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("recipe %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ReplaceTags makes tagIDs the complete tag set of the recipe.
func (r *Repo) ReplaceTags(ctx context.Context, recipeID int64, tagIDs []int64) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, deleteTagsSQL, recipeID); err != nil {
		return postgres.MapError(err, "recipe", recipeID)
	}
	if len(tagIDs) == 0 {
		return nil
	}
	if _, err := q.Exec(ctx, insertTagsSQL, recipeID, tagIDs); err != nil {
		return postgres.MapError(err, "recipe_tag", recipeID)
	}
	return nil
}

// ReplaceIngredients makes amountIDs the complete ingredient set of the
// recipe, keeping their order.
func (r *Repo) ReplaceIngredients(ctx context.Context, recipeID int64, amountIDs []int64) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, deleteIngredientsSQL, recipeID); err != nil {
		return postgres.MapError(err, "recipe", recipeID)
	}
	if len(amountIDs) == 0 {
		return nil
	}
	if _, err := q.Exec(ctx, insertIngredientsSQL, recipeID, amountIDs); err != nil {
		return postgres.MapError(err, "recipe_ingredient", recipeID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a recipe by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Recipe, error) {
	rec, err := scanRecipe(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "recipe", id)
	}
	return &rec, nil
}

// List returns one page of recipes matching the filter, newest first,
// together with the total number of matches.
func (r *Repo) List(ctx context.Context, f domain.RecipeFilter) ([]domain.Recipe, int, error) {
	page := normalizePage(f.Page)
	q := postgres.QuerierFromCtx(ctx, r.pool)

	countQuery, countArgs, err := applyFilter(psql.Select("count(*)").From("recipes r"), f).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count recipes query: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count recipes: %w", err)
	}

	query, args, err := applyFilter(psql.Select(recipeColumns).From("recipes r"), f).
		OrderBy("r.created_at DESC", "r.id DESC").
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Offset())).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list recipes query: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list recipes: %w", err)
	}
	defer rows.Close()

	recipes, err := scanRecipes(rows)
	if err != nil {
		return nil, 0, err
	}
	return recipes, total, nil
}

// ListByAuthorIDs returns up to limit newest recipes per author, keyed by
// author id, in one query. A negative limit returns all of them. Authors
// without recipes are absent from the map.
func (r *Repo) ListByAuthorIDs(ctx context.Context, authorIDs []int64, limit int) (map[int64][]domain.Recipe, error) {
	out := make(map[int64][]domain.Recipe, len(authorIDs))
	if len(authorIDs) == 0 {
		return out, nil
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, listByAuthorIDsSQL, authorIDs, limit)
	if err != nil {
		return nil, fmt.Errorf("list recipes by authors: %w", err)
	}
	defer rows.Close()

	recipes, err := scanRecipes(rows)
	if err != nil {
		return nil, err
	}
	for _, rec := range recipes {
		out[rec.AuthorID] = append(out[rec.AuthorID], rec)
	}
	return out, nil
}

// CountByAuthorIDs returns recipe counts keyed by author id. Authors without
// recipes are absent from the map.
func (r *Repo) CountByAuthorIDs(ctx context.Context, authorIDs []int64) (map[int64]int, error) {
	counts := make(map[int64]int, len(authorIDs))
	if len(authorIDs) == 0 {
		return counts, nil
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, countByAuthorIDsSQL, authorIDs)
	if err != nil {
		return nil, fmt.Errorf("count recipes by author: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id int64
		var n int
		if err := rows.Scan(&id, &n); err != nil {
			return nil, fmt.Errorf("scan recipe count: %w", err)
		}
		counts[id] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recipe counts: %w", err)
	}
	return counts, nil
}

// GetIngredientsByRecipeIDs returns the ingredients of multiple recipes
// (batch for DataLoader), in stored order per recipe.
func (r *Repo) GetIngredientsByRecipeIDs(ctx context.Context, recipeIDs []int64) ([]IngredientWithRecipeID, error) {
	if len(recipeIDs) == 0 {
		return []IngredientWithRecipeID{}, nil
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, getIngredientsByRecipeIDsSQL, recipeIDs)
	if err != nil {
		return nil, fmt.Errorf("get ingredients by recipe_ids: %w", err)
	}
	defer rows.Close()

	out := make([]IngredientWithRecipeID, 0)
	for rows.Next() {
		var it IngredientWithRecipeID
		if err := rows.Scan(&it.RecipeID, &it.IngredientID, &it.Name, &it.MeasurementUnit, &it.Amount); err != nil {
			return nil, fmt.Errorf("scan recipe ingredient: %w", err)
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recipe ingredients: %w", err)
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Scan helpers
// ---------------------------------------------------------------------------

func scanRecipe(row pgx.Row) (domain.Recipe, error) {
	var rec domain.Recipe
	err := row.Scan(&rec.ID, &rec.AuthorID, &rec.Name, &rec.Image, &rec.Text, &rec.CookingTime, &rec.CreatedAt)
	return rec, err
}

func scanRecipes(rows pgx.Rows) ([]domain.Recipe, error) {
	out := make([]domain.Recipe, 0)
	for rows.Next() {
		rec, err := scanRecipe(rows)
		if err != nil {
			return nil, fmt.Errorf("scan recipe: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recipes: %w", err)
	}
	return out, nil
}

// Package ingredient implements the ingredient catalog repository using PostgreSQL.
package ingredient

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/foodgram-backend/internal/adapter/postgres"
	"github.com/heartmarshall/foodgram-backend/internal/domain"
)

// Repo provides ingredient persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new ingredient repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const (
	getByIDSQL = `SELECT id, name, measurement_unit FROM ingredients WHERE id = $1`

	getByIDsSQL = `SELECT id, name, measurement_unit FROM ingredients WHERE id = ANY($1::bigint[])`

	// Prefix match uses the text_pattern_ops index on lower(name).
	searchSQL = `
SELECT id, name, measurement_unit
FROM ingredients
WHERE lower(name) LIKE $1 ESCAPE '\'
ORDER BY name, measurement_unit`

	insertSQL = `
INSERT INTO ingredients (name, measurement_unit)
VALUES ($1, $2)
ON CONFLICT (name, measurement_unit) DO NOTHING`
)

// GetByID returns an ingredient by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Ingredient, error) {
	var ing domain.Ingredient
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, getByIDSQL, id).
		Scan(&ing.ID, &ing.Name, &ing.MeasurementUnit)
	if err != nil {
		return nil, postgres.MapError(err, "ingredient", id)
	}
	return &ing, nil
}

// GetByIDs returns the ingredients with the given ids. Missing ids are skipped.
func (r *Repo) GetByIDs(ctx context.Context, ids []int64) ([]domain.Ingredient, error) {
	if len(ids) == 0 {
		return []domain.Ingredient{}, nil
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, getByIDsSQL, ids)
	if err != nil {
		return nil, fmt.Errorf("get ingredients by ids: %w", err)
	}
	defer rows.Close()

	return scanIngredients(rows)
}

// Search returns ingredients whose name starts with prefix, case-insensitively.
// An empty prefix returns the whole catalog.
func (r *Repo) Search(ctx context.Context, prefix string) ([]domain.Ingredient, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, searchSQL, likePrefix(prefix))
	if err != nil {
		return nil, fmt.Errorf("search ingredients: %w", err)
	}
	defer rows.Close()

	return scanIngredients(rows)
}

// CreateMany inserts ingredients, skipping ones that already exist.
// Returns the number of inserted rows.
func (r *Repo) CreateMany(ctx context.Context, items []domain.Ingredient) (int64, error) {
	if len(items) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, it := range items {
		batch.Queue(insertSQL, it.Name, it.MeasurementUnit)
	}

	br := postgres.QuerierFromCtx(ctx, r.pool).SendBatch(ctx, batch)
	defer br.Close()

	var inserted int64
	for range items {
		tag, err := br.Exec()
		if err != nil {
			return inserted, fmt.Errorf("insert ingredient: %w", err)
		}
		inserted += tag.RowsAffected()
	}
	return inserted, nil
}

func likePrefix(prefix string) string {
	esc := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return esc.Replace(strings.ToLower(prefix)) + "%"
}

func scanIngredients(rows pgx.Rows) ([]domain.Ingredient, error) {
	out := make([]domain.Ingredient, 0)
	for rows.Next() {
		var ing domain.Ingredient
		if err := rows.Scan(&ing.ID, &ing.Name, &ing.MeasurementUnit); err != nil {
			return nil, fmt.Errorf("scan ingredient: %w", err)
		}
		out = append(out, ing)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ingredients: %w", err)
	}
	return out, nil
}

// Package tag implements the tag repository using PostgreSQL.
package tag

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/foodgram-backend/internal/adapter/postgres"
	"github.com/heartmarshall/foodgram-backend/internal/domain"
)

// TagWithRecipeID is the batch result type for GetByRecipeIDs.
type TagWithRecipeID struct {
	RecipeID int64
	domain.Tag
}

// Repo provides tag persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new tag repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const (
	listSQL = `SELECT id, name, color, slug FROM tags ORDER BY id`

	getByIDSQL = `SELECT id, name, color, slug FROM tags WHERE id = $1`

	getByIDsSQL = `SELECT id, name, color, slug FROM tags WHERE id = ANY($1::bigint[]) ORDER BY id`

	getByRecipeIDsSQL = `
SELECT rt.recipe_id, t.id, t.name, t.color, t.slug
FROM recipe_tags rt
JOIN tags t ON t.id = rt.tag_id
WHERE rt.recipe_id = ANY($1::bigint[])
ORDER BY rt.recipe_id, t.id`

	insertSQL = `
INSERT INTO tags (name, color, slug)
VALUES ($1, $2, $3)
ON CONFLICT DO NOTHING`
)

// List returns every tag ordered by id.
func (r *Repo) List(ctx context.Context) ([]domain.Tag, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, listSQL)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	defer rows.Close()

	return scanTags(rows)
}

// GetByID returns a tag by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Tag, error) {
	var t domain.Tag
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, getByIDSQL, id).
		Scan(&t.ID, &t.Name, &t.Color, &t.Slug)
	if err != nil {
		return nil, postgres.MapError(err, "tag", id)
	}
	return &t, nil
}

// GetByIDs returns the tags with the given ids. Missing ids are skipped.
func (r *Repo) GetByIDs(ctx context.Context, ids []int64) ([]domain.Tag, error) {
	if len(ids) == 0 {
		return []domain.Tag{}, nil
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, getByIDsSQL, ids)
	if err != nil {
		return nil, fmt.Errorf("get tags by ids: %w", err)
	}
	defer rows.Close()

	return scanTags(rows)
}

// GetByRecipeIDs returns tags for multiple recipes (batch for DataLoader).
func (r *Repo) GetByRecipeIDs(ctx context.Context, recipeIDs []int64) ([]TagWithRecipeID, error) {
	if len(recipeIDs) == 0 {
		return []TagWithRecipeID{}, nil
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, getByRecipeIDsSQL, recipeIDs)
	if err != nil {
		return nil, fmt.Errorf("get tags by recipe_ids: %w", err)
	}
	defer rows.Close()

	out := make([]TagWithRecipeID, 0)
	for rows.Next() {
		var t TagWithRecipeID
		if err := rows.Scan(&t.RecipeID, &t.ID, &t.Name, &t.Color, &t.Slug); err != nil {
			return nil, fmt.Errorf("scan tag: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tags: %w", err)
	}
	return out, nil
}

// CreateMany inserts tags, skipping ones whose name or slug already exists.
// An empty color defaults to domain.DefaultTagColor.
func (r *Repo) CreateMany(ctx context.Context, tags []domain.Tag) (int64, error) {
	if len(tags) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, t := range tags {
		color := t.Color
		if color == "" {
			color = domain.DefaultTagColor
		}
		batch.Queue(insertSQL, t.Name, color, t.Slug)
	}

	br := postgres.QuerierFromCtx(ctx, r.pool).SendBatch(ctx, batch)
	defer br.Close()

	var inserted int64
	for range tags {
		tag, err := br.Exec()
		if err != nil {
			return inserted, fmt.Errorf("insert tag: %w", err)
		}
		inserted += tag.RowsAffected()
	}
	return inserted, nil
}

func scanTags(rows pgx.Rows) ([]domain.Tag, error) {
	out := make([]domain.Tag, 0)
	for rows.Next() {
		var t domain.Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.Color, &t.Slug); err != nil {
			return nil, fmt.Errorf("scan tag: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tags: %w", err)
	}
	return out, nil
}

package recipe

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/heartmarshall/foodgram-backend/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	defaultLimit = domain.DefaultPageSize
	maxLimit     = domain.MaxPageSize
)

// normalizePage applies defaults and clamps the page size.
func normalizePage(p domain.Page) domain.Page {
	if p.Number < 1 {
		p.Number = 1
	}
	if p.Limit <= 0 {
		p.Limit = defaultLimit
	}
	if p.Limit > maxLimit {
		p.Limit = maxLimit
	}
	return p
}

// applyFilter adds the WHERE clauses of f to a query over "recipes r".
func applyFilter(b sq.SelectBuilder, f domain.RecipeFilter) sq.SelectBuilder {
	if f.AuthorID != nil {
		b = b.Where(sq.Eq{"r.author_id": *f.AuthorID})
	}

	// Any of the given slugs matches.
	if len(f.TagSlugs) > 0 {
		b = b.Where(sq.Expr(
			`EXISTS (SELECT 1 FROM recipe_tags rt JOIN tags t ON t.id = rt.tag_id
			 WHERE rt.recipe_id = r.id AND t.slug = ANY(?::text[]))`,
			f.TagSlugs,
		))
	}

	if f.FavoritedBy != nil {
		b = b.Where(sq.Expr(
			`EXISTS (SELECT 1 FROM favorites fv WHERE fv.recipe_id = r.id AND fv.user_id = ?)`,
			*f.FavoritedBy,
		))
	}

	if f.InCartOf != nil {
		b = b.Where(sq.Expr(
			`EXISTS (SELECT 1 FROM shopping_cart sc WHERE sc.recipe_id = r.id AND sc.user_id = ?)`,
			*f.InCartOf,
		))
	}

	return b
}

package domain

// Pagination defaults.
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Page is a 1-based page request.
type Page struct {
	Number int
	Limit  int
}

// Offset returns the row offset of the page.
func (p Page) Offset() int {
	if p.Number < 1 {
		return 0
	}
	return (p.Number - 1) * p.Limit
}

// RecipeFilter narrows the recipe list. Zero values mean "no filter".
// FavoritedBy and InCartOf are the viewer id when the matching flag is set.
type RecipeFilter struct {
	AuthorID    *int64
	TagSlugs    []string
	FavoritedBy *int64
	InCartOf    *int64
	Page        Page
}

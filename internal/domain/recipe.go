package domain

import "time"

// Recipe field limits.
const (
	RecipeNameMinLen  = 3
	RecipeNameMaxLen  = 64
	MinCookingTime    = 1
	MaxCookingTime    = 60 * 24 * 7
	MinAmount         = 1
	DefaultTagColor   = "#FF0000"
	RecipeImagePrefix = "recipes/"
)

// Ingredient is a catalog entry, unique on (Name, MeasurementUnit).
type Ingredient struct {
	ID              int64
	Name            string
	MeasurementUnit string
}

// IngredientAmount binds an ingredient to a positive amount. Rows are interned
// on (IngredientID, Amount) and shared by every recipe that needs the pair.
type IngredientAmount struct {
	ID           int64
	IngredientID int64
	Amount       int
}

// RecipeIngredient is an ingredient amount joined with its ingredient,
// the way a recipe is read back.
type RecipeIngredient struct {
	IngredientID    int64
	Name            string
	MeasurementUnit string
	Amount          int
}

// Tag is static reference data attached to recipes.
type Tag struct {
	ID    int64
	Name  string
	Color string
	Slug  string
}

// Recipe holds the scalar recipe columns. Tags and ingredients are stored
// as relations and loaded separately.
type Recipe struct {
	ID          int64
	AuthorID    int64
	Name        string
	Image       string
	Text        string
	CookingTime int
	CreatedAt   time.Time
}

// IngredientRef is an ingredient reference in the write shape of a recipe.
type IngredientRef struct {
	IngredientID int64
	Amount       int
}

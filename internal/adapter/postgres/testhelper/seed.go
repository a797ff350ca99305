package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/foodgram-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser inserts a user with a unique email and username.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	user := domain.User{
		Email:        "cook-" + suffix + "@example.com",
		Username:     "cook_" + suffix,
		FirstName:    "Test",
		LastName:     "Cook " + suffix,
		PasswordHash: "$2a$04$placeholderplaceholderplaceholderplaceholderpla",
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO users (email, username, first_name, last_name, password_hash)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		user.Email, user.Username, user.FirstName, user.LastName, user.PasswordHash,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedIngredient inserts an ingredient with a unique name and the given unit.
// The name starts with prefix so tests can search for it.
func SeedIngredient(t *testing.T, pool *pgxpool.Pool, prefix, unit string) domain.Ingredient {
	t.Helper()

	ing := domain.Ingredient{Name: prefix + " " + uniqueSuffix(), MeasurementUnit: unit}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO ingredients (name, measurement_unit) VALUES ($1, $2) RETURNING id`,
		ing.Name, ing.MeasurementUnit,
	).Scan(&ing.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedIngredient: %v", err)
	}

	return ing
}

// SeedTag inserts a tag with a unique name and slug.
func SeedTag(t *testing.T, pool *pgxpool.Pool) domain.Tag {
	t.Helper()

	suffix := uniqueSuffix()
	tag := domain.Tag{Name: "Tag " + suffix, Color: "#49B64E", Slug: "tag-" + suffix}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO tags (name, color, slug) VALUES ($1, $2, $3) RETURNING id`,
		tag.Name, tag.Color, tag.Slug,
	).Scan(&tag.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedTag: %v", err)
	}

	return tag
}

// SeedRecipe inserts a recipe by author with no tags or ingredients.
func SeedRecipe(t *testing.T, pool *pgxpool.Pool, authorID int64) domain.Recipe {
	t.Helper()

	rec := domain.Recipe{
		AuthorID:    authorID,
		Name:        "Recipe " + uniqueSuffix(),
		Text:        "Mix and bake.",
		CookingTime: 30,
	}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO recipes (author_id, name, text, cooking_time)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		rec.AuthorID, rec.Name, rec.Text, rec.CookingTime,
	).Scan(&rec.ID, &rec.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedRecipe: %v", err)
	}

	return rec
}

// CountAmounts returns how many ingredient_amounts rows hold the pair.
func CountAmounts(t *testing.T, pool *pgxpool.Pool, ingredientID int64, amount int) int {
	t.Helper()

	var n int
	err := pool.QueryRow(context.Background(),
		`SELECT count(*) FROM ingredient_amounts WHERE ingredient_id = $1 AND amount = $2`,
		ingredientID, amount,
	).Scan(&n)
	if err != nil {
		t.Fatalf("testhelper: CountAmounts: %v", err)
	}

	return n
}

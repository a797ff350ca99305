package domain

import "time"

// Favorite marks a recipe as favorited by a user. Unique per (UserID, RecipeID).
type Favorite struct {
	ID        int64
	UserID    int64
	RecipeID  int64
	CreatedAt time.Time
}

// CartEntry puts a recipe into a user's shopping cart. Unique per (UserID, RecipeID).
type CartEntry struct {
	ID        int64
	UserID    int64
	RecipeID  int64
	CreatedAt time.Time
}

// Subscription makes UserID follow AuthorID. Unique per pair; a user cannot
// follow themselves.
type Subscription struct {
	ID        int64
	UserID    int64
	AuthorID  int64
	CreatedAt time.Time
}

package domain

import "time"

// ReservedUsername cannot be registered because it collides with the
// /users/me route.
const ReservedUsername = "me"

// User represents a registered account. Email is the login identity.
type User struct {
	ID           int64
	Email        string
	Username     string
	FirstName    string
	LastName     string
	PasswordHash string
	CreatedAt    time.Time
}

// Author is a public user profile with the author's recipes attached,
// as shown in subscription listings.
type Author struct {
	User         User
	Recipes      []Recipe
	RecipesCount int
}

// RevokedToken marks an access token as logged out until it expires.
type RevokedToken struct {
	TokenID   string
	UserID    int64
	ExpiresAt time.Time
}

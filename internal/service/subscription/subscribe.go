package subscription

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/foodgram-backend/internal/domain"
	"github.com/heartmarshall/foodgram-backend/pkg/ctxutil"
)

// Subscribe makes the authenticated user follow authorID and returns the
// author profile with up to recipesLimit recipes (all when recipesLimit <= 0).
func (s *Service) Subscribe(ctx context.Context, authorID int64, recipesLimit int) (*domain.Author, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	author, err := s.users.GetByID(ctx, authorID)
	if err != nil {
		return nil, fmt.Errorf("subscription.Subscribe: %w", err)
	}

	if authorID == userID {
		return nil, ErrSelf
	}

	exists, err := s.subscriptions.Exists(ctx, userID, authorID)
	if err != nil {
		return nil, fmt.Errorf("subscription.Subscribe: %w", err)
	}
	if exists {
		return nil, ErrDuplicate
	}

	if _, err := s.subscriptions.Add(ctx, userID, authorID); err != nil {
		switch {
		case errors.Is(err, domain.ErrAlreadyExists):
			return nil, ErrDuplicate
		case errors.Is(err, domain.ErrValidation):
			return nil, ErrSelf
		}
		return nil, fmt.Errorf("subscription.Subscribe: %w", err)
	}

	s.log.InfoContext(ctx, "subscribed",
		slog.Int64("user_id", userID),
		slog.Int64("author_id", authorID))

	authors, err := s.withRecipes(ctx, []domain.User{*author}, recipesLimit)
	if err != nil {
		return nil, fmt.Errorf("subscription.Subscribe: %w", err)
	}
	return &authors[0], nil
}

// Unsubscribe stops following authorID.
// Returns ErrNotFound when the user did not follow the author.
func (s *Service) Unsubscribe(ctx context.Context, authorID int64) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.subscriptions.Remove(ctx, userID, authorID); err != nil {
		return fmt.Errorf("subscription.Unsubscribe: %w", err)
	}

	s.log.InfoContext(ctx, "unsubscribed",
		slog.Int64("user_id", userID),
		slog.Int64("author_id", authorID))
	return nil
}

// List returns one page of the authors the user follows, each with up to
// recipesLimit recipes and the total recipe count.
func (s *Service) List(ctx context.Context, page domain.Page, recipesLimit int) ([]domain.Author, int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, 0, domain.ErrUnauthorized
	}

	users, total, err := s.subscriptions.ListAuthors(ctx, userID, page)
	if err != nil {
		return nil, 0, fmt.Errorf("subscription.List: %w", err)
	}

	authors, err := s.withRecipes(ctx, users, recipesLimit)
	if err != nil {
		return nil, 0, fmt.Errorf("subscription.List: %w", err)
	}
	return authors, total, nil
}

func (s *Service) withRecipes(ctx context.Context, users []domain.User, recipesLimit int) ([]domain.Author, error) {
	if recipesLimit <= 0 {
		recipesLimit = -1
	}

	ids := make([]int64, len(users))
	for i, u := range users {
		ids[i] = u.ID
	}

	counts, err := s.recipes.CountByAuthorIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("count recipes: %w", err)
	}
	byAuthor, err := s.recipes.ListByAuthorIDs(ctx, ids, recipesLimit)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}

	out := make([]domain.Author, 0, len(users))
	for _, u := range users {
		recipes := byAuthor[u.ID]
		if recipes == nil {
			recipes = []domain.Recipe{}
		}
		out = append(out, domain.Author{User: u, Recipes: recipes, RecipesCount: counts[u.ID]})
	}
	return out, nil
}

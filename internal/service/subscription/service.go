// Package subscription implements following authors and listing the
// followed authors with their recipes.
package subscription

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/foodgram-backend/internal/domain"
)

// Friendly validation errors for subscribe requests.
var (
	ErrSelf      = domain.NewValidationError("non_field_errors", "You can`t subscribe on yourself")
	ErrDuplicate = domain.NewValidationError("non_field_errors", "You already subscribe on this user")
)

type userRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type subscriptionRepo interface {
	Add(ctx context.Context, userID, authorID int64) (*domain.Subscription, error)
	Remove(ctx context.Context, userID, authorID int64) error
	Exists(ctx context.Context, userID, authorID int64) (bool, error)
	ListAuthors(ctx context.Context, userID int64, page domain.Page) ([]domain.User, int, error)
}

type recipeRepo interface {
	ListByAuthorIDs(ctx context.Context, authorIDs []int64, limit int) (map[int64][]domain.Recipe, error)
	CountByAuthorIDs(ctx context.Context, authorIDs []int64) (map[int64]int, error)
}

// Service implements subscription operations.
type Service struct {
	log           *slog.Logger
	users         userRepo
	subscriptions subscriptionRepo
	recipes       recipeRepo
}

// NewService creates a new subscription service instance.
func NewService(logger *slog.Logger, users userRepo, subscriptions subscriptionRepo, recipes recipeRepo) *Service {
	return &Service{
		log:           logger.With("service", "subscription"),
		users:         users,
		subscriptions: subscriptions,
		recipes:       recipes,
	}
}

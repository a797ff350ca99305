package user

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/foodgram-backend/internal/domain"
)

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	UpdateProfile(ctx context.Context, u domain.User) (*domain.User, error)
	UpdatePassword(ctx context.Context, id int64, hash string) error
	List(ctx context.Context, page domain.Page) ([]domain.User, int, error)
}

// Service implements user profile operations.
type Service struct {
	log        *slog.Logger
	users      userRepo
	bcryptCost int
}

// NewService creates a new user service instance.
func NewService(logger *slog.Logger, users userRepo, bcryptCost int) *Service {
	return &Service{
		log:        logger.With("service", "user"),
		users:      users,
		bcryptCost: bcryptCost,
	}
}

package user

import (
	"context"
	"fmt"

	"github.com/heartmarshall/foodgram-backend/internal/domain"
)

// GetByID returns a public user profile.
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("user.GetByID: %w", err)
	}
	return user, nil
}

// List returns one page of users and the total count.
func (s *Service) List(ctx context.Context, page domain.Page) ([]domain.User, int, error) {
	users, total, err := s.users.List(ctx, page)
	if err != nil {
		return nil, 0, fmt.Errorf("user.List: %w", err)
	}
	return users, total, nil
}

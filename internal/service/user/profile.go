package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/foodgram-backend/internal/domain"
	"github.com/heartmarshall/foodgram-backend/pkg/ctxutil"
)

// GetMe returns the authenticated user's profile.
// Returns ErrUnauthorized if no userID is found in context.
func (s *Service) GetMe(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.GetMe: %w", err)
	}

	return user, nil
}

// UpdateMe applies a partial update to the authenticated user's profile.
func (s *Service) UpdateMe(ctx context.Context, input UpdateProfileInput) (*domain.User, error) {
	if input.Username != nil {
		v := strings.TrimSpace(*input.Username)
		input.Username = &v
	}
	if input.FirstName != nil {
		v := domain.CompactSpaces(*input.FirstName)
		input.FirstName = &v
	}
	if input.LastName != nil {
		v := domain.CompactSpaces(*input.LastName)
		input.LastName = &v
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	current, err := s.GetMe(ctx)
	if err != nil {
		return nil, err
	}

	next := *current
	if input.Username != nil {
		next.Username = *input.Username
	}
	if input.FirstName != nil {
		next.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		next.LastName = *input.LastName
	}

	user, err := s.users.UpdateProfile(ctx, next)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, domain.NewValidationError("username", "A user with that username already exists.")
		}
		return nil, fmt.Errorf("user.UpdateMe: %w", err)
	}

	s.log.InfoContext(ctx, "profile updated", slog.Int64("user_id", user.ID))
	return user, nil
}

// SetPassword replaces the password after checking the current one.
// A wrong current password is a validation error on current_password.
func (s *Service) SetPassword(ctx context.Context, input SetPasswordInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	current, err := s.GetMe(ctx)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(current.PasswordHash), []byte(input.CurrentPassword)); err != nil {
		return domain.NewValidationError("current_password", "Wrong password.")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), s.bcryptCost)
	if err != nil {
		return fmt.Errorf("user.SetPassword hash password: %w", err)
	}

	if err := s.users.UpdatePassword(ctx, current.ID, string(hash)); err != nil {
		return fmt.Errorf("user.SetPassword: %w", err)
	}

	s.log.InfoContext(ctx, "password changed", slog.Int64("user_id", current.ID))
	return nil
}

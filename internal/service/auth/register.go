package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/foodgram-backend/internal/domain"
)

// Register creates a new user with email + password authentication.
// A taken email or username is reported as a validation error on the field.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	input.Email = domain.NormalizeEmail(input.Email)
	input.Username = strings.TrimSpace(input.Username)
	input.FirstName = domain.CompactSpaces(input.FirstName)
	input.LastName = domain.CompactSpaces(input.LastName)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("auth.Register hash password: %w", err)
	}

	user, err := s.users.Create(ctx, domain.User{
		Email:        input.Email,
		Username:     input.Username,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		PasswordHash: string(hash),
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, s.duplicateAccount(ctx, input.Email)
		}
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	s.log.InfoContext(ctx, "user registered", slog.Int64("user_id", user.ID))
	return user, nil
}

// duplicateAccount names the field that collided. The email lookup decides;
// otherwise the username must be taken.
func (s *Service) duplicateAccount(ctx context.Context, email string) error {
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return domain.NewValidationError("email", "A user with that email already exists.")
	}
	return domain.NewValidationError("username", "A user with that username already exists.")
}

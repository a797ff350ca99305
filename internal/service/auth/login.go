package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/foodgram-backend/internal/domain"
)

// errBadCredentials mirrors the DRF token login failure.
var errBadCredentials = domain.NewValidationError("non_field_errors", "Unable to log in with provided credentials.")

// Login authenticates a user with email + password and issues an access token.
func (s *Service) Login(ctx context.Context, input LoginInput) (string, error) {
	input.Email = domain.NormalizeEmail(input.Email)

	if err := input.Validate(); err != nil {
		return "", err
	}

	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", errBadCredentials
		}
		return "", fmt.Errorf("auth.Login get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return "", errBadCredentials
	}

	token, err := s.jwt.GenerateAccessToken(user.ID)
	if err != nil {
		return "", fmt.Errorf("auth.Login generate token: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in", slog.Int64("user_id", user.ID))
	return token, nil
}

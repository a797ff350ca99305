package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/foodgram-backend/internal/domain"
	"github.com/heartmarshall/foodgram-backend/pkg/ctxutil"
)

// Logout revokes the access token that authenticated the request until it
// expires. Returns ErrUnauthorized if the context carries no token.
func (s *Service) Logout(ctx context.Context, token string) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	claims, err := s.jwt.ValidateAccessToken(token)
	if err != nil || claims.UserID != userID {
		return domain.ErrUnauthorized
	}

	err = s.tokens.Revoke(ctx, domain.RevokedToken{
		TokenID:   claims.TokenID,
		UserID:    userID,
		ExpiresAt: claims.ExpiresAt,
	})
	if err != nil {
		return fmt.Errorf("auth.Logout: %w", err)
	}

	s.log.InfoContext(ctx, "user logged out", slog.Int64("user_id", userID))
	return nil
}

// ValidateToken validates an access token and returns the user ID and token id.
// Returns ErrUnauthorized if the token is invalid, expired or revoked.
func (s *Service) ValidateToken(ctx context.Context, token string) (int64, string, error) {
	claims, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		return 0, "", domain.ErrUnauthorized
	}

	revoked, err := s.tokens.IsRevoked(ctx, claims.TokenID)
	if err != nil {
		return 0, "", fmt.Errorf("auth.ValidateToken: %w", err)
	}
	if revoked {
		return 0, "", domain.ErrUnauthorized
	}

	return claims.UserID, claims.TokenID, nil
}

// CleanupExpiredTokens removes revocations whose tokens have expired.
// Returns the number of rows deleted. This is a maintenance operation.
func (s *Service) CleanupExpiredTokens(ctx context.Context) (int64, error) {
	count, err := s.tokens.DeleteExpired(ctx)
	if err != nil {
		s.log.ErrorContext(ctx, "token cleanup failed", slog.String("error", err.Error()))
		return 0, fmt.Errorf("auth.CleanupExpiredTokens: %w", err)
	}

	if count > 0 {
		s.log.InfoContext(ctx, "cleaned up expired revocations", slog.Int64("count", count))
	}

	return count, nil
}

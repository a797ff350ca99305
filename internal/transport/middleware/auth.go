package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/foodgram-backend/internal/domain"
	"github.com/heartmarshall/foodgram-backend/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (int64, string, error)
}

// Auth resolves the Authorization header into a user id. Requests without
// a token pass through anonymously; a bad or revoked token is rejected with
// 401. Any other validation failure is logged and answered with 500.
func Auth(validator tokenValidator, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)
			if token == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}
			userID, tokenID, err := validator.ValidateToken(r.Context(), token)
			switch {
			case errors.Is(err, domain.ErrUnauthorized):
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"detail":"Invalid token."}`))
				return
			case err != nil:
				logger.ErrorContext(r.Context(), "token validation failed",
					slog.String("error", err.Error()),
					slog.String("path", r.URL.Path),
				)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(`{"detail":"internal server error"}`))
				return
			}
			ctx := ctxutil.WithUserID(r.Context(), userID)
			ctx = ctxutil.WithTokenID(ctx, tokenID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractToken accepts both "Token <t>" and "Bearer <t>".
func extractToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok {
		return ""
	}
	if !strings.EqualFold(scheme, "Token") && !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// RawToken returns the token presented in the Authorization header, if any.
func RawToken(r *http.Request) string {
	return extractToken(r)
}

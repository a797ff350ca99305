// Package token stores revoked access token ids using PostgreSQL.
package token

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/foodgram-backend/internal/adapter/postgres"
	"github.com/heartmarshall/foodgram-backend/internal/domain"
)

// Repo provides token revocation persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new token repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const (
	revokeSQL = `
INSERT INTO revoked_tokens (token_id, user_id, expires_at)
VALUES ($1, $2, $3)
ON CONFLICT (token_id) DO NOTHING`

	isRevokedSQL = `SELECT EXISTS(SELECT 1 FROM revoked_tokens WHERE token_id = $1)`

	deleteExpiredSQL = `DELETE FROM revoked_tokens WHERE expires_at < now()`
)

// Revoke records a token id as logged out. Idempotent.
func (r *Repo) Revoke(ctx context.Context, t domain.RevokedToken) error {
	_, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, revokeSQL, t.TokenID, t.UserID, t.ExpiresAt)
	if err != nil {
		return postgres.MapError(err, "revoked_token", t.UserID)
	}
	return nil
}

// IsRevoked reports whether the token id was revoked.
func (r *Repo) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	var revoked bool
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, isRevokedSQL, tokenID).Scan(&revoked)
	if err != nil {
		return false, fmt.Errorf("check revoked token: %w", err)
	}
	return revoked, nil
}

// DeleteExpired removes revocations whose tokens have expired anyway.
// Returns the count of deleted rows.
func (r *Repo) DeleteExpired(ctx context.Context) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, deleteExpiredSQL)
	if err != nil {
		return 0, fmt.Errorf("delete expired revocations: %w", err)
	}
	return tag.RowsAffected(), nil
}

// Package subscription implements the author subscription repository using PostgreSQL.
package subscription

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/foodgram-backend/internal/adapter/postgres"
	"github.com/heartmarshall/foodgram-backend/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides subscription persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new subscription repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const (
	addSQL = `
INSERT INTO subscriptions (user_id, author_id)
VALUES ($1, $2)
RETURNING id, user_id, author_id, created_at`

	removeSQL = `DELETE FROM subscriptions WHERE user_id = $1 AND author_id = $2`

	existsSQL = `SELECT EXISTS(SELECT 1 FROM subscriptions WHERE user_id = $1 AND author_id = $2)`

	subscribedAmongSQL = `
SELECT author_id FROM subscriptions
WHERE user_id = $1 AND author_id = ANY($2::bigint[])`

	countAuthorsSQL = `SELECT count(*) FROM subscriptions WHERE user_id = $1`
)

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Add subscribes userID to authorID.
// Returns domain.ErrAlreadyExists for a duplicate pair, domain.ErrValidation
// when the user targets themselves and domain.ErrNotFound for an unknown author.
func (r *Repo) Add(ctx context.Context, userID, authorID int64) (*domain.Subscription, error) {
	var s domain.Subscription
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, addSQL, userID, authorID).
		Scan(&s.ID, &s.UserID, &s.AuthorID, &s.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "subscription", authorID)
	}
	return &s, nil
}

// Remove deletes the subscription. Returns domain.ErrNotFound when absent.
func (r *Repo) Remove(ctx context.Context, userID, authorID int64) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, removeSQL, userID, authorID)
	if err != nil {
		return postgres.MapError(err, "subscription", authorID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("subscription %d: %w", authorID, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// Exists reports whether userID follows authorID.
func (r *Repo) Exists(ctx context.Context, userID, authorID int64) (bool, error) {
	var ok bool
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, existsSQL, userID, authorID).Scan(&ok); err != nil {
		return false, fmt.Errorf("check subscription: %w", err)
	}
	return ok, nil
}

// SubscribedAmong returns the subset of authorIDs the user follows
// (batch for DataLoader).
func (r *Repo) SubscribedAmong(ctx context.Context, userID int64, authorIDs []int64) ([]int64, error) {
	if len(authorIDs) == 0 {
		return []int64{}, nil
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, subscribedAmongSQL, userID, authorIDs)
	if err != nil {
		return nil, fmt.Errorf("get subscribed authors: %w", err)
	}
	defer rows.Close()

	out := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan subscription: %w", err)
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

// ListAuthors returns one page of authors the user follows, newest user
// first, and the total number of subscriptions.
func (r *Repo) ListAuthors(ctx context.Context, userID int64, page domain.Page) ([]domain.User, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var total int
	if err := q.QueryRow(ctx, countAuthorsSQL, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count subscriptions: %w", err)
	}

	query, args, err := psql.
		Select("u.id", "u.email", "u.username", "u.first_name", "u.last_name", "u.password_hash", "u.created_at").
		From("subscriptions s").
		Join("users u ON u.id = s.author_id").
		Where(sq.Eq{"s.user_id": userID}).
		OrderBy("u.id DESC").
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Offset())).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list subscriptions query: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list subscriptions: %w", err)
	}
	defer rows.Close()

	authors := make([]domain.User, 0)
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Email, &u.Username, &u.FirstName, &u.LastName, &u.PasswordHash, &u.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan author: %w", err)
		}
		authors = append(authors, u)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate authors: %w", err)
	}
	return authors, total, nil
}

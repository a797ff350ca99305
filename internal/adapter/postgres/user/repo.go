// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/foodgram-backend/internal/adapter/postgres"
	"github.com/heartmarshall/foodgram-backend/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const userColumns = `id, email, username, first_name, last_name, password_hash, created_at`

const (
	createSQL = `
INSERT INTO users (email, username, first_name, last_name, password_hash)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + userColumns

	getByIDSQL = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	getByEmailSQL = `SELECT ` + userColumns + ` FROM users WHERE lower(email) = lower($1)`

	getByIDsSQL = `SELECT ` + userColumns + ` FROM users WHERE id = ANY($1::bigint[])`

	updateProfileSQL = `
UPDATE users
SET username = $2, first_name = $3, last_name = $4
WHERE id = $1
RETURNING ` + userColumns

	updatePasswordSQL = `UPDATE users SET password_hash = $2 WHERE id = $1`

	countSQL = `SELECT count(*) FROM users`
)

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new user and returns the persisted row.
// Returns domain.ErrAlreadyExists when the email or username is taken.
func (r *Repo) Create(ctx context.Context, u domain.User) (*domain.User, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, createSQL,
		u.Email, u.Username, u.FirstName, u.LastName, u.PasswordHash,
	)

	created, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", 0)
	}
	return &created, nil
}

// UpdateProfile rewrites the username and names of a user.
func (r *Repo) UpdateProfile(ctx context.Context, u domain.User) (*domain.User, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, updateProfileSQL,
		u.ID, u.Username, u.FirstName, u.LastName,
	)

	updated, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}
	return &updated, nil
}

// UpdatePassword stores a new password hash.
func (r *Repo) UpdatePassword(ctx context.Context, id int64, hash string) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, updatePasswordSQL, id, hash)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	u, err := scanUser(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return &u, nil
}

// GetByEmail returns a user by email, case-insensitively.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	u, err := scanUser(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, getByEmailSQL, email))
	if err != nil {
		return nil, postgres.MapError(err, "user", 0)
	}
	return &u, nil
}

// GetByIDs returns the users with the given ids in no particular order.
// Missing ids are skipped.
func (r *Repo) GetByIDs(ctx context.Context, ids []int64) ([]domain.User, error) {
	if len(ids) == 0 {
		return []domain.User{}, nil
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, getByIDsSQL, ids)
	if err != nil {
		return nil, fmt.Errorf("get users by ids: %w", err)
	}
	defer rows.Close()

	return scanUsers(rows)
}

// List returns one page of users, newest first, and the total count.
func (r *Repo) List(ctx context.Context, page domain.Page) ([]domain.User, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var total int
	if err := q.QueryRow(ctx, countSQL).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}

	query, args, err := psql.Select(userColumns).
		From("users").
		OrderBy("id DESC").
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Offset())).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list users query: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users, err := scanUsers(rows)
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// ---------------------------------------------------------------------------
// Scan helpers
// ---------------------------------------------------------------------------

func scanUser(row pgx.Row) (domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Email, &u.Username, &u.FirstName, &u.LastName, &u.PasswordHash, &u.CreatedAt)
	return u, err
}

func scanUsers(rows pgx.Rows) ([]domain.User, error) {
	users := make([]domain.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return users, nil
}

package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/bryanwahyu/spinalscan/internal/domain/users"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *users.User) error {
	const q = `
INSERT INTO users (id, name, email, password_hash, created_at)
VALUES ($1,$2,$3,$4,$5);
`
	_, err := r.db.ExecContext(ctx, q, u.ID, u.Name, u.Email, u.PasswordHash, u.CreatedAt)
	if err != nil {
		var pe *pq.Error
		// 23505: unique_violation on the email constraint
		if errors.As(err, &pe) && pe.Code == "23505" {
			return users.ErrEmailTaken
		}
		return err
	}
	return nil
}

func (r *UserRepository) ByEmail(ctx context.Context, email string) (*users.User, error) {
	const q = `
SELECT id, name, email, password_hash, created_at
FROM users WHERE email=$1 LIMIT 1;
`
	return scanUser(r.db.QueryRowContext(ctx, q, email))
}

func (r *UserRepository) ByID(ctx context.Context, id users.UserID) (*users.User, error) {
	const q = `
SELECT id, name, email, password_hash, created_at
FROM users WHERE id=$1 LIMIT 1;
`
	return scanUser(r.db.QueryRowContext(ctx, q, id))
}

func scanUser(row *sql.Row) (*users.User, error) {
	var u users.User
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

package mysql

import (
	"context"
	"database/sql"
	"errors"

	mysqldrv "github.com/go-sql-driver/mysql"

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
VALUES (?,?,?,?,?);
`
	_, err := r.db.ExecContext(ctx, q, u.ID, u.Name, u.Email, u.PasswordHash, u.CreatedAt)
	if err != nil {
		var me *mysqldrv.MySQLError
		// 1062: duplicate entry, the unique email constraint
		if errors.As(err, &me) && me.Number == 1062 {
			return users.ErrEmailTaken
		}
		return err
	}
	return nil
}

func (r *UserRepository) ByEmail(ctx context.Context, email string) (*users.User, error) {
	const q = `
SELECT id, name, email, password_hash, created_at
FROM users WHERE email=? LIMIT 1;
`
	return scanUser(r.db.QueryRowContext(ctx, q, email))
}

func (r *UserRepository) ByID(ctx context.Context, id users.UserID) (*users.User, error) {
	const q = `
SELECT id, name, email, password_hash, created_at
FROM users WHERE id=? LIMIT 1;
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

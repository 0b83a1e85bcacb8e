package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/bryanwahyu/spinalscan/internal/config"
	"github.com/bryanwahyu/spinalscan/internal/domain/chat"
	"github.com/bryanwahyu/spinalscan/internal/domain/predictions"
	"github.com/bryanwahyu/spinalscan/internal/domain/users"
	"github.com/bryanwahyu/spinalscan/internal/infra/db/mysql"
	"github.com/bryanwahyu/spinalscan/internal/infra/db/postgres"
	"github.com/bryanwahyu/spinalscan/internal/infra/db/sqlite"
)

// Repositories bundles one backend's implementations of the three
// record collections.
type Repositories struct {
	Users       users.Repository
	Predictions predictions.Repository
	Chats       chat.Repository

	db *sql.DB
}

func (r *Repositories) DB() *sql.DB { return r.db }

func (r *Repositories) Close() error { return r.db.Close() }

// Open connects to the configured backend and ensures the schema.
func Open(ctx context.Context, cfg *config.Config) (*Repositories, error) {
	switch cfg.Database.Driver {
	case "mysql":
		conn, err := mysql.Connect(ctx, cfg.MySQLDSN())
		if err != nil {
			return nil, fmt.Errorf("mysql connect: %w", err)
		}
		if err := mysql.EnsureSchema(ctx, conn); err != nil {
			conn.Close()
			return nil, fmt.Errorf("mysql schema: %w", err)
		}
		return &Repositories{
			Users:       mysql.NewUserRepository(conn),
			Predictions: mysql.NewPredictionRepository(conn),
			Chats:       mysql.NewChatRepository(conn),
			db:          conn,
		}, nil
	case "postgres":
		conn, err := postgres.Connect(ctx, cfg.PostgresDSN())
		if err != nil {
			return nil, fmt.Errorf("postgres connect: %w", err)
		}
		if err := postgres.EnsureSchema(ctx, conn); err != nil {
			conn.Close()
			return nil, fmt.Errorf("postgres schema: %w", err)
		}
		return &Repositories{
			Users:       postgres.NewUserRepository(conn),
			Predictions: postgres.NewPredictionRepository(conn),
			Chats:       postgres.NewChatRepository(conn),
			db:          conn,
		}, nil
	case "sqlite":
		conn, err := sqlite.Connect(ctx, cfg.Database.Path)
		if err != nil {
			return nil, fmt.Errorf("sqlite connect: %w", err)
		}
		if err := sqlite.EnsureSchema(ctx, conn); err != nil {
			conn.Close()
			return nil, fmt.Errorf("sqlite schema: %w", err)
		}
		return &Repositories{
			Users:       sqlite.NewUserRepository(conn),
			Predictions: sqlite.NewPredictionRepository(conn),
			Chats:       sqlite.NewChatRepository(conn),
			db:          conn,
		}, nil
	default:
		return nil, fmt.Errorf("unknown database driver: %q", cfg.Database.Driver)
	}
}

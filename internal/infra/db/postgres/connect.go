package postgres

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/lib/pq"
)

func Connect(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx2, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx2); err != nil {
		return nil, err
	}
	return db, nil
}

func EnsureSchema(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id            VARCHAR(36)  PRIMARY KEY,
			name          VARCHAR(255) NOT NULL,
			email         VARCHAR(255) NOT NULL UNIQUE,
			password_hash VARCHAR(255) NOT NULL,
			created_at    TIMESTAMPTZ  NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS predictions (
			id         VARCHAR(36)   PRIMARY KEY,
			user_id    VARCHAR(36)   NOT NULL,
			filename   VARCHAR(512)  NOT NULL,
			result     VARCHAR(32)   NOT NULL,
			confidence VARCHAR(16)   NOT NULL,
			image_url  VARCHAR(1024) NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ   NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_predictions_user_time ON predictions (user_id, created_at)`,
		`CREATE TABLE IF NOT EXISTS chats (
			id        VARCHAR(36) PRIMARY KEY,
			user_id   VARCHAR(36) NOT NULL,
			question  TEXT        NOT NULL,
			answer    TEXT        NOT NULL,
			timestamp TIMESTAMPTZ NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_chats_user_time ON chats (user_id, timestamp)`,
	}
	for _, q := range stmts {
		if _, err := db.ExecContext(ctx, q); err != nil {
			return err
		}
	}
	return nil
}

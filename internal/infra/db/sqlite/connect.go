package sqlite

import (
	"context"
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

// Connect opens (and creates if needed) the sqlite database file.
// Used for single-binary deployments and for repository tests.
func Connect(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	// sqlite serialises writes; more than one writer just contends.
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}
	return db, nil
}

func EnsureSchema(ctx context.Context, db *sql.DB) error {
	const schema = `
CREATE TABLE IF NOT EXISTS users (
	id            TEXT PRIMARY KEY,
	name          TEXT NOT NULL,
	email         TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	created_at    DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS predictions (
	id         TEXT PRIMARY KEY,
	user_id    TEXT NOT NULL,
	filename   TEXT NOT NULL,
	result     TEXT NOT NULL,
	confidence TEXT NOT NULL,
	image_url  TEXT NOT NULL DEFAULT '',
	created_at DATETIME NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_predictions_user_time ON predictions (user_id, created_at);

CREATE TABLE IF NOT EXISTS chats (
	id        TEXT PRIMARY KEY,
	user_id   TEXT NOT NULL,
	question  TEXT NOT NULL,
	answer    TEXT NOT NULL,
	timestamp DATETIME NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_chats_user_time ON chats (user_id, timestamp);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

package sqlite

import (
	"context"
	"database/sql"

	"github.com/bryanwahyu/spinalscan/internal/domain/chat"
	"github.com/bryanwahyu/spinalscan/internal/domain/users"
)

type ChatRepository struct {
	db *sql.DB
}

func NewChatRepository(db *sql.DB) *ChatRepository {
	return &ChatRepository{db: db}
}

func (r *ChatRepository) Save(ctx context.Context, e *chat.Entry) error {
	const q = `
INSERT INTO chats (id, user_id, question, answer, timestamp)
VALUES (?,?,?,?,?);
`
	_, err := r.db.ExecContext(ctx, q, e.ID, e.UserID, e.Question, e.Answer, e.Timestamp)
	return err
}

func (r *ChatRepository) HistoryFor(ctx context.Context, user users.UserID) ([]*chat.Entry, error) {
	const q = `
SELECT id, user_id, question, answer, timestamp
FROM chats
WHERE user_id=? ORDER BY timestamp DESC, id DESC;
`
	rows, err := r.db.QueryContext(ctx, q, user)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*chat.Entry
	for rows.Next() {
		var e chat.Entry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Question, &e.Answer, &e.Timestamp); err != nil {
			return nil, err
		}
		out = append(out, &e)
	}
	return out, rows.Err()
}

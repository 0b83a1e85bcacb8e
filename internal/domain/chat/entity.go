package chat

import (
	"time"

	"github.com/bryanwahyu/spinalscan/internal/domain/users"
)

// EntryID identifier type
type EntryID string

// Entry is one question/answer pair in a user's chat log. Append-only.
type Entry struct {
	ID        EntryID      `json:"id"`
	UserID    users.UserID `json:"user_id"`
	Question  string       `json:"question"`
	Answer    string       `json:"answer"`
	Timestamp time.Time    `json:"timestamp"`
}

package chat

import (
	"context"

	"github.com/bryanwahyu/spinalscan/internal/domain/users"
)

// Repository port (interface for persistence)
type Repository interface {
	Save(ctx context.Context, e *Entry) error
	// HistoryFor returns all entries for the user, newest first.
	HistoryFor(ctx context.Context, user users.UserID) ([]*Entry, error)
}

// Answerer port. Backed by an LLM when configured, otherwise by a
// canned template.
type Answerer interface {
	Answer(ctx context.Context, question string) (string, error)
}

package chat

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/bryanwahyu/spinalscan/internal/application"
	domain "github.com/bryanwahyu/spinalscan/internal/domain/chat"
	"github.com/bryanwahyu/spinalscan/internal/domain/users"
	"github.com/bryanwahyu/spinalscan/internal/domain/validation"
)

// fallbackAnswer is persisted and returned when the answerer fails;
// the question is still recorded.
const fallbackAnswer = "Sorry, I'm having trouble thinking right now. Please try again."

// Service implements the ask/history use-cases for the chat log.
type Service struct {
	Repo     domain.Repository
	Answerer domain.Answerer
	Clock    application.Clock
}

// Ask produces an answer for the question and persists the pair under
// the authenticated owner.
func (s *Service) Ask(ctx context.Context, owner users.UserID, question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", validation.Errorf("no question provided")
	}

	answer, err := s.Answerer.Answer(ctx, question)
	if err != nil {
		log.Printf("answerer error for user %s: %v", owner, err)
		answer = fallbackAnswer
	}

	e := &domain.Entry{
		ID:        domain.EntryID(uuid.NewString()),
		UserID:    owner,
		Question:  question,
		Answer:    answer,
		Timestamp: s.Clock.Now(),
	}
	if err := s.Repo.Save(ctx, e); err != nil {
		return "", fmt.Errorf("saving chat entry: %w", err)
	}
	return answer, nil
}

// History returns the owner's chat entries, newest first.
func (s *Service) History(ctx context.Context, owner users.UserID) ([]*domain.Entry, error) {
	entries, err := s.Repo.HistoryFor(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("chat history: %w", err)
	}
	if entries == nil {
		entries = []*domain.Entry{}
	}
	return entries, nil
}

package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/bryanwahyu/spinalscan/internal/application"
	"github.com/bryanwahyu/spinalscan/internal/domain/users"
	"github.com/bryanwahyu/spinalscan/internal/domain/validation"
	"github.com/bryanwahyu/spinalscan/internal/infra/token"
)

const bcryptCost = 10

// Service implements the register/login use-cases. Safe for
// concurrent use: every request is an independent insert or read.
type Service struct {
	Users  users.Repository
	Tokens *token.Manager
	Clock  application.Clock
}

// Register validates the fields, rejects duplicate emails and stores
// the user with a bcrypt hash of the password.
func (s *Service) Register(ctx context.Context, name, email, password string) (*users.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" || password == "" {
		return nil, validation.Errorf("all fields required")
	}

	existing, err := s.Users.ByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("checking email: %w", err)
	}
	if existing != nil {
		return nil, users.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	u := &users.User{
		ID:           users.UserID(uuid.NewString()),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    s.Clock.Now(),
	}
	if err := s.Users.Create(ctx, u); err != nil {
		// The unique index may still fire under a concurrent register.
		return nil, err
	}
	return u, nil
}

// Login verifies the credentials and issues a session token. Unknown
// email and wrong password both return ErrInvalidCredentials so the
// caller gets no enumeration signal.
func (s *Service) Login(ctx context.Context, email, password string) (string, *users.User, error) {
	u, err := s.Users.ByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return "", nil, fmt.Errorf("looking up user: %w", err)
	}
	if u == nil {
		return "", nil, users.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return "", nil, users.ErrInvalidCredentials
	}

	tok, err := s.Tokens.Issue(u)
	if err != nil {
		return "", nil, fmt.Errorf("issuing token: %w", err)
	}
	return tok, u, nil
}

// Profile returns the public fields of the user with the given email.
func (s *Service) Profile(ctx context.Context, email string) (*users.User, error) {
	u, err := s.Users.ByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, users.ErrNotFound
	}
	return u, nil
}

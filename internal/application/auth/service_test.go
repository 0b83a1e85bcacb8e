package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bryanwahyu/spinalscan/internal/domain/users"
	"github.com/bryanwahyu/spinalscan/internal/domain/validation"
	"github.com/bryanwahyu/spinalscan/internal/infra/token"
)

// memUserRepo implements users.Repository for testing
type memUserRepo struct {
	byEmail map[string]*users.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byEmail: make(map[string]*users.User)}
}

func (m *memUserRepo) Create(ctx context.Context, u *users.User) error {
	if _, ok := m.byEmail[u.Email]; ok {
		return users.ErrEmailTaken
	}
	m.byEmail[u.Email] = u
	return nil
}

func (m *memUserRepo) ByEmail(ctx context.Context, email string) (*users.User, error) {
	return m.byEmail[email], nil
}

func (m *memUserRepo) ByID(ctx context.Context, id users.UserID) (*users.User, error) {
	for _, u := range m.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

func newService() (*Service, *memUserRepo) {
	repo := newMemUserRepo()
	svc := &Service{
		Users:  repo,
		Tokens: token.NewManager("supersecretkey", time.Hour),
		Clock:  fixedClock{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)},
	}
	return svc, repo
}

func TestRegister(t *testing.T) {
	svc, repo := newService()

	u, err := svc.Register(context.Background(), "Ann", "ann@x.com", "pw123")
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "Ann", u.Name)
	assert.NotEqual(t, "pw123", u.PasswordHash, "password must not be stored in clear")
	assert.Len(t, repo.byEmail, 1)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, repo := newService()

	_, err := svc.Register(context.Background(), "Ann", "ann@x.com", "pw123")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "Other Ann", "ann@x.com", "different")
	require.ErrorIs(t, err, users.ErrEmailTaken)
	assert.Len(t, repo.byEmail, 1, "only one record after duplicate registration")
}

func TestRegisterEmptyFields(t *testing.T) {
	svc, _ := newService()

	tests := []struct {
		name, displayName, email, password string
	}{
		{"empty name", "", "ann@x.com", "pw123"},
		{"empty email", "Ann", "", "pw123"},
		{"empty password", "Ann", "ann@x.com", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tt.displayName, tt.email, tt.password)
			assert.True(t, validation.Is(err), "expected a validation error, got %v", err)
		})
	}
}

func TestLogin(t *testing.T) {
	svc, _ := newService()

	_, err := svc.Register(context.Background(), "Ann", "ann@x.com", "pw123")
	require.NoError(t, err)

	tok, u, err := svc.Login(context.Background(), "ann@x.com", "pw123")
	require.NoError(t, err)
	assert.Equal(t, "Ann", u.Name)

	claims, err := svc.Tokens.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID())
	assert.Equal(t, "ann@x.com", claims.Email)
}

func TestLoginFailuresAreUniform(t *testing.T) {
	svc, _ := newService()

	_, err := svc.Register(context.Background(), "Ann", "ann@x.com", "pw123")
	require.NoError(t, err)

	_, _, wrongPassword := svc.Login(context.Background(), "ann@x.com", "nope")
	_, _, unknownEmail := svc.Login(context.Background(), "ghost@x.com", "pw123")

	// Same error either way, so callers cannot enumerate accounts.
	require.ErrorIs(t, wrongPassword, users.ErrInvalidCredentials)
	require.ErrorIs(t, unknownEmail, users.ErrInvalidCredentials)
}

func TestProfile(t *testing.T) {
	svc, _ := newService()

	_, err := svc.Register(context.Background(), "Ann", "ann@x.com", "pw123")
	require.NoError(t, err)

	u, err := svc.Profile(context.Background(), "ann@x.com")
	require.NoError(t, err)
	assert.Equal(t, "Ann", u.Name)

	_, err = svc.Profile(context.Background(), "ghost@x.com")
	require.ErrorIs(t, err, users.ErrNotFound)
}

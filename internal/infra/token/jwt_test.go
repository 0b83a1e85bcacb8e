package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bryanwahyu/spinalscan/internal/domain/users"
)

var testUser = &users.User{
	ID:    users.UserID("u-1"),
	Name:  "Ann",
	Email: "ann@x.com",
}

func TestIssueAndVerify(t *testing.T) {
	m := NewManager("supersecretkey", time.Hour)

	tok, err := m.Issue(testUser)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := m.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, users.UserID("u-1"), claims.UserID())
	assert.Equal(t, "Ann", claims.Name)
	assert.Equal(t, "ann@x.com", claims.Email)
}

func TestVerifyExpired(t *testing.T) {
	m := NewManager("supersecretkey", time.Hour)

	issued := time.Now()
	m.now = func() time.Time { return issued }
	tok, err := m.Issue(testUser)
	require.NoError(t, err)

	// Still inside the validity window
	m.now = func() time.Time { return issued.Add(59 * time.Minute) }
	_, err = m.Verify(tok)
	require.NoError(t, err)

	// Past expiry
	m.now = func() time.Time { return issued.Add(61 * time.Minute) }
	_, err = m.Verify(tok)
	require.Error(t, err)
}

func TestVerifyWrongKey(t *testing.T) {
	issuer := NewManager("key-one", time.Hour)
	verifier := NewManager("key-two", time.Hour)

	tok, err := issuer.Issue(testUser)
	require.NoError(t, err)

	_, err = verifier.Verify(tok)
	require.Error(t, err)
}

func TestVerifyMalformed(t *testing.T) {
	m := NewManager("supersecretkey", time.Hour)

	for _, tok := range []string{"", "garbage", "a.b.c"} {
		_, err := m.Verify(tok)
		assert.Error(t, err, "token %q should not verify", tok)
	}
}

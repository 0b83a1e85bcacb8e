package middleware

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	valid := []string{"ann@example.com", "a.b+c@sub.domain.org"}
	for _, e := range valid {
		assert.NoError(t, ValidateEmail(e), e)
	}

	invalid := []string{
		"",
		"no-at-sign",
		"missing@tld",
		"two@@example.com",
		"spaces in@example.com",
		"a@" + strings.Repeat("x", 250) + ".com",
	}
	for _, e := range invalid {
		assert.Error(t, ValidateEmail(e), e)
	}
}

func TestValidateName(t *testing.T) {
	assert.NoError(t, ValidateName("Ann"))
	assert.Error(t, ValidateName(""))
	assert.Error(t, ValidateName("   "))
	assert.Error(t, ValidateName(strings.Repeat("a", 129)))
	assert.Error(t, ValidateName("ann\x00"))
}

func TestValidateQuestion(t *testing.T) {
	assert.NoError(t, ValidateQuestion("What is a tumor?"))
	assert.Error(t, ValidateQuestion(""))
	assert.Error(t, ValidateQuestion("  \t "))
	assert.Error(t, ValidateQuestion(strings.Repeat("q", 4097)))
}

func TestSanitizeString(t *testing.T) {
	assert.Equal(t, "hello", SanitizeString("  hello\x00  "))
	assert.Equal(t, "a\tb", SanitizeString("a\tb\x01"))
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, 5, ValidateLimit(0))
	assert.Equal(t, 5, ValidateLimit(-3))
	assert.Equal(t, 7, ValidateLimit(7))
	assert.Equal(t, 100, ValidateLimit(500))
}

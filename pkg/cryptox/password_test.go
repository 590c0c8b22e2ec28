package cryptox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{"simple password", "password123"},
		{"complex password", "P@ssw0rd!#$%^&*()"},
		{"short password", "abc"},
		{"empty password", ""},
		{"unicode password", "пароль密码"},
		{"whitespace password", "   spaces   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := HashPassword(tt.password)
			require.NoError(t, err)
			require.NotEmpty(t, hash)
			require.True(t, strings.HasPrefix(hash, "$2a$"),
				"hash should be a bcrypt digest")

			require.NoError(t, VerifyPassword(tt.password, hash))
		})
	}
}

func TestHashPasswordSaltsPerCall(t *testing.T) {
	a, err := HashPassword("password123")
	require.NoError(t, err)
	b, err := HashPassword("password123")
	require.NoError(t, err)

	// Salt is randomized per call, so identical inputs diverge.
	require.NotEqual(t, a, b)
	require.NoError(t, VerifyPassword("password123", a))
	require.NoError(t, VerifyPassword("password123", b))
}

func TestVerifyPasswordMismatch(t *testing.T) {
	hash, err := HashPassword("correct-horse")
	require.NoError(t, err)

	err = VerifyPassword("battery-staple", hash)
	require.ErrorIs(t, err, ErrPasswordMismatch)
}

func TestVerifyPasswordMalformedDigest(t *testing.T) {
	err := VerifyPassword("anything", "not-a-bcrypt-digest")
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrPasswordMismatch)
}

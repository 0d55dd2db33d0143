package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	t.Run("normalizes case and whitespace", func(t *testing.T) {
		email, err := NewEmail("  Jamie@Example.COM  ")

		require.NoError(t, err)
		assert.Equal(t, "jamie@example.com", email.String())
	})

	t.Run("rejects invalid addresses", func(t *testing.T) {
		for _, raw := range []string{"", "not-an-email", "missing@tld", "@example.com"} {
			_, err := NewEmail(raw)
			assert.ErrorIs(t, err, ErrInvalidEmail, "input %q", raw)
		}
	})

	t.Run("equality ignores original casing", func(t *testing.T) {
		a, _ := NewEmail("jamie@example.com")
		b, _ := NewEmail("JAMIE@example.com")
		assert.True(t, a.Equals(b))
	})
}

func TestNewName(t *testing.T) {
	t.Run("trims whitespace", func(t *testing.T) {
		name, err := NewName("  Jamie  ")

		require.NoError(t, err)
		assert.Equal(t, "Jamie", name.String())
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewName("   ")
		assert.ErrorIs(t, err, ErrEmptyName)
	})

	t.Run("rejects overlong name", func(t *testing.T) {
		_, err := NewName(strings.Repeat("a", MaxNameLength+1))
		assert.ErrorIs(t, err, ErrNameTooLong)
	})
}

func TestPasswordHash(t *testing.T) {
	t.Run("matches the original password", func(t *testing.T) {
		hash, err := NewPasswordHash("correct-horse")

		require.NoError(t, err)
		assert.True(t, hash.Matches("correct-horse"))
		assert.False(t, hash.Matches("battery-staple"))
	})

	t.Run("rejects short passwords", func(t *testing.T) {
		_, err := NewPasswordHash("short")
		assert.ErrorIs(t, err, ErrPasswordTooShort)
	})

	t.Run("never stores the plaintext", func(t *testing.T) {
		hash, err := NewPasswordHash("correct-horse")

		require.NoError(t, err)
		assert.NotContains(t, hash.String(), "correct-horse")
	})
}

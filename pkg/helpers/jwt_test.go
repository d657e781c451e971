package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTGenerateAndParse(t *testing.T) {
	m := NewJWTManager("test-secret", 24*time.Hour)

	token, exp, err := m.Generate("user-1", "admin")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), exp, time.Minute)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "admin", claims.Role)
}

func TestJWTParseRejects(t *testing.T) {
	m := NewJWTManager("test-secret", 24*time.Hour)

	t.Run("garbage token", func(t *testing.T) {
		_, err := m.Parse("not-a-token")
		assert.Error(t, err)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewJWTManager("other-secret", 24*time.Hour)
		token, _, err := other.Generate("user-1", "user")
		require.NoError(t, err)

		_, err = m.Parse(token)
		assert.Error(t, err)
	})

	t.Run("expired token", func(t *testing.T) {
		short := NewJWTManager("test-secret", -time.Minute)
		token, _, err := short.Generate("user-1", "user")
		require.NoError(t, err)

		_, err = m.Parse(token)
		assert.Error(t, err)
	})
}

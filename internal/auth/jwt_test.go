package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTGenerateAndValidate(t *testing.T) {
	m := NewJWTManager("test-secret", 7*24*time.Hour)

	token, err := m.Generate("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.ParseAndValidate(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)

	// Expiry should be roughly seven days out.
	until := time.Until(claims.ExpiresAt.Time)
	assert.Greater(t, until, 6*24*time.Hour)
	assert.LessOrEqual(t, until, 7*24*time.Hour)
}

func TestJWTWrongSecret(t *testing.T) {
	m := NewJWTManager("secret-a", time.Hour)
	other := NewJWTManager("secret-b", time.Hour)

	token, err := m.Generate("user-123")
	require.NoError(t, err)

	_, err = other.ParseAndValidate(token)
	assert.Error(t, err)
}

func TestJWTExpiredToken(t *testing.T) {
	// Negative TTL produces an already-expired token.
	m := NewJWTManager("test-secret", -time.Minute)

	token, err := m.Generate("user-123")
	require.NoError(t, err)

	_, err = m.ParseAndValidate(token)
	assert.Error(t, err)
}

func TestJWTSevenDayWindow(t *testing.T) {
	m := NewJWTManager("test-secret", 7*24*time.Hour)

	// Sign a token as if it had been issued at the given time, with the
	// manager's seven-day lifetime.
	signIssuedAt := func(issued time.Time) string {
		claims := &Claims{
			UserID: "user-123",
			RegisteredClaims: jwt.RegisteredClaims{
				IssuedAt:  jwt.NewNumericDate(issued),
				ExpiresAt: jwt.NewNumericDate(issued.Add(7 * 24 * time.Hour)),
			},
		}
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
		require.NoError(t, err)
		return signed
	}

	t.Run("Six Days Old Accepted", func(t *testing.T) {
		claims, err := m.ParseAndValidate(signIssuedAt(time.Now().UTC().Add(-6 * 24 * time.Hour)))
		require.NoError(t, err)
		assert.Equal(t, "user-123", claims.UserID)
	})

	t.Run("Eight Days Old Rejected", func(t *testing.T) {
		_, err := m.ParseAndValidate(signIssuedAt(time.Now().UTC().Add(-8 * 24 * time.Hour)))
		assert.Error(t, err)
	})
}

func TestJWTGarbageToken(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)

	_, err := m.ParseAndValidate("not-a-token")
	assert.Error(t, err)
}

package security

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestValidatePrefersEmailClaim(t *testing.T) {
	m := NewTokenManager("secret")
	tokenStr := signToken(t, "secret", jwt.MapClaims{
		"sub":   "uid-123",
		"email": "Alice@X.com",
		"name":  "Alice",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	id, err := m.Validate(tokenStr)
	require.NoError(t, err)
	require.Equal(t, "alice@x.com", id.Participant)
	require.Equal(t, "Alice", id.Name)
}

func TestValidateFallsBackToSubject(t *testing.T) {
	m := NewTokenManager("secret")
	tokenStr := signToken(t, "secret", jwt.MapClaims{
		"sub": "UID-123",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	id, err := m.Validate(tokenStr)
	require.NoError(t, err)
	require.Equal(t, "uid-123", id.Participant)
}

func TestValidateRejects(t *testing.T) {
	m := NewTokenManager("secret")

	// Wrong secret.
	_, err := m.Validate(signToken(t, "other", jwt.MapClaims{"sub": "u", "exp": time.Now().Add(time.Hour).Unix()}))
	require.Error(t, err)

	// Expired.
	_, err = m.Validate(signToken(t, "secret", jwt.MapClaims{"sub": "u", "exp": time.Now().Add(-time.Hour).Unix()}))
	require.Error(t, err)

	// No identity claims.
	_, err = m.Validate(signToken(t, "secret", jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()}))
	require.Error(t, err)
}

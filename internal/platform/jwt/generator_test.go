package jwtmw

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_GenerateToken(t *testing.T) {
	g := NewGenerator("test-secret", time.Hour)

	signed, err := g.GenerateToken(42, "admin@example.com", RoleAdmin)
	require.NoError(t, err, "failed to generate token")
	require.NotEmpty(t, signed, "token is empty")

	// Parse the token back and verify the claims
	token, err := jwt.Parse(signed, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err, "failed to parse generated token")
	require.True(t, token.Valid, "token is invalid")

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok, "claims are not MapClaims")

	assert.Equal(t, float64(42), claims["sub"], "sub claim does not match")
	assert.Equal(t, "admin@example.com", claims["email"], "email claim does not match")
	assert.Equal(t, RoleAdmin, claims["role"], "role claim does not match")

	exp, ok := claims["exp"].(float64)
	require.True(t, ok, "exp claim missing")
	assert.Greater(t, exp, float64(time.Now().Unix()), "token already expired")
}

func TestGenerator_GenerateToken_WrongSecret(t *testing.T) {
	g := NewGenerator("correct-secret", time.Hour)

	signed, err := g.GenerateToken(1, "user@example.com", RoleResponden)
	require.NoError(t, err)

	// Verification with a different secret must fail
	_, err = jwt.Parse(signed, func(t *jwt.Token) (interface{}, error) {
		return []byte("wrong-secret"), nil
	})
	assert.Error(t, err, "token should not verify with the wrong secret")
}

func TestGenerator_GenerateToken_Expiration(t *testing.T) {
	g := NewGenerator("test-secret", -time.Minute) // already expired

	signed, err := g.GenerateToken(1, "user@example.com", RoleResponden)
	require.NoError(t, err)

	_, err = jwt.Parse(signed, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	assert.ErrorIs(t, err, jwt.ErrTokenExpired, "expired token should fail validation")
}

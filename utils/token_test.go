package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT("secret", "user-1", "somchai", "ADMIN", time.Hour)
	require.NoError(t, err)

	claims, err := ParseJWT("secret", token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "somchai", claims.Username)
	assert.Equal(t, "ADMIN", claims.Role)
	assert.Equal(t, "user-1", claims.Subject)
}

func TestParseJWTRejects(t *testing.T) {
	expired, err := GenerateJWT("secret", "user-1", "somchai", "ADMIN", -time.Minute)
	require.NoError(t, err)
	_, err = ParseJWT("secret", expired)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)

	token, err := GenerateJWT("secret", "user-1", "somchai", "ADMIN", time.Hour)
	require.NoError(t, err)
	_, err = ParseJWT("other", token)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: "user-1"})
	raw, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = ParseJWT("secret", raw)
	assert.Error(t, err)
}

func TestPasswords(t *testing.T) {
	hash, err := HashPassword("password123")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", hash)
	assert.True(t, CheckPasswordHash("password123", hash))
	assert.False(t, CheckPasswordHash("password124", hash))

	a, err := GenerateRandomPassword(8)
	require.NoError(t, err)
	b, err := GenerateRandomPassword(8)
	require.NoError(t, err)
	assert.Len(t, a, 16)
	assert.NotEqual(t, a, b)
}

package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseJWT(t *testing.T) {
	token, err := GenerateJWT("user-1", true, "secret", time.Hour, "test-issuer")
	require.NoError(t, err)

	claims, err := ParseAndValidateJWT(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "test-issuer", claims.Issuer)
	assert.True(t, claims.IsAdmin)
}

func TestParseJWT_WrongSecret(t *testing.T) {
	token, err := GenerateJWT("user-1", false, "secret", time.Hour, "test-issuer")
	require.NoError(t, err)

	_, err = ParseAndValidateJWT(token, "other-secret")
	assert.Error(t, err)
}

func TestParseJWT_Expired(t *testing.T) {
	token, err := GenerateJWT("user-1", false, "secret", -time.Minute, "test-issuer")
	require.NoError(t, err)

	_, err = ParseAndValidateJWT(token, "secret")
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	assert.True(t, CheckPasswordHash("s3cret", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

func TestPasswordHash_Empty(t *testing.T) {
	_, err := HashPassword("")
	assert.Error(t, err)
	assert.False(t, CheckPasswordHash("", ""))
}

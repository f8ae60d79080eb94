package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key"

func TestGenerateAndValidateJWT(t *testing.T) {
	userID := uuid.NewString()
	expiresAt := time.Now().Add(time.Hour)

	tokenString, err := GenerateJWT(userID, "alice", testSecret, expiresAt, "test-issuer")
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims, err := ParseAndValidateJWT(tokenString, testSecret)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.Subject)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "test-issuer", claims.Issuer)
	assert.WithinDuration(t, expiresAt, claims.ExpiresAt.Time, time.Second)
}

func TestParseAndValidateJWT_WrongSecret(t *testing.T) {
	tokenString, err := GenerateJWT(uuid.NewString(), "alice", testSecret, time.Now().Add(time.Hour), "test-issuer")
	require.NoError(t, err)

	claims, err := ParseAndValidateJWT(tokenString, "a-different-secret")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestParseAndValidateJWT_Expired(t *testing.T) {
	tokenString, err := GenerateJWT(uuid.NewString(), "alice", testSecret, time.Now().Add(-time.Minute), "test-issuer")
	require.NoError(t, err)

	claims, err := ParseAndValidateJWT(tokenString, testSecret)
	assert.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	assert.Nil(t, claims)
}

func TestParseAndValidateJWT_WrongSigningMethod(t *testing.T) {
	// An unsigned token must be rejected even though it parses
	claims := SessionClaims{
		Username: "mallory",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	tokenString, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	parsed, err := ParseAndValidateJWT(tokenString, testSecret)
	assert.Error(t, err)
	assert.Nil(t, parsed)
}

func TestParseAndValidateJWT_Garbage(t *testing.T) {
	claims, err := ParseAndValidateJWT("not.a.token", testSecret)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

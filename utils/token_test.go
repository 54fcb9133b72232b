package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret"

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(testSecret, "1f0a2b3c", true)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := VerifyToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "1f0a2b3c", claims.Subject)
	assert.True(t, claims.IsAdmin)

	remaining := time.Until(claims.ExpiresAt.Time)
	assert.InDelta(t, TokenTTL.Seconds(), remaining.Seconds(), 60)
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken(testSecret, "1f0a2b3c", false)
	require.NoError(t, err)

	_, err = VerifyToken("a-different-secret", token)
	assert.Error(t, err)
}

func TestVerifyTokenMalformed(t *testing.T) {
	_, err := VerifyToken(testSecret, "not-a-jwt")
	assert.Error(t, err)
}

func TestVerifyTokenExpired(t *testing.T) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "1f0a2b3c",
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = VerifyToken(testSecret, token)
	assert.Error(t, err)
}

func TestVerifyTokenRejectsNoneAlgorithm(t *testing.T) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "1f0a2b3c",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = VerifyToken(testSecret, token)
	assert.Error(t, err)
}

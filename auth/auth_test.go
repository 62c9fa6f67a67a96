package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentialsVerify(t *testing.T) {
	hash, err := HashPassword("sut-2024")
	require.NoError(t, err)
	creds := Credentials{Username: "admin", PasswordHash: hash}

	assert.NoError(t, creds.Verify("admin", "sut-2024"))
	assert.ErrorIs(t, creds.Verify("admin", "wrong"), ErrInvalidCredentials)
	assert.ErrorIs(t, creds.Verify("root", "sut-2024"), ErrInvalidCredentials)
}

func TestJWTRoundTrip(t *testing.T) {
	const secret = "test-secret"

	token, err := SignJWT(secret, "admin", time.Hour)
	require.NoError(t, err)

	claims, err := ParseAndValidate(secret, token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)

	_, err = ParseAndValidate("other-secret", token)
	assert.Error(t, err)
}

func TestExpiredToken(t *testing.T) {
	const secret = "test-secret"

	token, err := SignJWT(secret, "admin", -time.Minute)
	require.NoError(t, err)

	_, err = ParseAndValidate(secret, token)
	assert.Error(t, err)
}

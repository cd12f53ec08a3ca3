package auth

import (
	"testing"

	"jobbridge_backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setTokenConfig(t *testing.T, ttlMinutes int) {
	t.Helper()
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = ttlMinutes
	config.AppConfig = cfg
}

func TestTokenRoundTrip(t *testing.T) {
	setTokenConfig(t, 60)

	token, err := GenerateToken("user-1", "JOB_SEEKER")
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "JOB_SEEKER", claims.Role)
	assert.Equal(t, "user-1", claims.Subject)
}

func TestParseToken_Garbage(t *testing.T) {
	setTokenConfig(t, 60)

	_, err := ParseToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_Tampered(t *testing.T) {
	setTokenConfig(t, 60)

	token, err := GenerateToken("user-1", "ADMIN")
	require.NoError(t, err)

	_, err = ParseToken(token + "x")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_Expired(t *testing.T) {
	setTokenConfig(t, -1)

	token, err := GenerateToken("user-1", "COMPANY")
	require.NoError(t, err)

	setTokenConfig(t, 60)
	_, err = ParseToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

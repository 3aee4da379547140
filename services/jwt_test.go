package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	svc := newTestJWT()

	token, err := svc.GenerateToken("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := svc.VerifyJWTToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestJWTExpiredToken(t *testing.T) {
	svc := newTestJWT()

	token, err := svc.tokenWithTTL("user-123", -time.Minute)
	require.NoError(t, err)

	_, err = svc.VerifyJWTToken(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestJWTInvalidToken(t *testing.T) {
	svc := newTestJWT()

	_, err := svc.VerifyJWTToken("not-a-token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestJWTWrongSecret(t *testing.T) {
	svc := newTestJWT()
	token, err := svc.GenerateToken("user-123")
	require.NoError(t, err)

	other := &JWTService{AccessTokenDuration: AccessTokenTTL, jwtSecretKey: "different-secret"}
	_, err = other.VerifyJWTToken(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestExtractTokenFromHeader(t *testing.T) {
	svc := newTestJWT()

	token, err := svc.ExtractTokenFromHeader("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = svc.ExtractTokenFromHeader("")
	assert.Error(t, err)

	_, err = svc.ExtractTokenFromHeader("Basic abc")
	assert.Error(t, err)
}

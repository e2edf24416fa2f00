package jwt

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftboard/shiftboard-backend-go/internal/domain/user"
)

const testSecret = "test-secret-key-for-jwt"

func newTestJWTService() Service {
	return NewJWTService(testSecret, "1h", "24h")
}

func TestAccessTokenClaims(t *testing.T) {
	svc := newTestJWTService()

	tokenString, expiresAt, err := svc.GenerateAccessToken("u1", "alice@example.com", user.RoleEmployee)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)
	assert.Positive(t, expiresAt)

	token, err := svc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)

	claims, err := token.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "u1", claims["user_id"])
	assert.Equal(t, "alice@example.com", claims["email"])
	assert.Equal(t, "employee", claims["role"])
	assert.Equal(t, "access", claims["type"])
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	svc := newTestJWTService()

	tokenString, _, err := svc.GenerateRefreshToken("u1")
	require.NoError(t, err)

	userID, err := svc.ParseRefreshToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "u1", userID)
}

func TestAccessTokenRejectedAsRefresh(t *testing.T) {
	svc := newTestJWTService()

	tokenString, _, err := svc.GenerateAccessToken("u1", "alice@example.com", user.RoleAdmin)
	require.NoError(t, err)

	_, err = svc.ParseRefreshToken(tokenString)
	assert.Error(t, err)
}

func TestRevokedRefreshTokenRejected(t *testing.T) {
	svc := newTestJWTService()

	tokenString, _, err := svc.GenerateRefreshToken("u1")
	require.NoError(t, err)

	svc.RevokeToken(tokenString)
	assert.True(t, svc.IsTokenRevoked(tokenString))

	_, err = svc.ParseRefreshToken(tokenString)
	assert.Error(t, err)
}

func TestGarbageTokenRejected(t *testing.T) {
	svc := newTestJWTService()

	_, err := svc.ParseRefreshToken("not-a-token")
	assert.Error(t, err)
}

func TestRefreshTokenCookie(t *testing.T) {
	svc := newTestJWTService()

	tokenString, expiresAt, err := svc.GenerateRefreshToken("u1")
	require.NoError(t, err)

	cookie := svc.RefreshTokenCookie(tokenString, expiresAt)
	assert.Equal(t, "refresh_token", cookie.Name)
	assert.Equal(t, tokenString, cookie.Value)
	assert.True(t, cookie.HttpOnly)
}

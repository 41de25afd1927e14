package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"c2hr/internal/model"
)

func TestJWTService_AccessTokenRoundTrip(t *testing.T) {
	service := NewJWTService("test-secret")
	user := model.NewUser("Jane", "jane@example.com", "hash", model.RoleCandidate)

	token, err := service.GenerateAccessToken(user)
	require.NoError(t, err)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, model.RoleCandidate, claims.Role)
}

func TestJWTService_WrongSecret(t *testing.T) {
	user := model.NewUser("Jane", "jane@example.com", "hash", model.RoleCandidate)
	token, err := NewJWTService("secret-a").GenerateAccessToken(user)
	require.NoError(t, err)

	_, err = NewJWTService("secret-b").ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_ExtractTokenID(t *testing.T) {
	service := NewJWTService("test-secret")
	user := model.NewUser("Jane", "jane@example.com", "hash", model.RoleCandidate)

	t.Run("refresh token carries a jti", func(t *testing.T) {
		tokenID, token, err := service.GenerateRefreshToken(user)
		require.NoError(t, err)

		got, err := service.ExtractTokenID(token)
		assert.NoError(t, err)
		assert.Equal(t, tokenID, got)
	})

	t.Run("access token has none", func(t *testing.T) {
		token, err := service.GenerateAccessToken(user)
		require.NoError(t, err)

		_, err = service.ExtractTokenID(token)
		assert.Error(t, err)
	})
}

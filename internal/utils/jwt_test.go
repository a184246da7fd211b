package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const testSecret = "test-secret"

func TestGenerateAndValidateToken(t *testing.T) {
	userID := primitive.NewObjectID()

	pair, err := GenerateTokenPair(userID, "alice", "alice@example.com", true, testSecret, time.Hour, 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, "Bearer", pair.TokenType)
	assert.Equal(t, int64(3600), pair.ExpiresIn)

	claims, err := ValidateToken(pair.AccessToken, testSecret)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.True(t, claims.IsAdmin)
	assert.Equal(t, userID.Hex(), claims.Subject)
}

func TestValidateTokenRejects(t *testing.T) {
	userID := primitive.NewObjectID()
	pair, err := GenerateTokenPair(userID, "alice", "alice@example.com", false, testSecret, time.Hour, 24*time.Hour)
	require.NoError(t, err)

	t.Run("wrong secret", func(t *testing.T) {
		_, err := ValidateToken(pair.AccessToken, "other-secret")
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := ValidateToken("not.a.token", testSecret)
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		expired, err := GenerateTokenPair(userID, "alice", "alice@example.com", false, testSecret, -time.Minute, 24*time.Hour)
		require.NoError(t, err)

		_, err = ValidateToken(expired.AccessToken, testSecret)
		assert.Error(t, err)
	})
}

func TestRefreshAccessToken(t *testing.T) {
	userID := primitive.NewObjectID()
	pair, err := GenerateTokenPair(userID, "alice", "alice@example.com", false, testSecret, time.Hour, 24*time.Hour)
	require.NoError(t, err)

	fresh, err := RefreshAccessToken(pair.RefreshToken, testSecret, time.Hour, 24*time.Hour)
	require.NoError(t, err)

	claims, err := ValidateToken(fresh.AccessToken, testSecret)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)

	_, err = RefreshAccessToken("bogus", testSecret, time.Hour, 24*time.Hour)
	assert.Error(t, err)
}

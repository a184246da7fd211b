package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"yatra/internal/config"
)

func testSecurityConfig() *config.SecurityConfig {
	return &config.SecurityConfig{
		JWTSecret:          "test-secret",
		JWTAccessTokenTTL:  time.Hour,
		JWTRefreshTokenTTL: 24 * time.Hour,
	}
}

func newAuthService(t *testing.T) (*AuthService, *fakeUserRepo, *fakeMailer) {
	userRepo := &fakeUserRepo{}
	mailer := &fakeMailer{}
	svc := NewAuthService(userRepo, mailer, testSecurityConfig(), newTestLogger(t))
	return svc, userRepo, mailer
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("creates user retrievable by username", func(t *testing.T) {
		svc, userRepo, _ := newAuthService(t)

		user, err := svc.Register(ctx, "alice", "alice@example.com", "password123")
		require.NoError(t, err)
		assert.False(t, user.ID.IsZero())

		stored, err := userRepo.GetByUsername(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", stored.Email)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("password123")))
	})

	t.Run("rejects duplicate username", func(t *testing.T) {
		svc, _, _ := newAuthService(t)

		_, err := svc.Register(ctx, "alice", "alice@example.com", "password123")
		require.NoError(t, err)

		_, err = svc.Register(ctx, "alice", "other@example.com", "password123")
		assert.ErrorIs(t, err, ErrUsernameTaken)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		svc, _, _ := newAuthService(t)

		_, err := svc.Register(ctx, "alice", "alice@example.com", "password123")
		require.NoError(t, err)

		_, err = svc.Register(ctx, "bob", "alice@example.com", "password123")
		assert.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("accepts a short password", func(t *testing.T) {
		svc, userRepo, _ := newAuthService(t)

		_, err := svc.Register(ctx, "alice", "alice@example.com", "abc")
		require.NoError(t, err)

		stored, err := userRepo.GetByUsername(ctx, "alice")
		require.NoError(t, err)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("abc")))
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newAuthService(t)

	_, err := svc.Register(ctx, "alice", "alice@example.com", "password123")
	require.NoError(t, err)

	t.Run("issues token pair on valid credentials", func(t *testing.T) {
		tokens, user, err := svc.Login(ctx, "alice", "password123")
		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
		assert.NotEmpty(t, tokens.AccessToken)
		assert.NotEmpty(t, tokens.RefreshToken)
		assert.Equal(t, "Bearer", tokens.TokenType)
	})

	t.Run("rejects wrong password", func(t *testing.T) {
		tokens, _, err := svc.Login(ctx, "alice", "wrong-password")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.Nil(t, tokens)
	})

	t.Run("rejects unknown username", func(t *testing.T) {
		tokens, _, err := svc.Login(ctx, "nobody", "password123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.Nil(t, tokens)
	})
}

func TestRefreshToken(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newAuthService(t)

	_, err := svc.Register(ctx, "alice", "alice@example.com", "password123")
	require.NoError(t, err)

	tokens, _, err := svc.Login(ctx, "alice", "password123")
	require.NoError(t, err)

	t.Run("exchanges a valid refresh token for a new pair", func(t *testing.T) {
		fresh, err := svc.RefreshToken(tokens.RefreshToken)
		require.NoError(t, err)
		assert.NotEmpty(t, fresh.AccessToken)
		assert.NotEmpty(t, fresh.RefreshToken)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := svc.RefreshToken("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestChangePassword(t *testing.T) {
	ctx := context.Background()
	svc, userRepo, _ := newAuthService(t)

	user, err := svc.Register(ctx, "alice", "alice@example.com", "password123")
	require.NoError(t, err)

	t.Run("rejects wrong current password", func(t *testing.T) {
		err := svc.ChangePassword(ctx, user.ID, "wrong", "newpassword1")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("updates the hash", func(t *testing.T) {
		err := svc.ChangePassword(ctx, user.ID, "password123", "newpassword1")
		require.NoError(t, err)

		stored, err := userRepo.GetByID(ctx, user.ID)
		require.NoError(t, err)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("newpassword1")))
	})

	t.Run("accepts a short new password", func(t *testing.T) {
		err := svc.ChangePassword(ctx, user.ID, "newpassword1", "abc")
		require.NoError(t, err)

		stored, err := userRepo.GetByID(ctx, user.ID)
		require.NoError(t, err)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("abc")))
	})
}

func TestRequestPasswordReset(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown email", func(t *testing.T) {
		svc, _, _ := newAuthService(t)
		err := svc.RequestPasswordReset(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("replaces the password and mails it", func(t *testing.T) {
		svc, userRepo, mailer := newAuthService(t)
		user, err := svc.Register(ctx, "alice", "alice@example.com", "password123")
		require.NoError(t, err)

		require.NoError(t, svc.RequestPasswordReset(ctx, "alice@example.com"))

		stored, err := userRepo.GetByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Error(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("password123")))
		require.Len(t, mailer.sent, 1)
		assert.Equal(t, "alice@example.com", mailer.sent[0].to)
	})

	t.Run("email failure does not fail the request", func(t *testing.T) {
		svc, _, mailer := newAuthService(t)
		_, err := svc.Register(ctx, "alice", "alice@example.com", "password123")
		require.NoError(t, err)

		mailer.sendErr = assert.AnError
		assert.NoError(t, svc.RequestPasswordReset(ctx, "alice@example.com"))
	})
}

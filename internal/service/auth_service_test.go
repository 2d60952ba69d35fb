package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"commitgate/internal/config"
	"commitgate/internal/domain"
	"commitgate/internal/service"
)

func newAuthService(t *testing.T) service.AuthService {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)

	return service.NewAuthService(
		config.JWTConfig{
			Secret:             "test-secret",
			AccessTokenExpiry:  15 * time.Minute,
			RefreshTokenExpiry: 24 * time.Hour,
			Issuer:             "commitgate-test",
		},
		config.AdminConfig{
			Username:     "admin",
			PasswordHash: string(hash),
		},
	)
}

func TestLogin(t *testing.T) {
	svc := newAuthService(t)

	t.Run("valid credentials", func(t *testing.T) {
		pair, err := svc.Login(context.Background(), service.LoginInput{Username: "admin", Password: "correct-horse"})
		require.NoError(t, err)
		assert.NotEmpty(t, pair.AccessToken)
		assert.NotEmpty(t, pair.RefreshToken)
		assert.True(t, pair.ExpiresAt.After(time.Now()))
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), service.LoginInput{Username: "admin", Password: "wrong"})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("wrong username", func(t *testing.T) {
		_, err := svc.Login(context.Background(), service.LoginInput{Username: "intruder", Password: "correct-horse"})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("no admin account configured", func(t *testing.T) {
		unconfigured := service.NewAuthService(config.JWTConfig{Secret: "s"}, config.AdminConfig{Username: "admin"})
		_, err := unconfigured.Login(context.Background(), service.LoginInput{Username: "admin", Password: "anything"})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}

func TestValidateToken(t *testing.T) {
	svc := newAuthService(t)
	pair, err := svc.Login(context.Background(), service.LoginInput{Username: "admin", Password: "correct-horse"})
	require.NoError(t, err)

	t.Run("access token validates", func(t *testing.T) {
		claims, err := svc.ValidateToken(pair.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, "admin", claims.Username)
	})

	t.Run("refresh token is not an access token", func(t *testing.T) {
		_, err := svc.ValidateToken(pair.RefreshToken)
		assert.Error(t, err)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.ValidateToken("not.a.token")
		assert.Error(t, err)
	})
}

func TestRefreshToken(t *testing.T) {
	svc := newAuthService(t)
	pair, err := svc.Login(context.Background(), service.LoginInput{Username: "admin", Password: "correct-horse"})
	require.NoError(t, err)

	t.Run("refresh token issues a new pair", func(t *testing.T) {
		fresh, err := svc.RefreshToken(context.Background(), pair.RefreshToken)
		require.NoError(t, err)
		claims, err := svc.ValidateToken(fresh.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, "admin", claims.Username)
	})

	t.Run("access token cannot refresh", func(t *testing.T) {
		_, err := svc.RefreshToken(context.Background(), pair.AccessToken)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})
}

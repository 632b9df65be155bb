package services

import (
	"testing"

	"github.com/scamshield/scamshield-backend/internal/config"
	"github.com/scamshield/scamshield-backend/internal/dto"
	"github.com/scamshield/scamshield-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAuthConfig() *config.Config {
	cfg := config.Load()
	cfg.JWTSecret = "test-secret"
	return cfg
}

func TestRegisterValidation(t *testing.T) {
	svc := NewAuthService(nil, testAuthConfig())

	_, err := svc.Register(&dto.RegisterRequest{Name: "", Email: "a@b.com", Password: "password123"})
	var ve ValidationError
	require.ErrorAs(t, err, &ve)

	_, err = svc.Register(&dto.RegisterRequest{Name: "A", Email: "a@b.com", Password: "short"})
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Error(), "at least 8 characters")
}

func TestRegisterAndLogin(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testAuthConfig())

	resp, err := svc.Register(&dto.RegisterRequest{
		Name:     "Jordan",
		Email:    "jordan@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, models.RoleUser, resp.User.Role)

	t.Run("duplicate email", func(t *testing.T) {
		_, err := svc.Register(&dto.RegisterRequest{
			Name:     "Jordan Again",
			Email:    "jordan@example.com",
			Password: "password123",
		})
		assert.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("login", func(t *testing.T) {
		got, err := svc.Login(&dto.LoginRequest{Email: "jordan@example.com", Password: "password123"})
		require.NoError(t, err)
		assert.Equal(t, resp.User.ID, got.User.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(&dto.LoginRequest{Email: "jordan@example.com", Password: "wrong-password"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("refresh rotates the token", func(t *testing.T) {
		first, err := svc.Refresh(&dto.RefreshRequest{RefreshToken: resp.RefreshToken})
		require.NoError(t, err)
		assert.NotEqual(t, resp.RefreshToken, first.RefreshToken)

		// The presented token was revoked.
		_, err = svc.Refresh(&dto.RefreshRequest{RefreshToken: resp.RefreshToken})
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

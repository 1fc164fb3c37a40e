package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminLogin(t *testing.T) {
	hash, err := HashPassword("hunter2")
	require.NoError(t, err)

	auth := NewAdminAuthService(hash, "test-secret", time.Hour)
	require.True(t, auth.Enabled())

	token, expires, err := auth.Login("hunter2")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expires, time.Minute)

	claims, err := auth.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Role)

	_, _, err = auth.Login("wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAdminLoginDisabled(t *testing.T) {
	auth := NewAdminAuthService("", "test-secret", 0)
	assert.False(t, auth.Enabled())
	_, _, err := auth.Login("anything")
	assert.ErrorIs(t, err, ErrAdminDisabled)
}

func TestValidateTokenRejects(t *testing.T) {
	auth := NewAdminAuthService("x", "test-secret", time.Hour)
	token, _, err := auth.GenerateToken()
	require.NoError(t, err)

	t.Run("other secret", func(t *testing.T) {
		other := NewAdminAuthService("x", "another-secret", time.Hour)
		_, err := other.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("expired", func(t *testing.T) {
		auth.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
		defer func() { auth.now = time.Now }()
		_, err := auth.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := auth.ValidateToken("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestHashPasswordRejectsEmpty(t *testing.T) {
	_, err := HashPassword("")
	assert.Error(t, err)
}

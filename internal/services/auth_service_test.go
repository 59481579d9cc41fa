// internal/services/auth_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turhanbey/presetshop-backend/internal/utils"
)

func newAuthFixture(t *testing.T) *AuthService {
	t.Helper()
	utils.SetJWTSecret("test-secret")
	svc, err := NewAuthService(newTestDB(t), newTestConfig(t))
	require.NoError(t, err)
	return svc
}

func TestLoginWithCorrectPIN(t *testing.T) {
	svc := newAuthFixture(t)

	auth, err := svc.Login(&LoginRequest{PIN: "41251250"})
	require.NoError(t, err)

	assert.NotEmpty(t, auth.Token)
	assert.Equal(t, "Bearer", auth.TokenType)
	assert.Equal(t, 3600, auth.ExpiresIn)
	assert.False(t, auth.LoginAt.IsZero())

	active, err := svc.IsActive()
	require.NoError(t, err)
	assert.True(t, active)
}

func TestLoginRejectsWrongPIN(t *testing.T) {
	svc := newAuthFixture(t)

	_, err := svc.Login(&LoginRequest{PIN: "0000"})
	assert.ErrorIs(t, err, ErrInvalidPIN)

	_, err = svc.Login(&LoginRequest{PIN: ""})
	assert.ErrorIs(t, err, ErrValidation)

	active, err := svc.IsActive()
	require.NoError(t, err)
	assert.False(t, active)
}

func TestLogoutClearsSession(t *testing.T) {
	svc := newAuthFixture(t)

	_, err := svc.Login(&LoginRequest{PIN: "41251250"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout())

	active, err := svc.IsActive()
	require.NoError(t, err)
	assert.False(t, active)

	_, err = svc.Session()
	assert.ErrorIs(t, err, ErrNotFound)

	// Logging out twice is a no-op.
	require.NoError(t, svc.Logout())
}

func TestSecondLoginInvalidatesFirstToken(t *testing.T) {
	svc := newAuthFixture(t)

	first, err := svc.Login(&LoginRequest{PIN: "41251250"})
	require.NoError(t, err)

	second, err := svc.Login(&LoginRequest{PIN: "41251250"})
	require.NoError(t, err)

	firstID, err := utils.ValidateSessionToken(first.Token)
	require.NoError(t, err)
	secondID, err := utils.ValidateSessionToken(second.Token)
	require.NoError(t, err)
	assert.NotEqual(t, firstID, secondID)

	// Only the latest token's id survives in the session row.
	session, err := svc.Session()
	require.NoError(t, err)
	assert.Equal(t, secondID, session.TokenID)
	assert.NotEqual(t, firstID, session.TokenID)
}

func TestPINIsStoredHashed(t *testing.T) {
	svc := newAuthFixture(t)

	assert.NotContains(t, string(svc.pinHash), "41251250")
}

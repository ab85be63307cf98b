package auth

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/teamtrack/project-management-api/internal/models"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	m := NewTokenManager("test-secret")

	token, err := m.Generate(42, models.RoleManager)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	require.Equal(t, uint64(42), claims.UserID)
	require.Equal(t, models.RoleManager, claims.Role)
	require.NotNil(t, claims.ExpiresAt)
}

func TestTokenManager_RejectsWrongSecret(t *testing.T) {
	m := NewTokenManager("test-secret")
	other := NewTokenManager("other-secret")

	token, err := m.Generate(42, models.RoleEmployee)
	require.NoError(t, err)

	_, err = other.Parse(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_RejectsGarbage(t *testing.T) {
	m := NewTokenManager("test-secret")

	_, err := m.Parse("not.a.token")
	require.ErrorIs(t, err, ErrInvalidToken)

	_, err = m.Parse("")
	require.ErrorIs(t, err, ErrInvalidToken)
}

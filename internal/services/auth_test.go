package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxiliosofficial/drafthause-admin/internal/models"
	"github.com/oxiliosofficial/drafthause-admin/internal/store"
)

func newAuthService(t *testing.T) (*AuthService, *store.Store) {
	t.Helper()
	st := store.New(store.Snapshot{
		Clients: []models.Client{
			{ID: "c1", Name: "Sarah Mitchell", Email: "sarah@example.com", Status: models.ClientStatusActive},
			{ID: "c2", Name: "James Thornton", Email: "james@example.com", Status: models.ClientStatusInactive},
		},
		Settings: models.DefaultSettings(),
	}, nil)
	jwt := NewJWTService("test-secret", 15*time.Minute, 24*time.Hour)
	return NewAuthService(st, jwt, "admin@drafthause.com", "hunter2"), st
}

func TestAuthService_LoginAdmin(t *testing.T) {
	svc, _ := newAuthService(t)

	pair, err := svc.LoginAdmin("admin@drafthause.com", "hunter2")
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)

	claims, err := NewJWTService("test-secret", 15*time.Minute, 24*time.Hour).ValidateAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, claims.Role)
	assert.Equal(t, "admin", claims.SubjectID)
}

func TestAuthService_LoginAdmin_BadCredentials(t *testing.T) {
	svc, _ := newAuthService(t)

	testCases := []struct {
		name, email, password string
	}{
		{"wrong password", "admin@drafthause.com", "wrong"},
		{"wrong email", "nobody@drafthause.com", "hunter2"},
		{"both wrong", "nobody@drafthause.com", "wrong"},
		{"empty", "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.LoginAdmin(tc.email, tc.password)
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

func TestAuthService_LoginClient(t *testing.T) {
	svc, _ := newAuthService(t)

	client, pair, err := svc.LoginClient("sarah@example.com")
	require.NoError(t, err)
	assert.Equal(t, "c1", client.ID)
	assert.NotEmpty(t, pair.AccessToken)
}

func TestAuthService_LoginClient_Unknown(t *testing.T) {
	svc, _ := newAuthService(t)

	_, _, err := svc.LoginClient("nobody@example.com")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_LoginClient_Inactive(t *testing.T) {
	svc, _ := newAuthService(t)

	_, _, err := svc.LoginClient("james@example.com")
	assert.ErrorIs(t, err, ErrClientInactive)
}

func TestAuthService_Refresh(t *testing.T) {
	svc, _ := newAuthService(t)

	_, pair, err := svc.LoginClient("sarah@example.com")
	require.NoError(t, err)

	refreshed, err := svc.Refresh(pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
}

func TestAuthService_Refresh_InvalidToken(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Refresh("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Refresh_ClientDeactivatedSinceLogin(t *testing.T) {
	svc, st := newAuthService(t)

	_, pair, err := svc.LoginClient("sarah@example.com")
	require.NoError(t, err)

	inactive := models.ClientStatusInactive
	require.NoError(t, st.UpdateClient("c1", models.ClientPatch{Status: &inactive}))

	_, err = svc.Refresh(pair.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Refresh_AdminUnaffectedByDirectory(t *testing.T) {
	svc, _ := newAuthService(t)

	pair, err := svc.LoginAdmin("admin@drafthause.com", "hunter2")
	require.NoError(t, err)

	refreshed, err := svc.Refresh(pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
}

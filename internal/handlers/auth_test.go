package handlers

import (
	"net/http"
	"testing"

	"github.com/m1z23r/drift/pkg/drift"
	driftmw "github.com/m1z23r/drift/pkg/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxiliosofficial/drafthause-admin/internal/services"
	"github.com/oxiliosofficial/drafthause-admin/internal/store"
	"github.com/oxiliosofficial/drafthause-admin/pkg/dto"
	"github.com/oxiliosofficial/drafthause-admin/tests/testutil"
)

func setupAuthTest(t *testing.T) (*services.JWTService, *testutil.HTTPTestClient) {
	t.Helper()

	st := testutil.NewStore(store.Snapshot{})
	jwtSvc := testutil.TestJWTService()
	authSvc := services.NewAuthService(st, jwtSvc, "admin@drafthause.com", "hunter2")
	handler := NewAuthHandler(authSvc)

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Post("/auth/login", handler.Login)
	app.Post("/auth/refresh", handler.Refresh)

	return jwtSvc, testutil.NewHTTPTestClient(t, app)
}

func TestAuthHandler_Login(t *testing.T) {
	jwtSvc, client := setupAuthTest(t)

	rec := client.POST("/auth/login", dto.AdminLoginRequest{
		Email:    "admin@drafthause.com",
		Password: "hunter2",
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.TokenResponse
	testutil.ParseJSON(t, rec, &resp)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, int64(900), resp.ExpiresIn)

	claims, err := jwtSvc.ValidateAccessToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, services.RoleAdmin, claims.Role)
	assert.Equal(t, "admin@drafthause.com", claims.Email)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	_, client := setupAuthTest(t)

	tests := []struct {
		name     string
		email    string
		password string
		want     int
	}{
		{"wrong password", "admin@drafthause.com", "wrong", http.StatusUnauthorized},
		{"wrong email", "someone@drafthause.com", "hunter2", http.StatusUnauthorized},
		{"missing password", "admin@drafthause.com", "", http.StatusBadRequest},
		{"missing email", "", "hunter2", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := client.POST("/auth/login", dto.AdminLoginRequest{
				Email:    tt.email,
				Password: tt.password,
			}, nil)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestAuthHandler_Refresh(t *testing.T) {
	_, client := setupAuthTest(t)

	rec := client.POST("/auth/login", dto.AdminLoginRequest{
		Email:    "admin@drafthause.com",
		Password: "hunter2",
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var login dto.TokenResponse
	testutil.ParseJSON(t, rec, &login)

	rec = client.POST("/auth/refresh", dto.RefreshTokenRequest{
		RefreshToken: login.RefreshToken,
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var refreshed dto.TokenResponse
	testutil.ParseJSON(t, rec, &refreshed)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.NotEmpty(t, refreshed.RefreshToken)
}

func TestAuthHandler_Refresh_Invalid(t *testing.T) {
	_, client := setupAuthTest(t)

	rec := client.POST("/auth/refresh", dto.RefreshTokenRequest{
		RefreshToken: "not-a-token",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = client.POST("/auth/refresh", dto.RefreshTokenRequest{}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

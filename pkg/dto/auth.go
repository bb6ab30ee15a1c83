package dto

import "github.com/oxiliosofficial/drafthause-admin/internal/models"

type AdminLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type PortalLoginRequest struct {
	Email string `json:"email"`
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

type PortalLoginResponse struct {
	Client models.Client `json:"client"`
	Tokens TokenResponse `json:"tokens"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

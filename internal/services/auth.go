package services

import (
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/oxiliosofficial/drafthause-admin/internal/models"
	"github.com/oxiliosofficial/drafthause-admin/internal/store"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrClientInactive     = errors.New("client account is inactive")
)

// AuthService issues tokens for the two principals: the studio admin
// (credentials from the environment) and portal clients (matched against the
// client directory by email).
type AuthService struct {
	store         *store.Store
	jwt           *JWTService
	adminEmail    string
	adminPassword string
}

func NewAuthService(st *store.Store, jwt *JWTService, adminEmail, adminPassword string) *AuthService {
	return &AuthService{
		store:         st,
		jwt:           jwt,
		adminEmail:    adminEmail,
		adminPassword: adminPassword,
	}
}

func (s *AuthService) LoginAdmin(email, password string) (*TokenPair, error) {
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(s.adminEmail)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.adminPassword)) == 1
	if !emailOK || !passOK {
		return nil, ErrInvalidCredentials
	}

	pair, err := s.jwt.GenerateTokenPair("admin", s.adminEmail, RoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("failed to issue admin tokens: %w", err)
	}
	return pair, nil
}

// LoginClient authenticates a portal user by directory email. The portal is a
// read-mostly surface so possession of the invite email is the whole gate.
func (s *AuthService) LoginClient(email string) (*models.Client, *TokenPair, error) {
	client, ok := s.store.Snapshot().ClientByEmail(email)
	if !ok {
		return nil, nil, ErrInvalidCredentials
	}
	if client.Status != models.ClientStatusActive {
		return nil, nil, ErrClientInactive
	}

	pair, err := s.jwt.GenerateTokenPair(client.ID, client.Email, RoleClient)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to issue client tokens: %w", err)
	}
	return &client, pair, nil
}

func (s *AuthService) Refresh(refreshToken string) (*TokenPair, error) {
	claims, err := s.jwt.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if claims.Role == RoleClient {
		client, ok := s.store.Snapshot().ClientByID(claims.SubjectID)
		if !ok || client.Status != models.ClientStatusActive {
			return nil, ErrInvalidCredentials
		}
	}

	pair, err := s.jwt.GenerateTokenPair(claims.SubjectID, claims.Email, claims.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to refresh tokens: %w", err)
	}
	return pair, nil
}

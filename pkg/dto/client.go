package dto

import "github.com/oxiliosofficial/drafthause-admin/internal/models"

type CreateClientRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Company string `json:"company,omitempty"`
	Notes   string `json:"notes,omitempty"`
}

// ClientResponse decorates a client with counts derived from the live
// snapshot.
type ClientResponse struct {
	models.Client
	ProjectCount int `json:"project_count"`
}

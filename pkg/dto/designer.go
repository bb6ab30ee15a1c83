package dto

import "github.com/oxiliosofficial/drafthause-admin/internal/models"

type CreateDesignerRequest struct {
	Name   string   `json:"name"`
	Email  string   `json:"email"`
	Phone  string   `json:"phone,omitempty"`
	Skills []string `json:"skills,omitempty"`
	Bio    string   `json:"bio,omitempty"`
}

type DesignerResponse struct {
	models.Designer
	ProjectsAssigned int `json:"projects_assigned"`
	VersionsCreated  int `json:"versions_created"`
}

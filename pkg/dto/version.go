package dto

import "github.com/oxiliosofficial/drafthause-admin/internal/models"

type CreateVersionRequest struct {
	Notes        string               `json:"notes,omitempty"`
	ModelURL     string               `json:"model_url,omitempty"`
	FloorPlanURL string               `json:"floor_plan_url,omitempty"`
	FileSize     int64                `json:"file_size,omitempty"`
	Measurements []models.Measurement `json:"measurements,omitempty"`
	Annotations  []models.Annotation  `json:"annotations,omitempty"`
}

type VersionResponse struct {
	models.Version
	ProjectName string `json:"project_name"`
}

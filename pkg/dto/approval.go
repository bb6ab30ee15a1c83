package dto

import "github.com/oxiliosofficial/drafthause-admin/internal/models"

type RequestApprovalRequest struct {
	VersionID string `json:"version_id"`
	Notes     string `json:"notes,omitempty"`
}

type DecideApprovalRequest struct {
	Status string `json:"status"`
	Notes  string `json:"notes,omitempty"`
}

type ApprovalResponse struct {
	models.Approval
	ProjectName   string `json:"project_name"`
	VersionNumber int    `json:"version_number"`
}

package dto

import "github.com/oxiliosofficial/drafthause-admin/internal/models"

type CreateProjectRequest struct {
	Name                  string                 `json:"name"`
	ClientID              string                 `json:"client_id"`
	PrimaryDesignerID     string                 `json:"primary_designer_id"`
	SupportingDesignerIDs []string               `json:"supporting_designer_ids,omitempty"`
	Type                  string                 `json:"type"`
	Rooms                 int                    `json:"rooms"`
	Location              models.ProjectLocation `json:"location"`
	Description           string                 `json:"description,omitempty"`
	Tags                  []string               `json:"tags,omitempty"`
}

// ProjectResponse carries the resolved display names alongside the record so
// list views need no follow-up lookups.
type ProjectResponse struct {
	models.Project
	ClientName          string `json:"client_name"`
	PrimaryDesignerName string `json:"primary_designer_name"`
	VersionCount        int    `json:"version_count"`
}

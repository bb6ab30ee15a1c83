package models

import "time"

// Project statuses
const (
	ProjectStatusDraft       = "draft"
	ProjectStatusInProgress  = "in-progress"
	ProjectStatusNeedsReview = "needs-review"
	ProjectStatusApproved    = "approved"
	ProjectStatusArchived    = "archived"
)

// Project types
const (
	ProjectTypeResidential = "residential"
	ProjectTypeCommercial  = "commercial"
)

type ProjectLocation struct {
	Address string   `json:"address"`
	City    string   `json:"city"`
	State   string   `json:"state"`
	Zip     string   `json:"zip"`
	Country string   `json:"country"`
	Lat     *float64 `json:"lat,omitempty"`
	Lng     *float64 `json:"lng,omitempty"`
}

type Project struct {
	ID                    string          `json:"id"`
	Name                  string          `json:"name"`
	ClientID              string          `json:"client_id"`
	PrimaryDesignerID     string          `json:"primary_designer_id"`
	SupportingDesignerIDs []string        `json:"supporting_designer_ids"`
	Type                  string          `json:"type"`
	Status                string          `json:"status"`
	Rooms                 int             `json:"rooms"`
	Location              ProjectLocation `json:"location"`
	Description           string          `json:"description"`
	CreatedAt             time.Time       `json:"created_at"`
	UpdatedAt             time.Time       `json:"updated_at"`
	Tags                  []string        `json:"tags"`
}

type ProjectPatch struct {
	Name                  *string          `json:"name,omitempty"`
	ClientID              *string          `json:"client_id,omitempty"`
	PrimaryDesignerID     *string          `json:"primary_designer_id,omitempty"`
	SupportingDesignerIDs *[]string        `json:"supporting_designer_ids,omitempty"`
	Type                  *string          `json:"type,omitempty"`
	Status                *string          `json:"status,omitempty"`
	Rooms                 *int             `json:"rooms,omitempty"`
	Location              *ProjectLocation `json:"location,omitempty"`
	Description           *string          `json:"description,omitempty"`
	UpdatedAt             *time.Time       `json:"updated_at,omitempty"`
	Tags                  *[]string        `json:"tags,omitempty"`
}

func (pr Project) Apply(p ProjectPatch) Project {
	if p.Name != nil {
		pr.Name = *p.Name
	}
	if p.ClientID != nil {
		pr.ClientID = *p.ClientID
	}
	if p.PrimaryDesignerID != nil {
		pr.PrimaryDesignerID = *p.PrimaryDesignerID
	}
	if p.SupportingDesignerIDs != nil {
		pr.SupportingDesignerIDs = *p.SupportingDesignerIDs
	}
	if p.Type != nil {
		pr.Type = *p.Type
	}
	if p.Status != nil {
		pr.Status = *p.Status
	}
	if p.Rooms != nil {
		pr.Rooms = *p.Rooms
	}
	if p.Location != nil {
		pr.Location = *p.Location
	}
	if p.Description != nil {
		pr.Description = *p.Description
	}
	if p.UpdatedAt != nil {
		pr.UpdatedAt = *p.UpdatedAt
	}
	if p.Tags != nil {
		pr.Tags = *p.Tags
	}
	return pr
}

package models

import "time"

// Version approval states
const (
	ApprovalStatePending          = "pending"
	ApprovalStateApproved         = "approved"
	ApprovalStateChangesRequested = "changes-requested"
	ApprovalStateRejected         = "rejected"
)

// Position is a point in scan space.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

type Measurement struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Value string `json:"value"`
	Unit  string `json:"unit"`
}

// Annotation types
const (
	AnnotationTypeWall        = "wall"
	AnnotationTypeDoor        = "door"
	AnnotationTypeWindow      = "window"
	AnnotationTypeFurniture   = "furniture"
	AnnotationTypeMeasurement = "measurement"
	AnnotationTypeNote        = "note"
)

type Annotation struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Label       string    `json:"label"`
	Position    *Position `json:"position,omitempty"`
	Description string    `json:"description,omitempty"`
}

type Version struct {
	ID            string        `json:"id"`
	ProjectID     string        `json:"project_id"`
	VersionNumber int           `json:"version_number"`
	CreatedBy     string        `json:"created_by"`
	CreatedAt     time.Time     `json:"created_at"`
	Notes         string        `json:"notes"`
	ApprovalState string        `json:"approval_state"`
	ApprovedBy    string        `json:"approved_by,omitempty"`
	ApprovedAt    *time.Time    `json:"approved_at,omitempty"`
	ModelURL      string        `json:"model_url,omitempty"`
	FloorPlanURL  string        `json:"floor_plan_url,omitempty"`
	FileSize      int64         `json:"file_size"`
	Measurements  []Measurement `json:"measurements"`
	Annotations   []Annotation  `json:"annotations"`
}

type VersionPatch struct {
	Notes         *string        `json:"notes,omitempty"`
	ApprovalState *string        `json:"approval_state,omitempty"`
	ApprovedBy    *string        `json:"approved_by,omitempty"`
	ApprovedAt    *time.Time     `json:"approved_at,omitempty"`
	ModelURL      *string        `json:"model_url,omitempty"`
	FloorPlanURL  *string        `json:"floor_plan_url,omitempty"`
	Measurements  *[]Measurement `json:"measurements,omitempty"`
	Annotations   *[]Annotation  `json:"annotations,omitempty"`
}

func (v Version) Apply(p VersionPatch) Version {
	if p.Notes != nil {
		v.Notes = *p.Notes
	}
	if p.ApprovalState != nil {
		v.ApprovalState = *p.ApprovalState
	}
	if p.ApprovedBy != nil {
		v.ApprovedBy = *p.ApprovedBy
	}
	if p.ApprovedAt != nil {
		v.ApprovedAt = p.ApprovedAt
	}
	if p.ModelURL != nil {
		v.ModelURL = *p.ModelURL
	}
	if p.FloorPlanURL != nil {
		v.FloorPlanURL = *p.FloorPlanURL
	}
	if p.Measurements != nil {
		v.Measurements = *p.Measurements
	}
	if p.Annotations != nil {
		v.Annotations = *p.Annotations
	}
	return v
}

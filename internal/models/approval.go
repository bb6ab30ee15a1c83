package models

import "time"

// Approval statuses
const (
	ApprovalStatusPending  = "pending"
	ApprovalStatusApproved = "approved"
	ApprovalStatusRejected = "rejected"
)

// Approval is the sign-off record for a version. DecidedBy/DecidedAt are
// only set once the status leaves pending.
type Approval struct {
	ID          string     `json:"id"`
	ProjectID   string     `json:"project_id"`
	VersionID   string     `json:"version_id"`
	RequestedAt time.Time  `json:"requested_at"`
	Status      string     `json:"status"`
	DecidedBy   string     `json:"decided_by,omitempty"`
	DecidedAt   *time.Time `json:"decided_at,omitempty"`
	Notes       string     `json:"notes,omitempty"`
}

type ApprovalPatch struct {
	Status    *string    `json:"status,omitempty"`
	DecidedBy *string    `json:"decided_by,omitempty"`
	DecidedAt *time.Time `json:"decided_at,omitempty"`
	Notes     *string    `json:"notes,omitempty"`
}

func (a Approval) Apply(p ApprovalPatch) Approval {
	if p.Status != nil {
		a.Status = *p.Status
	}
	if p.DecidedBy != nil {
		a.DecidedBy = *p.DecidedBy
	}
	if p.DecidedAt != nil {
		a.DecidedAt = p.DecidedAt
	}
	if p.Notes != nil {
		a.Notes = *p.Notes
	}
	return a
}

package models

import "time"

// Designer statuses. Pending only applies before a designer is approved
// onto the roster; afterwards the status toggles active/inactive.
const (
	DesignerStatusActive   = "active"
	DesignerStatusInactive = "inactive"
	DesignerStatusPending  = "pending"
)

type Designer struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Status       string    `json:"status"`
	Skills       []string  `json:"skills"`
	CreatedAt    time.Time `json:"created_at"`
	LastActivity time.Time `json:"last_activity"`
	Bio          string    `json:"bio,omitempty"`
	Avatar       string    `json:"avatar,omitempty"`
}

type DesignerPatch struct {
	Name         *string    `json:"name,omitempty"`
	Email        *string    `json:"email,omitempty"`
	Phone        *string    `json:"phone,omitempty"`
	Status       *string    `json:"status,omitempty"`
	Skills       *[]string  `json:"skills,omitempty"`
	LastActivity *time.Time `json:"last_activity,omitempty"`
	Bio          *string    `json:"bio,omitempty"`
	Avatar       *string    `json:"avatar,omitempty"`
}

func (d Designer) Apply(p DesignerPatch) Designer {
	if p.Name != nil {
		d.Name = *p.Name
	}
	if p.Email != nil {
		d.Email = *p.Email
	}
	if p.Phone != nil {
		d.Phone = *p.Phone
	}
	if p.Status != nil {
		d.Status = *p.Status
	}
	if p.Skills != nil {
		d.Skills = *p.Skills
	}
	if p.LastActivity != nil {
		d.LastActivity = *p.LastActivity
	}
	if p.Bio != nil {
		d.Bio = *p.Bio
	}
	if p.Avatar != nil {
		d.Avatar = *p.Avatar
	}
	return d
}

package models

import "time"

// Client statuses
const (
	ClientStatusActive   = "active"
	ClientStatusInactive = "inactive"
)

type Client struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Company      string    `json:"company"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	LastActivity time.Time `json:"last_activity"`
	Notes        string    `json:"notes,omitempty"`
	Avatar       string    `json:"avatar,omitempty"`
}

// ClientPatch is a partial update. Nil fields are left unchanged.
type ClientPatch struct {
	Name         *string    `json:"name,omitempty"`
	Email        *string    `json:"email,omitempty"`
	Phone        *string    `json:"phone,omitempty"`
	Company      *string    `json:"company,omitempty"`
	Status       *string    `json:"status,omitempty"`
	LastActivity *time.Time `json:"last_activity,omitempty"`
	Notes        *string    `json:"notes,omitempty"`
	Avatar       *string    `json:"avatar,omitempty"`
}

// Apply returns a copy of the client with the patch merged in.
func (c Client) Apply(p ClientPatch) Client {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	if p.Company != nil {
		c.Company = *p.Company
	}
	if p.Status != nil {
		c.Status = *p.Status
	}
	if p.LastActivity != nil {
		c.LastActivity = *p.LastActivity
	}
	if p.Notes != nil {
		c.Notes = *p.Notes
	}
	if p.Avatar != nil {
		c.Avatar = *p.Avatar
	}
	return c
}

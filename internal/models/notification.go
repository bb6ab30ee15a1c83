package models

import "time"

// Notification types
const (
	NotificationTypeComment  = "comment"
	NotificationTypeApproval = "approval"
	NotificationTypeVersion  = "version"
	NotificationTypeExport   = "export"
	NotificationTypeSystem   = "system"
)

type Notification struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
	Link      string    `json:"link,omitempty"`
}

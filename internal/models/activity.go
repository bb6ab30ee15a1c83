package models

import "time"

// Activity event types
const (
	ActivityVersionCreated   = "version-created"
	ActivityCommentAdded     = "comment-added"
	ActivityApprovalChanged  = "approval-changed"
	ActivityExportGenerated  = "export-generated"
	ActivityProjectCreated   = "project-created"
	ActivityClientPortalView = "client-portal-view"
	ActivityDesignerAssigned = "designer-assigned"
	ActivityStatusChanged    = "status-changed"
)

// ActivityEvent is an append-only audit entry, kept newest first.
type ActivityEvent struct {
	ID          string            `json:"id"`
	ProjectID   string            `json:"project_id"`
	Type        string            `json:"type"`
	Actor       string            `json:"actor"`
	Description string            `json:"description"`
	CreatedAt   time.Time         `json:"created_at"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

package dto

import "github.com/oxiliosofficial/drafthause-admin/internal/models"

// DashboardStatsResponse is the aggregate strip at the top of the dashboard.
type DashboardStatsResponse struct {
	ActiveProjects      int            `json:"active_projects"`
	ActiveClients       int            `json:"active_clients"`
	PendingApprovals    int            `json:"pending_approvals"`
	OpenComments        int            `json:"open_comments"`
	UnreadNotifications int            `json:"unread_notifications"`
	ProjectsByStatus    map[string]int `json:"projects_by_status"`
	ProjectsByType      map[string]int `json:"projects_by_type"`
}

type ActivityFeedResponse struct {
	Events []models.ActivityEvent `json:"events"`
}

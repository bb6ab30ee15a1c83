package dto

import "github.com/oxiliosofficial/drafthause-admin/internal/models"

type CreateCommentRequest struct {
	VersionID  string           `json:"version_id"`
	Content    string           `json:"content"`
	Coordinate *models.Position `json:"coordinate,omitempty"`
	ParentID   string           `json:"parent_id,omitempty"`
}

type CommentResponse struct {
	models.Comment
	ProjectName string `json:"project_name"`
}

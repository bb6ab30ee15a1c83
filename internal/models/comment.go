package models

import "time"

// Comment author types
const (
	AuthorTypeAdmin    = "admin"
	AuthorTypeDesigner = "designer"
	AuthorTypeClient   = "client"
)

// Comment statuses
const (
	CommentStatusOpen     = "open"
	CommentStatusResolved = "resolved"
)

type Comment struct {
	ID         string     `json:"id"`
	ProjectID  string     `json:"project_id"`
	VersionID  string     `json:"version_id"`
	AuthorID   string     `json:"author_id"`
	AuthorType string     `json:"author_type"`
	AuthorName string     `json:"author_name"`
	Content    string     `json:"content"`
	Status     string     `json:"status"`
	Coordinate *Position  `json:"coordinate,omitempty"`
	ParentID   string     `json:"parent_id,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
}

type CommentPatch struct {
	Content    *string    `json:"content,omitempty"`
	Status     *string    `json:"status,omitempty"`
	Coordinate *Position  `json:"coordinate,omitempty"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`

	// ClearResolvedAt drops the resolution stamp when a comment is reopened.
	ClearResolvedAt bool `json:"-"`
}

func (c Comment) Apply(p CommentPatch) Comment {
	if p.Content != nil {
		c.Content = *p.Content
	}
	if p.Status != nil {
		c.Status = *p.Status
	}
	if p.Coordinate != nil {
		c.Coordinate = p.Coordinate
	}
	if p.ResolvedAt != nil {
		c.ResolvedAt = p.ResolvedAt
	}
	if p.ClearResolvedAt {
		c.ResolvedAt = nil
	}
	return c
}

package handlers

import (
	"errors"
	"fmt"
	"time"

	"github.com/m1z23r/drift/pkg/drift"

	"github.com/oxiliosofficial/drafthause-admin/internal/models"
	"github.com/oxiliosofficial/drafthause-admin/internal/services"
	"github.com/oxiliosofficial/drafthause-admin/internal/store"
	"github.com/oxiliosofficial/drafthause-admin/pkg/dto"
)

type CommentHandler struct {
	store *store.Store
	sim   *services.Simulator
}

func NewCommentHandler(st *store.Store, sim *services.Simulator) *CommentHandler {
	return &CommentHandler{store: st, sim: sim}
}

func (h *CommentHandler) ListByProject(c *drift.Context) {
	snap := h.store.Snapshot()

	projectID := c.Param("projectId")
	if _, ok := snap.ProjectByID(projectID); !ok {
		c.NotFound("project not found")
		return
	}

	comments := snap.CommentsByProject(projectID)
	if versionID := c.QueryParam("version_id"); versionID != "" {
		filtered := []models.Comment{}
		for _, cm := range comments {
			if cm.VersionID == versionID {
				filtered = append(filtered, cm)
			}
		}
		comments = filtered
	}
	if status := c.QueryParam("status"); status != "" {
		filtered := []models.Comment{}
		for _, cm := range comments {
			if cm.Status == status {
				filtered = append(filtered, cm)
			}
		}
		comments = filtered
	}

	projectName := snap.ProjectName(projectID)
	response := make([]dto.CommentResponse, len(comments))
	for i, cm := range comments {
		response[i] = dto.CommentResponse{Comment: cm, ProjectName: projectName}
	}

	_ = c.JSON(200, response)
}

func (h *CommentHandler) Create(c *drift.Context) {
	snap := h.store.Snapshot()

	projectID := c.Param("projectId")
	project, ok := snap.ProjectByID(projectID)
	if !ok {
		c.NotFound("project not found")
		return
	}

	var req dto.CreateCommentRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.Content == "" {
		c.BadRequest("content is required")
		return
	}
	if req.VersionID != "" {
		version, ok := snap.VersionByID(req.VersionID)
		if !ok || version.ProjectID != projectID {
			c.BadRequest("version does not belong to this project")
			return
		}
	}

	comment := models.Comment{
		ID:         newID("comment"),
		ProjectID:  projectID,
		VersionID:  req.VersionID,
		AuthorID:   "admin",
		AuthorType: models.AuthorTypeAdmin,
		AuthorName: "Admin",
		Content:    req.Content,
		Status:     models.CommentStatusOpen,
		Coordinate: req.Coordinate,
		ParentID:   req.ParentID,
		CreatedAt:  time.Now().UTC(),
	}

	comment, err := services.EchoCreate(c.Request.Context(), h.sim, comment)
	if err != nil {
		return
	}

	h.store.AddComment(comment)
	recordActivity(h.store, projectID, models.ActivityCommentAdded, "Admin",
		fmt.Sprintf("commented on %s", project.Name))

	_ = c.JSON(201, dto.CommentResponse{Comment: comment, ProjectName: project.Name})
}

func (h *CommentHandler) Update(c *drift.Context) {
	var patch models.CommentPatch
	if err := c.BindJSON(&patch); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	id := c.Param("commentId")
	if _, err := services.EchoUpdate(c.Request.Context(), h.sim, id); err != nil {
		return
	}

	// Resolving stamps the time; reopening clears it.
	if patch.Status != nil {
		if *patch.Status == models.CommentStatusResolved {
			now := time.Now().UTC()
			patch.ResolvedAt = &now
		} else {
			patch.ClearResolvedAt = true
		}
	}

	if err := h.store.UpdateComment(id, patch); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.NotFound("comment not found")
			return
		}
		c.InternalServerError("failed to update comment")
		return
	}

	snap := h.store.Snapshot()
	comment, _ := snap.CommentByID(id)
	_ = c.JSON(200, dto.CommentResponse{
		Comment:     comment,
		ProjectName: snap.ProjectName(comment.ProjectID),
	})
}

func (h *CommentHandler) Delete(c *drift.Context) {
	id := c.Param("commentId")
	if _, err := services.EchoDelete(c.Request.Context(), h.sim, id); err != nil {
		return
	}

	if err := h.store.DeleteComment(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.NotFound("comment not found")
			return
		}
		c.InternalServerError("failed to delete comment")
		return
	}

	_ = c.JSON(200, map[string]string{"message": "comment deleted"})
}

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

type VersionHandler struct {
	store *store.Store
	sim   *services.Simulator
}

func NewVersionHandler(st *store.Store, sim *services.Simulator) *VersionHandler {
	return &VersionHandler{store: st, sim: sim}
}

func (h *VersionHandler) ListByProject(c *drift.Context) {
	snap := h.store.Snapshot()

	projectID := c.Param("projectId")
	if _, ok := snap.ProjectByID(projectID); !ok {
		c.NotFound("project not found")
		return
	}

	versions := snap.VersionsByProject(projectID)
	if c.QueryParam("order") == "asc" {
		store.SortVersionsAsc(versions)
	} else {
		store.SortVersionsDesc(versions)
	}

	projectName := snap.ProjectName(projectID)
	response := make([]dto.VersionResponse, len(versions))
	for i, v := range versions {
		response[i] = dto.VersionResponse{Version: v, ProjectName: projectName}
	}

	_ = c.JSON(200, response)
}

func (h *VersionHandler) Get(c *drift.Context) {
	snap := h.store.Snapshot()

	version, ok := snap.VersionByID(c.Param("versionId"))
	if !ok {
		c.NotFound("version not found")
		return
	}

	_ = c.JSON(200, dto.VersionResponse{
		Version:     version,
		ProjectName: snap.ProjectName(version.ProjectID),
	})
}

func (h *VersionHandler) Create(c *drift.Context) {
	snap := h.store.Snapshot()

	projectID := c.Param("projectId")
	project, ok := snap.ProjectByID(projectID)
	if !ok {
		c.NotFound("project not found")
		return
	}

	var req dto.CreateVersionRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	measurements := req.Measurements
	if measurements == nil {
		measurements = []models.Measurement{}
	}
	annotations := req.Annotations
	if annotations == nil {
		annotations = []models.Annotation{}
	}

	number := snap.NextVersionNumber(projectID)
	version := models.Version{
		ID:            fmt.Sprintf("v-%s-%d", projectID, number),
		ProjectID:     projectID,
		VersionNumber: number,
		CreatedBy:     project.PrimaryDesignerID,
		CreatedAt:     time.Now().UTC(),
		Notes:         req.Notes,
		ApprovalState: models.ApprovalStatePending,
		ModelURL:      req.ModelURL,
		FloorPlanURL:  req.FloorPlanURL,
		FileSize:      req.FileSize,
		Measurements:  measurements,
		Annotations:   annotations,
	}

	version, err := services.EchoCreate(c.Request.Context(), h.sim, version)
	if err != nil {
		return
	}

	h.store.AddVersion(version)
	recordActivity(h.store, projectID, models.ActivityVersionCreated, "Admin",
		fmt.Sprintf("created version %d for %s", number, project.Name))
	notify(h.store, models.NotificationTypeVersion, "New Version Created",
		fmt.Sprintf("Version %d was created for %s.", number, project.Name),
		"/projects/"+projectID)

	_ = c.JSON(201, dto.VersionResponse{Version: version, ProjectName: project.Name})
}

func (h *VersionHandler) Update(c *drift.Context) {
	var patch models.VersionPatch
	if err := c.BindJSON(&patch); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	id := c.Param("versionId")
	if _, err := services.EchoUpdate(c.Request.Context(), h.sim, id); err != nil {
		return
	}

	if err := h.store.UpdateVersion(id, patch); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.NotFound("version not found")
			return
		}
		c.InternalServerError("failed to update version")
		return
	}

	snap := h.store.Snapshot()
	version, _ := snap.VersionByID(id)
	_ = c.JSON(200, dto.VersionResponse{
		Version:     version,
		ProjectName: snap.ProjectName(version.ProjectID),
	})
}

func (h *VersionHandler) Delete(c *drift.Context) {
	id := c.Param("versionId")
	if _, err := services.EchoDelete(c.Request.Context(), h.sim, id); err != nil {
		return
	}

	if err := h.store.DeleteVersion(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.NotFound("version not found")
			return
		}
		c.InternalServerError("failed to delete version")
		return
	}

	_ = c.JSON(200, map[string]string{"message": "version deleted"})
}

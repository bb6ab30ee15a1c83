package handlers

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m1z23r/drift/pkg/drift"

	"github.com/oxiliosofficial/drafthause-admin/internal/models"
	"github.com/oxiliosofficial/drafthause-admin/internal/services"
	"github.com/oxiliosofficial/drafthause-admin/internal/store"
	"github.com/oxiliosofficial/drafthause-admin/pkg/dto"
)

type ProjectHandler struct {
	store *store.Store
	sim   *services.Simulator
}

func NewProjectHandler(st *store.Store, sim *services.Simulator) *ProjectHandler {
	return &ProjectHandler{store: st, sim: sim}
}

func projectResponse(snap store.Snapshot, p models.Project) dto.ProjectResponse {
	return dto.ProjectResponse{
		Project:             p,
		ClientName:          snap.ClientName(p.ClientID),
		PrimaryDesignerName: snap.DesignerName(p.PrimaryDesignerID),
		VersionCount:        snap.ProjectVersionCount(p.ID),
	}
}

func (h *ProjectHandler) List(c *drift.Context) {
	snap := h.store.Snapshot()

	status := c.QueryParam("status")
	projectType := c.QueryParam("type")
	clientID := c.QueryParam("client_id")
	designerID := c.QueryParam("designer_id")
	query := strings.ToLower(c.QueryParam("q"))

	response := []dto.ProjectResponse{}
	for _, project := range snap.Projects {
		if status != "" && project.Status != status {
			continue
		}
		if projectType != "" && project.Type != projectType {
			continue
		}
		if clientID != "" && project.ClientID != clientID {
			continue
		}
		if designerID != "" && !projectHasDesigner(project, designerID) {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(project.Name), query) {
			continue
		}
		response = append(response, projectResponse(snap, project))
	}

	_ = c.JSON(200, response)
}

func projectHasDesigner(p models.Project, designerID string) bool {
	if p.PrimaryDesignerID == designerID {
		return true
	}
	for _, id := range p.SupportingDesignerIDs {
		if id == designerID {
			return true
		}
	}
	return false
}

func (h *ProjectHandler) Get(c *drift.Context) {
	snap := h.store.Snapshot()

	project, ok := snap.ProjectByID(c.Param("projectId"))
	if !ok {
		c.NotFound("project not found")
		return
	}

	_ = c.JSON(200, projectResponse(snap, project))
}

func (h *ProjectHandler) Create(c *drift.Context) {
	var req dto.CreateProjectRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.Name == "" || req.ClientID == "" || req.PrimaryDesignerID == "" {
		c.BadRequest("name, client_id and primary_designer_id are required")
		return
	}
	if req.Type != models.ProjectTypeResidential && req.Type != models.ProjectTypeCommercial {
		c.BadRequest("type must be residential or commercial")
		return
	}

	supporting := req.SupportingDesignerIDs
	if supporting == nil {
		supporting = []string{}
	}
	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	now := time.Now().UTC()
	project := models.Project{
		ID:                    newID("p"),
		Name:                  req.Name,
		ClientID:              req.ClientID,
		PrimaryDesignerID:     req.PrimaryDesignerID,
		SupportingDesignerIDs: supporting,
		Type:                  req.Type,
		Status:                models.ProjectStatusDraft,
		Rooms:                 req.Rooms,
		Location:              req.Location,
		Description:           req.Description,
		CreatedAt:             now,
		UpdatedAt:             now,
		Tags:                  tags,
	}

	project, err := services.EchoCreate(c.Request.Context(), h.sim, project)
	if err != nil {
		return
	}

	h.store.AddProject(project)
	recordActivity(h.store, project.ID, models.ActivityProjectCreated, "Admin",
		fmt.Sprintf("created project %s", project.Name))

	_ = c.JSON(201, projectResponse(h.store.Snapshot(), project))
}

func (h *ProjectHandler) Update(c *drift.Context) {
	var patch models.ProjectPatch
	if err := c.BindJSON(&patch); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	id := c.Param("projectId")
	if _, err := services.EchoUpdate(c.Request.Context(), h.sim, id); err != nil {
		return
	}

	if err := h.store.UpdateProject(id, patch); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.NotFound("project not found")
			return
		}
		c.InternalServerError("failed to update project")
		return
	}

	snap := h.store.Snapshot()
	project, _ := snap.ProjectByID(id)

	if patch.Status != nil {
		recordActivity(h.store, project.ID, models.ActivityStatusChanged, "Admin",
			fmt.Sprintf("changed %s status to %s", project.Name, project.Status))
	}

	_ = c.JSON(200, projectResponse(snap, project))
}

func (h *ProjectHandler) Delete(c *drift.Context) {
	id := c.Param("projectId")
	if _, err := services.EchoDelete(c.Request.Context(), h.sim, id); err != nil {
		return
	}

	if err := h.store.DeleteProject(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.NotFound("project not found")
			return
		}
		c.InternalServerError("failed to delete project")
		return
	}

	_ = c.JSON(200, map[string]string{"message": "project deleted"})
}

package handlers

import (
	"errors"
	"strings"
	"time"

	"github.com/m1z23r/drift/pkg/drift"

	"github.com/oxiliosofficial/drafthause-admin/internal/models"
	"github.com/oxiliosofficial/drafthause-admin/internal/services"
	"github.com/oxiliosofficial/drafthause-admin/internal/store"
	"github.com/oxiliosofficial/drafthause-admin/pkg/dto"
)

type DesignerHandler struct {
	store *store.Store
	sim   *services.Simulator
}

func NewDesignerHandler(st *store.Store, sim *services.Simulator) *DesignerHandler {
	return &DesignerHandler{store: st, sim: sim}
}

func (h *DesignerHandler) List(c *drift.Context) {
	snap := h.store.Snapshot()

	status := c.QueryParam("status")
	query := strings.ToLower(c.QueryParam("q"))

	response := []dto.DesignerResponse{}
	for _, designer := range snap.Designers {
		if status != "" && designer.Status != status {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(designer.Name), query) &&
			!strings.Contains(strings.ToLower(designer.Email), query) {
			continue
		}
		response = append(response, dto.DesignerResponse{
			Designer:         designer,
			ProjectsAssigned: snap.DesignerProjectsAssigned(designer.ID),
			VersionsCreated:  snap.DesignerVersionsCreated(designer.ID),
		})
	}

	_ = c.JSON(200, response)
}

func (h *DesignerHandler) Get(c *drift.Context) {
	snap := h.store.Snapshot()

	designer, ok := snap.DesignerByID(c.Param("designerId"))
	if !ok {
		c.NotFound("designer not found")
		return
	}

	_ = c.JSON(200, dto.DesignerResponse{
		Designer:         designer,
		ProjectsAssigned: snap.DesignerProjectsAssigned(designer.ID),
		VersionsCreated:  snap.DesignerVersionsCreated(designer.ID),
	})
}

func (h *DesignerHandler) Create(c *drift.Context) {
	var req dto.CreateDesignerRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.Name == "" || req.Email == "" {
		c.BadRequest("name and email are required")
		return
	}

	skills := req.Skills
	if skills == nil {
		skills = []string{}
	}

	now := time.Now().UTC()
	designer := models.Designer{
		ID:           newID("d"),
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Status:       models.DesignerStatusActive,
		Skills:       skills,
		CreatedAt:    now,
		LastActivity: now,
		Bio:          req.Bio,
	}

	designer, err := services.EchoCreate(c.Request.Context(), h.sim, designer)
	if err != nil {
		return
	}

	h.store.AddDesigner(designer)

	_ = c.JSON(201, dto.DesignerResponse{Designer: designer})
}

func (h *DesignerHandler) Update(c *drift.Context) {
	var patch models.DesignerPatch
	if err := c.BindJSON(&patch); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	id := c.Param("designerId")
	if _, err := services.EchoUpdate(c.Request.Context(), h.sim, id); err != nil {
		return
	}

	if err := h.store.UpdateDesigner(id, patch); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.NotFound("designer not found")
			return
		}
		c.InternalServerError("failed to update designer")
		return
	}

	snap := h.store.Snapshot()
	designer, _ := snap.DesignerByID(id)
	_ = c.JSON(200, dto.DesignerResponse{
		Designer:         designer,
		ProjectsAssigned: snap.DesignerProjectsAssigned(designer.ID),
		VersionsCreated:  snap.DesignerVersionsCreated(designer.ID),
	})
}

func (h *DesignerHandler) Delete(c *drift.Context) {
	id := c.Param("designerId")
	if _, err := services.EchoDelete(c.Request.Context(), h.sim, id); err != nil {
		return
	}

	if err := h.store.DeleteDesigner(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.NotFound("designer not found")
			return
		}
		c.InternalServerError("failed to delete designer")
		return
	}

	_ = c.JSON(200, map[string]string{"message": "designer deleted"})
}

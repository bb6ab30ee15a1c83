package handlers

import (
	"context"
	"errors"

	"github.com/m1z23r/drift/pkg/drift"

	"github.com/oxiliosofficial/drafthause-admin/internal/services"
	"github.com/oxiliosofficial/drafthause-admin/internal/store"
	"github.com/oxiliosofficial/drafthause-admin/pkg/dto"
)

type AIIdeaHandler struct {
	store *store.Store
	sim   *services.Simulator
}

func NewAIIdeaHandler(st *store.Store, sim *services.Simulator) *AIIdeaHandler {
	return &AIIdeaHandler{store: st, sim: sim}
}

func (h *AIIdeaHandler) List(c *drift.Context) {
	_ = c.JSON(200, h.store.Snapshot().AIIdeaSets)
}

func (h *AIIdeaHandler) Generate(c *drift.Context) {
	var req dto.GenerateIdeasRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.Prompt == "" {
		c.BadRequest("prompt is required")
		return
	}

	set, err := h.sim.GenerateAIIdeas(c.Request.Context(), req.Prompt, req.RoomType, req.Style)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return
		}
		c.InternalServerError("failed to generate ideas")
		return
	}

	h.store.AddAIIdeaSet(set)

	_ = c.JSON(201, set)
}

func (h *AIIdeaHandler) SaveItem(c *drift.Context) {
	var req dto.SaveIdeaItemRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.Item == "" {
		c.BadRequest("item is required")
		return
	}

	if err := h.store.SaveAIIdeaItem(c.Param("setId"), req.Item); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.NotFound("idea set not found")
			return
		}
		c.InternalServerError("failed to save item")
		return
	}

	set, _ := h.store.Snapshot().AIIdeaSetByID(c.Param("setId"))
	_ = c.JSON(200, set)
}

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

type ClientHandler struct {
	store     *store.Store
	sim       *services.Simulator
	email     *services.EmailService
	portalURL string
}

func NewClientHandler(st *store.Store, sim *services.Simulator, email *services.EmailService, portalURL string) *ClientHandler {
	return &ClientHandler{store: st, sim: sim, email: email, portalURL: portalURL}
}

func (h *ClientHandler) List(c *drift.Context) {
	snap := h.store.Snapshot()

	status := c.QueryParam("status")
	query := strings.ToLower(c.QueryParam("q"))

	response := []dto.ClientResponse{}
	for _, client := range snap.Clients {
		if status != "" && client.Status != status {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(client.Name), query) &&
			!strings.Contains(strings.ToLower(client.Company), query) &&
			!strings.Contains(strings.ToLower(client.Email), query) {
			continue
		}
		response = append(response, dto.ClientResponse{
			Client:       client,
			ProjectCount: snap.ClientProjectCount(client.ID),
		})
	}

	_ = c.JSON(200, response)
}

func (h *ClientHandler) Get(c *drift.Context) {
	snap := h.store.Snapshot()

	client, ok := snap.ClientByID(c.Param("clientId"))
	if !ok {
		c.NotFound("client not found")
		return
	}

	_ = c.JSON(200, dto.ClientResponse{
		Client:       client,
		ProjectCount: snap.ClientProjectCount(client.ID),
	})
}

func (h *ClientHandler) Create(c *drift.Context) {
	var req dto.CreateClientRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.Name == "" || req.Email == "" {
		c.BadRequest("name and email are required")
		return
	}

	now := time.Now().UTC()
	client := models.Client{
		ID:           newID("c"),
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Company:      req.Company,
		Status:       models.ClientStatusActive,
		CreatedAt:    now,
		LastActivity: now,
		Notes:        req.Notes,
		Avatar:       initials(req.Name),
	}

	client, err := services.EchoCreate(c.Request.Context(), h.sim, client)
	if err != nil {
		return
	}

	h.store.AddClient(client)

	_ = c.JSON(201, dto.ClientResponse{Client: client})
}

func (h *ClientHandler) Update(c *drift.Context) {
	var patch models.ClientPatch
	if err := c.BindJSON(&patch); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	id := c.Param("clientId")
	if _, err := services.EchoUpdate(c.Request.Context(), h.sim, id); err != nil {
		return
	}

	if err := h.store.UpdateClient(id, patch); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.NotFound("client not found")
			return
		}
		c.InternalServerError("failed to update client")
		return
	}

	snap := h.store.Snapshot()
	client, _ := snap.ClientByID(id)
	_ = c.JSON(200, dto.ClientResponse{
		Client:       client,
		ProjectCount: snap.ClientProjectCount(client.ID),
	})
}

func (h *ClientHandler) Delete(c *drift.Context) {
	id := c.Param("clientId")
	if _, err := services.EchoDelete(c.Request.Context(), h.sim, id); err != nil {
		return
	}

	if err := h.store.DeleteClient(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.NotFound("client not found")
			return
		}
		c.InternalServerError("failed to delete client")
		return
	}

	_ = c.JSON(200, map[string]string{"message": "client deleted"})
}

// Invite emails the client a link to their portal.
func (h *ClientHandler) Invite(c *drift.Context) {
	snap := h.store.Snapshot()

	client, ok := snap.ClientByID(c.Param("clientId"))
	if !ok {
		c.NotFound("client not found")
		return
	}
	if !snap.Settings.PortalEnabled {
		c.Forbidden("client portal is disabled")
		return
	}

	if err := h.email.SendPortalInvite(client.Email, client.Name, snap.Settings.CompanyName, h.portalURL); err != nil {
		c.InternalServerError("failed to send portal invite")
		return
	}

	now := time.Now().UTC()
	_ = h.store.UpdateClient(client.ID, models.ClientPatch{LastActivity: &now})

	_ = c.JSON(200, map[string]string{"message": "portal invite sent"})
}

func initials(name string) string {
	parts := strings.Fields(name)
	var b strings.Builder
	for i, p := range parts {
		if i == 2 {
			break
		}
		b.WriteString(strings.ToUpper(p[:1]))
	}
	return b.String()
}

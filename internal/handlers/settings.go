package handlers

import (
	"github.com/m1z23r/drift/pkg/drift"
	"go.uber.org/zap"

	"github.com/oxiliosofficial/drafthause-admin/internal/models"
	"github.com/oxiliosofficial/drafthause-admin/internal/store"
	"github.com/oxiliosofficial/drafthause-admin/pkg/dto"
)

type SettingsHandler struct {
	store  *store.Store
	logger *zap.Logger
}

func NewSettingsHandler(st *store.Store, logger *zap.Logger) *SettingsHandler {
	return &SettingsHandler{store: st, logger: logger}
}

func (h *SettingsHandler) Get(c *drift.Context) {
	_ = c.JSON(200, h.store.Snapshot().Settings)
}

func (h *SettingsHandler) Update(c *drift.Context) {
	var patch models.SettingsPatch
	if err := c.BindJSON(&patch); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	// The merged record is live even when the write-through fails; report the
	// degraded persistence alongside the updated settings.
	persisted := true
	if err := h.store.UpdateSettings(patch); err != nil {
		h.logger.Warn("failed to persist settings", zap.Error(err))
		persisted = false
	}

	_ = c.JSON(200, map[string]any{
		"settings":  h.store.Snapshot().Settings,
		"persisted": persisted,
	})
}

type DashboardHandler struct {
	store *store.Store
}

func NewDashboardHandler(st *store.Store) *DashboardHandler {
	return &DashboardHandler{store: st}
}

func (h *DashboardHandler) Stats(c *drift.Context) {
	snap := h.store.Snapshot()

	_ = c.JSON(200, dto.DashboardStatsResponse{
		ActiveProjects:      snap.ActiveProjectCount(),
		ActiveClients:       snap.ActiveClientCount(),
		PendingApprovals:    snap.PendingApprovalCount(),
		OpenComments:        snap.OpenCommentCount(),
		UnreadNotifications: snap.UnreadNotificationCount(),
		ProjectsByStatus:    snap.ProjectCountByStatus(),
		ProjectsByType:      snap.ProjectCountByType(),
	})
}

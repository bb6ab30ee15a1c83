package handlers

import (
	"errors"
	"strconv"

	"github.com/m1z23r/drift/pkg/drift"

	"github.com/oxiliosofficial/drafthause-admin/internal/models"
	"github.com/oxiliosofficial/drafthause-admin/internal/store"
)

type NotificationHandler struct {
	store *store.Store
}

func NewNotificationHandler(st *store.Store) *NotificationHandler {
	return &NotificationHandler{store: st}
}

func (h *NotificationHandler) List(c *drift.Context) {
	snap := h.store.Snapshot()

	notifications := snap.Notifications
	if c.QueryParam("unread") == "true" {
		unread := []models.Notification{}
		for _, n := range notifications {
			if !n.Read {
				unread = append(unread, n)
			}
		}
		notifications = unread
	}

	_ = c.JSON(200, map[string]any{
		"notifications": notifications,
		"unread_count":  snap.UnreadNotificationCount(),
	})
}

func (h *NotificationHandler) MarkRead(c *drift.Context) {
	if err := h.store.MarkNotificationRead(c.Param("notificationId")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.NotFound("notification not found")
			return
		}
		c.InternalServerError("failed to mark notification read")
		return
	}

	_ = c.JSON(200, map[string]string{"message": "notification marked read"})
}

func (h *NotificationHandler) MarkAllRead(c *drift.Context) {
	h.store.MarkAllNotificationsRead()
	_ = c.JSON(200, map[string]string{"message": "all notifications marked read"})
}

type ActivityHandler struct {
	store *store.Store
}

func NewActivityHandler(st *store.Store) *ActivityHandler {
	return &ActivityHandler{store: st}
}

func (h *ActivityHandler) List(c *drift.Context) {
	snap := h.store.Snapshot()

	events := snap.ActivityEvents
	if limitParam := c.QueryParam("limit"); limitParam != "" {
		if limit, err := strconv.Atoi(limitParam); err == nil && limit >= 0 && limit < len(events) {
			events = events[:limit]
		}
	}

	_ = c.JSON(200, events)
}

func (h *ActivityHandler) ListByProject(c *drift.Context) {
	snap := h.store.Snapshot()

	projectID := c.Param("projectId")
	if _, ok := snap.ProjectByID(projectID); !ok {
		c.NotFound("project not found")
		return
	}

	_ = c.JSON(200, snap.ActivityByProject(projectID))
}

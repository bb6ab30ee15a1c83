package handlers

import (
	"time"

	"github.com/google/uuid"

	"github.com/oxiliosofficial/drafthause-admin/internal/models"
	"github.com/oxiliosofficial/drafthause-admin/internal/store"
)

func newID(prefix string) string {
	return prefix + "-" + uuid.New().String()
}

// recordActivity appends an audit entry. Failures are impossible by
// construction, activity is append-only.
func recordActivity(st *store.Store, projectID, eventType, actor, description string) {
	st.AddActivityEvent(models.ActivityEvent{
		ID:          newID("event"),
		ProjectID:   projectID,
		Type:        eventType,
		Actor:       actor,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	})
}

func notify(st *store.Store, nType, title, message, link string) models.Notification {
	n := models.Notification{
		ID:        newID("n"),
		Type:      nType,
		Title:     title,
		Message:   message,
		Read:      false,
		CreatedAt: time.Now().UTC(),
		Link:      link,
	}
	st.AddNotification(n)
	return n
}

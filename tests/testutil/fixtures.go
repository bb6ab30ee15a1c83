package testutil

import (
	"fmt"
	"time"

	"github.com/oxiliosofficial/drafthause-admin/internal/models"
	"github.com/oxiliosofficial/drafthause-admin/internal/store"
)

// Fixtures builds small, hand-rolled snapshots for handler tests. Counters
// keep generated ids unique within one test.
type Fixtures struct {
	counter int
}

func NewFixtures() *Fixtures {
	return &Fixtures{}
}

func (f *Fixtures) next() int {
	f.counter++
	return f.counter
}

type ClientOption func(*models.Client)

func WithClientStatus(status string) ClientOption {
	return func(c *models.Client) { c.Status = status }
}

func WithClientEmail(email string) ClientOption {
	return func(c *models.Client) { c.Email = email }
}

func (f *Fixtures) Client(opts ...ClientOption) models.Client {
	n := f.next()
	c := models.Client{
		ID:           fmt.Sprintf("c%d", n),
		Name:         fmt.Sprintf("Test Client %d", n),
		Email:        fmt.Sprintf("client%d@example.com", n),
		Company:      fmt.Sprintf("Company %d", n),
		Status:       models.ClientStatusActive,
		CreatedAt:    time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		LastActivity: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

func (f *Fixtures) Designer() models.Designer {
	n := f.next()
	return models.Designer{
		ID:           fmt.Sprintf("d%d", n),
		Name:         fmt.Sprintf("Test Designer %d", n),
		Email:        fmt.Sprintf("designer%d@example.com", n),
		Status:       models.DesignerStatusActive,
		Skills:       []string{"3D Modeling"},
		CreatedAt:    time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		LastActivity: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
	}
}

type ProjectOption func(*models.Project)

func WithProjectClient(clientID string) ProjectOption {
	return func(p *models.Project) { p.ClientID = clientID }
}

func WithProjectStatus(status string) ProjectOption {
	return func(p *models.Project) { p.Status = status }
}

func (f *Fixtures) Project(opts ...ProjectOption) models.Project {
	n := f.next()
	p := models.Project{
		ID:                    fmt.Sprintf("p%d", n),
		Name:                  fmt.Sprintf("Test Project %d", n),
		ClientID:              "c1",
		PrimaryDesignerID:     "d1",
		SupportingDesignerIDs: []string{},
		Type:                  models.ProjectTypeResidential,
		Status:                models.ProjectStatusInProgress,
		Rooms:                 4,
		CreatedAt:             time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt:             time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		Tags:                  []string{},
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

type VersionOption func(*models.Version)

func WithApprovalState(state string) VersionOption {
	return func(v *models.Version) { v.ApprovalState = state }
}

func (f *Fixtures) Version(projectID string, number int, opts ...VersionOption) models.Version {
	v := models.Version{
		ID:            fmt.Sprintf("v-%s-%d", projectID, number),
		ProjectID:     projectID,
		VersionNumber: number,
		CreatedBy:     "d1",
		CreatedAt:     time.Date(2026, 1, number, 0, 0, 0, 0, time.UTC),
		ApprovalState: models.ApprovalStatePending,
		Measurements:  []models.Measurement{},
		Annotations:   []models.Annotation{},
	}
	for _, opt := range opts {
		opt(&v)
	}
	return v
}

func (f *Fixtures) Approval(v models.Version) models.Approval {
	return models.Approval{
		ID:          "approval-" + v.ID,
		ProjectID:   v.ProjectID,
		VersionID:   v.ID,
		RequestedAt: v.CreatedAt,
		Status:      models.ApprovalStatusPending,
	}
}

func (f *Fixtures) Notification() models.Notification {
	n := f.next()
	return models.Notification{
		ID:        fmt.Sprintf("n%d", n),
		Type:      models.NotificationTypeSystem,
		Title:     fmt.Sprintf("Notification %d", n),
		Message:   "something happened",
		CreatedAt: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
	}
}

// NewStore builds a store over the given snapshot with no settings bridge.
func NewStore(snap store.Snapshot) *store.Store {
	if snap.Settings == (models.Settings{}) {
		snap.Settings = models.DefaultSettings()
	}
	return store.New(snap, nil)
}

package handlers

import (
	"net/http"
	"testing"

	"github.com/m1z23r/drift/pkg/drift"
	driftmw "github.com/m1z23r/drift/pkg/middleware"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/oxiliosofficial/drafthause-admin/internal/middleware"
	"github.com/oxiliosofficial/drafthause-admin/internal/models"
	"github.com/oxiliosofficial/drafthause-admin/internal/store"
	"github.com/oxiliosofficial/drafthause-admin/pkg/dto"
	"github.com/oxiliosofficial/drafthause-admin/tests/testutil"
)

func setupSettingsTest(t *testing.T, snap store.Snapshot) (*store.Store, *testutil.HTTPTestClient) {
	t.Helper()

	st := testutil.NewStore(snap)
	handler := NewSettingsHandler(st, zap.NewNop())
	dashboard := NewDashboardHandler(st)

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Use(middleware.Auth(testutil.TestJWTService()))
	app.Get("/settings", handler.Get)
	app.Patch("/settings", handler.Update)
	app.Get("/dashboard/stats", dashboard.Stats)

	return st, testutil.NewHTTPTestClient(t, app)
}

func TestSettingsHandler_Get(t *testing.T) {
	_, tc := setupSettingsTest(t, store.Snapshot{})

	rec := tc.GET("/settings", adminHeaders(t))
	testutil.AssertStatus(t, rec, http.StatusOK)

	var settings models.Settings
	testutil.ParseJSON(t, rec, &settings)
	assert.Equal(t, models.DefaultSettings(), settings)
}

func TestSettingsHandler_Update(t *testing.T) {
	st, tc := setupSettingsTest(t, store.Snapshot{})

	body := map[string]any{"theme": "dark", "email_notifications": false}
	rec := tc.PATCH("/settings", body, adminHeaders(t))
	testutil.AssertStatus(t, rec, http.StatusOK)

	var response struct {
		Settings  models.Settings `json:"settings"`
		Persisted bool            `json:"persisted"`
	}
	testutil.ParseJSON(t, rec, &response)
	assert.True(t, response.Persisted)
	assert.Equal(t, "dark", response.Settings.Theme)
	assert.False(t, response.Settings.EmailNotifications)

	// Untouched fields survive
	assert.Equal(t, "Draft Hause", response.Settings.CompanyName)
	assert.Equal(t, "dark", st.Snapshot().Settings.Theme)
}

func TestDashboardHandler_Stats(t *testing.T) {
	f := testutil.NewFixtures()
	client := f.Client()
	project := f.Project(testutil.WithProjectClient(client.ID))
	archived := f.Project(testutil.WithProjectClient(client.ID), testutil.WithProjectStatus(models.ProjectStatusArchived))
	version := f.Version(project.ID, 1)

	_, tc := setupSettingsTest(t, store.Snapshot{
		Clients:   []models.Client{client},
		Projects:  []models.Project{project, archived},
		Versions:  []models.Version{version},
		Approvals: []models.Approval{f.Approval(version)},
		Comments: []models.Comment{
			{ID: "cm1", ProjectID: project.ID, Status: models.CommentStatusOpen},
			{ID: "cm2", ProjectID: project.ID, Status: models.CommentStatusResolved},
		},
		Notifications: []models.Notification{f.Notification()},
	})

	rec := tc.GET("/dashboard/stats", adminHeaders(t))
	testutil.AssertStatus(t, rec, http.StatusOK)

	var stats dto.DashboardStatsResponse
	testutil.ParseJSON(t, rec, &stats)
	assert.Equal(t, 1, stats.ActiveProjects)
	assert.Equal(t, 1, stats.ActiveClients)
	assert.Equal(t, 1, stats.PendingApprovals)
	assert.Equal(t, 1, stats.OpenComments)
	assert.Equal(t, 1, stats.UnreadNotifications)
	assert.Equal(t, 1, stats.ProjectsByStatus[models.ProjectStatusArchived])
	assert.Equal(t, 2, stats.ProjectsByType[models.ProjectTypeResidential])
}

package handlers

import (
	"net/http"
	"testing"

	"github.com/m1z23r/drift/pkg/drift"
	driftmw "github.com/m1z23r/drift/pkg/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxiliosofficial/drafthause-admin/internal/middleware"
	"github.com/oxiliosofficial/drafthause-admin/internal/models"
	"github.com/oxiliosofficial/drafthause-admin/internal/services"
	"github.com/oxiliosofficial/drafthause-admin/internal/store"
	"github.com/oxiliosofficial/drafthause-admin/pkg/dto"
	"github.com/oxiliosofficial/drafthause-admin/tests/testutil"
)

func setupProjectTest(t *testing.T, snap store.Snapshot) (*store.Store, *testutil.HTTPTestClient) {
	t.Helper()

	st := testutil.NewStore(snap)
	handler := NewProjectHandler(st, services.NewSimulator(0, 0))

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Use(middleware.Auth(testutil.TestJWTService()))
	app.Get("/projects", handler.List)
	app.Post("/projects", handler.Create)
	app.Get("/projects/:projectId", handler.Get)
	app.Patch("/projects/:projectId", handler.Update)
	app.Delete("/projects/:projectId", handler.Delete)

	return st, testutil.NewHTTPTestClient(t, app)
}

func TestProjectHandler_List_Filters(t *testing.T) {
	f := testutil.NewFixtures()
	client := f.Client()
	designer := f.Designer()
	draft := f.Project(testutil.WithProjectClient(client.ID), testutil.WithProjectStatus(models.ProjectStatusDraft))
	inProgress := f.Project(testutil.WithProjectClient(client.ID))
	inProgress.PrimaryDesignerID = designer.ID

	_, tc := setupProjectTest(t, store.Snapshot{
		Clients:   []models.Client{client},
		Designers: []models.Designer{designer},
		Projects:  []models.Project{draft, inProgress},
	})

	rec := tc.GET("/projects?status=draft", adminHeaders(t))
	testutil.AssertStatus(t, rec, http.StatusOK)
	var response []dto.ProjectResponse
	testutil.ParseJSON(t, rec, &response)
	require.Len(t, response, 1)
	assert.Equal(t, draft.ID, response[0].ID)

	rec = tc.GET("/projects?designer_id="+designer.ID, adminHeaders(t))
	testutil.AssertStatus(t, rec, http.StatusOK)
	response = nil
	testutil.ParseJSON(t, rec, &response)
	require.Len(t, response, 1)
	assert.Equal(t, inProgress.ID, response[0].ID)
	assert.Equal(t, designer.Name, response[0].PrimaryDesignerName)
}

func TestProjectHandler_Get_ResolvesNames(t *testing.T) {
	f := testutil.NewFixtures()
	client := f.Client()
	project := f.Project(testutil.WithProjectClient(client.ID))

	_, tc := setupProjectTest(t, store.Snapshot{
		Clients:  []models.Client{client},
		Projects: []models.Project{project},
		Versions: []models.Version{f.Version(project.ID, 1), f.Version(project.ID, 2)},
	})

	rec := tc.GET("/projects/"+project.ID, adminHeaders(t))
	testutil.AssertStatus(t, rec, http.StatusOK)

	var response dto.ProjectResponse
	testutil.ParseJSON(t, rec, &response)
	assert.Equal(t, client.Name, response.ClientName)
	assert.Equal(t, store.UnknownDesigner, response.PrimaryDesignerName)
	assert.Equal(t, 2, response.VersionCount)
}

func TestProjectHandler_Create(t *testing.T) {
	f := testutil.NewFixtures()
	client := f.Client()
	designer := f.Designer()

	st, tc := setupProjectTest(t, store.Snapshot{
		Clients:   []models.Client{client},
		Designers: []models.Designer{designer},
	})

	body := dto.CreateProjectRequest{
		Name:              "Hillside Retreat",
		ClientID:          client.ID,
		PrimaryDesignerID: designer.ID,
		Type:              models.ProjectTypeResidential,
		Rooms:             5,
	}
	rec := tc.POST("/projects", body, adminHeaders(t))
	testutil.AssertStatus(t, rec, http.StatusCreated)

	var response dto.ProjectResponse
	testutil.ParseJSON(t, rec, &response)
	assert.Equal(t, models.ProjectStatusDraft, response.Status)
	assert.Equal(t, client.Name, response.ClientName)

	after := st.Snapshot()
	assert.Len(t, after.Projects, 1)
	require.NotEmpty(t, after.ActivityEvents)
	assert.Equal(t, models.ActivityProjectCreated, after.ActivityEvents[0].Type)
}

func TestProjectHandler_Create_InvalidType(t *testing.T) {
	f := testutil.NewFixtures()
	client := f.Client()

	_, tc := setupProjectTest(t, store.Snapshot{Clients: []models.Client{client}})

	body := dto.CreateProjectRequest{
		Name:              "Bad Type",
		ClientID:          client.ID,
		PrimaryDesignerID: "d1",
		Type:              "industrial",
	}
	rec := tc.POST("/projects", body, adminHeaders(t))
	testutil.AssertStatus(t, rec, http.StatusBadRequest)
}

func TestProjectHandler_Update_StatusChangeRecordsActivity(t *testing.T) {
	f := testutil.NewFixtures()
	project := f.Project()

	st, tc := setupProjectTest(t, store.Snapshot{Projects: []models.Project{project}})

	rec := tc.PATCH("/projects/"+project.ID, map[string]string{"status": models.ProjectStatusNeedsReview}, adminHeaders(t))
	testutil.AssertStatus(t, rec, http.StatusOK)

	after := st.Snapshot()
	updated, _ := after.ProjectByID(project.ID)
	assert.Equal(t, models.ProjectStatusNeedsReview, updated.Status)

	require.NotEmpty(t, after.ActivityEvents)
	assert.Equal(t, models.ActivityStatusChanged, after.ActivityEvents[0].Type)
}

func TestProjectHandler_Delete_LeavesVersionsBehind(t *testing.T) {
	f := testutil.NewFixtures()
	project := f.Project()
	version := f.Version(project.ID, 1)

	st, tc := setupProjectTest(t, store.Snapshot{
		Projects: []models.Project{project},
		Versions: []models.Version{version},
	})

	rec := tc.DELETE("/projects/"+project.ID, adminHeaders(t))
	testutil.AssertStatus(t, rec, http.StatusOK)

	after := st.Snapshot()
	assert.Empty(t, after.Projects)
	assert.Len(t, after.Versions, 1)
	assert.Equal(t, store.UnknownProject, after.ProjectName(project.ID))
}

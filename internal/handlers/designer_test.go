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

func setupDesignerTest(t *testing.T, snap store.Snapshot) (*store.Store, *testutil.HTTPTestClient) {
	t.Helper()

	st := testutil.NewStore(snap)
	handler := NewDesignerHandler(st, services.NewSimulator(0, 0))

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Use(middleware.Auth(testutil.TestJWTService()))
	app.Get("/designers", handler.List)
	app.Post("/designers", handler.Create)
	app.Get("/designers/:designerId", handler.Get)
	app.Patch("/designers/:designerId", handler.Update)
	app.Delete("/designers/:designerId", handler.Delete)

	return st, testutil.NewHTTPTestClient(t, app)
}

func designerSnapshot(f *testutil.Fixtures) store.Snapshot {
	d1 := f.Designer()
	d2 := f.Designer()
	project := f.Project()
	project.PrimaryDesignerID = d1.ID
	project.SupportingDesignerIDs = []string{d2.ID}
	version := f.Version(project.ID, 1)
	version.CreatedBy = d1.ID
	return store.Snapshot{
		Designers: []models.Designer{d1, d2},
		Projects:  []models.Project{project},
		Versions:  []models.Version{version},
	}
}

func TestDesignerHandler_List(t *testing.T) {
	f := testutil.NewFixtures()
	snap := designerSnapshot(f)
	_, tc := setupDesignerTest(t, snap)

	rec := tc.GET("/designers", adminHeaders(t))
	require.Equal(t, http.StatusOK, rec.Code)

	var designers []dto.DesignerResponse
	testutil.ParseJSON(t, rec, &designers)
	require.Len(t, designers, 2)
	assert.Equal(t, 1, designers[0].ProjectsAssigned)
	assert.Equal(t, 1, designers[0].VersionsCreated)
	// Supporting assignments count too.
	assert.Equal(t, 1, designers[1].ProjectsAssigned)
	assert.Equal(t, 0, designers[1].VersionsCreated)

	rec = tc.GET("/designers?q="+snap.Designers[0].Email, adminHeaders(t))
	require.Equal(t, http.StatusOK, rec.Code)
	testutil.ParseJSON(t, rec, &designers)
	require.Len(t, designers, 1)
	assert.Equal(t, snap.Designers[0].ID, designers[0].ID)
}

func TestDesignerHandler_CRUD(t *testing.T) {
	f := testutil.NewFixtures()
	st, tc := setupDesignerTest(t, designerSnapshot(f))

	rec := tc.POST("/designers", dto.CreateDesignerRequest{
		Name:   "Mara Lindqvist",
		Email:  "mara@drafthause.com",
		Skills: []string{"LiDAR Capture"},
	}, adminHeaders(t))
	require.Equal(t, http.StatusCreated, rec.Code)

	var created dto.DesignerResponse
	testutil.ParseJSON(t, rec, &created)
	assert.Equal(t, models.DesignerStatusActive, created.Status)
	assert.Equal(t, 0, created.ProjectsAssigned)

	bio := "Senior interior designer"
	rec = tc.PATCH("/designers/"+created.ID, models.DesignerPatch{Bio: &bio}, adminHeaders(t))
	require.Equal(t, http.StatusOK, rec.Code)
	var updated dto.DesignerResponse
	testutil.ParseJSON(t, rec, &updated)
	assert.Equal(t, bio, updated.Bio)
	assert.Equal(t, "Mara Lindqvist", updated.Name)

	rec = tc.DELETE("/designers/"+created.ID, adminHeaders(t))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, st.Snapshot().Designers, 2)

	rec = tc.GET("/designers/"+created.ID, adminHeaders(t))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDesignerHandler_Create_Invalid(t *testing.T) {
	f := testutil.NewFixtures()
	_, tc := setupDesignerTest(t, designerSnapshot(f))

	rec := tc.POST("/designers", dto.CreateDesignerRequest{Name: "No Email"}, adminHeaders(t))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = tc.POST("/designers", dto.CreateDesignerRequest{Email: "no-name@example.com"}, adminHeaders(t))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

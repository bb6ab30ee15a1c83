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

func setupCommentTest(t *testing.T, snap store.Snapshot) (*store.Store, *testutil.HTTPTestClient) {
	t.Helper()

	st := testutil.NewStore(snap)
	handler := NewCommentHandler(st, services.NewSimulator(0, 0))

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Use(middleware.Auth(testutil.TestJWTService()))
	app.Get("/projects/:projectId/comments", handler.ListByProject)
	app.Post("/projects/:projectId/comments", handler.Create)
	app.Patch("/comments/:commentId", handler.Update)
	app.Delete("/comments/:commentId", handler.Delete)

	return st, testutil.NewHTTPTestClient(t, app)
}

func commentSnapshot(f *testutil.Fixtures) store.Snapshot {
	project := f.Project()
	v1 := f.Version(project.ID, 1)
	v2 := f.Version(project.ID, 2)
	return store.Snapshot{
		Projects: []models.Project{project},
		Versions: []models.Version{v1, v2},
		Comments: []models.Comment{
			{ID: "cm1", ProjectID: project.ID, VersionID: v1.ID, AuthorID: "admin", AuthorType: models.AuthorTypeAdmin, AuthorName: "Admin", Content: "first pass", Status: models.CommentStatusOpen},
			{ID: "cm2", ProjectID: project.ID, VersionID: v2.ID, AuthorID: "c1", AuthorType: models.AuthorTypeClient, AuthorName: "Test Client 1", Content: "looks good", Status: models.CommentStatusResolved},
		},
	}
}

func TestCommentHandler_ListByProject(t *testing.T) {
	f := testutil.NewFixtures()
	snap := commentSnapshot(f)
	_, tc := setupCommentTest(t, snap)
	project := snap.Projects[0]

	rec := tc.GET("/projects/"+project.ID+"/comments", adminHeaders(t))
	require.Equal(t, http.StatusOK, rec.Code)

	var comments []dto.CommentResponse
	testutil.ParseJSON(t, rec, &comments)
	require.Len(t, comments, 2)
	assert.Equal(t, project.Name, comments[0].ProjectName)

	rec = tc.GET("/projects/"+project.ID+"/comments?status=open", adminHeaders(t))
	require.Equal(t, http.StatusOK, rec.Code)
	testutil.ParseJSON(t, rec, &comments)
	require.Len(t, comments, 1)
	assert.Equal(t, "cm1", comments[0].ID)

	rec = tc.GET("/projects/"+project.ID+"/comments?version_id="+snap.Versions[1].ID, adminHeaders(t))
	require.Equal(t, http.StatusOK, rec.Code)
	testutil.ParseJSON(t, rec, &comments)
	require.Len(t, comments, 1)
	assert.Equal(t, "cm2", comments[0].ID)

	rec = tc.GET("/projects/missing/comments", adminHeaders(t))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCommentHandler_Create(t *testing.T) {
	f := testutil.NewFixtures()
	snap := commentSnapshot(f)
	st, tc := setupCommentTest(t, snap)
	project := snap.Projects[0]

	rec := tc.POST("/projects/"+project.ID+"/comments", dto.CreateCommentRequest{
		VersionID: snap.Versions[0].ID,
		Content:   "check the north wall measurements",
	}, adminHeaders(t))
	require.Equal(t, http.StatusCreated, rec.Code)

	var created dto.CommentResponse
	testutil.ParseJSON(t, rec, &created)
	assert.Equal(t, models.AuthorTypeAdmin, created.AuthorType)
	assert.Equal(t, models.CommentStatusOpen, created.Status)
	assert.Equal(t, project.Name, created.ProjectName)

	events := st.Snapshot().ActivityEvents
	require.NotEmpty(t, events)
	assert.Equal(t, models.ActivityCommentAdded, events[0].Type)
}

func TestCommentHandler_Create_Invalid(t *testing.T) {
	f := testutil.NewFixtures()
	snap := commentSnapshot(f)
	_, tc := setupCommentTest(t, snap)
	project := snap.Projects[0]

	rec := tc.POST("/projects/"+project.ID+"/comments", dto.CreateCommentRequest{
		VersionID: snap.Versions[0].ID,
	}, adminHeaders(t))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = tc.POST("/projects/"+project.ID+"/comments", dto.CreateCommentRequest{
		VersionID: "v-other-1",
		Content:   "orphan",
	}, adminHeaders(t))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCommentHandler_Update_Resolve(t *testing.T) {
	f := testutil.NewFixtures()
	st, tc := setupCommentTest(t, commentSnapshot(f))

	resolved := models.CommentStatusResolved
	rec := tc.PATCH("/comments/cm1", models.CommentPatch{Status: &resolved}, adminHeaders(t))
	require.Equal(t, http.StatusOK, rec.Code)

	var updated dto.CommentResponse
	testutil.ParseJSON(t, rec, &updated)
	assert.Equal(t, models.CommentStatusResolved, updated.Status)
	require.NotNil(t, updated.ResolvedAt)

	// Reopening clears the resolution timestamp.
	open := models.CommentStatusOpen
	rec = tc.PATCH("/comments/cm1", models.CommentPatch{Status: &open}, adminHeaders(t))
	require.Equal(t, http.StatusOK, rec.Code)
	comment, ok := st.Snapshot().CommentByID("cm1")
	require.True(t, ok)
	assert.Nil(t, comment.ResolvedAt)
}

func TestCommentHandler_Delete(t *testing.T) {
	f := testutil.NewFixtures()
	st, tc := setupCommentTest(t, commentSnapshot(f))

	rec := tc.DELETE("/comments/cm2", adminHeaders(t))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, st.Snapshot().Comments, 1)

	rec = tc.DELETE("/comments/cm2", adminHeaders(t))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

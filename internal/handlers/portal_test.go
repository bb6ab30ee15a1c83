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

func setupPortalTest(t *testing.T, snap store.Snapshot) (*store.Store, *testutil.HTTPTestClient) {
	t.Helper()

	st := testutil.NewStore(snap)
	jwtSvc := testutil.TestJWTService()
	authSvc := services.NewAuthService(st, jwtSvc, "admin@drafthause.com", "hunter2")
	handler := NewPortalHandler(st, services.NewSimulator(0, 0), authSvc)

	app := drift.New()
	app.Use(driftmw.BodyParser())

	public := app.Group("/portal")
	public.Post("/login", handler.Login)

	portal := app.Group("/portal")
	portal.Use(middleware.Auth(jwtSvc))
	portal.Use(middleware.RequireRole(services.RoleClient))
	portal.Get("/me", handler.Me)
	portal.Get("/projects", handler.ListProjects)
	portal.Get("/projects/:projectId", handler.GetProject)
	portal.Get("/projects/:projectId/versions", handler.ListVersions)
	portal.Get("/projects/:projectId/comments", handler.ListComments)
	portal.Post("/projects/:projectId/comments", handler.CreateComment)
	portal.Post("/projects/:projectId/versions/:versionId/decision", handler.DecideVersion)

	return st, testutil.NewHTTPTestClient(t, app)
}

func clientHeaders(t *testing.T, client models.Client) map[string]string {
	t.Helper()
	return map[string]string{
		"Authorization": testutil.AuthHeader(testutil.ClientToken(t, client.ID, client.Email)),
	}
}

func portalSnapshot(f *testutil.Fixtures) store.Snapshot {
	owner := f.Client()
	other := f.Client()
	owned := f.Project(testutil.WithProjectClient(owner.ID))
	foreign := f.Project(testutil.WithProjectClient(other.ID))
	version := f.Version(owned.ID, 1)
	return store.Snapshot{
		Clients:   []models.Client{owner, other},
		Projects:  []models.Project{owned, foreign},
		Versions:  []models.Version{version},
		Approvals: []models.Approval{f.Approval(version)},
	}
}

func TestPortalHandler_Login(t *testing.T) {
	f := testutil.NewFixtures()
	snap := portalSnapshot(f)
	owner := snap.Clients[0]

	st, tc := setupPortalTest(t, snap)

	rec := tc.POST("/portal/login", dto.PortalLoginRequest{Email: owner.Email}, nil)
	testutil.AssertStatus(t, rec, http.StatusOK)

	var response dto.PortalLoginResponse
	testutil.ParseJSON(t, rec, &response)
	assert.Equal(t, owner.ID, response.Client.ID)
	assert.NotEmpty(t, response.Tokens.AccessToken)

	// Sign-in lands on the activity feed
	events := st.Snapshot().ActivityEvents
	require.NotEmpty(t, events)
	assert.Equal(t, models.ActivityClientPortalView, events[0].Type)
}

func TestPortalHandler_Login_UnknownEmail(t *testing.T) {
	f := testutil.NewFixtures()
	_, tc := setupPortalTest(t, portalSnapshot(f))

	rec := tc.POST("/portal/login", dto.PortalLoginRequest{Email: "nobody@example.com"}, nil)
	testutil.AssertStatus(t, rec, http.StatusUnauthorized)
}

func TestPortalHandler_Login_InactiveClient(t *testing.T) {
	f := testutil.NewFixtures()
	inactive := f.Client(testutil.WithClientStatus(models.ClientStatusInactive))

	_, tc := setupPortalTest(t, store.Snapshot{Clients: []models.Client{inactive}})

	rec := tc.POST("/portal/login", dto.PortalLoginRequest{Email: inactive.Email}, nil)
	testutil.AssertStatus(t, rec, http.StatusForbidden)
}

func TestPortalHandler_Login_PortalDisabled(t *testing.T) {
	f := testutil.NewFixtures()
	snap := portalSnapshot(f)
	settings := models.DefaultSettings()
	settings.PortalEnabled = false
	snap.Settings = settings

	_, tc := setupPortalTest(t, snap)

	rec := tc.POST("/portal/login", dto.PortalLoginRequest{Email: snap.Clients[0].Email}, nil)
	testutil.AssertStatus(t, rec, http.StatusForbidden)
}

func TestPortalHandler_Me(t *testing.T) {
	f := testutil.NewFixtures()
	snap := portalSnapshot(f)
	owner := snap.Clients[0]

	_, tc := setupPortalTest(t, snap)

	rec := tc.GET("/portal/me", clientHeaders(t, owner))
	testutil.AssertStatus(t, rec, http.StatusOK)

	var response dto.ClientResponse
	testutil.ParseJSON(t, rec, &response)
	assert.Equal(t, owner.ID, response.ID)
	assert.Equal(t, 1, response.ProjectCount)
}

func TestPortalHandler_ListProjects_OwnOnly(t *testing.T) {
	f := testutil.NewFixtures()
	snap := portalSnapshot(f)
	owner := snap.Clients[0]
	owned := snap.Projects[0]

	_, tc := setupPortalTest(t, snap)

	rec := tc.GET("/portal/projects", clientHeaders(t, owner))
	testutil.AssertStatus(t, rec, http.StatusOK)

	var response []dto.ProjectResponse
	testutil.ParseJSON(t, rec, &response)
	require.Len(t, response, 1)
	assert.Equal(t, owned.ID, response[0].ID)
}

func TestPortalHandler_GetProject_ForeignIs404(t *testing.T) {
	f := testutil.NewFixtures()
	snap := portalSnapshot(f)
	owner := snap.Clients[0]
	foreign := snap.Projects[1]

	_, tc := setupPortalTest(t, snap)

	rec := tc.GET("/portal/projects/"+foreign.ID, clientHeaders(t, owner))
	testutil.AssertStatus(t, rec, http.StatusNotFound)
}

func TestPortalHandler_AdminTokenRejected(t *testing.T) {
	f := testutil.NewFixtures()
	_, tc := setupPortalTest(t, portalSnapshot(f))

	rec := tc.GET("/portal/projects", adminHeaders(t))
	testutil.AssertStatus(t, rec, http.StatusForbidden)
}

func TestPortalHandler_PortalDisabledBlocksAuthedRoutes(t *testing.T) {
	f := testutil.NewFixtures()
	snap := portalSnapshot(f)
	settings := models.DefaultSettings()
	settings.PortalEnabled = false
	snap.Settings = settings
	owner := snap.Clients[0]

	_, tc := setupPortalTest(t, snap)

	rec := tc.GET("/portal/projects", clientHeaders(t, owner))
	testutil.AssertStatus(t, rec, http.StatusForbidden)
}

func TestPortalHandler_CreateComment(t *testing.T) {
	f := testutil.NewFixtures()
	snap := portalSnapshot(f)
	owner := snap.Clients[0]
	owned := snap.Projects[0]

	st, tc := setupPortalTest(t, snap)

	body := dto.CreateCommentRequest{Content: "Love the new layout"}
	rec := tc.POST("/portal/projects/"+owned.ID+"/comments", body, clientHeaders(t, owner))
	testutil.AssertStatus(t, rec, http.StatusCreated)

	var response dto.CommentResponse
	testutil.ParseJSON(t, rec, &response)
	assert.Equal(t, owner.ID, response.AuthorID)
	assert.Equal(t, models.AuthorTypeClient, response.AuthorType)
	assert.Equal(t, models.CommentStatusOpen, response.Status)

	after := st.Snapshot()
	assert.Len(t, after.CommentsByProject(owned.ID), 1)
	require.NotEmpty(t, after.Notifications)
	assert.Equal(t, "New Comment", after.Notifications[0].Title)
}

func TestPortalHandler_CreateComment_CommentingDisabled(t *testing.T) {
	f := testutil.NewFixtures()
	snap := portalSnapshot(f)
	settings := models.DefaultSettings()
	settings.ClientCommenting = false
	snap.Settings = settings
	owner := snap.Clients[0]
	owned := snap.Projects[0]

	_, tc := setupPortalTest(t, snap)

	body := dto.CreateCommentRequest{Content: "should be blocked"}
	rec := tc.POST("/portal/projects/"+owned.ID+"/comments", body, clientHeaders(t, owner))
	testutil.AssertStatus(t, rec, http.StatusForbidden)
}

func TestPortalHandler_CreateComment_ForeignVersion(t *testing.T) {
	f := testutil.NewFixtures()
	snap := portalSnapshot(f)
	foreignVersion := f.Version(snap.Projects[1].ID, 1)
	snap.Versions = append(snap.Versions, foreignVersion)
	owner := snap.Clients[0]
	owned := snap.Projects[0]

	_, tc := setupPortalTest(t, snap)

	body := dto.CreateCommentRequest{Content: "cross-project", VersionID: foreignVersion.ID}
	rec := tc.POST("/portal/projects/"+owned.ID+"/comments", body, clientHeaders(t, owner))
	testutil.AssertStatus(t, rec, http.StatusBadRequest)
}

func TestPortalHandler_DecideVersion_Approve(t *testing.T) {
	f := testutil.NewFixtures()
	snap := portalSnapshot(f)
	owner := snap.Clients[0]
	owned := snap.Projects[0]
	version := snap.Versions[0]

	st, tc := setupPortalTest(t, snap)

	body := dto.DecideApprovalRequest{Status: models.ApprovalStatusApproved}
	rec := tc.POST("/portal/projects/"+owned.ID+"/versions/"+version.ID+"/decision", body, clientHeaders(t, owner))
	testutil.AssertStatus(t, rec, http.StatusOK)

	var response dto.ApprovalResponse
	testutil.ParseJSON(t, rec, &response)
	assert.Equal(t, models.ApprovalStatusApproved, response.Status)
	assert.Equal(t, owner.Name, response.DecidedBy)

	after := st.Snapshot()
	v, _ := after.VersionByID(version.ID)
	assert.Equal(t, models.ApprovalStateApproved, v.ApprovalState)
	assert.Equal(t, owner.Name, v.ApprovedBy)
}

func TestPortalHandler_DecideVersion_Reject(t *testing.T) {
	f := testutil.NewFixtures()
	snap := portalSnapshot(f)
	owner := snap.Clients[0]
	owned := snap.Projects[0]
	version := snap.Versions[0]

	st, tc := setupPortalTest(t, snap)

	body := dto.DecideApprovalRequest{Status: models.ApprovalStatusRejected, Notes: "narrower hallway please"}
	rec := tc.POST("/portal/projects/"+owned.ID+"/versions/"+version.ID+"/decision", body, clientHeaders(t, owner))
	testutil.AssertStatus(t, rec, http.StatusOK)

	after := st.Snapshot()
	v, _ := after.VersionByID(version.ID)
	assert.Equal(t, models.ApprovalStateChangesRequested, v.ApprovalState)

	require.NotEmpty(t, after.Notifications)
	assert.Equal(t, "Changes Requested", after.Notifications[0].Title)
}

func TestPortalHandler_DecideVersion_NoPendingApproval(t *testing.T) {
	f := testutil.NewFixtures()
	snap := portalSnapshot(f)
	snap.Approvals = nil
	owner := snap.Clients[0]
	owned := snap.Projects[0]
	version := snap.Versions[0]

	_, tc := setupPortalTest(t, snap)

	body := dto.DecideApprovalRequest{Status: models.ApprovalStatusApproved}
	rec := tc.POST("/portal/projects/"+owned.ID+"/versions/"+version.ID+"/decision", body, clientHeaders(t, owner))
	testutil.AssertStatus(t, rec, http.StatusBadRequest)
}

package handlers

import (
	"errors"
	"fmt"
	"time"

	"github.com/m1z23r/drift/pkg/drift"

	"github.com/oxiliosofficial/drafthause-admin/internal/middleware"
	"github.com/oxiliosofficial/drafthause-admin/internal/models"
	"github.com/oxiliosofficial/drafthause-admin/internal/services"
	"github.com/oxiliosofficial/drafthause-admin/internal/store"
	"github.com/oxiliosofficial/drafthause-admin/pkg/dto"
)

// PortalHandler is the client-facing surface. Every route is scoped to the
// authenticated client's own projects.
type PortalHandler struct {
	store       *store.Store
	sim         *services.Simulator
	authService *services.AuthService
}

func NewPortalHandler(st *store.Store, sim *services.Simulator, authService *services.AuthService) *PortalHandler {
	return &PortalHandler{store: st, sim: sim, authService: authService}
}

func (h *PortalHandler) Login(c *drift.Context) {
	if !h.store.Snapshot().Settings.PortalEnabled {
		c.Forbidden("client portal is disabled")
		return
	}

	var req dto.PortalLoginRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.Email == "" {
		c.BadRequest("email is required")
		return
	}

	client, pair, err := h.authService.LoginClient(req.Email)
	if err != nil {
		if errors.Is(err, services.ErrClientInactive) {
			c.Forbidden("client account is inactive")
			return
		}
		c.Unauthorized("invalid credentials")
		return
	}

	recordActivity(h.store, "", models.ActivityClientPortalView, client.Name, "signed in to the client portal")

	_ = c.JSON(200, dto.PortalLoginResponse{
		Client: *client,
		Tokens: dto.TokenResponse{
			AccessToken:  pair.AccessToken,
			RefreshToken: pair.RefreshToken,
			ExpiresIn:    pair.ExpiresIn,
		},
	})
}

// portalClient resolves the authenticated client, enforcing the portal
// toggle on every request.
func (h *PortalHandler) portalClient(c *drift.Context) (store.Snapshot, models.Client, bool) {
	snap := h.store.Snapshot()

	if !snap.Settings.PortalEnabled {
		c.Forbidden("client portal is disabled")
		return snap, models.Client{}, false
	}

	client, ok := snap.ClientByID(middleware.GetSubjectID(c))
	if !ok {
		c.Unauthorized("not authenticated")
		return snap, models.Client{}, false
	}
	return snap, client, true
}

func (h *PortalHandler) Me(c *drift.Context) {
	snap, client, ok := h.portalClient(c)
	if !ok {
		return
	}

	_ = c.JSON(200, dto.ClientResponse{
		Client:       client,
		ProjectCount: snap.ClientProjectCount(client.ID),
	})
}

func (h *PortalHandler) ListProjects(c *drift.Context) {
	snap, client, ok := h.portalClient(c)
	if !ok {
		return
	}

	projects := snap.ProjectsByClient(client.ID)
	response := make([]dto.ProjectResponse, len(projects))
	for i, p := range projects {
		response[i] = projectResponse(snap, p)
	}

	_ = c.JSON(200, response)
}

// ownedProject fetches a project and confirms it belongs to the caller.
// Foreign projects 404 rather than 403 so ids are not probeable.
func (h *PortalHandler) ownedProject(c *drift.Context, snap store.Snapshot, client models.Client) (models.Project, bool) {
	project, ok := snap.ProjectByID(c.Param("projectId"))
	if !ok || project.ClientID != client.ID {
		c.NotFound("project not found")
		return models.Project{}, false
	}
	return project, true
}

func (h *PortalHandler) GetProject(c *drift.Context) {
	snap, client, ok := h.portalClient(c)
	if !ok {
		return
	}

	project, ok := h.ownedProject(c, snap, client)
	if !ok {
		return
	}

	recordActivity(h.store, project.ID, models.ActivityClientPortalView, client.Name,
		fmt.Sprintf("viewed %s in client portal", project.Name))

	_ = c.JSON(200, projectResponse(snap, project))
}

func (h *PortalHandler) ListVersions(c *drift.Context) {
	snap, client, ok := h.portalClient(c)
	if !ok {
		return
	}

	project, ok := h.ownedProject(c, snap, client)
	if !ok {
		return
	}

	versions := snap.VersionsByProject(project.ID)
	store.SortVersionsDesc(versions)

	response := make([]dto.VersionResponse, len(versions))
	for i, v := range versions {
		response[i] = dto.VersionResponse{Version: v, ProjectName: project.Name}
	}

	_ = c.JSON(200, response)
}

func (h *PortalHandler) ListComments(c *drift.Context) {
	snap, client, ok := h.portalClient(c)
	if !ok {
		return
	}

	project, ok := h.ownedProject(c, snap, client)
	if !ok {
		return
	}

	comments := snap.CommentsByProject(project.ID)
	response := make([]dto.CommentResponse, len(comments))
	for i, cm := range comments {
		response[i] = dto.CommentResponse{Comment: cm, ProjectName: project.Name}
	}

	_ = c.JSON(200, response)
}

func (h *PortalHandler) CreateComment(c *drift.Context) {
	snap, client, ok := h.portalClient(c)
	if !ok {
		return
	}

	if !snap.Settings.ClientCommenting {
		c.Forbidden("client commenting is disabled")
		return
	}

	project, ok := h.ownedProject(c, snap, client)
	if !ok {
		return
	}

	var req dto.CreateCommentRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.Content == "" {
		c.BadRequest("content is required")
		return
	}
	if req.VersionID != "" {
		version, ok := snap.VersionByID(req.VersionID)
		if !ok || version.ProjectID != project.ID {
			c.BadRequest("version does not belong to this project")
			return
		}
	}

	comment := models.Comment{
		ID:         newID("comment"),
		ProjectID:  project.ID,
		VersionID:  req.VersionID,
		AuthorID:   client.ID,
		AuthorType: models.AuthorTypeClient,
		AuthorName: client.Name,
		Content:    req.Content,
		Status:     models.CommentStatusOpen,
		Coordinate: req.Coordinate,
		ParentID:   req.ParentID,
		CreatedAt:  time.Now().UTC(),
	}

	comment, err := services.EchoCreate(c.Request.Context(), h.sim, comment)
	if err != nil {
		return
	}

	h.store.AddComment(comment)
	recordActivity(h.store, project.ID, models.ActivityCommentAdded, client.Name,
		fmt.Sprintf("commented on %s", project.Name))
	notify(h.store, models.NotificationTypeComment, "New Comment",
		fmt.Sprintf("%s commented on %s.", client.Name, project.Name),
		"/projects/"+project.ID)

	_ = c.JSON(201, dto.CommentResponse{Comment: comment, ProjectName: project.Name})
}

// DecideVersion lets the client settle a pending approval on one of their
// own versions.
func (h *PortalHandler) DecideVersion(c *drift.Context) {
	snap, client, ok := h.portalClient(c)
	if !ok {
		return
	}

	project, ok := h.ownedProject(c, snap, client)
	if !ok {
		return
	}

	version, ok := snap.VersionByID(c.Param("versionId"))
	if !ok || version.ProjectID != project.ID {
		c.NotFound("version not found")
		return
	}

	var req dto.DecideApprovalRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}
	if req.Status != models.ApprovalStatusApproved && req.Status != models.ApprovalStatusRejected {
		c.BadRequest("status must be approved or rejected")
		return
	}

	var pending *models.Approval
	for _, a := range snap.ApprovalsForVersion(version.ID) {
		if a.Status == models.ApprovalStatusPending {
			pending = &a
			break
		}
	}
	if pending == nil {
		c.BadRequest("version has no pending approval")
		return
	}

	if _, err := services.EchoUpdate(c.Request.Context(), h.sim, pending.ID); err != nil {
		return
	}

	now := time.Now().UTC()
	patch := models.ApprovalPatch{
		Status:    &req.Status,
		DecidedBy: &client.Name,
		DecidedAt: &now,
	}
	if req.Notes != "" {
		patch.Notes = &req.Notes
	}
	if err := h.store.UpdateApproval(pending.ID, patch); err != nil {
		c.InternalServerError("failed to update approval")
		return
	}

	versionState := models.ApprovalStateApproved
	if req.Status == models.ApprovalStatusRejected {
		versionState = models.ApprovalStateChangesRequested
	}
	versionPatch := models.VersionPatch{ApprovalState: &versionState}
	if req.Status == models.ApprovalStatusApproved {
		versionPatch.ApprovedBy = &client.Name
		versionPatch.ApprovedAt = &now
	}
	_ = h.store.UpdateVersion(version.ID, versionPatch)

	if req.Status == models.ApprovalStatusApproved {
		recordActivity(h.store, project.ID, models.ActivityApprovalChanged, client.Name,
			fmt.Sprintf("approved version %d of %s", version.VersionNumber, project.Name))
		notify(h.store, models.NotificationTypeApproval, "Version Approved",
			fmt.Sprintf("%s approved %s v%d.", client.Name, project.Name, version.VersionNumber),
			"/projects/"+project.ID)
	} else {
		recordActivity(h.store, project.ID, models.ActivityApprovalChanged, client.Name,
			fmt.Sprintf("requested changes on %s v%d", project.Name, version.VersionNumber))
		notify(h.store, models.NotificationTypeApproval, "Changes Requested",
			fmt.Sprintf("%s requested changes on %s v%d.", client.Name, project.Name, version.VersionNumber),
			"/projects/"+project.ID)
	}

	decided, _ := h.store.Snapshot().ApprovalByID(pending.ID)
	_ = c.JSON(200, approvalResponse(h.store.Snapshot(), decided))
}

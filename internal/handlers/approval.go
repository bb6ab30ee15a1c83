package handlers

import (
	"fmt"
	"time"

	"github.com/m1z23r/drift/pkg/drift"
	"go.uber.org/zap"

	"github.com/oxiliosofficial/drafthause-admin/internal/models"
	"github.com/oxiliosofficial/drafthause-admin/internal/services"
	"github.com/oxiliosofficial/drafthause-admin/internal/store"
	"github.com/oxiliosofficial/drafthause-admin/pkg/dto"
)

type ApprovalHandler struct {
	store      *store.Store
	sim        *services.Simulator
	email      *services.EmailService
	adminEmail string
	logger     *zap.Logger
}

func NewApprovalHandler(st *store.Store, sim *services.Simulator, email *services.EmailService, adminEmail string, logger *zap.Logger) *ApprovalHandler {
	return &ApprovalHandler{
		store:      st,
		sim:        sim,
		email:      email,
		adminEmail: adminEmail,
		logger:     logger,
	}
}

func approvalResponse(snap store.Snapshot, a models.Approval) dto.ApprovalResponse {
	versionNumber := 0
	if v, ok := snap.VersionByID(a.VersionID); ok {
		versionNumber = v.VersionNumber
	}
	return dto.ApprovalResponse{
		Approval:      a,
		ProjectName:   snap.ProjectName(a.ProjectID),
		VersionNumber: versionNumber,
	}
}

func (h *ApprovalHandler) List(c *drift.Context) {
	snap := h.store.Snapshot()

	approvals := snap.Approvals
	if status := c.QueryParam("status"); status != "" {
		approvals = snap.ApprovalsByStatus(status)
	}

	response := make([]dto.ApprovalResponse, len(approvals))
	for i, a := range approvals {
		response[i] = approvalResponse(snap, a)
	}

	_ = c.JSON(200, response)
}

func (h *ApprovalHandler) Get(c *drift.Context) {
	snap := h.store.Snapshot()

	approval, ok := snap.ApprovalByID(c.Param("approvalId"))
	if !ok {
		c.NotFound("approval not found")
		return
	}

	_ = c.JSON(200, approvalResponse(snap, approval))
}

// Request opens a sign-off for a version. One pending approval per version.
func (h *ApprovalHandler) Request(c *drift.Context) {
	snap := h.store.Snapshot()

	var req dto.RequestApprovalRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	version, ok := snap.VersionByID(req.VersionID)
	if !ok {
		c.NotFound("version not found")
		return
	}

	for _, existing := range snap.ApprovalsForVersion(version.ID) {
		if existing.Status == models.ApprovalStatusPending {
			c.BadRequest("version already has a pending approval")
			return
		}
	}

	approval := models.Approval{
		ID:          newID("approval"),
		ProjectID:   version.ProjectID,
		VersionID:   version.ID,
		RequestedAt: time.Now().UTC(),
		Status:      models.ApprovalStatusPending,
		Notes:       req.Notes,
	}

	approval, err := services.EchoCreate(c.Request.Context(), h.sim, approval)
	if err != nil {
		return
	}

	h.store.AddApproval(approval)

	pendingState := models.ApprovalStatePending
	_ = h.store.UpdateVersion(version.ID, models.VersionPatch{ApprovalState: &pendingState})

	projectName := snap.ProjectName(version.ProjectID)
	notify(h.store, models.NotificationTypeApproval, "Approval Requested",
		fmt.Sprintf("Version %d of %s is awaiting approval.", version.VersionNumber, projectName),
		"/projects/"+version.ProjectID)

	_ = c.JSON(201, approvalResponse(h.store.Snapshot(), approval))
}

// Decide settles a pending approval and mirrors the outcome onto the version.
func (h *ApprovalHandler) Decide(c *drift.Context) {
	snap := h.store.Snapshot()

	approval, ok := snap.ApprovalByID(c.Param("approvalId"))
	if !ok {
		c.NotFound("approval not found")
		return
	}
	if approval.Status != models.ApprovalStatusPending {
		c.BadRequest("approval has already been decided")
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

	if _, err := services.EchoUpdate(c.Request.Context(), h.sim, approval.ID); err != nil {
		return
	}

	now := time.Now().UTC()
	decidedBy := "Admin"
	patch := models.ApprovalPatch{
		Status:    &req.Status,
		DecidedBy: &decidedBy,
		DecidedAt: &now,
	}
	if req.Notes != "" {
		patch.Notes = &req.Notes
	}
	if err := h.store.UpdateApproval(approval.ID, patch); err != nil {
		c.InternalServerError("failed to update approval")
		return
	}

	versionState := models.ApprovalStateApproved
	if req.Status == models.ApprovalStatusRejected {
		versionState = models.ApprovalStateChangesRequested
	}
	versionPatch := models.VersionPatch{ApprovalState: &versionState}
	if req.Status == models.ApprovalStatusApproved {
		versionPatch.ApprovedBy = &decidedBy
		versionPatch.ApprovedAt = &now
	}
	_ = h.store.UpdateVersion(approval.VersionID, versionPatch)

	projectName := snap.ProjectName(approval.ProjectID)
	versionNumber := 0
	if v, ok := snap.VersionByID(approval.VersionID); ok {
		versionNumber = v.VersionNumber
	}

	var title, message string
	if req.Status == models.ApprovalStatusApproved {
		title = "Version Approved"
		message = fmt.Sprintf("%s v%d has been approved.", projectName, versionNumber)
		recordActivity(h.store, approval.ProjectID, models.ActivityApprovalChanged, "Admin",
			fmt.Sprintf("approved version %d of %s", versionNumber, projectName))
	} else {
		title = "Changes Requested"
		message = fmt.Sprintf("Changes were requested on %s v%d.", projectName, versionNumber)
		recordActivity(h.store, approval.ProjectID, models.ActivityApprovalChanged, "Admin",
			fmt.Sprintf("requested changes on %s v%d", projectName, versionNumber))
	}

	n := notify(h.store, models.NotificationTypeApproval, title, message, "/projects/"+approval.ProjectID)

	if err := h.email.SendNotification(h.adminEmail, h.store.Snapshot().Settings, n); err != nil {
		h.logger.Warn("failed to send approval email", zap.Error(err))
	}

	decided, _ := h.store.Snapshot().ApprovalByID(approval.ID)
	_ = c.JSON(200, approvalResponse(h.store.Snapshot(), decided))
}

package handlers

import (
	"context"
	"errors"
	"fmt"

	"github.com/m1z23r/drift/pkg/drift"

	"github.com/oxiliosofficial/drafthause-admin/internal/models"
	"github.com/oxiliosofficial/drafthause-admin/internal/services"
	"github.com/oxiliosofficial/drafthause-admin/internal/store"
	"github.com/oxiliosofficial/drafthause-admin/pkg/dto"
)

var exportFormats = map[string]bool{
	models.ExportFormatPDF: true,
	models.ExportFormatJPG: true,
	models.ExportFormatDXF: true,
	models.ExportFormatOBJ: true,
	models.ExportFormatSTL: true,
}

type ExportHandler struct {
	store *store.Store
	sim   *services.Simulator
}

func NewExportHandler(st *store.Store, sim *services.Simulator) *ExportHandler {
	return &ExportHandler{store: st, sim: sim}
}

func (h *ExportHandler) ListByProject(c *drift.Context) {
	snap := h.store.Snapshot()

	projectID := c.Param("projectId")
	if _, ok := snap.ProjectByID(projectID); !ok {
		c.NotFound("project not found")
		return
	}

	_ = c.JSON(200, snap.ExportsByProject(projectID))
}

func (h *ExportHandler) Generate(c *drift.Context) {
	snap := h.store.Snapshot()

	projectID := c.Param("projectId")
	project, ok := snap.ProjectByID(projectID)
	if !ok {
		c.NotFound("project not found")
		return
	}

	var req dto.GenerateExportRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.Format == "" {
		req.Format = snap.Settings.DefaultExportFormat
	}
	if !exportFormats[req.Format] {
		c.BadRequest("unsupported export format")
		return
	}

	version, ok := snap.VersionByID(req.VersionID)
	if !ok || version.ProjectID != projectID {
		c.BadRequest("version does not belong to this project")
		return
	}

	export, err := h.sim.GenerateExport(c.Request.Context(), project, version, req.Format, "Admin")
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return
		}
		c.InternalServerError("failed to generate export")
		return
	}

	h.store.AddExportFile(export)
	recordActivity(h.store, projectID, models.ActivityExportGenerated, "Admin",
		fmt.Sprintf("generated %s export for %s", req.Format, project.Name))
	notify(h.store, models.NotificationTypeExport, "Export Ready",
		fmt.Sprintf("%s export for %s v%d is ready for download.", req.Format, project.Name, version.VersionNumber),
		"/projects/"+projectID)

	_ = c.JSON(201, export)
}

func (h *ExportHandler) Delete(c *drift.Context) {
	id := c.Param("exportId")
	if _, err := services.EchoDelete(c.Request.Context(), h.sim, id); err != nil {
		return
	}

	if err := h.store.DeleteExportFile(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.NotFound("export not found")
			return
		}
		c.InternalServerError("failed to delete export")
		return
	}

	_ = c.JSON(200, map[string]string{"message": "export deleted"})
}

type ReportHandler struct {
	sim *services.Simulator
}

func NewReportHandler(sim *services.Simulator) *ReportHandler {
	return &ReportHandler{sim: sim}
}

var reportTypes = map[string]bool{
	"projects":  true,
	"clients":   true,
	"designers": true,
	"revenue":   true,
}

func (h *ReportHandler) Generate(c *drift.Context) {
	var req dto.GenerateReportRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if !reportTypes[req.Type] {
		c.BadRequest("unsupported report type")
		return
	}

	report, err := h.sim.GenerateReport(c.Request.Context(), req.Type)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return
		}
		c.InternalServerError("failed to generate report")
		return
	}

	_ = c.JSON(200, report)
}

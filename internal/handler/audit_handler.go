package handler

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"commitgate/internal/export"
	"commitgate/internal/port"
)

const (
	defaultLimit = 50
	maxLimit     = 500
	// exportLimit bounds how many runs a single export pulls.
	exportLimit = 10000
)

// AuditHandler serves the validation-run audit trail.
type AuditHandler struct {
	runRepo port.ValidationRunRepository
}

// NewAuditHandler creates a new AuditHandler.
func NewAuditHandler(runRepo port.ValidationRunRepository) *AuditHandler {
	return &AuditHandler{runRepo: runRepo}
}

// List handles GET /api/v1/audit/runs.
func (h *AuditHandler) List(c *gin.Context) {
	filter, offset, limit := parseRunQuery(c)

	runs, total, err := h.runRepo.List(c.Request.Context(), filter, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondPaginated(c, runs, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/audit/runs/:id.
func (h *AuditHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "run id must be a UUID")
		return
	}

	run, err := h.runRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, run)
}

// ExportCSV handles GET /api/v1/audit/runs/export/csv.
func (h *AuditHandler) ExportCSV(c *gin.Context) {
	filter, _, _ := parseRunQuery(c)

	runs, _, err := h.runRepo.List(c.Request.Context(), filter, 0, exportLimit)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="validation-runs.csv"`)
	c.Status(http.StatusOK)

	if _, err := c.Writer.Write(export.BOM); err != nil {
		return
	}
	w := export.NewWriter(c.Writer)
	if err := w.WriteHeader(); err != nil {
		return
	}
	if err := w.WriteRuns(runs); err != nil {
		return
	}
	_ = w.Flush()
}

// ExportXLSX handles GET /api/v1/audit/runs/export/xlsx.
func (h *AuditHandler) ExportXLSX(c *gin.Context) {
	filter, _, _ := parseRunQuery(c)

	runs, _, err := h.runRepo.List(c.Request.Context(), filter, 0, exportLimit)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", `attachment; filename="validation-runs.xlsx"`)
	c.Status(http.StatusOK)

	if err := export.WriteXLSX(c.Writer, runs); err != nil {
		requestID, _ := c.Get("request_id")
		log.Printf("[%v] xlsx export failed: %v", requestID, err)
	}
}

func parseRunQuery(c *gin.Context) (port.RunFilter, int, int) {
	filter := port.RunFilter{Project: c.Query("project")}
	if accepted := c.Query("accepted"); accepted != "" {
		if b, err := strconv.ParseBool(accepted); err == nil {
			filter.Accepted = &b
		}
	}

	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if offset < 0 {
		offset = 0
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if limit <= 0 || limit > maxLimit {
		limit = defaultLimit
	}
	return filter, offset, limit
}

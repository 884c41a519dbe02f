package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/campushq/campuscore-backend/internal/config"
	"github.com/campushq/campuscore-backend/internal/response"
	"github.com/campushq/campuscore-backend/internal/service"
)

// ReportHandler exposes bursary reports as JSON and XLSX.
type ReportHandler struct {
	reportService *service.ReportService
	cfg           *config.Config
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService *service.ReportService, cfg *config.Config) *ReportHandler {
	return &ReportHandler{reportService: reportService, cfg: cfg}
}

func (h *ReportHandler) session(c *gin.Context) string {
	if s := c.Query("session"); s != "" {
		return s
	}
	return h.cfg.CurrentSession
}

// Bursary godoc
// GET /api/v1/admin/reports/bursary?session=
func (h *ReportHandler) Bursary(c *gin.Context) {
	report, err := h.reportService.Bursary(c.Request.Context(), h.session(c))
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"report": report})
}

// BursaryXLSX godoc
// GET /api/v1/admin/reports/bursary/export?session=
// Streams the report as an Excel workbook.
func (h *ReportHandler) BursaryXLSX(c *gin.Context) {
	session := h.session(c)

	buf, err := h.reportService.ExportXLSX(c.Request.Context(), session)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	filename := fmt.Sprintf("bursary-report-%s.xlsx", strings.ReplaceAll(session, "/", "-"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

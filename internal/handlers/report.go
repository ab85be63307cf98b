package handlers

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	apierrors "github.com/teamtrack/project-management-api/internal/errors"
	"github.com/teamtrack/project-management-api/internal/middleware"
	"github.com/teamtrack/project-management-api/internal/reports"
	"github.com/teamtrack/project-management-api/internal/services"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportHandler serves manager-only xlsx report downloads.
type ReportHandler struct {
	reportService *services.ReportService
}

func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// TaskReport handles GET /manager/reports/tasks/:id
func (h *ReportHandler) TaskReport(c *gin.Context) {
	actor, ok := middleware.GetCurrentUser(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}
	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	doc, err := h.reportService.TaskReport(actor, taskID)
	if err != nil {
		respondError(c, err)
		return
	}

	h.send(c, doc)
}

// ProjectReport handles GET /manager/reports/projects/:id
func (h *ReportHandler) ProjectReport(c *gin.Context) {
	actor, ok := middleware.GetCurrentUser(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}
	projectID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	doc, err := h.reportService.ProjectReport(actor, projectID)
	if err != nil {
		respondError(c, err)
		return
	}

	h.send(c, doc)
}

// UserReport handles GET /manager/reports/users/:id
func (h *ReportHandler) UserReport(c *gin.Context) {
	actor, ok := middleware.GetCurrentUser(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}
	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	doc, err := h.reportService.UserReport(actor, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	h.send(c, doc)
}

// send renders the document and streams it as an attachment. Filenames
// carry non-ASCII titles, so the RFC 5987 encoded form is used.
func (h *ReportHandler) send(c *gin.Context, doc *reports.Document) {
	data, err := reports.Render(doc)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+url.PathEscape(doc.Filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}

package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agendapro/agendapro-backend/internal/export"
	"github.com/agendapro/agendapro-backend/internal/pkg/response"
)

type Handler struct {
	service export.Service
}

func NewHandler(service export.Service) *Handler {
	return &Handler{service: service}
}

// Day streams the agenda report for ?date= (today when omitted).
func (h *Handler) Day(c *gin.Context) {
	report, err := h.service.ExportDay(c.Request.Context(), c.Query("date"))
	if err != nil {
		response.Error(c, err)
		return
	}

	serveReport(c, report)
}

// Stored re-downloads a previously generated report by filename.
func (h *Handler) Stored(c *gin.Context) {
	report, err := h.service.StoredReport(c.Request.Context(), c.Param("name"))
	if err != nil {
		response.Error(c, err)
		return
	}

	serveReport(c, report)
}

// Remove deletes a stored report copy.
func (h *Handler) Remove(c *gin.Context) {
	if err := h.service.RemoveStored(c.Request.Context(), c.Param("name")); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func serveReport(c *gin.Context, report *export.Report) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.Filename))
	c.Data(http.StatusOK, report.ContentType, report.Data)
}

package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agendapro/agendapro-backend/internal/catalog"
)

type Handler struct {
	service catalog.Service
}

func NewHandler(service catalog.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	entries := h.service.List()

	items := make([]EntryResponse, len(entries))
	for i := range entries {
		deposit, percent := h.service.DepositFor(&entries[i])
		items[i] = NewEntryResponse(&entries[i], deposit, percent)
	}

	c.JSON(http.StatusOK, gin.H{"services": items})
}

func (h *Handler) Categories(c *gin.Context) {
	categories := h.service.Categories()
	if categories == nil {
		categories = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

func (h *Handler) Settings(c *gin.Context) {
	c.JSON(http.StatusOK, NewSettingsResponse(h.service.Settings()))
}

package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/agendapro/agendapro-backend/internal/booking"
	"github.com/agendapro/agendapro-backend/internal/catalog"
	"github.com/agendapro/agendapro-backend/internal/pkg/response"
	"github.com/agendapro/agendapro-backend/internal/stats"
)

type Handler struct {
	bookings booking.Service
	catalog  catalog.Service
	now      func() time.Time
}

func NewHandler(bookings booking.Service, catalogSvc catalog.Service) *Handler {
	return &Handler{
		bookings: bookings,
		catalog:  catalogSvc,
		now:      time.Now,
	}
}

// Get recomputes the aggregates from the full, unfiltered booking
// list.
func (h *Handler) Get(c *gin.Context) {
	res, err := h.bookings.List(c.Request.Context(), booking.Filter{
		Temporal: booking.TemporalAll,
		PageSize: 1 << 30, // stats always see everything
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	s := stats.Compute(res.Items, h.categoryOf, h.now())
	c.JSON(http.StatusOK, s)
}

func (h *Handler) categoryOf(serviceID string) string {
	entry, err := h.catalog.GetByID(serviceID)
	if err != nil {
		return ""
	}
	return entry.Category
}

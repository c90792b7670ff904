package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/agendapro/agendapro-backend/internal/booking"
	"github.com/agendapro/agendapro-backend/internal/calendar"
	"github.com/agendapro/agendapro-backend/internal/pkg/dates"
	"github.com/agendapro/agendapro-backend/internal/pkg/response"
)

type Handler struct {
	bookings booking.Service
	now      func() time.Time
}

func NewHandler(bookings booking.Service) *Handler {
	return &Handler{
		bookings: bookings,
		now:      time.Now,
	}
}

func (h *Handler) Month(c *gin.Context) {
	var req MonthRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year or month", "details": err.Error()})
		return
	}

	now := h.now()

	selected := c.Query("selected")
	if selected != "" {
		normalized, err := dates.Normalize(selected, now)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid selected date, expected DD/MM/YYYY"})
			return
		}
		selected = normalized
	}

	counts, err := h.bookings.CountsByDate(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	month := time.Month(req.Month)
	cells := calendar.Grid(req.Year, month, now, selected, counts)

	resp := MonthResponse{
		Year:     req.Year,
		Month:    req.Month,
		Label:    fmt.Sprintf("%s %d", calendar.MonthName(month), req.Year),
		Selected: selected,
	}

	// The week-strip layout serves narrow viewports; same cells,
	// grouped seven per row.
	if c.DefaultQuery("layout", "grid") == "weeks" {
		resp.Weeks = calendar.Weeks(cells)
	} else {
		resp.Cells = cells
	}

	c.JSON(http.StatusOK, resp)
}

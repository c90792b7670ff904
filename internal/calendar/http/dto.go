package http

import (
	"github.com/agendapro/agendapro-backend/internal/calendar"
)

// MonthRequest binds the calendar path parameters.
type MonthRequest struct {
	Year  int `uri:"year" binding:"required,min=1970,max=9999"`
	Month int `uri:"month" binding:"required,min=1,max=12"`
}

// MonthResponse carries the computed month view. Exactly one of Cells
// or Weeks is set, depending on the requested layout.
type MonthResponse struct {
	Year     int               `json:"year"`
	Month    int               `json:"month"`
	Label    string            `json:"label"`
	Selected string            `json:"selected,omitempty"`
	Cells    []calendar.Cell   `json:"cells,omitempty"`
	Weeks    [][]calendar.Cell `json:"weeks,omitempty"`
}

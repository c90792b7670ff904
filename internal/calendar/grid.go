// Package calendar computes the month view: a fixed 42-cell,
// Monday-first grid spanning the trailing days of the previous month,
// the displayed month and the leading days of the next one. All
// functions are pure; rendering is the caller's concern.
package calendar

import (
	"time"

	"github.com/agendapro/agendapro-backend/internal/pkg/dates"
)

// GridSize is always 6 weeks of 7 days.
const GridSize = 42

type Cell struct {
	Day          int    `json:"day"`
	Date         string `json:"date"` // DD/MM/YYYY
	InMonth      bool   `json:"in_month"`
	Today        bool   `json:"today"`
	HasBookings  bool   `json:"has_bookings"`
	BookingCount int    `json:"booking_count,omitempty"`
	Selected     bool   `json:"selected"`
	Disabled     bool   `json:"disabled"`
}

var monthNames = [...]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// MonthName returns the display name for a month.
func MonthName(m time.Month) string {
	return monthNames[m-1]
}

// Grid produces the 42 cells for the given month. today marks the
// current-date cell and decides which days are disabled (strictly
// before today, computed uniformly for all three month segments).
// selected is a DD/MM/YYYY string or empty; counts holds bookings per
// date string and tags in-month cells as has-bookings.
func Grid(year int, month time.Month, today time.Time, selected string, counts map[string]int) []Cell {
	loc := today.Location()
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()

	// Monday=0 .. Sunday=6
	firstWeekday := (int(first.Weekday()) + 6) % 7

	cells := make([]Cell, 0, GridSize)

	// Trailing days of the previous month.
	for i := firstWeekday; i > 0; i-- {
		d := first.AddDate(0, 0, -i)
		cells = append(cells, Cell{
			Day:      d.Day(),
			Date:     dates.Format(d),
			Disabled: dates.BeforeDay(d, today),
		})
	}

	// The displayed month.
	for day := 1; day <= daysInMonth; day++ {
		d := time.Date(year, month, day, 0, 0, 0, 0, loc)
		str := dates.Format(d)
		count := counts[str]
		cells = append(cells, Cell{
			Day:          day,
			Date:         str,
			InMonth:      true,
			Today:        sameDay(d, today),
			HasBookings:  count > 0,
			BookingCount: count,
			Selected:     selected != "" && selected == str,
			Disabled:     dates.BeforeDay(d, today),
		})
	}

	// Leading days of the next month, up to 42 cells.
	last := time.Date(year, month, daysInMonth, 0, 0, 0, 0, loc)
	remaining := GridSize - len(cells)
	for i := 1; i <= remaining; i++ {
		d := last.AddDate(0, 0, i)
		cells = append(cells, Cell{
			Day:      d.Day(),
			Date:     dates.Format(d),
			Disabled: dates.BeforeDay(d, today),
		})
	}

	return cells
}

// Weeks groups the 42 cells into 6 rows of 7 for the scrollable
// week-strip layout. Presentation only; the cells are unchanged.
func Weeks(cells []Cell) [][]Cell {
	weeks := make([][]Cell, 0, len(cells)/7)
	for i := 0; i+7 <= len(cells); i += 7 {
		weeks = append(weeks, cells[i:i+7])
	}
	return weeks
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

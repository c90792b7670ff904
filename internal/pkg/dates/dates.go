// Package dates implements the appointment date format used across the
// service. Dates travel as DD/MM/YYYY strings; this package is the only
// place that parses or formats them.
package dates

import (
	"errors"
	"regexp"
	"time"
)

// Layout is the canonical appointment date layout.
const Layout = "02/01/2006"

var (
	ErrFormat = errors.New("invalid date format, expected DD/MM/YYYY")

	// Accepts DD/MM with an optional /YYYY. Impossible combinations the
	// pattern still allows (e.g. 31/02) are rejected by time.Parse.
	pattern = regexp.MustCompile(`^(0[1-9]|[12][0-9]|3[01])/(0[1-9]|1[0-2])(/\d{4})?$`)
)

// Format renders t as DD/MM/YYYY.
func Format(t time.Time) string {
	return t.Format(Layout)
}

// Parse converts a DD/MM/YYYY string into a time at midnight local
// time. The legacy year-less DD/MM form is accepted and resolved
// against the year of now.
func Parse(s string, now time.Time) (time.Time, error) {
	if !pattern.MatchString(s) {
		return time.Time{}, ErrFormat
	}
	if len(s) == 5 {
		s = s + "/" + now.Format("2006")
	}
	t, err := time.ParseInLocation(Layout, s, now.Location())
	if err != nil {
		return time.Time{}, ErrFormat
	}
	return t, nil
}

// Normalize returns the canonical DD/MM/YYYY form of s, resolving a
// year-less input against now.
func Normalize(s string, now time.Time) (string, error) {
	t, err := Parse(s, now)
	if err != nil {
		return "", err
	}
	return Format(t), nil
}

// Today truncates now to midnight in its location.
func Today(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// BeforeDay reports whether a falls on a calendar day strictly before b.
func BeforeDay(a, b time.Time) bool {
	return Today(a).Before(Today(b))
}

// WeekSpan returns the Monday and Sunday (both at midnight) of the week
// containing now.
func WeekSpan(now time.Time) (monday, sunday time.Time) {
	today := Today(now)
	offset := (int(today.Weekday()) + 6) % 7 // Monday=0 .. Sunday=6
	monday = today.AddDate(0, 0, -offset)
	sunday = monday.AddDate(0, 0, 6)
	return monday, sunday
}

// SameMonth reports whether t falls in the given year and month.
func SameMonth(t time.Time, year int, month time.Month) bool {
	return t.Year() == year && t.Month() == month
}

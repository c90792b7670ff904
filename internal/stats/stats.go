// Package stats derives read-only aggregates from the full booking
// list. Everything is recomputed from scratch on each call; nothing is
// cached or mutated.
package stats

import (
	"math"
	"sort"
	"time"

	"github.com/agendapro/agendapro-backend/internal/booking"
	"github.com/agendapro/agendapro-backend/internal/pkg/dates"
)

// FallbackCategory buckets bookings whose service no longer resolves
// to a catalog entry.
const FallbackCategory = "Otros"

// TopServicesLimit caps the most-booked ranking.
const TopServicesLimit = 5

type CategoryShare struct {
	Category string  `json:"category"`
	Count    int     `json:"count"`
	Percent  float64 `json:"percent"`
}

type ServiceCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type Stats struct {
	Total        int             `json:"total"`
	Today        int             `json:"today"`
	ThisWeek     int             `json:"this_week"`
	ThisMonth    int             `json:"this_month"`
	Revenue      float64         `json:"revenue"`
	PaidDeposits float64         `json:"paid_deposits"`
	Categories   []CategoryShare `json:"categories"`
	TopServices  []ServiceCount  `json:"top_services"`
}

// Compute aggregates the unfiltered booking list. categoryOf maps a
// service id to its catalog category and may return "" for unknown
// services.
func Compute(bookings []booking.Booking, categoryOf func(serviceID string) string, now time.Time) Stats {
	s := Stats{
		Categories:  []CategoryShare{},
		TopServices: []ServiceCount{},
	}

	todayStr := dates.Format(now)
	monday, sunday := dates.WeekSpan(now)

	byCategory := make(map[string]int)
	byService := make(map[string]int)

	for i := range bookings {
		b := &bookings[i]
		s.Total++
		s.Revenue += b.Price
		if b.PaymentStatus == booking.PaymentPaid {
			s.PaidDeposits += b.Deposit
		}

		if b.Date == todayStr {
			s.Today++
		}
		if day, err := dates.Parse(b.Date, now); err == nil {
			if !day.Before(monday) && !day.After(sunday) {
				s.ThisWeek++
			}
			if dates.SameMonth(day, now.Year(), now.Month()) {
				s.ThisMonth++
			}
		}

		category := categoryOf(b.ServiceID)
		if category == "" {
			category = FallbackCategory
		}
		byCategory[category]++
		byService[b.ServiceName]++
	}

	s.Revenue = round2(s.Revenue)
	s.PaidDeposits = round2(s.PaidDeposits)

	for category, count := range byCategory {
		s.Categories = append(s.Categories, CategoryShare{
			Category: category,
			Count:    count,
			Percent:  round2(float64(count) / float64(s.Total) * 100),
		})
	}
	sort.Slice(s.Categories, func(i, j int) bool {
		if s.Categories[i].Count != s.Categories[j].Count {
			return s.Categories[i].Count > s.Categories[j].Count
		}
		return s.Categories[i].Category < s.Categories[j].Category
	})

	for name, count := range byService {
		s.TopServices = append(s.TopServices, ServiceCount{Name: name, Count: count})
	}
	sort.Slice(s.TopServices, func(i, j int) bool {
		if s.TopServices[i].Count != s.TopServices[j].Count {
			return s.TopServices[i].Count > s.TopServices[j].Count
		}
		return s.TopServices[i].Name < s.TopServices[j].Name
	})
	if len(s.TopServices) > TopServicesLimit {
		s.TopServices = s.TopServices[:TopServicesLimit]
	}

	return s
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

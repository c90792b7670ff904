package catalog

import (
	"math"
	"sort"
)

type Service interface {
	List() []Entry
	GetByID(id string) (*Entry, error)
	Categories() []string
	Settings() Settings
	// DepositFor resolves the deposit amount and percentage to charge
	// for an entry, applying the configured defaults and floor.
	DepositFor(e *Entry) (amount, percent float64)
}

type service struct {
	entries  []Entry
	byID     map[string]*Entry
	settings Settings
}

func NewService(doc Document) Service {
	s := &service{
		entries:  doc.Services,
		byID:     make(map[string]*Entry, len(doc.Services)),
		settings: doc.Settings,
	}
	for i := range s.entries {
		s.byID[s.entries[i].ID] = &s.entries[i]
	}
	return s
}

func (s *service) List() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

func (s *service) GetByID(id string) (*Entry, error) {
	e, ok := s.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return e, nil
}

func (s *service) Categories() []string {
	seen := make(map[string]struct{})
	var out []string
	for i := range s.entries {
		c := s.entries[i].Category
		if c == "" {
			continue
		}
		if _, ok := seen[c]; !ok {
			seen[c] = struct{}{}
			out = append(out, c)
		}
	}
	sort.Strings(out)
	return out
}

func (s *service) Settings() Settings {
	return s.settings
}

func (s *service) DepositFor(e *Entry) (float64, float64) {
	amount := e.Deposit
	percent := e.DepositPercent

	if amount <= 0 {
		if percent <= 0 {
			percent = s.settings.DefaultDepositPercent
		}
		amount = e.Price * percent / 100
	}

	if amount < s.settings.MinDeposit {
		amount = s.settings.MinDeposit
	}
	// A deposit never exceeds the price itself.
	if e.Price > 0 && amount > e.Price {
		amount = e.Price
	}

	// The percent always mirrors the final amount, including after the
	// floor and cap adjustments.
	if e.Price > 0 {
		percent = amount / e.Price * 100
	}

	return round2(amount), round2(percent)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

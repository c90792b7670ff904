package http

import (
	"github.com/agendapro/agendapro-backend/internal/catalog"
)

type EntryResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Category        string  `json:"category"`
	Subcategory     string  `json:"subcategory,omitempty"`
	DurationMinutes int     `json:"duration_minutes"`
	Price           float64 `json:"price"`
	Deposit         float64 `json:"deposit"`
	DepositPercent  float64 `json:"deposit_percent"`
	Description     string  `json:"description,omitempty"`
	Popular         bool    `json:"popular"`
}

func NewEntryResponse(e *catalog.Entry, deposit, percent float64) EntryResponse {
	return EntryResponse{
		ID:              e.ID,
		Name:            e.Name,
		Category:        e.Category,
		Subcategory:     e.Subcategory,
		DurationMinutes: e.DurationMinutes,
		Price:           e.Price,
		Deposit:         deposit,
		DepositPercent:  percent,
		Description:     e.Description,
		Popular:         e.Popular,
	}
}

type SettingsResponse struct {
	MinDeposit            float64 `json:"min_deposit"`
	DefaultDepositPercent float64 `json:"default_deposit_percent"`
	CancellationPolicy    string  `json:"cancellation_policy"`
}

func NewSettingsResponse(s catalog.Settings) SettingsResponse {
	return SettingsResponse{
		MinDeposit:            s.MinDeposit,
		DefaultDepositPercent: s.DefaultDepositPercent,
		CancellationPolicy:    s.CancellationPolicy,
	}
}

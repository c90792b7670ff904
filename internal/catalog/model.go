package catalog

import (
	"net/http"

	"github.com/agendapro/agendapro-backend/internal/pkg/apperror"
)

var ErrNotFound = apperror.New(http.StatusNotFound, "service not found")

// Entry is a purchasable service from the catalog document. Entries
// are immutable after load. JSON tags follow the catalog document's
// original keys.
type Entry struct {
	ID              string  `json:"id"`
	Name            string  `json:"nombre"`
	Category        string  `json:"categoria"`
	Subcategory     string  `json:"subcategoria"`
	DurationMinutes int     `json:"duracion"`
	Price           float64 `json:"precio"`
	Deposit         float64 `json:"senia"`
	DepositPercent  float64 `json:"porcentaje_senia"`
	Description     string  `json:"descripcion"`
	Popular         bool    `json:"popular"`
}

// Settings holds process-wide booking configuration, read-only after
// load.
type Settings struct {
	MinDeposit            float64 `json:"senia_minima"`
	DefaultDepositPercent float64 `json:"porcentaje_senia_default"`
	CancellationPolicy    string  `json:"politica_cancelacion"`
}

// Document is the on-disk catalog file shape.
type Document struct {
	Services []Entry  `json:"servicios"`
	Settings Settings `json:"configuracion"`
}

// DefaultSettings returns the conservative fallback configuration used
// when the catalog document cannot be loaded.
func DefaultSettings() Settings {
	return Settings{
		MinDeposit:            8.00,
		DefaultDepositPercent: 30,
		CancellationPolicy:    "",
	}
}

// Package export builds the one-day agenda report: a spreadsheet when
// possible, a BOM-prefixed CSV when not.
package export

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/agendapro/agendapro-backend/internal/booking"
	"github.com/agendapro/agendapro-backend/internal/catalog"
	"github.com/agendapro/agendapro-backend/internal/pkg/apperror"
	"github.com/agendapro/agendapro-backend/internal/pkg/dates"
	"github.com/agendapro/agendapro-backend/internal/pkg/logger"
	"github.com/agendapro/agendapro-backend/internal/pkg/storage"
)

var (
	ErrNothingToExport = apperror.New(http.StatusNotFound, "no bookings to export for that date")
	ErrUnknownReport   = apperror.New(http.StatusNotFound, "no stored export with that name")
)

type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
)

// headers is the fixed column order of the report.
var headers = []string{
	"Fecha", "Nombre", "Apellido", "Servicio", "Categoría",
	"Precio", "Seña", "Estado de pago", "Teléfono", "Email",
	"Notas", "Creado", "Seña pagada",
}

// Report is a generated agenda file ready to stream to the client.
type Report struct {
	Filename    string
	Format      Format
	ContentType string
	Data        []byte
}

type Service interface {
	// ExportDay builds the report for the bookings on the given
	// DD/MM/YYYY date (today when empty). Zero bookings on that date
	// is ErrNothingToExport; no file is produced.
	ExportDay(ctx context.Context, date string) (*Report, error)

	// StoredReport re-opens a previously generated report by its
	// filename. Unknown names are ErrUnknownReport.
	StoredReport(ctx context.Context, name string) (*Report, error)

	// RemoveStored deletes a stored report copy. Removing a missing
	// one is a no-op.
	RemoveStored(ctx context.Context, name string) error
}

type service struct {
	bookings booking.Service
	catalog  catalog.Service
	store    storage.Storage
	now      func() time.Time
	log      *logger.Logger

	// swappable so the CSV fallback path is testable
	writeXLSX func(rows [][]string) ([]byte, error)
}

func NewService(bookings booking.Service, catalogSvc catalog.Service, store storage.Storage, log *logger.Logger) Service {
	return &service{
		bookings:  bookings,
		catalog:   catalogSvc,
		store:     store,
		now:       time.Now,
		log:       log,
		writeXLSX: writeXLSX,
	}
}

func (s *service) ExportDay(ctx context.Context, date string) (*Report, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		date = dates.Format(s.now())
	} else {
		// The filename form (dashes) is accepted on input too.
		date = strings.ReplaceAll(date, "-", "/")
		normalized, err := dates.Normalize(date, s.now())
		if err != nil {
			return nil, booking.ErrBadDate
		}
		date = normalized
	}

	items, err := s.bookings.ForDate(ctx, date)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrNothingToExport
	}

	rows := s.buildRows(items)

	format := FormatXLSX
	data, err := s.writeXLSX(rows)
	if err != nil {
		s.log.Warn("spreadsheet export failed, falling back to csv", "error", err)
		format = FormatCSV
		data, err = writeCSV(rows)
		if err != nil {
			return nil, apperror.Wrap(err, http.StatusInternalServerError, "export failed")
		}
	}

	report := &Report{
		Filename:    fmt.Sprintf("agenda-%s.%s", strings.ReplaceAll(date, "/", "-"), format),
		Format:      format,
		ContentType: contentType(format),
		Data:        data,
	}

	// Keep a copy next to the data dir; the download itself does not
	// depend on this succeeding.
	if err := s.store.Save(ctx, report.Filename, bytes.NewReader(data)); err != nil {
		s.log.Warn("failed to store export copy", "filename", report.Filename, "error", err)
	}

	return report, nil
}

func (s *service) StoredReport(ctx context.Context, name string) (*Report, error) {
	if !validReportName(name) {
		return nil, ErrUnknownReport
	}

	rc, err := s.store.Get(ctx, name)
	if err != nil {
		return nil, ErrUnknownReport
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, apperror.Wrap(err, http.StatusInternalServerError, "failed to read stored export")
	}

	format := FormatXLSX
	if strings.HasSuffix(name, ".csv") {
		format = FormatCSV
	}

	return &Report{
		Filename:    name,
		Format:      format,
		ContentType: contentType(format),
		Data:        data,
	}, nil
}

func (s *service) RemoveStored(ctx context.Context, name string) error {
	if !validReportName(name) {
		return ErrUnknownReport
	}
	return s.store.Delete(ctx, name)
}

// validReportName accepts only bare report filenames; anything with a
// path component or a foreign extension never names a stored report.
func validReportName(name string) bool {
	if name == "" || name != filepath.Base(name) {
		return false
	}
	return strings.HasSuffix(name, ".xlsx") || strings.HasSuffix(name, ".csv")
}

// buildRows renders the header plus one row per booking, in the fixed
// column order.
func (s *service) buildRows(items []booking.Booking) [][]string {
	rows := make([][]string, 0, len(items)+1)
	rows = append(rows, headers)

	for i := range items {
		b := &items[i]
		paidAt := ""
		if b.PaidAt != nil {
			paidAt = b.PaidAt.Format(time.RFC3339)
		}
		rows = append(rows, []string{
			b.Date,
			b.FirstName,
			b.LastName,
			b.ServiceName,
			s.categoryOf(b.ServiceID),
			fmt.Sprintf("%.2f", b.Price),
			fmt.Sprintf("%.2f", b.Deposit),
			string(b.PaymentStatus),
			b.Phone,
			b.Email,
			b.Notes,
			b.CreatedAt.Format(time.RFC3339),
			paidAt,
		})
	}
	return rows
}

func (s *service) categoryOf(serviceID string) string {
	entry, err := s.catalog.GetByID(serviceID)
	if err != nil {
		return ""
	}
	return entry.Category
}

func contentType(f Format) string {
	if f == FormatCSV {
		return "text/csv; charset=utf-8"
	}
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

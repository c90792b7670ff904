package booking

import (
	"net/http"
	"time"

	"github.com/agendapro/agendapro-backend/internal/pkg/apperror"
)

var (
	ErrNotFound            = apperror.New(http.StatusNotFound, "booking not found")
	ErrMissingFields       = apperror.New(http.StatusBadRequest, "first name, last name, date and service are required")
	ErrBadDate             = apperror.New(http.StatusBadRequest, "invalid date format, expected DD/MM/YYYY")
	ErrPastDate            = apperror.New(http.StatusBadRequest, "cannot book a past date")
	ErrServiceNotFound     = apperror.New(http.StatusNotFound, "chosen service does not exist")
	ErrAlreadyPaid         = apperror.New(http.StatusConflict, "deposit already paid")
	ErrUnknownConfirmation = apperror.New(http.StatusNotFound, "confirmation not found or already resolved")
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
)

// Booking is a scheduled appointment. Price and Deposit are copies
// taken from the catalog entry at booking time; later catalog edits
// never touch existing bookings. The JSON tags double as the snapshot
// format, so a persisted list reloads field-for-field.
type Booking struct {
	ID            int64         `json:"id"`
	Date          string        `json:"date"` // DD/MM/YYYY
	FirstName     string        `json:"first_name"`
	LastName      string        `json:"last_name"`
	Phone         string        `json:"phone,omitempty"`
	Email         string        `json:"email,omitempty"`
	ServiceID     string        `json:"service_id"`
	ServiceName   string        `json:"service_name"`
	Price         float64       `json:"price"`
	Deposit       float64       `json:"deposit"`
	Notes         string        `json:"notes,omitempty"`
	SMSReminder   bool          `json:"sms_reminder"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	CreatedAt     time.Time     `json:"created_at"`
	PaidAt        *time.Time    `json:"paid_at,omitempty"`
}

// Temporal restricts the visible booking set by date.
type Temporal string

const (
	TemporalAll      Temporal = "all"
	TemporalToday    Temporal = "today"
	TemporalThisWeek Temporal = "this-week"
)

// Filter defines parameters for listing bookings. Applied in order:
// temporal, free-text query, category.
type Filter struct {
	Temporal Temporal
	Query    string
	Category string
	Page     int
	PageSize int
}

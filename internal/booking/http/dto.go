package http

import (
	"time"

	"github.com/agendapro/agendapro-backend/internal/booking"
	"github.com/agendapro/agendapro-backend/internal/pkg/request"
	"github.com/agendapro/agendapro-backend/internal/pkg/response"
)

// ListBookingsRequest defines query parameters for listing bookings.
type ListBookingsRequest struct {
	request.ListParams
	Filter   string `form:"filter" binding:"omitempty,oneof=all today this-week"`
	Query    string `form:"q"`
	Category string `form:"category"`
}

// CreateBookingRequest is the booking form payload. Required-field
// checks live in the service so validation failures keep their fixed
// order and wording.
type CreateBookingRequest struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Date        string `json:"date"`
	ServiceID   string `json:"service_id"`
	Phone       string `json:"phone"`
	Email       string `json:"email" binding:"omitempty,email"`
	Notes       string `json:"notes"`
	SMSReminder bool   `json:"sms_reminder"`
}

// ConfirmBookingRequest resolves a pending deposit confirmation.
// Confirmed=false is the decline/dismiss path, not an error.
type ConfirmBookingRequest struct {
	Token     string `json:"token" binding:"required"`
	Confirmed *bool  `json:"confirmed" binding:"required"`
}

// QuoteResponse is the deposit confirmation step: everything the
// confirmation dialog shows, plus the token that resolves it.
type QuoteResponse struct {
	Token              string  `json:"token"`
	ServiceID          string  `json:"service_id"`
	ServiceName        string  `json:"service_name"`
	DurationMinutes    int     `json:"duration_minutes"`
	Price              float64 `json:"price"`
	Deposit            float64 `json:"deposit"`
	DepositPercent     float64 `json:"deposit_percent"`
	CancellationPolicy string  `json:"cancellation_policy"`
}

func NewQuoteResponse(q *booking.Quote) QuoteResponse {
	return QuoteResponse{
		Token:              q.Token,
		ServiceID:          q.ServiceID,
		ServiceName:        q.ServiceName,
		DurationMinutes:    q.DurationMinutes,
		Price:              q.Price,
		Deposit:            q.Deposit,
		DepositPercent:     q.DepositPercent,
		CancellationPolicy: q.CancellationPolicy,
	}
}

type BookingResponse struct {
	ID            int64      `json:"id"`
	Date          string     `json:"date"`
	FirstName     string     `json:"first_name"`
	LastName      string     `json:"last_name"`
	Phone         string     `json:"phone,omitempty"`
	Email         string     `json:"email,omitempty"`
	ServiceID     string     `json:"service_id"`
	ServiceName   string     `json:"service_name"`
	Price         float64    `json:"price"`
	Deposit       float64    `json:"deposit"`
	Notes         string     `json:"notes,omitempty"`
	SMSReminder   bool       `json:"sms_reminder"`
	PaymentStatus string     `json:"payment_status"`
	CreatedAt     time.Time  `json:"created_at"`
	PaidAt        *time.Time `json:"paid_at,omitempty"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:            b.ID,
		Date:          b.Date,
		FirstName:     b.FirstName,
		LastName:      b.LastName,
		Phone:         b.Phone,
		Email:         b.Email,
		ServiceID:     b.ServiceID,
		ServiceName:   b.ServiceName,
		Price:         b.Price,
		Deposit:       b.Deposit,
		Notes:         b.Notes,
		SMSReminder:   b.SMSReminder,
		PaymentStatus: string(b.PaymentStatus),
		CreatedAt:     b.CreatedAt,
		PaidAt:        b.PaidAt,
	}
}

// ListBookingsResponse extends the page envelope with the unfiltered
// store size and an optional notice, so clients can tell "no bookings
// yet" apart from "filters matched nothing".
type ListBookingsResponse struct {
	response.PageResponse[BookingResponse]
	StoreTotal int    `json:"store_total"`
	Notice     string `json:"notice,omitempty"`
}

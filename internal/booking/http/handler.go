package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/agendapro/agendapro-backend/internal/booking"
	"github.com/agendapro/agendapro-backend/internal/pkg/response"
)

type Handler struct {
	service booking.Service
}

func NewHandler(service booking.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	var req ListBookingsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	temporal := booking.Temporal(req.Filter)
	if temporal == "" {
		temporal = booking.TemporalAll
	}

	res, err := h.service.List(c.Request.Context(), booking.Filter{
		Temporal: temporal,
		Query:    req.Query,
		Category: req.Category,
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]BookingResponse, len(res.Items))
	for i := range res.Items {
		items[i] = NewBookingResponse(&res.Items[i])
	}

	out := ListBookingsResponse{
		PageResponse: response.NewPageResponse(items, res.Page, res.PageSize, res.Total),
		StoreTotal:   res.StoreTotal,
	}
	switch {
	case res.StoreTotal == 0:
		out.Notice = "no appointments scheduled yet"
	case res.Total == 0:
		out.Notice = "no appointments match the current filters"
	}

	c.JSON(http.StatusOK, out)
}

// Create validates the form and answers with a deposit confirmation
// quote. The booking is not stored until the quote is confirmed.
func (h *Handler) Create(c *gin.Context) {
	var body CreateBookingRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	q, err := h.service.Quote(c.Request.Context(), booking.CreateRequest{
		FirstName:   body.FirstName,
		LastName:    body.LastName,
		Date:        body.Date,
		ServiceID:   body.ServiceID,
		Phone:       body.Phone,
		Email:       body.Email,
		Notes:       body.Notes,
		SMSReminder: body.SMSReminder,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusAccepted, NewQuoteResponse(q))
}

func (h *Handler) Confirm(c *gin.Context) {
	var body ConfirmBookingRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	if !*body.Confirmed {
		if err := h.service.Decline(c.Request.Context(), body.Token); err != nil {
			response.Error(c, err)
			return
		}
		response.Notice(c, http.StatusOK, "booking declined, nothing was saved")
		return
	}

	b, err := h.service.Confirm(c.Request.Context(), body.Token)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"booking": NewBookingResponse(b),
		"message": fmt.Sprintf("appointment booked for %s %s, deposit %.2f", b.FirstName, b.LastName, b.Deposit),
	})
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) Pay(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	b, err := h.service.MarkDepositPaid(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

func (h *Handler) Clear(c *gin.Context) {
	n, err := h.service.ClearAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"removed": n})
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return 0, false
	}
	return id, true
}

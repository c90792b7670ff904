package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendapro/agendapro-backend/internal/booking"
)

// Wednesday 11 March 2026; its week runs 09/03–15/03.
var now = time.Date(2026, time.March, 11, 12, 0, 0, 0, time.UTC)

func categoryOf(serviceID string) string {
	switch serviceID {
	case "corte":
		return "Peluquería"
	case "manicura", "pedicura":
		return "Uñas"
	default:
		return ""
	}
}

func paid(b booking.Booking) booking.Booking {
	at := now
	b.PaymentStatus = booking.PaymentPaid
	b.PaidAt = &at
	return b
}

func mk(date, serviceID, serviceName string, price, deposit float64) booking.Booking {
	return booking.Booking{
		Date:          date,
		ServiceID:     serviceID,
		ServiceName:   serviceName,
		Price:         price,
		Deposit:       deposit,
		PaymentStatus: booking.PaymentPending,
	}
}

func TestComputeEmpty(t *testing.T) {
	s := Compute(nil, categoryOf, now)

	assert.Zero(t, s.Total)
	assert.Zero(t, s.Revenue)
	assert.NotNil(t, s.Categories)
	assert.NotNil(t, s.TopServices)
	assert.Empty(t, s.Categories)
	assert.Empty(t, s.TopServices)
}

func TestComputeCounts(t *testing.T) {
	list := []booking.Booking{
		mk("11/03/2026", "corte", "Corte de pelo", 30, 9),       // today
		mk("14/03/2026", "manicura", "Manicura", 25, 10),        // this week
		mk("25/03/2026", "corte", "Corte de pelo", 30, 9),       // this month
		mk("02/04/2026", "pedicura", "Pedicura", 28, 8),         // next month
	}

	s := Compute(list, categoryOf, now)

	assert.Equal(t, 4, s.Total)
	assert.Equal(t, 1, s.Today)
	assert.Equal(t, 2, s.ThisWeek)
	assert.Equal(t, 3, s.ThisMonth)
}

func TestComputeRevenueAndPaidDeposits(t *testing.T) {
	list := []booking.Booking{
		mk("11/03/2026", "corte", "Corte de pelo", 30, 9),
		paid(mk("14/03/2026", "manicura", "Manicura", 25, 10)),
		paid(mk("25/03/2026", "corte", "Corte de pelo", 30, 9)),
	}

	s := Compute(list, categoryOf, now)

	// Revenue sums every price; paid deposits only the paid ones.
	assert.Equal(t, 85.0, s.Revenue)
	assert.Equal(t, 19.0, s.PaidDeposits)
}

func TestComputeCategoryDistribution(t *testing.T) {
	list := []booking.Booking{
		mk("11/03/2026", "corte", "Corte de pelo", 30, 9),
		mk("12/03/2026", "manicura", "Manicura", 25, 10),
		mk("13/03/2026", "pedicura", "Pedicura", 28, 8),
		mk("14/03/2026", "masaje", "Masaje", 40, 12), // unknown service
	}

	s := Compute(list, categoryOf, now)

	require.Len(t, s.Categories, 3)
	assert.Equal(t, CategoryShare{Category: "Uñas", Count: 2, Percent: 50}, s.Categories[0])
	// Same count ties break alphabetically.
	assert.Equal(t, CategoryShare{Category: "Otros", Count: 1, Percent: 25}, s.Categories[1])
	assert.Equal(t, CategoryShare{Category: "Peluquería", Count: 1, Percent: 25}, s.Categories[2])
}

func TestComputeTopServices(t *testing.T) {
	var list []booking.Booking
	add := func(n int, id, name string) {
		for range n {
			list = append(list, mk("20/03/2026", id, name, 10, 5))
		}
	}
	add(4, "corte", "Corte de pelo")
	add(3, "manicura", "Manicura")
	add(2, "pedicura", "Pedicura")
	add(2, "tinte", "Tinte")
	add(1, "peinado", "Peinado")
	add(1, "masaje", "Masaje")
	add(1, "cejas", "Cejas")

	s := Compute(list, categoryOf, now)

	require.Len(t, s.TopServices, TopServicesLimit)
	assert.Equal(t, ServiceCount{Name: "Corte de pelo", Count: 4}, s.TopServices[0])
	assert.Equal(t, ServiceCount{Name: "Manicura", Count: 3}, s.TopServices[1])
	// Ties break alphabetically, then the list is cut at five.
	assert.Equal(t, ServiceCount{Name: "Pedicura", Count: 2}, s.TopServices[2])
	assert.Equal(t, ServiceCount{Name: "Tinte", Count: 2}, s.TopServices[3])
	assert.Equal(t, ServiceCount{Name: "Cejas", Count: 1}, s.TopServices[4])
}

package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendapro/agendapro-backend/internal/catalog"
)

// Wednesday 11 March 2026, mid-morning.
var testNow = time.Date(2026, time.March, 11, 10, 0, 0, 0, time.UTC)

func testCatalog() catalog.Service {
	return catalog.NewService(catalog.Document{
		Services: []catalog.Entry{
			{ID: "corte", Name: "Corte de pelo", Category: "Peluquería", DurationMinutes: 45, Price: 30, DepositPercent: 30},
			{ID: "manicura", Name: "Manicura", Category: "Uñas", DurationMinutes: 60, Price: 25, Deposit: 10},
		},
		Settings: catalog.Settings{MinDeposit: 5, DefaultDepositPercent: 30, CancellationPolicy: "48h de anticipación"},
	})
}

func newTestService(t *testing.T) (*service, Repository) {
	t.Helper()
	repo := NewFileRepository(tempSnapshot(t), testLogger())
	svc := NewService(repo, testCatalog(), 0).(*service)
	svc.now = func() time.Time { return testNow }
	return svc, repo
}

func validRequest() CreateRequest {
	return CreateRequest{
		FirstName: "Isabella",
		LastName:  "Yanes",
		Date:      "20/03/2026",
		ServiceID: "corte",
	}
}

func mustBook(t *testing.T, svc *service, req CreateRequest) *Booking {
	t.Helper()
	q, err := svc.Quote(context.Background(), req)
	require.NoError(t, err)
	b, err := svc.Confirm(context.Background(), q.Token)
	require.NoError(t, err)
	return b
}

func TestQuoteValidationOrder(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	t.Run("missing first name", func(t *testing.T) {
		req := validRequest()
		req.FirstName = "  "
		_, err := svc.Quote(ctx, req)
		assert.ErrorIs(t, err, ErrMissingFields)
	})

	t.Run("missing service", func(t *testing.T) {
		req := validRequest()
		req.ServiceID = ""
		_, err := svc.Quote(ctx, req)
		assert.ErrorIs(t, err, ErrMissingFields)
	})

	t.Run("missing fields reported before bad date", func(t *testing.T) {
		req := validRequest()
		req.FirstName = ""
		req.Date = "not-a-date"
		_, err := svc.Quote(ctx, req)
		assert.ErrorIs(t, err, ErrMissingFields)
	})

	t.Run("malformed date", func(t *testing.T) {
		req := validRequest()
		req.Date = "2026-03-20"
		_, err := svc.Quote(ctx, req)
		assert.ErrorIs(t, err, ErrBadDate)
	})

	t.Run("past date", func(t *testing.T) {
		req := validRequest()
		req.Date = "10/03/2026"
		_, err := svc.Quote(ctx, req)
		assert.ErrorIs(t, err, ErrPastDate)
	})

	t.Run("today is not past", func(t *testing.T) {
		req := validRequest()
		req.Date = "11/03/2026"
		_, err := svc.Quote(ctx, req)
		assert.NoError(t, err)
	})

	t.Run("unknown service", func(t *testing.T) {
		req := validRequest()
		req.ServiceID = "tatuaje"
		_, err := svc.Quote(ctx, req)
		assert.ErrorIs(t, err, ErrServiceNotFound)
	})
}

func TestQuoteNothingPersisted(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	_, err := svc.Quote(ctx, validRequest())
	require.NoError(t, err)

	items, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items, "quoting must not create a booking")
}

func TestQuoteDepositTerms(t *testing.T) {
	svc, _ := newTestService(t)

	q, err := svc.Quote(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "Corte de pelo", q.ServiceName)
	assert.Equal(t, 45, q.DurationMinutes)
	assert.Equal(t, 30.0, q.Price)
	assert.Equal(t, 9.0, q.Deposit)
	assert.Equal(t, 30.0, q.DepositPercent)
	assert.Equal(t, "48h de anticipación", q.CancellationPolicy)
	assert.NotEmpty(t, q.Token)
}

func TestConfirmAppendsBooking(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	req := validRequest()
	req.Phone = "555-0101"
	req.SMSReminder = true

	b := mustBook(t, svc, req)

	assert.Equal(t, PaymentPending, b.PaymentStatus)
	assert.Nil(t, b.PaidAt)
	assert.Equal(t, "20/03/2026", b.Date)
	assert.Equal(t, 30.0, b.Price)
	assert.Equal(t, 9.0, b.Deposit)
	assert.Equal(t, "Sin detalles adicionales", b.Notes)
	assert.True(t, b.SMSReminder)

	items, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestConfirmTokenResolvesOnce(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	q, err := svc.Quote(ctx, validRequest())
	require.NoError(t, err)

	_, err = svc.Confirm(ctx, q.Token)
	require.NoError(t, err)

	_, err = svc.Confirm(ctx, q.Token)
	assert.ErrorIs(t, err, ErrUnknownConfirmation)
}

func TestDeclineLeavesStoreUnchanged(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	q, err := svc.Quote(ctx, validRequest())
	require.NoError(t, err)

	require.NoError(t, svc.Decline(ctx, q.Token))

	items, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	// A declined token cannot be confirmed afterwards.
	_, err = svc.Confirm(ctx, q.Token)
	assert.ErrorIs(t, err, ErrUnknownConfirmation)
}

func TestDenormalizedCopySurvivesCatalogChange(t *testing.T) {
	repo := NewFileRepository(tempSnapshot(t), testLogger())
	svc := NewService(repo, testCatalog(), 0).(*service)
	svc.now = func() time.Time { return testNow }

	b := mustBook(t, svc, validRequest())

	// Swap in a catalog where the same service costs more; the stored
	// booking keeps its original price and deposit.
	svc.catalogSvc = catalog.NewService(catalog.Document{
		Services: []catalog.Entry{{ID: "corte", Name: "Corte de pelo", Price: 99, DepositPercent: 50}},
		Settings: catalog.Settings{MinDeposit: 5, DefaultDepositPercent: 30},
	})

	got, err := svc.GetByID(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, 30.0, got.Price)
	assert.Equal(t, 9.0, got.Deposit)
}

func TestDelete(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	a := mustBook(t, svc, validRequest())
	reqB := validRequest()
	reqB.FirstName = "Carla"
	b := mustBook(t, svc, reqB)

	require.NoError(t, svc.Delete(ctx, a.ID))

	res, err := svc.List(ctx, Filter{Temporal: TemporalAll})
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, b.ID, res.Items[0].ID)

	assert.ErrorIs(t, svc.Delete(ctx, a.ID), ErrNotFound)
}

func TestMarkDepositPaid(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	b := mustBook(t, svc, validRequest())

	paid, err := svc.MarkDepositPaid(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, PaymentPaid, paid.PaymentStatus)
	require.NotNil(t, paid.PaidAt)
	assert.True(t, paid.PaidAt.Equal(testNow))

	_, err = svc.MarkDepositPaid(ctx, b.ID)
	assert.ErrorIs(t, err, ErrAlreadyPaid)

	_, err = svc.MarkDepositPaid(ctx, 12345)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListTemporalFilters(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	// testNow is Wednesday 11/03/2026; its week runs 09/03–15/03.
	today := validRequest()
	today.Date = "11/03/2026"
	mustBook(t, svc, today)

	sameWeek := validRequest()
	sameWeek.FirstName = "Carla"
	sameWeek.Date = "15/03/2026" // Sunday, still this week
	mustBook(t, svc, sameWeek)

	nextWeek := validRequest()
	nextWeek.FirstName = "Lucía"
	nextWeek.Date = "16/03/2026" // Monday of the following week
	mustBook(t, svc, nextWeek)

	res, err := svc.List(ctx, Filter{Temporal: TemporalAll})
	require.NoError(t, err)
	assert.Equal(t, 3, res.Total)

	res, err = svc.List(ctx, Filter{Temporal: TemporalToday})
	require.NoError(t, err)
	require.Equal(t, 1, res.Total)
	assert.Equal(t, "11/03/2026", res.Items[0].Date)

	res, err = svc.List(ctx, Filter{Temporal: TemporalThisWeek})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Total)
	assert.Equal(t, 3, res.StoreTotal)
}

func TestListQueryAndCategory(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	hair := validRequest()
	mustBook(t, svc, hair)

	nails := validRequest()
	nails.FirstName = "Carla"
	nails.LastName = "Moreno"
	nails.ServiceID = "manicura"
	mustBook(t, svc, nails)

	// Case-insensitive substring over names and service name.
	res, err := svc.List(ctx, Filter{Temporal: TemporalAll, Query: "MORE"})
	require.NoError(t, err)
	require.Equal(t, 1, res.Total)
	assert.Equal(t, "Carla", res.Items[0].FirstName)

	res, err = svc.List(ctx, Filter{Temporal: TemporalAll, Query: "corte"})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Total)

	res, err = svc.List(ctx, Filter{Temporal: TemporalAll, Category: "Uñas"})
	require.NoError(t, err)
	require.Equal(t, 1, res.Total)
	assert.Equal(t, "Manicura", res.Items[0].ServiceName)

	res, err = svc.List(ctx, Filter{Temporal: TemporalAll, Query: "carla", Category: "Peluquería"})
	require.NoError(t, err)
	assert.Equal(t, 0, res.Total)
	assert.Equal(t, 2, res.StoreTotal)
}

func TestListSortedByDate(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	late := validRequest()
	late.Date = "25/03/2026"
	mustBook(t, svc, late)

	early := validRequest()
	early.FirstName = "Carla"
	early.Date = "12/03/2026"
	mustBook(t, svc, early)

	res, err := svc.List(ctx, Filter{Temporal: TemporalAll})
	require.NoError(t, err)
	require.Len(t, res.Items, 2)
	assert.Equal(t, "12/03/2026", res.Items[0].Date)
	assert.Equal(t, "25/03/2026", res.Items[1].Date)
}

func TestForDateAndCounts(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	a := validRequest()
	a.Date = "20/03/2026"
	mustBook(t, svc, a)

	b := validRequest()
	b.FirstName = "Carla"
	b.Date = "20/03/2026"
	mustBook(t, svc, b)

	c := validRequest()
	c.FirstName = "Lucía"
	c.Date = "21/03/2026"
	mustBook(t, svc, c)

	got, err := svc.ForDate(ctx, "20/03/2026")
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = svc.ForDate(ctx, "22/03/2026")
	require.NoError(t, err)
	assert.Empty(t, got)

	counts, err := svc.CountsByDate(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"20/03/2026": 2, "21/03/2026": 1}, counts)
}

func TestClearAll(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	mustBook(t, svc, validRequest())
	other := validRequest()
	other.FirstName = "Carla"
	mustBook(t, svc, other)

	n, err := svc.ClearAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	items, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

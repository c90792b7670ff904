package booking

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/agendapro/agendapro-backend/internal/catalog"
	"github.com/agendapro/agendapro-backend/internal/confirmation"
	"github.com/agendapro/agendapro-backend/internal/pkg/dates"
)

// CreateRequest carries the form input for a new booking. Validation
// happens in Quote.
type CreateRequest struct {
	FirstName   string
	LastName    string
	Date        string
	ServiceID   string
	Phone       string
	Email       string
	Notes       string
	SMSReminder bool
}

// Quote is the deposit confirmation presented before a booking is
// committed. It echoes what the confirmation dialog showed: service,
// duration, price, deposit terms and the cancellation policy.
type Quote struct {
	Token              string
	ServiceID          string
	ServiceName        string
	DurationMinutes    int
	Price              float64
	Deposit            float64
	DepositPercent     float64
	CancellationPolicy string
}

// hold is a quoted request waiting for its confirm/decline decision.
type hold struct {
	req   CreateRequest
	quote Quote
}

// ListResult distinguishes an empty store from filters that matched
// nothing: StoreTotal counts all bookings before filtering.
type ListResult struct {
	Items      []Booking
	Total      int
	StoreTotal int
	Page       int
	PageSize   int
}

type Service interface {
	// Quote validates the request, resolves the deposit and parks the
	// booking behind a confirmation token. Nothing is persisted yet.
	Quote(ctx context.Context, req CreateRequest) (*Quote, error)
	// Confirm commits the quoted booking. The token resolves exactly
	// once; an unknown or reused token is ErrUnknownConfirmation.
	Confirm(ctx context.Context, token string) (*Booking, error)
	// Decline discards the quoted booking with no state change.
	Decline(ctx context.Context, token string) error

	List(ctx context.Context, filter Filter) (*ListResult, error)
	GetByID(ctx context.Context, id int64) (*Booking, error)
	Delete(ctx context.Context, id int64) error
	MarkDepositPaid(ctx context.Context, id int64) (*Booking, error)

	// ForDate returns all bookings whose date equals the given
	// DD/MM/YYYY string, in stored order.
	ForDate(ctx context.Context, date string) ([]Booking, error)
	// CountsByDate returns the number of bookings per date string.
	CountsByDate(ctx context.Context) (map[string]int, error)
	// ClearAll wipes the whole agenda and reports how many bookings
	// were removed.
	ClearAll(ctx context.Context) (int, error)
}

type service struct {
	repo          Repository
	catalogSvc    catalog.Service
	confirmations *confirmation.Registry[hold]
	now           func() time.Time
	defaultPage   int
}

func NewService(repo Repository, catalogSvc catalog.Service, defaultPageSize int) Service {
	if defaultPageSize < 1 {
		defaultPageSize = 200
	}
	return &service{
		repo:          repo,
		catalogSvc:    catalogSvc,
		confirmations: confirmation.NewRegistry[hold](),
		now:           time.Now,
		defaultPage:   defaultPageSize,
	}
}

func (s *service) Quote(ctx context.Context, req CreateRequest) (*Quote, error) {
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.Date = strings.TrimSpace(req.Date)
	req.Notes = strings.TrimSpace(req.Notes)

	// Validation order matters: required fields, then format, then
	// past-date, first failure wins.
	if req.FirstName == "" || req.LastName == "" || req.Date == "" || req.ServiceID == "" {
		return nil, ErrMissingFields
	}

	now := s.now()
	day, err := dates.Parse(req.Date, now)
	if err != nil {
		return nil, ErrBadDate
	}
	if dates.BeforeDay(day, now) {
		return nil, ErrPastDate
	}
	req.Date = dates.Format(day)

	entry, err := s.catalogSvc.GetByID(req.ServiceID)
	if err != nil {
		return nil, ErrServiceNotFound
	}

	deposit, percent := s.catalogSvc.DepositFor(entry)
	q := Quote{
		ServiceID:          entry.ID,
		ServiceName:        entry.Name,
		DurationMinutes:    entry.DurationMinutes,
		Price:              entry.Price,
		Deposit:            deposit,
		DepositPercent:     percent,
		CancellationPolicy: s.catalogSvc.Settings().CancellationPolicy,
	}

	q.Token = s.confirmations.Put(hold{req: req, quote: q})
	return &q, nil
}

func (s *service) Confirm(ctx context.Context, token string) (*Booking, error) {
	h, ok := s.confirmations.Resolve(token)
	if !ok {
		return nil, ErrUnknownConfirmation
	}

	notes := h.req.Notes
	if notes == "" {
		notes = "Sin detalles adicionales"
	}

	b := &Booking{
		Date:          h.req.Date,
		FirstName:     h.req.FirstName,
		LastName:      h.req.LastName,
		Phone:         h.req.Phone,
		Email:         h.req.Email,
		ServiceID:     h.quote.ServiceID,
		ServiceName:   h.quote.ServiceName,
		Price:         h.quote.Price,
		Deposit:       h.quote.Deposit,
		Notes:         notes,
		SMSReminder:   h.req.SMSReminder,
		PaymentStatus: PaymentPending,
		CreatedAt:     s.now(),
	}

	if err := s.repo.Add(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) Decline(ctx context.Context, token string) error {
	if _, ok := s.confirmations.Resolve(token); !ok {
		return ErrUnknownConfirmation
	}
	return nil
}

func (s *service) List(ctx context.Context, filter Filter) (*ListResult, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	visible := s.applyFilter(all, filter)
	sortByDate(visible, s.now())

	// Pagination
	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = s.defaultPage
	}

	total := len(visible)
	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	return &ListResult{
		Items:      visible[start:end],
		Total:      total,
		StoreTotal: len(all),
		Page:       page,
		PageSize:   pageSize,
	}, nil
}

// applyFilter runs the three stages in their fixed order: temporal,
// free-text query, category.
func (s *service) applyFilter(all []Booking, filter Filter) []Booking {
	now := s.now()
	visible := make([]Booking, 0, len(all))

	for _, b := range all {
		if !s.matchTemporal(&b, filter.Temporal, now) {
			continue
		}
		if !matchQuery(&b, filter.Query) {
			continue
		}
		if !s.matchCategory(&b, filter.Category) {
			continue
		}
		visible = append(visible, b)
	}
	return visible
}

func (s *service) matchTemporal(b *Booking, temporal Temporal, now time.Time) bool {
	switch temporal {
	case TemporalToday:
		return b.Date == dates.Format(now)
	case TemporalThisWeek:
		day, err := dates.Parse(b.Date, now)
		if err != nil {
			return false
		}
		monday, sunday := dates.WeekSpan(now)
		return !day.Before(monday) && !day.After(sunday)
	default:
		return true
	}
}

func matchQuery(b *Booking, query string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(b.FirstName), query) ||
		strings.Contains(strings.ToLower(b.LastName), query) ||
		strings.Contains(strings.ToLower(b.ServiceName), query)
}

func (s *service) matchCategory(b *Booking, category string) bool {
	if category == "" {
		return true
	}
	entry, err := s.catalogSvc.GetByID(b.ServiceID)
	if err != nil {
		return false
	}
	return entry.Category == category
}

// sortByDate orders bookings by appointment day, earliest first, then
// by creation id for a stable order within a day.
func sortByDate(items []Booking, now time.Time) {
	sort.SliceStable(items, func(i, j int) bool {
		di, erri := dates.Parse(items[i].Date, now)
		dj, errj := dates.Parse(items[j].Date, now)
		if erri != nil || errj != nil {
			return erri == nil
		}
		if !di.Equal(dj) {
			return di.Before(dj)
		}
		return items[i].ID < items[j].ID
	})
}

func (s *service) GetByID(ctx context.Context, id int64) (*Booking, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	// Check existence first so unknown ids surface as 404.
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Remove(ctx, id)
}

func (s *service) MarkDepositPaid(ctx context.Context, id int64) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.PaymentStatus == PaymentPaid {
		return nil, ErrAlreadyPaid
	}

	paidAt := s.now()
	b.PaymentStatus = PaymentPaid
	b.PaidAt = &paidAt

	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) ForDate(ctx context.Context, date string) ([]Booking, error) {
	normalized, err := dates.Normalize(date, s.now())
	if err != nil {
		return nil, ErrBadDate
	}

	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]Booking, 0)
	for _, b := range all {
		if b.Date == normalized {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *service) CountsByDate(ctx context.Context) (map[string]int, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(all))
	for _, b := range all {
		counts[b.Date]++
	}
	return counts, nil
}

func (s *service) ClearAll(ctx context.Context) (int, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return 0, err
	}
	if err := s.repo.ReplaceAll(ctx, []Booking{}); err != nil {
		return 0, err
	}
	return len(all), nil
}

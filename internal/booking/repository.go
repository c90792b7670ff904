package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/agendapro/agendapro-backend/internal/pkg/logger"
)

type Repository interface {
	// List returns a copy of the current booking list in stored order.
	List(ctx context.Context) ([]Booking, error)
	// GetByID returns the booking with the given id, or ErrNotFound.
	GetByID(ctx context.Context, id int64) (*Booking, error)
	// Add assigns an id, appends the booking and flushes the snapshot.
	Add(ctx context.Context, b *Booking) error
	// Remove deletes by id and flushes. Removing a missing id is a
	// no-op, not an error.
	Remove(ctx context.Context, id int64) error
	// Update replaces the stored booking with the same id and flushes.
	Update(ctx context.Context, b *Booking) error
	// ReplaceAll overwrites the whole list and flushes.
	ReplaceAll(ctx context.Context, list []Booking) error
}

// fileRepository keeps the booking list in memory and mirrors every
// mutation to a single JSON snapshot file, overwritten wholesale. The
// persisted data is trusted verbatim on reload.
type fileRepository struct {
	mu    sync.Mutex
	path  string
	items []Booking
	now   func() time.Time
	log   *logger.Logger
}

// NewFileRepository loads the snapshot at path. Absent or unparsable
// content means an empty list, never an error the caller sees.
func NewFileRepository(path string, log *logger.Logger) Repository {
	r := &fileRepository{
		path: path,
		now:  time.Now,
		log:  log,
	}
	r.load()
	return r
}

func (r *fileRepository) load() {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		if !os.IsNotExist(err) {
			r.log.Warn("booking snapshot unreadable, starting empty", "path", r.path, "error", err)
		}
		r.items = []Booking{}
		return
	}

	var items []Booking
	if err := json.Unmarshal(raw, &items); err != nil {
		r.log.Warn("booking snapshot unparsable, starting empty", "path", r.path, "error", err)
		r.items = []Booking{}
		return
	}
	if items == nil {
		items = []Booking{}
	}
	r.items = items
}

// flush writes the whole list atomically. Callers hold r.mu.
func (r *fileRepository) flush() error {
	raw, err := json.MarshalIndent(r.items, "", "  ")
	if err != nil {
		return fmt.Errorf("encode booking snapshot: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(r.path), 0755); err != nil {
		return fmt.Errorf("create snapshot directory: %w", err)
	}

	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0644); err != nil {
		return fmt.Errorf("write booking snapshot: %w", err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		return fmt.Errorf("replace booking snapshot: %w", err)
	}
	return nil
}

func (r *fileRepository) List(ctx context.Context) ([]Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Booking, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *fileRepository) GetByID(ctx context.Context, id int64) (*Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID == id {
			b := r.items[i]
			return &b, nil
		}
	}
	return nil, ErrNotFound
}

func (r *fileRepository) Add(ctx context.Context, b *Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if b.ID == 0 {
		b.ID = r.nextID()
	}

	r.items = append(r.items, *b)
	if err := r.flush(); err != nil {
		// Roll back so memory and disk stay in step.
		r.items = r.items[:len(r.items)-1]
		return err
	}
	return nil
}

// nextID is the creation timestamp in milliseconds, bumped forward
// while taken. Callers hold r.mu.
func (r *fileRepository) nextID() int64 {
	id := r.now().UnixMilli()
	for r.exists(id) {
		id++
	}
	return id
}

func (r *fileRepository) exists(id int64) bool {
	for i := range r.items {
		if r.items[i].ID == id {
			return true
		}
	}
	return false
}

func (r *fileRepository) Remove(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID == id {
			removed := r.items[i]
			r.items = append(r.items[:i], r.items[i+1:]...)
			if err := r.flush(); err != nil {
				r.items = append(r.items[:i], append([]Booking{removed}, r.items[i:]...)...)
				return err
			}
			return nil
		}
	}
	return nil
}

func (r *fileRepository) Update(ctx context.Context, b *Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID == b.ID {
			prev := r.items[i]
			r.items[i] = *b
			if err := r.flush(); err != nil {
				r.items[i] = prev
				return err
			}
			return nil
		}
	}
	return ErrNotFound
}

func (r *fileRepository) ReplaceAll(ctx context.Context, list []Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev := r.items
	if list == nil {
		list = []Booking{}
	}
	r.items = list
	if err := r.flush(); err != nil {
		r.items = prev
		return err
	}
	return nil
}

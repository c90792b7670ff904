// Package confirmation holds values that wait for a single yes/no
// decision, the way a confirmation dialog waits for its one click.
package confirmation

import (
	"sync"

	"github.com/google/uuid"
)

// Registry stores pending values keyed by an opaque token. A token
// resolves exactly once: Resolve removes the value, so a second call
// with the same token misses. Entries never expire; a decision may be
// left open indefinitely.
type Registry[T any] struct {
	mu      sync.Mutex
	pending map[string]T
}

func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{pending: make(map[string]T)}
}

// Put stores v and returns the token that resolves it.
func (r *Registry[T]) Put(v T) string {
	token := uuid.NewString()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.pending[token] = v

	return token
}

// Resolve removes and returns the value for token. ok is false for an
// unknown token or one that was already resolved.
func (r *Registry[T]) Resolve(token string) (T, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	v, ok := r.pending[token]
	if ok {
		delete(r.pending, token)
	}
	return v, ok
}

// Len reports how many decisions are still open.
func (r *Registry[T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pending)
}

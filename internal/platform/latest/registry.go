// Package latest implements a "latest wins" request registry: starting a
// request under a key cancels whatever was still running under that key, so
// a slow earlier response can never overwrite a newer one.
package latest

import (
	"context"
	"errors"
	"sync"

	"github.com/jsamuelsen11/todo-gateway/internal/domain"
)

type entry struct {
	cancel context.CancelCauseFunc
}

// Registry maps request keys to the cancel handle of their current request.
// The zero value is ready to use.
type Registry struct {
	mu      sync.Mutex
	entries map[string]*entry
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{}
}

// Start registers a new request under key and cancels the previous one with
// cause domain.ErrSuperseded. The returned context is canceled when ctx is,
// when a newer request replaces this one, or when finish runs. finish evicts
// the entry only if it is still the current one; calling it again is a no-op.
func (r *Registry) Start(ctx context.Context, key string) (context.Context, func()) {
	reqCtx, cancel := context.WithCancelCause(ctx)
	e := &entry{cancel: cancel}

	r.mu.Lock()
	if r.entries == nil {
		r.entries = make(map[string]*entry)
	}
	prev := r.entries[key]
	r.entries[key] = e
	r.mu.Unlock()

	if prev != nil {
		prev.cancel(domain.ErrSuperseded)
	}

	var once sync.Once
	finish := func() {
		once.Do(func() {
			r.mu.Lock()
			if r.entries[key] == e {
				delete(r.entries, key)
			}
			r.mu.Unlock()
			cancel(context.Canceled)
		})
	}
	return reqCtx, finish
}

// InFlight reports whether a request is registered under key.
func (r *Registry) InFlight(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.entries[key]
	return ok
}

// Len returns the number of keys with a request in flight.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Superseded reports whether ctx was canceled because a newer request took
// its key.
func Superseded(ctx context.Context) bool {
	return errors.Is(context.Cause(ctx), domain.ErrSuperseded)
}

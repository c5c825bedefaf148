// Package appctx provides request-scoped state for orchestration services.
//
// A RequestContext memoizes reads made while serving one HTTP request and
// queues reversible writes that run together on Commit:
//
//	rc := appctx.FromContext(ctx)
//
//	td, err := appctx.GetOrFetch(ctx, rc, "todo:123", fetchTodo)
//	rc.AddAction(&moveAction{id: 123, to: todo.ProgressCompleted})
//
//	err = rc.Commit(ctx)
//
// If any queued action fails, the ones that already ran are rolled back in
// reverse order.
package appctx

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/jsamuelsen11/todo-gateway/internal/domain"
)

// ErrAlreadyCommitted is returned when AddAction or Commit is called on a
// RequestContext that has already been committed.
var ErrAlreadyCommitted = errors.New("appctx: request context already committed")

// ErrNilAction is returned when a nil Action is passed to AddAction.
var ErrNilAction = errors.New("appctx: nil action")

// ErrTypeMismatch is returned by GetOrFetch when a cached value's type does
// not match the requested type T. It means one key was used with two types.
var ErrTypeMismatch = errors.New("appctx: cached value type mismatch")

// RequestContext carries the read cache and write queue of one request.
// Create one per request; it must not outlive it.
type RequestContext struct {
	mu        sync.Mutex
	cache     map[string]cacheEntry
	actions   []domain.Action
	committed bool
}

// cacheEntry stores the result of a fetch. Errors are cached too, so a
// failing lookup is not retried within the same request.
type cacheEntry struct {
	value any
	err   error
}

// New creates an empty RequestContext.
func New() *RequestContext {
	return &RequestContext{cache: make(map[string]cacheEntry)}
}

// GetOrFetch returns the cached value for key, or calls fetchFn with ctx and
// caches its result. ctx must be the caller's, since it carries the session
// token, logger and deadline the fetch needs. The lock is not held while fetchFn runs, so two concurrent
// misses on one key may both fetch; the last result is kept.
func GetOrFetch[T any](ctx context.Context, rc *RequestContext, key string, fetchFn func(ctx context.Context) (T, error)) (T, error) {
	rc.mu.Lock()
	entry, ok := rc.cache[key]
	rc.mu.Unlock()

	if ok {
		var zero T
		if entry.err != nil {
			return zero, entry.err
		}
		v, ok := entry.value.(T)
		if !ok {
			return zero, fmt.Errorf("%w: key %q holds %T, requested %T", ErrTypeMismatch, key, entry.value, zero)
		}
		return v, nil
	}

	val, err := fetchFn(ctx)
	rc.mu.Lock()
	rc.cache[key] = cacheEntry{value: val, err: err}
	rc.mu.Unlock()
	return val, err
}

// Put overwrites the cached value for key, so later reads in the same
// request see a write the request just made.
func (rc *RequestContext) Put(key string, value any) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.cache[key] = cacheEntry{value: value}
}

// Forget drops key from the cache.
func (rc *RequestContext) Forget(key string) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	delete(rc.cache, key)
}

type ctxKey struct{}

// WithRequestContext returns a copy of ctx carrying rc.
func WithRequestContext(ctx context.Context, rc *RequestContext) context.Context {
	return context.WithValue(ctx, ctxKey{}, rc)
}

// FromContext returns the RequestContext stored in ctx, or a fresh one when
// none was installed (background jobs, tests).
func FromContext(ctx context.Context) *RequestContext {
	if rc, ok := ctx.Value(ctxKey{}).(*RequestContext); ok {
		return rc
	}
	return New()
}

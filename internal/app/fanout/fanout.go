// Package fanout runs one function over many items with a bounded number of
// goroutines and returns per-item results in input order. Bulk todo
// operations use it so one failing item never hides the outcome of the rest.
package fanout

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// Result holds the outcome of processing a single item.
// Either Value is populated (on success) or Err is non-nil (on failure).
type Result[R any] struct {
	Value R
	Err   error
}

// Run executes fn for each item using at most maxWorkers goroutines at a
// time. Results line up with items by index.
//
// Items that have not started when ctx is canceled record the context's
// cause and fn is not called for them. Items already running finish; fn is
// expected to honor ctx itself.
//
// An empty items slice returns an empty non-nil slice. maxWorkers below 1 is
// treated as 1.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	if len(items) == 0 {
		return []Result[R]{}
	}
	maxWorkers = max(maxWorkers, 1)

	results := make([]Result[R], len(items))
	sem := make(chan struct{}, maxWorkers)
	var wg sync.WaitGroup

	for i, item := range items {
		wg.Go(func() {
			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				results[i] = Result[R]{Err: context.Cause(ctx)}
				return
			}
			if ctx.Err() != nil {
				results[i] = Result[R]{Err: context.Cause(ctx)}
				return
			}

			val, err := fn(ctx, item)
			results[i] = Result[R]{Value: val, Err: err}
		})
	}

	wg.Wait()
	return results
}

// Join returns the failures in results as one error, each prefixed with its
// item index, or nil when every item succeeded.
func Join[R any](results []Result[R]) error {
	var errs []error
	for i, r := range results {
		if r.Err != nil {
			errs = append(errs, fmt.Errorf("item %d: %w", i, r.Err))
		}
	}
	return errors.Join(errs...)
}

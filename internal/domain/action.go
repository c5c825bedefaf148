package domain

import "context"

// Action is one step of a multi-step write against the backing API. Steps
// that succeeded are undone in reverse order when a later step fails.
type Action interface {
	// Execute applies the step.
	Execute(ctx context.Context) error

	// Rollback undoes a step whose Execute returned nil. It may run on a
	// different context than Execute, typically one detached from the
	// caller's cancellation.
	Rollback(ctx context.Context) error

	// Description names the step in logs, e.g. "move todo 7 from
	// not_started to completed".
	Description() string
}

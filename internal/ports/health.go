package ports

import "context"

// HealthChecker is a dependency that can report its own health.
type HealthChecker interface {
	// Name identifies the dependency in readiness output (e.g. "todo-api").
	Name() string

	// HealthCheck returns nil when healthy. Implementations honor ctx.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry runs every registered checker for the readiness probe.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll returns one entry per checker name; nil means healthy.
	CheckAll(ctx context.Context) map[string]error
}

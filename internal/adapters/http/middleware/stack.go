package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/todo-gateway/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-gateway/internal/platform/telemetry"
)

// StackConfig holds what the gateway middleware needs. Localizer and
// Metrics may be nil.
type StackConfig struct {
	Logger    *slog.Logger
	Localizer dto.Localizer
	Metrics   *telemetry.Metrics
	// Timeout bounds handler time; see Timeout.
	Timeout time.Duration
}

// Stack returns the gateway middleware, outermost first. Recovery wraps
// everything so a panic anywhere still produces a problem response.
// Timeout and AppContext sit innermost so the deadline covers only the
// handler and the RequestContext is built per handler run.
func Stack(cfg StackConfig) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		Recovery(cfg.Logger, cfg.Localizer),
		RequestID(),
		CorrelationID(),
		OpenTelemetry(cfg.Metrics),
		Session(),
		Language(),
		Logging(cfg.Logger),
		Timeout(cfg.Timeout, cfg.Localizer),
		AppContext(),
	}
}

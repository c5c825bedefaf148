package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/jsamuelsen11/todo-gateway/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/todo-gateway/internal/platform/telemetry"
)

// These tests are not parallel because they replace the global TracerProvider.

func setupTracer(t *testing.T) *tracetest.InMemoryExporter {
	t.Helper()

	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	t.Cleanup(func() {
		_ = tp.Shutdown(t.Context())
	})

	return exporter
}

// routed mounts the otel middleware on a chi router the way the gateway does.
func routed(mw func(http.Handler) http.Handler, pattern string, status int) http.Handler {
	r := chi.NewRouter()
	r.Use(mw)
	r.Get(pattern, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
	})
	return r
}

func spanAttrs(t *testing.T, exporter *tracetest.InMemoryExporter) (string, map[string]any) {
	t.Helper()
	spans := exporter.GetSpans()
	if len(spans) == 0 {
		t.Fatal("no spans recorded")
	}
	attrs := make(map[string]any)
	for _, a := range spans[0].Attributes {
		attrs[string(a.Key)] = a.Value.AsInterface()
	}
	return spans[0].Name, attrs
}

func TestOpenTelemetry_NamesSpanByRoute(t *testing.T) {
	exporter := setupTracer(t)

	handler := routed(middleware.OpenTelemetry(nil), "/api/v1/todos/{id}", http.StatusOK)
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/todos/42", http.NoBody))

	name, attrs := spanAttrs(t, exporter)
	if name != "HTTP GET /api/v1/todos/{id}" {
		t.Errorf("span name = %q, want %q", name, "HTTP GET /api/v1/todos/{id}")
	}
	if attrs["http.route"] != "/api/v1/todos/{id}" {
		t.Errorf("http.route = %v, want the pattern", attrs["http.route"])
	}
	if attrs["http.target"] != "/api/v1/todos/42" {
		t.Errorf("http.target = %v, want the path", attrs["http.target"])
	}
}

func TestOpenTelemetry_UnmatchedRoute(t *testing.T) {
	exporter := setupTracer(t)

	handler := middleware.OpenTelemetry(nil)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/nowhere", http.NoBody))

	name, attrs := spanAttrs(t, exporter)
	if name != "HTTP POST unmatched" {
		t.Errorf("span name = %q, want %q", name, "HTTP POST unmatched")
	}
	if status, ok := attrs["http.status_code"].(int64); !ok || status != http.StatusNotFound {
		t.Errorf("http.status_code = %v, want %d", attrs["http.status_code"], http.StatusNotFound)
	}
}

func TestOpenTelemetry_SetsErrorStatusOn5xx(t *testing.T) {
	exporter := setupTracer(t)

	handler := routed(middleware.OpenTelemetry(nil), "/boom", http.StatusBadGateway)
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/boom", http.NoBody))

	spans := exporter.GetSpans()
	if len(spans) == 0 {
		t.Fatal("no spans recorded")
	}
	if spans[0].Status.Code != codes.Error {
		t.Errorf("span status code = %d, want %d (Error)", spans[0].Status.Code, codes.Error)
	}
}

func TestOpenTelemetry_RecordsMetrics(t *testing.T) {
	t.Parallel()

	reader := metric.NewManualReader()
	provider := metric.NewMeterProvider(metric.WithReader(reader))
	metrics, err := telemetry.NewMetrics(provider, "test")
	if err != nil {
		t.Fatalf("NewMetrics() error = %v", err)
	}

	handler := routed(middleware.OpenTelemetry(metrics), "/api/v1/todos", http.StatusOK)
	for range 2 {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/todos", http.NoBody))
	}

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(t.Context(), &rm); err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "http.server.request.total" {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok || len(sum.DataPoints) != 1 {
				t.Fatalf("request total data = %#v, want one series", m.Data)
			}
			if sum.DataPoints[0].Value != 2 {
				t.Errorf("request total = %d, want 2", sum.DataPoints[0].Value)
			}
			return
		}
	}
	t.Error("http.server.request.total not recorded")
}

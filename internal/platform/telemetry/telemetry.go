// Package telemetry sets up OpenTelemetry tracing and metrics, exporting to
// stdout during development and to an OTLP/HTTP collector in production.
//
//	tp, err := telemetry.InitTracer(ctx, "todo-gateway", telemetry.ExporterStdout, "")
//	mp, err := telemetry.InitMeter(ctx, "todo-gateway", telemetry.ExporterStdout, "")
//	metrics, err := telemetry.NewMetrics(mp, "todo-gateway")
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"
)

// Exporter names accepted by InitTracer and InitMeter.
const (
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
)

// Metric attribute keys.
var (
	AttrHTTPMethod  = attribute.Key("http.method")
	AttrHTTPStatus  = attribute.Key("http.status_code")
	AttrHTTPRoute   = attribute.Key("http.route")
	AttrPeerService = attribute.Key("peer.service")
	AttrResult      = attribute.Key("result")
	AttrLocale      = attribute.Key("locale")
)

// Search outcomes recorded on SearchTotal.
const (
	SearchCompleted  = "completed"
	SearchSuperseded = "superseded"
	SearchFailed     = "failed"
)

// Metrics holds the registered instruments.
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
	ClientRequestDuration metric.Float64Histogram
	ClientRequestTotal    metric.Int64Counter

	// SearchTotal counts todo searches by outcome (see Search* constants).
	SearchTotal metric.Int64Counter
	// QuickAddTotal counts quick-add parses by locale and whether a date matched.
	QuickAddTotal metric.Int64Counter
	// BulkItems records the item count of bulk move and delete requests.
	BulkItems metric.Int64Histogram
}

// InitTracer registers a global TracerProvider and the W3C propagators.
// Callers shut the provider down on exit.
func InitTracer(ctx context.Context, serviceName, exporter, endpoint string) (*sdktrace.TracerProvider, error) {
	if err := checkExporter(exporter, endpoint); err != nil {
		return nil, err
	}

	res, err := newResource(serviceName)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	var spanExporter sdktrace.SpanExporter
	if exporter == ExporterOTLP {
		opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(hostPort(endpoint))}
		if !isHTTPS(endpoint) {
			opts = append(opts, otlptracehttp.WithInsecure())
		}
		spanExporter, err = otlptracehttp.New(ctx, opts...)
	} else {
		spanExporter, err = stdouttrace.New(stdouttrace.WithPrettyPrint())
	}
	if err != nil {
		return nil, fmt.Errorf("creating span exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(spanExporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return tp, nil
}

// InitMeter registers a global MeterProvider. Callers shut it down on exit.
func InitMeter(ctx context.Context, serviceName, exporter, endpoint string) (*sdkmetric.MeterProvider, error) {
	if err := checkExporter(exporter, endpoint); err != nil {
		return nil, err
	}

	res, err := newResource(serviceName)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	var metricExporter sdkmetric.Exporter
	if exporter == ExporterOTLP {
		opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(hostPort(endpoint))}
		if !isHTTPS(endpoint) {
			opts = append(opts, otlpmetrichttp.WithInsecure())
		}
		metricExporter, err = otlpmetrichttp.New(ctx, opts...)
	} else {
		metricExporter, err = stdoutmetric.New()
	}
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExporter)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(mp)

	return mp, nil
}

// NewMetrics registers every instrument on a meter named scope.
func NewMetrics(mp metric.MeterProvider, scope string) (*Metrics, error) {
	meter := mp.Meter(scope)

	var (
		m    Metrics
		errs []error
	)
	record := func(name string, err error) {
		if err != nil {
			errs = append(errs, fmt.Errorf("creating %s: %w", name, err))
		}
	}

	var err error
	m.ServerRequestDuration, err = meter.Float64Histogram("http.server.request.duration",
		metric.WithDescription("Duration of incoming HTTP requests"), metric.WithUnit("s"))
	record("http.server.request.duration", err)

	m.ServerRequestTotal, err = meter.Int64Counter("http.server.request.total",
		metric.WithDescription("Total number of incoming HTTP requests"), metric.WithUnit("{request}"))
	record("http.server.request.total", err)

	m.ClientRequestDuration, err = meter.Float64Histogram("http.client.request.duration",
		metric.WithDescription("Duration of requests to the todo API"), metric.WithUnit("s"))
	record("http.client.request.duration", err)

	m.ClientRequestTotal, err = meter.Int64Counter("http.client.request.total",
		metric.WithDescription("Total number of requests to the todo API"), metric.WithUnit("{request}"))
	record("http.client.request.total", err)

	m.SearchTotal, err = meter.Int64Counter("todo.search.total",
		metric.WithDescription("Todo searches by outcome"), metric.WithUnit("{search}"))
	record("todo.search.total", err)

	m.QuickAddTotal, err = meter.Int64Counter("todo.quickadd.total",
		metric.WithDescription("Quick-add parses by locale and date match"), metric.WithUnit("{parse}"))
	record("todo.quickadd.total", err)

	m.BulkItems, err = meter.Int64Histogram("todo.bulk.items",
		metric.WithDescription("Items per bulk request"), metric.WithUnit("{todo}"))
	record("todo.bulk.items", err)

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return &m, nil
}

func checkExporter(exporter, endpoint string) error {
	switch exporter {
	case ExporterStdout:
		return nil
	case ExporterOTLP:
		if endpoint == "" {
			return errors.New("otlp exporter requires an endpoint")
		}
		return nil
	default:
		return fmt.Errorf("unsupported exporter %q", exporter)
	}
}

func newResource(serviceName string) (*resource.Resource, error) {
	return resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(semconv.SchemaURL, semconv.ServiceName(serviceName)),
	)
}

// hostPort turns "http://collector:4318" into "collector:4318". Bare
// host:port values pass through.
func hostPort(endpoint string) string {
	u, err := url.Parse(endpoint)
	if err != nil || u.Host == "" {
		return endpoint
	}
	return u.Host
}

func isHTTPS(endpoint string) bool {
	u, err := url.Parse(endpoint)
	return err == nil && u.Scheme == "https"
}

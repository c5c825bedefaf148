// Package main runs the todo gateway. It wires dependencies with samber/do,
// serves HTTP, and shuts down gracefully on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/jsamuelsen11/todo-gateway/internal/adapters/clients/acl"
	adapthttp "github.com/jsamuelsen11/todo-gateway/internal/adapters/http"
	"github.com/jsamuelsen11/todo-gateway/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/todo-gateway/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/todo-gateway/internal/app"
	"github.com/jsamuelsen11/todo-gateway/internal/domain/quickadd"
	"github.com/jsamuelsen11/todo-gateway/internal/platform/config"
	"github.com/jsamuelsen11/todo-gateway/internal/platform/health"
	"github.com/jsamuelsen11/todo-gateway/internal/platform/httpclient"
	"github.com/jsamuelsen11/todo-gateway/internal/platform/i18n"
	"github.com/jsamuelsen11/todo-gateway/internal/platform/latest"
	"github.com/jsamuelsen11/todo-gateway/internal/platform/logging"
	"github.com/jsamuelsen11/todo-gateway/internal/platform/telemetry"
	"github.com/jsamuelsen11/todo-gateway/internal/ports"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second

	// backingAPIName labels the backing API in metrics, spans and readiness.
	backingAPIName = "todo-api"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, prod)")
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	slog.SetDefault(logger)

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(injector, cfg, logger)

	// Resolving the server wires the whole graph, so a bad keyword set or
	// message catalog fails here rather than on the first request.
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(do.MustInvoke[*acl.TodoClient](injector))

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}
	<-serverErr

	if err := injector.Shutdown(); err != nil {
		logger.Error("container shutdown error", slog.Any("error", err))
	}

	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

// otelProviders bundles the OpenTelemetry providers. Every field is nil when
// telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx, cfg.Telemetry.ServiceName, cfg.Telemetry.Exporter, cfg.Telemetry.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx, cfg.Telemetry.ServiceName, cfg.Telemetry.Exporter, cfg.Telemetry.Endpoint)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp, cfg.Telemetry.ServiceName)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{tracer: tp, meter: mp, metrics: metrics}, nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	// Platform.
	do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.Client, backingAPIName, metrics, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (*i18n.Translator, error) {
		return i18n.New(cfg.Locale.Default)
	})

	do.Provide(injector, func(_ do.Injector) (*quickadd.Catalog, error) {
		return quickadd.LoadCatalog(cfg.Locale.Default, cfg.Locale.Supported)
	})

	do.Provide(injector, func(_ do.Injector) (*latest.Registry, error) {
		return latest.New(), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(health.WithCheckTimeout(cfg.Client.Timeout)), nil
	})

	// Backing API adapters.
	do.Provide(injector, func(i do.Injector) (*acl.TodoClient, error) {
		return acl.NewTodoClient(do.MustInvoke[*httpclient.Client](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TodoClient, error) {
		return do.MustInvoke[*acl.TodoClient](i), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.AuthClient, error) {
		return acl.NewAuthClient(do.MustInvoke[*httpclient.Client](i)), nil
	})

	// Application services.
	do.Provide(injector, func(i do.Injector) (ports.TodoService, error) {
		return app.NewTodoService(
			do.MustInvoke[ports.TodoClient](i),
			do.MustInvoke[*quickadd.Catalog](i),
			do.MustInvoke[*latest.Registry](i),
			app.TodoLimits{
				SearchKeyPrefix: cfg.Search.KeyPrefix,
				BulkMaxWorkers:  cfg.Bulk.MaxWorkers,
				BulkMaxItems:    cfg.Bulk.MaxItems,
			},
			do.MustInvoke[*telemetry.Metrics](i),
			logger,
		), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.AuthService, error) {
		return app.NewAuthService(do.MustInvoke[ports.AuthClient](i), logger), nil
	})

	// Inbound HTTP.
	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		tr := do.MustInvoke[*i18n.Translator](i)
		stack := middleware.Stack(middleware.StackConfig{
			Logger:    logger,
			Localizer: tr,
			Metrics:   do.MustInvoke[*telemetry.Metrics](i),
			Timeout:   cfg.Server.WriteTimeout,
		})

		return adapthttp.NewRouter(adapthttp.Handlers{
			Todo:      handlers.NewTodoHandler(do.MustInvoke[ports.TodoService](i), tr),
			Auth:      handlers.NewAuthHandler(do.MustInvoke[ports.AuthService](i), tr),
			Health:    handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i)),
			Localizer: tr,
		}, stack...), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		return adapthttp.NewServer(cfg.Server, do.MustInvoke[nethttp.Handler](i), logger), nil
	})
}

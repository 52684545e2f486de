package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/aretw0/sortvis"
	"github.com/aretw0/sortvis/internal/config"
	"github.com/aretw0/sortvis/internal/runtime"
	httpAdapter "github.com/aretw0/sortvis/pkg/adapters/http"
	"github.com/aretw0/sortvis/pkg/adapters/mcp"
	"github.com/aretw0/sortvis/pkg/observability"
	"github.com/aretw0/sortvis/pkg/ports"
	"github.com/aretw0/sortvis/pkg/runner"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.opentelemetry.io/otel"
)

const shutdownTimeout = 5 * time.Second

// Backend is the replay engine shared by the network adapters, with its
// step cache and metrics registry.
type Backend struct {
	Engine   *runtime.Engine
	Cache    ports.StepCache
	Registry *prometheus.Registry
	Logger   *slog.Logger

	closeCache func() error
}

// NewBackend wires the engine to the configured cache, metrics and logging hooks.
func NewBackend(ctx context.Context, cfg config.Config, logger *slog.Logger) (*Backend, error) {
	cache, closeCache, err := openCache(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	hooks := observability.LoggingHooks(logger)
	var reg *prometheus.Registry
	if cfg.Metrics {
		reg = prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		hooks = hooks.Merge(observability.NewMetrics(reg).Hooks())
	}

	engine := runtime.NewEngine(
		runtime.WithLogger(logger),
		runtime.WithLifecycleHooks(hooks),
		runtime.WithStepCache(cache),
	)
	return &Backend{
		Engine:     engine,
		Cache:      cache,
		Registry:   reg,
		Logger:     logger,
		closeCache: closeCache,
	}, nil
}

// Close releases the step cache connection.
func (b *Backend) Close() error {
	return b.closeCache()
}

// Handler builds the HTTP API over the backend.
func (b *Backend) Handler() (http.Handler, error) {
	opts := []httpAdapter.Option{
		httpAdapter.WithLogger(b.Logger),
		httpAdapter.WithTracerProvider(otel.GetTracerProvider()),
		httpAdapter.WithRunnerOptions(runner.WithLogger(b.Logger), runner.WithEngine(b.Engine)),
	}
	if b.Registry != nil {
		opts = append(opts, httpAdapter.WithMetrics(b.Registry))
	}
	return httpAdapter.NewHandler(b.Engine, opts...)
}

// Serve runs the HTTP API until ctx is cancelled, then shuts down gracefully.
func Serve(ctx context.Context, cfg config.Config) error {
	logger := serverLogger(cfg.Debug)

	shutdownTracing, err := SetupTracing(ctx, cfg.OTelEndpoint, sortvis.Version)
	if err != nil {
		return fmt.Errorf("setup tracing: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			logger.Warn("flushing traces", "err", err)
		}
	}()

	backend, err := NewBackend(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer backend.Close()

	handler, err := backend.Handler()
	if err != nil {
		return err
	}
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("sortvis server listening", "addr", srv.Addr, "metrics", cfg.Metrics)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logger.Info("shutting down server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			_ = srv.Close()
			return fmt.Errorf("graceful shutdown did not complete in %v: %w", shutdownTimeout, err)
		}
		return nil
	}
}

// MCP transports.
const (
	TransportStdio = "stdio"
	TransportSSE   = "sse"
)

// ServeMCP runs the MCP server on the chosen transport.
func ServeMCP(ctx context.Context, cfg config.Config, transport string, port int) error {
	// Stdout carries JSON-RPC on stdio, so logs only go to Stderr.
	logger := serverLogger(cfg.Debug)

	backend, err := NewBackend(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer backend.Close()

	srv := mcp.NewServer(backend.Engine, logger)
	switch transport {
	case TransportStdio:
		logger.Info("starting MCP server", "transport", transport)
		return srv.ServeStdio()
	case TransportSSE:
		err := srv.ServeSSE(ctx, port)
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
	return fmt.Errorf("unknown transport %q, supported: %s, %s", transport, TransportStdio, TransportSSE)
}

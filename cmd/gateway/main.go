// Package main is the entry point for the marketplace gateway.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vyrodovalexey/marketgw/internal/backend"
	"github.com/vyrodovalexey/marketgw/internal/config"
	"github.com/vyrodovalexey/marketgw/internal/graph"
	"github.com/vyrodovalexey/marketgw/internal/health"
	"github.com/vyrodovalexey/marketgw/internal/observability"
	"github.com/vyrodovalexey/marketgw/internal/proxy"
	"github.com/vyrodovalexey/marketgw/internal/server"
)

const shutdownTimeout = 30 * time.Second

// Version information (set at build time).
var (
	version   = "dev"
	gitCommit = "unknown"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		os.Stderr.WriteString("configuration error: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger, err := observability.NewLogger(observability.LogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	if err != nil {
		os.Stderr.WriteString("logger error: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("starting gateway",
		observability.String("version", version),
		observability.String("commit", gitCommit),
	)

	tracer, err := observability.NewTracer(observability.TracerConfig{
		ServiceName:  "marketgw",
		OTLPEndpoint: cfg.OTLPEndpoint,
		SamplingRate: cfg.TraceSamplingRate,
		Enabled:      cfg.OTLPEndpoint != "",
	})
	if err != nil {
		logger.Error("tracer init failed", observability.Error(err))
		os.Exit(1)
	}

	// One pooled transport shared by the proxy and the backend client.
	transport := backend.NewTransport()

	forwarder := proxy.NewForwarder(
		proxy.WithTransport(transport),
		proxy.WithLogger(logger),
		proxy.WithMetrics(proxy.GetMetrics()),
	)

	client := backend.NewClient(
		backend.WithTransport(transport),
		backend.WithTimeout(cfg.RequestTimeout),
		backend.WithLogger(logger),
		backend.WithMetrics(backend.GetMetrics()),
	)

	resolver := graph.NewResolver(graph.Backends{
		Orders:        client.Service("order", cfg.Services.Order),
		Payments:      client.Service("payment", cfg.Services.Payment),
		Partners:      client.Service("partner", cfg.Services.Partner),
		Offers:        client.Service("offer", cfg.Services.Offer),
		Users:         client.Service("user", cfg.Services.User),
		Notifications: client.Service("notification", cfg.Services.Notification),
		Reviews:       client.Service("review", cfg.Services.Review),
		Auth:          client.Service("auth", cfg.Services.Auth),
	}, graph.WithLogger(logger))

	schema, err := graph.NewSchema(resolver)
	if err != nil {
		logger.Error("schema build failed", observability.Error(err))
		os.Exit(1)
	}

	checker := health.NewChecker()
	srv := server.New(server.Dependencies{
		Config:    cfg,
		Logger:    observability.Zap(logger),
		Forwarder: forwarder,
		Schema:    schema,
		Checker:   checker,
	})

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info("received signal", observability.String("signal", sig.String()))
	case err := <-errCh:
		logger.Error("server failed", observability.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown incomplete", observability.Error(err))
	}

	if err := tracer.Shutdown(shutdownCtx); err != nil {
		logger.Warn("tracer shutdown failed", observability.Error(err))
	}

	transport.CloseIdleConnections()
	logger.Info("gateway stopped")
}

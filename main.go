package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	appOrder "github.com/Zhima-Mochi/brewterm/internal/application/order"
	"github.com/Zhima-Mochi/brewterm/internal/config"
	"github.com/Zhima-Mochi/brewterm/internal/infrastructure/id"
	"github.com/Zhima-Mochi/brewterm/internal/infrastructure/memory"
	infraobs "github.com/Zhima-Mochi/brewterm/internal/infrastructure/observability"
	"github.com/Zhima-Mochi/brewterm/internal/infrastructure/observability/oteltrace"
	"github.com/Zhima-Mochi/brewterm/internal/infrastructure/observability/prometrics"
	"github.com/Zhima-Mochi/brewterm/internal/infrastructure/observability/zaplogger"
	"github.com/Zhima-Mochi/brewterm/internal/pkg/logging"
	"github.com/Zhima-Mochi/brewterm/internal/presentation/terminal"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	baseLogger, err := logging.NewLogger(cfg.LoggingOptions())
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer func() { _ = baseLogger.Sync() }()
	zap.ReplaceGlobals(baseLogger)

	systemLogger := logging.WithTrace(baseLogger, logging.SystemTraceID, logging.SystemSpanID)
	logger := zaplogger.New(baseLogger)

	var traceProvider *oteltrace.Provider
	if cfg.TraceFile != "" {
		traceProvider, err = oteltrace.NewFileProvider(cfg.TraceFile, cfg.Service)
		if err != nil {
			return err
		}
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := traceProvider.Shutdown(shutdownCtx); err != nil {
			systemLogger.Error("trace_provider_shutdown_error", zap.Error(err))
		}
	}()

	inst := prometrics.Standard(prometrics.New(prometheus.DefaultRegisterer, "brewterm", ""))
	tel := infraobs.New(oteltrace.New(cfg.Service), logger, inst.Counters, inst.Histograms, inst.Gauges)

	orderRepo := memory.NewOrderRepository()
	orderService := appOrder.NewService(orderRepo, id.NewUUIDGenerator(), tel)
	session := terminal.NewSession(os.Stdin, os.Stdout, orderService, logger)

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(sigCtx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)

	if cfg.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		server := &http.Server{
			Addr:              cfg.MetricsAddr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}

		g.Go(func() error {
			systemLogger.Info("metrics_server_start", zap.String("addr", server.Addr))
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("metrics server: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := server.Shutdown(shutdownCtx); err != nil {
				systemLogger.Error("metrics_server_shutdown_error", zap.Error(err))
				return err
			}
			systemLogger.Info("metrics_server_stopped")
			return nil
		})
	}

	// Reading stdin cannot be interrupted, so the session is not part of the
	// group: a signal ends the process even while a read is pending.
	sessionDone := make(chan error, 1)
	go func() { sessionDone <- session.Run(gctx) }()

	var sessionErr error
	select {
	case sessionErr = <-sessionDone:
	case <-gctx.Done():
		systemLogger.Info("session_interrupted")
	}
	cancel()

	if err := g.Wait(); err != nil {
		return err
	}
	if sessionErr != nil && !errors.Is(sessionErr, context.Canceled) {
		return sessionErr
	}
	return nil
}

package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/UnknownOlympus/ems-console/internal/lib/logger/sl"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 5 * time.Second
)

// NewMonitoringHandler serves /metrics from reg and /healthz.
func NewMonitoringHandler(log *slog.Logger, reg *prometheus.Registry, apiURL string) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{EnableOpenMetrics: true}))
	mux.Handle("/healthz", NewHealthChecker(apiURL, log))
	return mux
}

// StartMonitoringServer serves the monitoring endpoints on port until ctx is done.
func StartMonitoringServer(ctx context.Context, log *slog.Logger, reg *prometheus.Registry, port int, apiURL string) error {
	log = log.With(sl.Op("server.StartMonitoringServer"))

	srv := &http.Server{
		Addr:              net.JoinHostPort("", strconv.Itoa(port)),
		Handler:           NewMonitoringHandler(log, reg, apiURL),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.InfoContext(ctx, "Monitoring server started", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.ErrorContext(ctx, "Monitoring server failed", sl.Err(err))
			return fmt.Errorf("monitoring server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.ErrorContext(ctx, "Failed to shut down monitoring server", sl.Err(err))
		return fmt.Errorf("failed to shut down monitoring server: %w", err)
	}
	log.InfoContext(ctx, "Monitoring server stopped")

	return nil
}

// Package server provides the HTTP server for the query service.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"

	"mercator-hq/textutil/pkg/api/middleware"
	"mercator-hq/textutil/pkg/config"
	"mercator-hq/textutil/pkg/telemetry/health"
	"mercator-hq/textutil/pkg/telemetry/metrics"
	"mercator-hq/textutil/pkg/telemetry/tracing"
)

// QueryPath is the route of the query endpoint.
const QueryPath = "/query"

// BuildInfo is reported by /version.
type BuildInfo struct {
	Version   string
	Commit    string
	BuildTime string
}

// Options wires the handlers served by the Server.
type Options struct {
	// Query serves POST /query. Required.
	Query http.Handler

	// Health backs /health and /ready. A checker with no checks is used
	// when nil.
	Health *health.Checker

	// Metrics exposes the Prometheus registry. Nil or disabled collectors
	// skip the metrics route.
	Metrics     *metrics.Collector
	MetricsPath string

	Build BuildInfo
}

// Server is the HTTP server for the query service.
type Server struct {
	config       *config.ServerConfig
	opts         Options
	httpServer   *http.Server
	listener     net.Listener
	shutdownOnce sync.Once
	mu           sync.RWMutex
	isRunning    bool
}

// NewServer creates a new server.
func NewServer(cfg *config.ServerConfig, opts Options) *Server {
	if opts.Health == nil {
		opts.Health = health.New(0)
	}
	if opts.MetricsPath == "" {
		opts.MetricsPath = config.DefaultMetricsPath
	}
	return &Server{
		config: cfg,
		opts:   opts,
	}
}

// Start listens on the configured address and serves until ctx is canceled
// or the listener fails. Cancellation triggers a graceful shutdown bounded
// by the configured shutdown timeout.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.isRunning {
		s.mu.Unlock()
		return fmt.Errorf("server is already running")
	}

	ln, err := net.Listen("tcp", s.config.ListenAddress)
	if err != nil {
		s.mu.Unlock()
		return fmt.Errorf("failed to listen on %s: %w", s.config.ListenAddress, err)
	}

	s.listener = ln
	s.httpServer = &http.Server{
		Handler:        s.Handler(),
		ReadTimeout:    s.config.ReadTimeout,
		WriteTimeout:   s.config.WriteTimeout,
		IdleTimeout:    s.config.IdleTimeout,
		MaxHeaderBytes: s.config.MaxHeaderBytes,
	}
	s.isRunning = true
	s.mu.Unlock()

	errChan := make(chan error, 1)
	go func() {
		slog.Info("starting server", "address", ln.Addr().String())

		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("server error: %w", err)
		}
		close(errChan)
	}()

	select {
	case <-ctx.Done():
		slog.Info("context cancelled, initiating shutdown")
		return s.Shutdown(context.Background())
	case err, ok := <-errChan:
		if ok {
			s.markStopped()
			return err
		}
		return nil
	}
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error

	s.shutdownOnce.Do(func() {
		s.mu.RLock()
		running := s.isRunning
		s.mu.RUnlock()
		if !running {
			return
		}

		slog.Info("initiating graceful shutdown", "timeout", s.config.ShutdownTimeout.String())

		shutdownCtx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			slog.Error("error during server shutdown", "error", err)
			shutdownErr = fmt.Errorf("server shutdown error: %w", err)
		}

		s.markStopped()
		slog.Info("server stopped")
	})

	return shutdownErr
}

func (s *Server) markStopped() {
	s.mu.Lock()
	s.isRunning = false
	s.mu.Unlock()
}

// Addr returns the bound listener address, or "" before Start.
func (s *Server) Addr() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// IsRunning returns true if the server is running.
func (s *Server) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// Handler returns the routed handler wrapped in the middleware chain.
func (s *Server) Handler() http.Handler {
	return middleware.Chain(s.routes(),
		middleware.RequestIDMiddleware,
		middleware.LoggingMiddleware,
		middleware.RecoveryMiddleware,
		tracing.HTTPMiddleware,
	)
}

func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.Handle(QueryPath, s.opts.Query)
	s.opts.Health.Mount(mux, s.opts.Build.Version, s.opts.Build.Commit, s.opts.Build.BuildTime)

	if s.opts.Metrics != nil && s.opts.Metrics.Enabled() {
		mux.Handle(s.opts.MetricsPath, s.opts.Metrics.Handler())
	}

	return mux
}

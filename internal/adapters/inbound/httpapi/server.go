// Package httpapi serves the review API over HTTP with gin.
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/openkraft/kraftreview/internal/domain"
)

// Reviewer is the application surface the HTTP layer needs.
type Reviewer interface {
	ReviewCode(ctx context.Context, code string) (*domain.Report, error)
	Rules() []domain.RuleInfo
}

// HTTPObserver records served requests, e.g. as Prometheus metrics.
type HTTPObserver interface {
	ObserveHTTP(method, route string, status int, elapsed time.Duration)
}

// Server is the HTTP transport for the review service.
type Server struct {
	cfg            domain.Config
	svc            Reviewer
	logger         *zap.Logger
	observer       HTTPObserver
	metricsHandler http.Handler
	engine         *gin.Engine
}

// Option customizes a Server.
type Option func(*Server)

// WithLogger attaches a logger for access and error logs.
func WithLogger(l *zap.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// WithMetrics records request metrics through obs and exposes h on the
// configured metrics path.
func WithMetrics(obs HTTPObserver, h http.Handler) Option {
	return func(s *Server) {
		s.observer = obs
		s.metricsHandler = h
	}
}

// New builds the server and its routes. Nothing listens until Run.
func New(cfg domain.Config, svc Reviewer, opts ...Option) *Server {
	s := &Server{
		cfg:    cfg,
		svc:    svc,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.engine = s.routes()
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler { return s.engine }

// Run listens on the configured address and serves until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Server.Addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.cfg.Server.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done, then drains in-flight
// requests for at most the configured shutdown timeout.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.engine,
		ReadHeaderTimeout: s.cfg.Server.ReadHeaderTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("http server listening", zap.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serving http: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.Server.ShutdownTimeout)
		defer cancel()

		s.logger.Info("http server shutting down")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down http server: %w", err)
		}
		return nil
	})
	return g.Wait()
}

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

	"tldr/internal/domain"

	"golang.org/x/sync/errgroup"
)

const (
	SummarizePath = "/api/summarize"
	HealthPath    = "/healthz"

	DefaultRequestTimeout = 20 * time.Second
	DefaultMaxBodyBytes   = 2 << 20

	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 10 * time.Second
)

type Pipeline interface {
	Run(ctx context.Context, req domain.SummarizeRequest) (domain.Summary, error)
}

type Options struct {
	Port           int
	RequestTimeout time.Duration
	MaxBodyBytes   int64
}

type Server struct {
	pipeline       Pipeline
	requestTimeout time.Duration
	maxBodyBytes   int64
	httpServer     *http.Server
	log            *slog.Logger
}

func New(p Pipeline, opts Options, log *slog.Logger) *Server {
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = DefaultRequestTimeout
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = DefaultMaxBodyBytes
	}

	s := &Server{
		pipeline:       p,
		requestTimeout: opts.RequestTimeout,
		maxBodyBytes:   opts.MaxBodyBytes,
		log:            log,
	}

	s.httpServer = &http.Server{
		Addr:              net.JoinHostPort("", strconv.Itoa(opts.Port)),
		Handler:           s.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
		ErrorLog:          slog.NewLogLogger(log.Handler(), slog.LevelError),
	}

	return s
}

func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Handler returns the full middleware chain around the routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("POST "+SummarizePath, s.withTimeout(http.HandlerFunc(s.handleSummarize)))
	mux.HandleFunc("GET "+HealthPath, s.handleHealth)

	return s.withRecovery(s.withRequestLog(withCORS(mux)))
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.log.InfoContext(gCtx, "Server is listening",
			"addr", s.httpServer.Addr)

		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen and serve: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gCtx), shutdownTimeout)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}

		s.log.InfoContext(shutdownCtx, "Server is stopped",
			"addr", s.httpServer.Addr)

		return nil
	})

	return g.Wait()
}

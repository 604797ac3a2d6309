// Package httpapi serves the retrieval operations over HTTP.
//
// Each request submits a background task and waits for it up to a bounded
// timeout. Tasks that outlive the wait keep running and can be observed
// through /api/tasks/{id}.
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/sync/errgroup"

	"github.com/custodia-labs/ecourts-cli/internal/core/domain"
	"github.com/custodia-labs/ecourts-cli/internal/core/ports/driving"
	"github.com/custodia-labs/ecourts-cli/internal/logger"
)

const (
	// DefaultRetainedTasks is how many finished tasks are kept for polling.
	DefaultRetainedTasks = 500

	pruneInterval   = time.Minute
	shutdownTimeout = 10 * time.Second
)

// Ports holds the services the API is built on.
type Ports struct {
	Tasks      driving.TaskExecutor
	CauseLists driving.CauseListService
	Export     driving.ExportService

	// Settings returns the current API settings. It is read per request so
	// reloaded timeouts take effect immediately.
	Settings func() domain.APISettings
}

// ErrMissingPorts is returned when a required service is not provided.
var ErrMissingPorts = errors.New("httpapi: tasks, cause lists and export services are required")

// Server is the HTTP API.
type Server struct {
	ports   Ports
	metrics *Metrics
	router  chi.Router
	retain  int
}

// NewServer creates the API and its routes.
func NewServer(ports Ports) (*Server, error) {
	if ports.Tasks == nil || ports.CauseLists == nil || ports.Export == nil {
		return nil, ErrMissingPorts
	}
	if ports.Settings == nil {
		defaults := domain.DefaultSettings().API
		ports.Settings = func() domain.APISettings { return defaults }
	}

	s := &Server{
		ports:   ports,
		metrics: NewMetrics(),
		retain:  DefaultRetainedTasks,
	}
	s.router = s.routes()
	return s, nil
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealthz)
	r.Get("/metrics", s.handleMetrics)

	r.Route("/api", func(r chi.Router) {
		r.Post("/search-cnr", s.handleSearchCNR)
		r.Post("/search-case", s.handleSearchCase)
		r.Post("/cause-list", s.handleCauseList)
		r.Get("/jurisdictions", s.handleJurisdictions)
		r.Route("/tasks", func(r chi.Router) {
			r.Get("/", s.handleListTasks)
			r.Get("/{id}", s.handleGetTask)
		})
	})
	return r
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		logger.Debug("%s %s %d %s", r.Method, r.URL.Path, ww.Status(), time.Since(start).Round(time.Millisecond))
	})
}

// Metrics returns the server's metrics.
func (s *Server) Metrics() *Metrics {
	return s.metrics
}

// Handler returns the instrumented root handler.
func (s *Server) Handler() http.Handler {
	return otelhttp.NewHandler(s.router, "ecourts-api")
}

// Run listens on addr and serves until ctx ends. Additional jobs run
// alongside the server and stop with it.
func (s *Server) Run(ctx context.Context, addr string, jobs ...func(context.Context) error) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	return s.Serve(ctx, ln, jobs...)
}

// Serve serves on ln until ctx ends or a job fails, then shuts down
// gracefully and waits for running tasks.
func (s *Server) Serve(ctx context.Context, ln net.Listener, jobs ...func(context.Context) error) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ErrorLog:          log.New(logger.Writer(), "http: ", 0),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("API listening on %s", ln.Addr())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		if err := s.ports.Tasks.Shutdown(shutdownCtx); err != nil {
			logger.Warn("tasks still running at shutdown: %v", err)
		}
		return nil
	})

	g.Go(func() error {
		ticker := time.NewTicker(pruneInterval)
		defer ticker.Stop()
		for {
			select {
			case <-gctx.Done():
				return nil
			case <-ticker.C:
				if n := s.ports.Tasks.Prune(s.retain); n > 0 {
					logger.Debug("pruned %d finished tasks", n)
				}
			}
		}
	})

	for _, job := range jobs {
		g.Go(func() error { return job(gctx) })
	}

	return g.Wait()
}

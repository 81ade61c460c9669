package api

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/spanforge/pkg/httputil"
	"github.com/matzehuels/spanforge/pkg/pipeline"
)

// Server wraps the pipeline runner in an HTTP server. Create one with
// [NewServer], then either mount [Server.Router] yourself or call
// [Server.Start] and [Server.Shutdown].
type Server struct {
	runner  *pipeline.Runner
	fetcher *httputil.Fetcher
	logger  *log.Logger
	port    int

	srv *http.Server
	ln  net.Listener
}

// NewServer creates a Server on the given port. The fetcher may be nil to
// disable the "url" request field.
func NewServer(runner *pipeline.Runner, fetcher *httputil.Fetcher, logger *log.Logger, port int) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		runner:  runner,
		fetcher: fetcher,
		logger:  logger,
		port:    port,
	}
}

// Router builds the chi handler tree. Exposed separately so tests can drive
// the API through httptest without binding a port.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/cluster", s.handleCluster)
		r.Post("/connect", s.handleConnect)
	})
	return r
}

// Start begins serving on the configured port. It blocks until the listener
// is ready, then serves in the background; use [Server.Shutdown] to stop.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", s.port))
	if err != nil {
		return fmt.Errorf("listen on port %d: %w", s.port, err)
	}
	s.ln = ln
	s.srv = &http.Server{
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	go func() {
		if err := s.srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			s.logger.Error("serve failed", "err", err)
		}
	}()

	s.logger.Info("api listening", "addr", ln.Addr().String())
	return nil
}

// Addr returns the listener address, useful for tests with port 0.
func (s *Server) Addr() string {
	if s.ln == nil {
		return ""
	}
	return s.ln.Addr().String()
}

// Shutdown gracefully stops the server and closes the runner's cache.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.srv != nil {
		if err := s.srv.Shutdown(ctx); err != nil {
			return err
		}
	}
	return s.runner.Close()
}

// logRequests logs one line per request with the chi request id.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()))
	})
}

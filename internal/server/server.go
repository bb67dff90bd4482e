// Package server provides the HTTP API for kousei.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/hyperjump/kousei/internal/analyze"
	"github.com/hyperjump/kousei/internal/config"
	"github.com/hyperjump/kousei/internal/extract"
)

// Server is the HTTP server for the kousei API. It is stateless: every
// request is analyzed from scratch and nothing is retained between requests.
type Server struct {
	analyzer  *analyze.Analyzer
	extractor *extract.Extractor
	config    *config.ServerConfig
	logger    *zap.Logger
	version   string
	startedAt time.Time
	server    *http.Server
}

// NewServer creates a server with the given dependencies.
func NewServer(
	analyzer *analyze.Analyzer,
	extractor *extract.Extractor,
	cfg *config.ServerConfig,
	logger *zap.Logger,
	version string,
) *Server {
	return &Server{
		analyzer:  analyzer,
		extractor: extractor,
		config:    cfg,
		logger:    logger,
		version:   version,
		startedAt: time.Now(),
	}
}

// Router builds the chi router with all routes and middleware.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(middleware.Compress(5))

	r.Post("/api/v1/analyze", s.handleAnalyze)
	r.Post("/api/v1/report", s.handleReport)
	r.Get("/api/v1/status", s.handleStatus)
	r.Get("/health", s.handleHealth)
	return r
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.Router(),
	}
	s.logger.Info("Starting server", zap.String("addr", addr))
	return s.server.ListenAndServe()
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}

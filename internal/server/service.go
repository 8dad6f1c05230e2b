// Package server exposes the clustering pipeline over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/williamzebrowskI/Intent-Cluster-Analysis/internal/config"
	"github.com/williamzebrowskI/Intent-Cluster-Analysis/pkg/pipeline"
)

// Service serves clustering runs over HTTP. Parameters default to the
// loaded configuration and may be overridden per request.
type Service struct {
	version   string
	cfg       *config.Config
	norm      pipeline.Normalizer
	router    *chi.Mux
	server    *http.Server
	startTime time.Time

	runs       atomic.Int64
	utterances atomic.Int64
}

// New assembles the service and its routes.
func New(cfg *config.Config, norm pipeline.Normalizer, version string) *Service {
	s := &Service{
		version:   version,
		cfg:       cfg,
		norm:      norm,
		router:    chi.NewRouter(),
		startTime: time.Now(),
	}
	s.setupRoutes()
	s.server = &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

func (s *Service) setupRoutes() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Timeout(60 * time.Second))
	s.router.Use(requestLogger)

	s.router.Get("/api/health", s.handleHealth)
	s.router.Get("/api/version", s.handleVersion)
	s.router.Get("/api/stats", s.handleStats)
	s.router.Post("/api/cluster", s.handleCluster)
}

// Start begins listening on the configured address and blocks until the
// listener stops. A Shutdown-initiated stop returns nil.
func (s *Service) Start() error {
	log.Info().
		Str("addr", s.cfg.ListenAddr).
		Str("version", s.version).
		Msg("HTTP service listening")

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Service) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// requestLogger emits one debug line per request.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Msg("HTTP request")
	})
}

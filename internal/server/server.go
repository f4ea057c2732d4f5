// Package server wires every module's handlers into one chi router and owns
// the HTTP lifecycle.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/RedValis/macro-inflation-tracker/internal/modules/cluster"
	"github.com/RedValis/macro-inflation-tracker/internal/modules/compare"
	"github.com/RedValis/macro-inflation-tracker/internal/modules/export"
	"github.com/RedValis/macro-inflation-tracker/internal/modules/insights"
	"github.com/RedValis/macro-inflation-tracker/internal/modules/mapdata"
	"github.com/RedValis/macro-inflation-tracker/internal/modules/metrics"
	"github.com/RedValis/macro-inflation-tracker/internal/modules/projection"
	"github.com/RedValis/macro-inflation-tracker/internal/modules/series"
	"github.com/RedValis/macro-inflation-tracker/internal/modules/similarity"
)

// Handlers collects every module's HTTP handler for route registration.
type Handlers struct {
	Series     *series.Handler
	Metrics    *metrics.Handler
	Compare    *compare.Handler
	Similarity *similarity.Handler
	Cluster    *cluster.Handler
	Projection *projection.Handler
	Insights   *insights.Handler
	MapData    *mapdata.Handler
	Export     *export.Handler
}

// Config holds server configuration
type Config struct {
	Port     int
	Log      zerolog.Logger
	Store    *series.Store
	Handlers Handlers
	DevMode  bool
}

// Server represents the HTTP server
type Server struct {
	router   *chi.Mux
	server   *http.Server
	log      zerolog.Logger
	store    *series.Store
	handlers Handlers
}

// New creates a new HTTP server
func New(cfg Config) *Server {
	s := &Server{
		router:   chi.NewRouter(),
		log:      cfg.Log.With().Str("component", "server").Logger(),
		store:    cfg.Store,
		handlers: cfg.Handlers,
	}

	s.setupMiddleware(cfg.DevMode)
	s.setupRoutes()

	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Router exposes the router for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// setupMiddleware configures middleware
func (s *Server) setupMiddleware(devMode bool) {
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(s.loggingMiddleware)
	s.router.Use(middleware.Timeout(60 * time.Second))

	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	if !devMode {
		s.router.Use(middleware.Compress(5))
	}
}

// setupRoutes configures all routes
func (s *Server) setupRoutes() {
	s.router.Get("/health", s.handleHealth)

	h := s.handlers
	s.router.Route("/api", func(r chi.Router) {
		r.Route("/system", func(r chi.Router) {
			r.Get("/status", s.handleSystemStatus)
		})

		r.Get("/countries", h.Series.HandleListCountries)
		r.Route("/series", func(r chi.Router) {
			r.Post("/refresh", h.Series.HandleRefresh)
			r.Get("/{code}", h.Series.HandleGetSeries)
		})

		r.Get("/stats/{code}", h.Metrics.HandleGetStats)
		r.Get("/compare", h.Compare.HandleCompare)
		r.Get("/similar/{code}", h.Similarity.HandleRankSimilar)
		r.Get("/clusters", h.Cluster.HandleCluster)
		r.Get("/projection/{code}", h.Projection.HandleProject)
		r.Get("/insights", h.Insights.HandleInsights)
		r.Get("/map", h.MapData.HandleMap)

		r.Route("/export", func(r chi.Router) {
			r.Get("/series/{code}.csv", h.Export.HandleExportSeries)
			r.Get("/compare.csv", h.Export.HandleExportCompare)
			r.Get("/insights.txt", h.Export.HandleExportInsights)
		})
	})
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.log.Info().Str("addr", s.server.Addr).Msg("Starting HTTP server")
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}

// loggingMiddleware logs HTTP requests
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("duration_ms", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("HTTP request")
	})
}

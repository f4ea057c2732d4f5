package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/RedValis/macro-inflation-tracker/internal/clients/worldbank"
	"github.com/RedValis/macro-inflation-tracker/internal/config"
	"github.com/RedValis/macro-inflation-tracker/internal/domain"
	"github.com/RedValis/macro-inflation-tracker/internal/modules/cluster"
	"github.com/RedValis/macro-inflation-tracker/internal/modules/compare"
	"github.com/RedValis/macro-inflation-tracker/internal/modules/export"
	"github.com/RedValis/macro-inflation-tracker/internal/modules/insights"
	"github.com/RedValis/macro-inflation-tracker/internal/modules/mapdata"
	"github.com/RedValis/macro-inflation-tracker/internal/modules/metrics"
	"github.com/RedValis/macro-inflation-tracker/internal/modules/projection"
	"github.com/RedValis/macro-inflation-tracker/internal/modules/series"
	"github.com/RedValis/macro-inflation-tracker/internal/modules/similarity"
	"github.com/RedValis/macro-inflation-tracker/internal/scheduler"
	"github.com/RedValis/macro-inflation-tracker/internal/server"
	"github.com/RedValis/macro-inflation-tracker/pkg/logger"
)

// refreshTimeout bounds one full paginated fetch, not a single page.
const refreshTimeout = 5 * time.Minute

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fallback := logger.New(logger.Config{Level: "info"})
		fallback.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize logger
	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.DevMode,
	})
	logger.SetGlobalLogger(log)

	log.Info().Msg("Starting inflation tracker")

	years := domain.YearRange{From: cfg.YearFrom, To: cfg.YearTo}
	thresholds := insights.Thresholds{
		HighInflation: cfg.HighInflation,
		Deflation:     cfg.Deflation,
		TrendDelta:    cfg.TrendDelta,
	}

	// Data layer: store, API client, load from cache or live fetch
	store := series.NewStore()
	client := worldbank.NewClient(worldbank.Config{
		BaseURL:   cfg.WorldBankURL,
		Indicator: cfg.Indicator,
		Timeout:   cfg.FetchTimeout,
	}, log)
	svc := series.NewService(store, client, cfg.CachePath, years, log)

	loadCtx, cancelLoad := context.WithTimeout(context.Background(), refreshTimeout)
	if err := svc.Load(loadCtx); err != nil {
		// An empty store still serves; analytics endpoints return the
		// documented insufficient-data errors until a refresh succeeds.
		log.Warn().Err(err).Msg("Initial data load failed, starting with empty store")
	}
	cancelLoad()

	// Scheduler: periodic background refresh
	sched := scheduler.New(log)
	refreshJob := scheduler.NewRefreshJob(svc, refreshTimeout, log)
	if err := sched.AddJob(cfg.RefreshSchedule, refreshJob); err != nil {
		log.Fatal().Err(err).Str("schedule", cfg.RefreshSchedule).Msg("Failed to register refresh job")
	}
	sched.Start()
	defer sched.Stop()

	// HTTP server
	srv := server.New(server.Config{
		Port:  cfg.Port,
		Log:   log,
		Store: store,
		Handlers: server.Handlers{
			Series:     series.NewHandler(svc, store, years, log),
			Metrics:    metrics.NewHandler(store, years, log),
			Compare:    compare.NewHandler(store, years, log),
			Similarity: similarity.NewHandler(store, years, log),
			Cluster:    cluster.NewHandler(store, years, cfg.ClusterSeed, log),
			Projection: projection.NewHandler(store, years, log),
			Insights:   insights.NewHandler(store, years.To, thresholds, log),
			MapData:    mapdata.NewHandler(store, years.To, log),
			Export:     export.NewHandler(store, years, thresholds, log),
		},
		DevMode: cfg.DevMode,
	})

	// Start server in goroutine
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	log.Info().Int("port", cfg.Port).Msg("Server started successfully")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server stopped")
}

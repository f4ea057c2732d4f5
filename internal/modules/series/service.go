// Package series owns the raw inflation table: loading it from the flat CSV
// cache or the World Bank API, holding it behind an atomically replaceable
// snapshot, and serving it to the analytics modules read-only.
package series

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/RedValis/macro-inflation-tracker/internal/domain"
)

// Fetcher fetches the raw series from the external API.
type Fetcher interface {
	FetchRange(ctx context.Context, from, to int) ([]domain.Record, error)
}

// Service coordinates cache, fetcher, and store.
type Service struct {
	store     *Store
	fetcher   Fetcher
	cachePath string
	years     domain.YearRange
	log       zerolog.Logger
}

// NewService creates a new series service
func NewService(store *Store, fetcher Fetcher, cachePath string, years domain.YearRange, log zerolog.Logger) *Service {
	return &Service{
		store:     store,
		fetcher:   fetcher,
		cachePath: cachePath,
		years:     years,
		log:       log.With().Str("service", "series").Logger(),
	}
}

// Load populates the store on startup: from the cache file when present,
// otherwise via a live fetch. An absent cache file is equivalent to an empty
// store and triggers the fetch.
func (s *Service) Load(ctx context.Context) error {
	records, found, err := LoadCache(s.cachePath)
	if err != nil {
		s.log.Warn().Err(err).Str("path", s.cachePath).Msg("Cache file unreadable, falling back to live fetch")
	}

	if found && err == nil {
		s.store.Replace(NewSnapshot(records, "cache"))
		s.log.Info().Int("records", len(records)).Str("path", s.cachePath).Msg("Loaded series from cache")
		return nil
	}

	_, err = s.Refresh(ctx)
	return err
}

// Refresh forces a live fetch. On success the new snapshot atomically
// replaces the store and the cache file is rewritten. On failure the prior
// snapshot stays authoritative, is marked stale, and the error (wrapping
// domain.ErrDataUnavailable) tells the caller the data may be out of date.
func (s *Service) Refresh(ctx context.Context) (*Snapshot, error) {
	runID := uuid.NewString()
	log := s.log.With().Str("refresh_id", runID).Logger()

	log.Info().Int("from", s.years.From).Int("to", s.years.To).Msg("Refreshing series")

	records, err := s.fetcher.FetchRange(ctx, s.years.From, s.years.To)
	if err != nil {
		s.store.MarkStale()
		log.Warn().Err(err).Msg("Refresh failed, keeping previous store")
		return nil, fmt.Errorf("refresh %s: %w", runID, err)
	}

	snap := NewSnapshot(records, "live")
	s.store.Replace(snap)

	if err := SaveCache(s.cachePath, snap.Records()); err != nil {
		// The in-memory store is already fresh; a cache write failure only
		// costs us the next cold start.
		log.Warn().Err(err).Str("path", s.cachePath).Msg("Failed to write cache file")
	}

	log.Info().Int("records", snap.Len()).Int("countries", len(snap.Countries())).Msg("Series refreshed")
	return snap, nil
}

// Store exposes the underlying store to the analytics handlers.
func (s *Service) Store() *Store {
	return s.store
}

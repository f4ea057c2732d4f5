package scheduler

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RedValis/macro-inflation-tracker/internal/domain"
	"github.com/RedValis/macro-inflation-tracker/internal/modules/series"
)

type fakeFetcher struct {
	records []domain.Record
	err     error
	calls   int
}

func (f *fakeFetcher) FetchRange(_ context.Context, _, _ int) ([]domain.Record, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.records, nil
}

func newTestService(t *testing.T, fetcher *fakeFetcher) (*series.Service, *series.Store) {
	t.Helper()
	store := series.NewStore()
	cachePath := filepath.Join(t.TempDir(), "cache.csv")
	log := zerolog.New(nil).Level(zerolog.Disabled)
	return series.NewService(store, fetcher, cachePath, domain.YearRange{From: 2010, To: 2024}, log), store
}

func TestRefreshJobReplacesStore(t *testing.T) {
	fetcher := &fakeFetcher{records: []domain.Record{
		{CountryCode: "DEU", CountryName: "Germany", Region: "Europe", Year: 2022, Rate: 6.9},
	}}
	svc, store := newTestService(t, fetcher)

	job := NewRefreshJob(svc, time.Second, zerolog.New(nil).Level(zerolog.Disabled))
	assert.Equal(t, "series_refresh", job.Name())

	require.NoError(t, job.Run())
	assert.Equal(t, 1, fetcher.calls)
	assert.Equal(t, 1, store.Snapshot().Len())
	assert.False(t, store.Snapshot().Stale)
}

func TestRefreshJobFailureMarksStale(t *testing.T) {
	fetcher := &fakeFetcher{records: []domain.Record{
		{CountryCode: "DEU", CountryName: "Germany", Region: "Europe", Year: 2022, Rate: 6.9},
	}}
	svc, store := newTestService(t, fetcher)
	require.NoError(t, job(svc).Run())

	fetcher.err = domain.ErrDataUnavailable
	err := job(svc).Run()
	require.Error(t, err)

	snap := store.Snapshot()
	assert.Equal(t, 1, snap.Len(), "previous data survives a failed refresh")
	assert.True(t, snap.Stale)
}

func job(svc *series.Service) *RefreshJob {
	return NewRefreshJob(svc, time.Second, zerolog.New(nil).Level(zerolog.Disabled))
}

package series

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RedValis/macro-inflation-tracker/internal/domain"
)

type fakeFetcher struct {
	records []domain.Record
	err     error
	calls   int
}

func (f *fakeFetcher) FetchRange(ctx context.Context, from, to int) ([]domain.Record, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.records, nil
}

func newTestService(t *testing.T, fetcher *fakeFetcher) (*Service, *Store, string) {
	t.Helper()
	store := NewStore()
	path := filepath.Join(t.TempDir(), "cache.csv")
	log := zerolog.New(nil).Level(zerolog.Disabled)
	svc := NewService(store, fetcher, path, domain.YearRange{From: 2010, To: 2024}, log)
	return svc, store, path
}

func TestLoadPrefersCacheFile(t *testing.T) {
	fetcher := &fakeFetcher{records: testRecords()}
	svc, store, path := newTestService(t, fetcher)

	require.NoError(t, SaveCache(path, testRecords()[:2]))

	require.NoError(t, svc.Load(context.Background()))
	assert.Equal(t, 0, fetcher.calls, "cache hit must not trigger a fetch")
	assert.Equal(t, 2, store.Snapshot().Len())
	assert.Equal(t, "cache", store.Snapshot().Source)
}

func TestLoadFetchesWhenCacheMissing(t *testing.T) {
	fetcher := &fakeFetcher{records: testRecords()}
	svc, store, path := newTestService(t, fetcher)

	require.NoError(t, svc.Load(context.Background()))
	assert.Equal(t, 1, fetcher.calls)
	assert.Equal(t, 4, store.Snapshot().Len())
	assert.Equal(t, "live", store.Snapshot().Source)

	// The fetch result is persisted for the next cold start.
	_, found, err := LoadCache(path)
	require.NoError(t, err)
	assert.True(t, found)
}

func TestRefreshReplacesStoreAtomically(t *testing.T) {
	fetcher := &fakeFetcher{records: testRecords()}
	svc, store, _ := newTestService(t, fetcher)

	snap, err := svc.Refresh(context.Background())
	require.NoError(t, err)
	assert.Same(t, snap, store.Snapshot())
	assert.False(t, store.Snapshot().Stale)
}

func TestRefreshFailureKeepsPreviousStore(t *testing.T) {
	fetcher := &fakeFetcher{records: testRecords()}
	svc, store, _ := newTestService(t, fetcher)
	require.NoError(t, svc.Load(context.Background()))

	fetcher.err = domain.ErrDataUnavailable
	_, err := svc.Refresh(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDataUnavailable))

	snap := store.Snapshot()
	assert.Equal(t, 4, snap.Len(), "previous data remains authoritative")
	assert.True(t, snap.Stale, "caller is informed of staleness")
}

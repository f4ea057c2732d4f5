package scheduler

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/RedValis/macro-inflation-tracker/internal/modules/series"
)

// RefreshJob re-fetches the inflation series on a schedule so the store
// tracks World Bank revisions without manual refreshes. A failed run leaves
// the previous snapshot in place, marked stale.
type RefreshJob struct {
	service *series.Service
	timeout time.Duration
	log     zerolog.Logger
}

// NewRefreshJob creates a new refresh job
func NewRefreshJob(service *series.Service, timeout time.Duration, log zerolog.Logger) *RefreshJob {
	return &RefreshJob{
		service: service,
		timeout: timeout,
		log:     log.With().Str("job", "series_refresh").Logger(),
	}
}

// Name returns the job name
func (j *RefreshJob) Name() string {
	return "series_refresh"
}

// Run performs one refresh cycle.
func (j *RefreshJob) Run() error {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	snap, err := j.service.Refresh(ctx)
	if err != nil {
		return err
	}

	j.log.Info().
		Int("records", snap.Len()).
		Int("countries", len(snap.Countries())).
		Msg("Scheduled refresh completed")
	return nil
}

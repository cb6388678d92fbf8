package retention_test

import (
	"context"
	"errors"
	"testing"
	"time"

	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PresenceBooking/internal/domain"
	"github.com/m04kA/SMC-PresenceBooking/internal/jobs/retention"
	"github.com/m04kA/SMC-PresenceBooking/internal/testutil"
	"github.com/m04kA/SMC-PresenceBooking/pkg/logger"
	"github.com/m04kA/SMC-PresenceBooking/pkg/types"
)

type countingMetrics struct {
	events []string
}

func (c *countingMetrics) RecordPresenceEvent(event string) {
	c.events = append(c.events, event)
}

type failingPurger struct{}

func (failingPurger) DeleteBefore(context.Context, types.Date) (int64, error) {
	return 0, errors.New("db down")
}

func TestRunOnce_PurgesOnlyOldPresences(t *testing.T) {
	db := testutil.NewSQLite(t)
	service := testutil.NewPresenceService(t, db)

	old := testutil.SeedPresence(t, db, "Gare", types.NewDate(2030, time.May, 1), "09:00", "10:00")
	kept := testutil.SeedPresence(t, db, "Gare", types.NewDate(2030, time.May, 25), "09:00", "10:00")

	clock := testutil.NewClock(time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC))
	metrics := &countingMetrics{}
	job := retention.NewJob(service, metrics, 10, time.UTC, logger.Nop()).WithTimeProvider(clock)

	removed, err := job.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)
	assert.Equal(t, []string{domain.EventPresencePurged}, metrics.events)

	_, err = service.GetByID(context.Background(), old.ID)
	assert.Error(t, err)
	_, err = service.GetByID(context.Background(), kept.ID)
	assert.NoError(t, err)
}

func TestCutoff_UsesEventTimezone(t *testing.T) {
	paris, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)

	// 23:30 UTC 31 мая - уже 1 июня в Париже
	clock := testutil.NewClock(time.Date(2030, 5, 31, 23, 30, 0, 0, time.UTC))
	job := retention.NewJob(failingPurger{}, &countingMetrics{}, 0, paris, logger.Nop()).WithTimeProvider(clock)

	assert.Equal(t, "2030-06-01", job.Cutoff().String())
}

func TestRunOnce_PropagatesError(t *testing.T) {
	metrics := &countingMetrics{}
	job := retention.NewJob(failingPurger{}, metrics, 30, time.UTC, logger.Nop())

	_, err := job.RunOnce(context.Background())
	assert.Error(t, err)
	assert.Empty(t, metrics.events)
}

func TestStart_RejectsInvalidSchedule(t *testing.T) {
	job := retention.NewJob(failingPurger{}, &countingMetrics{}, 30, time.UTC, logger.Nop())

	assert.ErrorIs(t, job.Start("every day please"), retention.ErrInvalidSchedule)
}

func TestStartStop(t *testing.T) {
	job := retention.NewJob(failingPurger{}, &countingMetrics{}, 30, time.UTC, logger.Nop())
	require.NoError(t, job.Start("0 3 * * *"))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	job.Stop(ctx)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/ranking-mk2/internal/logger"
	"github.com/MKhiriev/ranking-mk2/internal/presenter"
	"github.com/MKhiriev/ranking-mk2/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingSource records how many times the cache pulled from it.
type countingSource struct {
	calls atomic.Int64
}

func (s *countingSource) GetAllRankings(_ context.Context) ([]models.Ranking, error) {
	s.calls.Add(1)
	return []models.Ranking{{ID: s.calls.Load(), AccountName: "@a", Followers: 1}}, nil
}

func newTestJob(ctx context.Context, interval time.Duration) (*listRefreshJob, *countingSource) {
	source := &countingSource{}
	cache := presenter.NewListCache(source, logger.Nop())
	job := NewListRefreshJob(ctx, cache, interval, logger.Nop())
	return job.(*listRefreshJob), source
}

func TestListRefreshJob_RunRefreshesOnTicks(t *testing.T) {
	job, source := newTestJob(context.Background(), 10*time.Millisecond)

	job.Run()
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	got := source.calls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "cache should have refreshed several times, refreshed %d times", got)
}

func TestListRefreshJob_StopStopsGoroutine(t *testing.T) {
	job, source := newTestJob(context.Background(), 10*time.Millisecond)

	job.Run()
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	callsAfterStop := source.calls.Load()
	time.Sleep(30 * time.Millisecond)
	callsLater := source.calls.Load()

	assert.Equal(t, callsAfterStop, callsLater, "no refreshes may happen after Stop")
}

func TestListRefreshJob_ContextCancelStopsGoroutine(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	job, source := newTestJob(ctx, 10*time.Millisecond)

	job.Run()
	time.Sleep(30 * time.Millisecond)
	cancel()
	time.Sleep(15 * time.Millisecond)

	callsAfterCancel := source.calls.Load()
	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, callsAfterCancel, source.calls.Load(), "no refreshes may happen after the context is cancelled")
}

func TestListRefreshJob_StopBeforeRunNoPanic(t *testing.T) {
	job, _ := newTestJob(context.Background(), 10*time.Millisecond)

	assert.NotPanics(t, func() { job.Stop() })
}

func TestListRefreshJob_ZeroIntervalDefaults(t *testing.T) {
	job, _ := newTestJob(context.Background(), 0)

	require.Equal(t, defaultRefreshInterval, job.interval)
}

func TestWorkers_RunStartsAllWorkers(t *testing.T) {
	job, source := newTestJob(context.Background(), 10*time.Millisecond)
	ws := &Workers{workers: []Worker{job}}

	ws.Run()
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	assert.Positive(t, source.calls.Load())
}

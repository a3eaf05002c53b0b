package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/ranking-mk2/internal/logger"
	"github.com/MKhiriev/ranking-mk2/internal/presenter"
)

// defaultRefreshInterval is used when the configured interval is zero or
// negative.
const defaultRefreshInterval = time.Minute

// listRefreshJob keeps the public list cache converging on the store even
// when no admin mutation triggers an explicit refresh. Refresh errors are
// already logged by the cache and leave the previous snapshot in place, so
// the job just keeps ticking.
type listRefreshJob struct {
	cache    *presenter.ListCache
	interval time.Duration
	logger   *logger.Logger

	ctx context.Context

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewListRefreshJob creates a job that refreshes cache every interval. The
// job is idle until Run is called and stops when ctx is cancelled.
func NewListRefreshJob(ctx context.Context, cache *presenter.ListCache, interval time.Duration, logger *logger.Logger) Worker {
	if interval <= 0 {
		interval = defaultRefreshInterval
	}

	return &listRefreshJob{
		cache:    cache,
		interval: interval,
		logger:   logger,
		ctx:      ctx,
	}
}

// Run implements Worker. It stops any previously running refresh loop, then
// launches a background goroutine that refreshes the cache every interval.
// The goroutine exits when the job's context is cancelled or Stop is called.
func (j *listRefreshJob) Run() {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(j.ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	j.logger.Info().Dur("interval", j.interval).Msg("starting list refresh job")

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				_ = j.cache.Refresh(jobCtx)
			}
		}
	}()
}

// Stop cancels the background goroutine and blocks until it has fully
// exited. Safe to call when the job is not running (no-op in that case).
func (j *listRefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

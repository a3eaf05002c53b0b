package workers

import (
	"context"

	"github.com/MKhiriev/ranking-mk2/internal/config"
	"github.com/MKhiriev/ranking-mk2/internal/logger"
	"github.com/MKhiriev/ranking-mk2/internal/presenter"
)

type Workers struct {
	workers []Worker
}

// NewWorkers assembles the application's background workers: currently only
// the public list refresh job.
func NewWorkers(ctx context.Context, cache *presenter.ListCache, cfg config.Workers, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			NewListRefreshJob(ctx, cache, cfg.ListRefreshInterval, logger),
		},
	}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

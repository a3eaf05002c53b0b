package presenter

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/ranking-mk2/internal/logger"
	"github.com/MKhiriev/ranking-mk2/models"
)

// RankingSource supplies the full ranking sequence, pre-sorted by followers
// descending. Satisfied by the store's RankingRepository.
type RankingSource interface {
	GetAllRankings(ctx context.Context) ([]models.Ranking, error)
}

// ListCache holds the ranking sequence behind the public list view. It is an
// explicit cache owned by the handler that serves the view: reads come from
// Snapshot, and the content only changes through Refresh, either on demand
// after an admin mutation or periodically via the refresh worker. There is
// no ambient global state.
type ListCache struct {
	source RankingSource
	logger *logger.Logger

	mu       sync.RWMutex
	rankings []models.Ranking
}

// NewListCache constructs an empty cache over the given source. Callers
// should Refresh once at startup; until then Snapshot returns an empty
// sequence.
func NewListCache(source RankingSource, logger *logger.Logger) *ListCache {
	logger.Debug().Msg("creating ranking list cache")
	return &ListCache{
		source: source,
		logger: logger,
	}
}

// Refresh replaces the cached sequence with the source's current state.
// On error the previous snapshot stays served, so a transient store failure
// never blanks the public view.
func (c *ListCache) Refresh(ctx context.Context) error {
	rankings, err := c.source.GetAllRankings(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*ListCache.Refresh").Msg("error refreshing ranking list cache")
		return fmt.Errorf("error refreshing ranking list cache: %w", err)
	}

	c.mu.Lock()
	c.rankings = rankings
	c.mu.Unlock()

	return nil
}

// Snapshot returns a copy of the cached sequence. The copy keeps callers
// from observing a concurrent Refresh mid-iteration.
func (c *ListCache) Snapshot() []models.Ranking {
	c.mu.RLock()
	defer c.mu.RUnlock()

	snapshot := make([]models.Ranking, len(c.rankings))
	copy(snapshot, c.rankings)

	return snapshot
}

package worker

import (
	"context"
	"time"

	"github.com/onegt/chrms-backend/internal/service"
	"github.com/rs/zerolog"
)

// StatsWorker keeps the talent dashboard cache warm. Without it, the first
// read after every TTL expiry pays the aggregation cost; with it, dashboard
// polling is always a cache hit.
type StatsWorker struct {
	dashboard *service.DashboardService
	log       zerolog.Logger
}

func NewStatsWorker(dashboard *service.DashboardService, log zerolog.Logger) *StatsWorker {
	return &StatsWorker{
		dashboard: dashboard,
		log:       log.With().Str("component", "stats_worker").Logger(),
	}
}

// Start runs the refresh loop until the context is cancelled. The interval
// matches the cache TTL so an entry is rewritten just as it would expire.
func (w *StatsWorker) Start(ctx context.Context) {
	interval := w.dashboard.CacheTTL()
	if interval <= 0 {
		interval = 30 * time.Second
	}

	w.log.Info().Dur("interval", interval).Msg("StatsWorker started")

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("StatsWorker stopped")
			return
		case <-ticker.C:
			if _, err := w.dashboard.RefreshTalentStats(ctx); err != nil {
				w.log.Error().Err(err).Msg("stats refresh failed")
			}
		}
	}
}

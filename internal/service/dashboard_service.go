package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/onegt/chrms-backend/internal/config"
	"github.com/onegt/chrms-backend/internal/repository"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// TalentStats consolidates the recruitment dashboard metrics.
type TalentStats struct {
	DemandCounts    map[string]int `json:"demand_counts"`
	CandidateCounts map[string]int `json:"candidate_counts"`
	InterviewsToday int            `json:"interviews_today"`
}

// DashboardService aggregates recruitment metrics. Results are cached in
// Redis for a short window so dashboard polling does not hammer Postgres.
type DashboardService struct {
	demands    *repository.DemandRepository
	candidates *repository.CandidateRepository
	interviews *repository.InterviewRepository
	rdb        *redis.Client
	ttl        time.Duration
	log        zerolog.Logger
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(
	demands *repository.DemandRepository,
	candidates *repository.CandidateRepository,
	interviews *repository.InterviewRepository,
	rdb *redis.Client,
	cfg *config.Config,
	log zerolog.Logger,
) *DashboardService {
	return &DashboardService{
		demands:    demands,
		candidates: candidates,
		interviews: interviews,
		rdb:        rdb,
		ttl:        cfg.StatsCacheTTL,
		log:        log.With().Str("component", "dashboard_service").Logger(),
	}
}

// GetTalentStats returns the dashboard metrics, serving from cache when a
// fresh copy exists. A cache failure falls through to Postgres.
func (s *DashboardService) GetTalentStats(ctx context.Context) (*TalentStats, error) {
	cacheKey := config.CacheKey.TalentStatsKey()

	cached, err := s.rdb.Get(ctx, cacheKey).Bytes()
	if err == nil {
		stats := &TalentStats{}
		if err := json.Unmarshal(cached, stats); err == nil {
			return stats, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		s.log.Warn().Err(err).Msg("stats cache read")
	}

	return s.RefreshTalentStats(ctx)
}

// RefreshTalentStats recomputes the metrics and rewrites the cache entry,
// regardless of its freshness. The background refresher uses this to keep
// dashboard reads hot.
func (s *DashboardService) RefreshTalentStats(ctx context.Context) (*TalentStats, error) {
	stats, err := s.computeStats(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(stats); err == nil {
		if err := s.rdb.Set(ctx, config.CacheKey.TalentStatsKey(), payload, s.ttl).Err(); err != nil {
			s.log.Warn().Err(err).Msg("stats cache write")
		}
	}

	return stats, nil
}

// CacheTTL is the freshness window for the stats cache entry.
func (s *DashboardService) CacheTTL() time.Duration {
	return s.ttl
}

func (s *DashboardService) computeStats(ctx context.Context) (*TalentStats, error) {
	demandCounts, err := s.demands.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	candidateCounts, err := s.candidates.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	interviewsToday, err := s.interviews.CountScheduledToday(ctx)
	if err != nil {
		return nil, err
	}

	return &TalentStats{
		DemandCounts:    demandCounts,
		CandidateCounts: candidateCounts,
		InterviewsToday: interviewsToday,
	}, nil
}

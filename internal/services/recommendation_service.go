package services

import (
	"context"

	"cloud.google.com/go/civil"

	"task-scheduler/internal/config"
	"task-scheduler/internal/domain"
	"task-scheduler/internal/errors"
	"task-scheduler/internal/recommend"
	"task-scheduler/internal/repository/sqlite"
)

// recommendationServiceImpl implements the RecommendationService interface
type recommendationServiceImpl struct {
	repo   sqlite.Repository
	clock  Clock
	engine recommend.Engine
	mapper *domain.Mapper
}

// NewRecommendationService creates a new RecommendationService instance
func NewRecommendationService(repo sqlite.Repository, cfg *config.Config, clock Clock) RecommendationService {
	dueSoonDays := recommend.DefaultDueSoonDays
	if cfg != nil {
		dueSoonDays = cfg.Recommend.DueSoonDays
	}
	if clock == nil {
		clock = SystemClock
	}

	return &recommendationServiceImpl{
		repo:   repo,
		clock:  clock,
		engine: recommend.NewEngine(dueSoonDays),
		mapper: domain.NewMapper(),
	}
}

func (r *recommendationServiceImpl) Today() civil.Date {
	return Today(r.clock)
}

// Recommend snapshots the pending tasks, ranks them for today and keeps the top limit
func (r *recommendationServiceImpl) Recommend(ctx context.Context, today civil.Date, limit int) (*domain.RecommendationResult, error) {
	dbTasks, err := r.repo.ListTasks(ctx, r.mapper.ListOptions.ToDatabase(domain.FilterPending))
	if err != nil {
		return nil, err
	}

	snapshot, err := r.mapper.Task.FromDatabaseSlice(dbTasks)
	if err != nil {
		return nil, errors.NewDatabaseError("decode task", err)
	}

	ranked := r.engine.Rank(snapshot, today)
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	recommendations := make([]domain.Recommendation, len(ranked))
	for i, entry := range ranked {
		recommendations[i] = domain.Recommendation{
			Rank:         i + 1,
			Task:         entry.Task,
			DaysUntilDue: entry.DaysUntilDue,
			Urgency:      entry.Urgency,
			Reason:       recommend.Reason(entry),
		}
	}

	return &domain.RecommendationResult{
		Date:            today,
		Recommendations: recommendations,
		PendingCount:    len(snapshot),
	}, nil
}

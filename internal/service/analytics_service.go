package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/todolist-api/internal/domain"
	"github.com/phrazzld/todolist-api/internal/platform/logger"
	"github.com/phrazzld/todolist-api/internal/store"
)

// AnalyticsService builds the usage summary for a user.
type AnalyticsService interface {
	Summary(ctx context.Context, userID uuid.UUID, period domain.Period) (*domain.Analytics, error)
}

type analyticsService struct {
	store  store.AnalyticsStore
	logger *slog.Logger
	now    clock
}

var _ AnalyticsService = (*analyticsService)(nil)

// NewAnalyticsService creates an AnalyticsService.
func NewAnalyticsService(analytics store.AnalyticsStore, log *slog.Logger) AnalyticsService {
	if log == nil {
		log = slog.Default()
	}
	return &analyticsService{
		store:  analytics,
		logger: log.With(slog.String("component", "analytics_service")),
		now:    utcNow,
	}
}

// Summary runs each aggregate over the period's window. The queries are
// independent reads; none of them mutate.
func (s *analyticsService) Summary(
	ctx context.Context,
	userID uuid.UUID,
	period domain.Period,
) (*domain.Analytics, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	since := period.Since(s.now())

	fail := func(step string, err error) (*domain.Analytics, error) {
		logFailure(log, "analytics query failed", err, slog.String("step", step))
		return nil, NewServiceError("analytics", "summary", step, err)
	}

	total, completed, err := s.store.TaskTotals(ctx, userID, since)
	if err != nil {
		return fail("task totals", err)
	}
	lists, err := s.store.ListTotal(ctx, userID, since)
	if err != nil {
		return fail("list total", err)
	}
	byPriority, err := s.store.TasksByPriority(ctx, userID, since)
	if err != nil {
		return fail("tasks by priority", err)
	}
	byCategory, err := s.store.TasksByCategory(ctx, userID, since)
	if err != nil {
		return fail("tasks by category", err)
	}
	if byCategory == nil {
		byCategory = []domain.CategoryCount{}
	}

	created, err := s.store.RecentTaskCreations(ctx, userID, since, domain.ActivityPoolSize)
	if err != nil {
		return fail("recent task creations", err)
	}
	completions, err := s.store.RecentTaskCompletions(ctx, userID, since, domain.ActivityPoolSize)
	if err != nil {
		return fail("recent task completions", err)
	}
	listsCreated, err := s.store.RecentListCreations(ctx, userID, since, domain.ActivityPoolSize)
	if err != nil {
		return fail("recent list creations", err)
	}

	return &domain.Analytics{
		Period:          period,
		Since:           since,
		TotalTasks:      total,
		CompletedTasks:  completed,
		CompletionRate:  domain.CompletionRate(completed, total),
		TotalLists:      lists,
		TasksByPriority: domain.PriorityCounts(byPriority),
		TasksByCategory: byCategory,
		RecentActivity:  domain.MergeActivity(created, completions, listsCreated),
	}, nil
}

package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/todolist-api/internal/domain"
)

// AnalyticsStore runs the read-only aggregate queries behind the analytics
// summary. A nil since means "no lower bound". Task windows are measured on
// task creation time; list windows on list creation time.
type AnalyticsStore interface {
	// TaskTotals returns the number of tasks and completed tasks.
	TaskTotals(ctx context.Context, userID uuid.UUID, since *time.Time) (total, completed int, err error)

	// ListTotal returns the number of lists.
	ListTotal(ctx context.Context, userID uuid.UUID, since *time.Time) (int, error)

	// TasksByPriority returns task counts keyed by priority. Absent priorities
	// are omitted.
	TasksByPriority(ctx context.Context, userID uuid.UUID, since *time.Time) (map[domain.Priority]int, error)

	// TasksByCategory returns a count for each category with at least one task.
	TasksByCategory(ctx context.Context, userID uuid.UUID, since *time.Time) ([]domain.CategoryCount, error)

	// RecentTaskCreations returns up to limit task_created events, newest first.
	RecentTaskCreations(ctx context.Context, userID uuid.UUID, since *time.Time, limit int) ([]domain.Activity, error)

	// RecentTaskCompletions returns up to limit task_completed events ordered
	// by completion time, newest first.
	RecentTaskCompletions(ctx context.Context, userID uuid.UUID, since *time.Time, limit int) ([]domain.Activity, error)

	// RecentListCreations returns up to limit list_created events, newest first.
	RecentListCreations(ctx context.Context, userID uuid.UUID, since *time.Time, limit int) ([]domain.Activity, error)
}

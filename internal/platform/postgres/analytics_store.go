package postgres

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/todolist-api/internal/domain"
	"github.com/phrazzld/todolist-api/internal/platform/logger"
	"github.com/phrazzld/todolist-api/internal/redact"
	"github.com/phrazzld/todolist-api/internal/store"
)

// PostgresAnalyticsStore implements store.AnalyticsStore with read-only
// aggregate queries. The since bound is sent as a nullable timestamptz so one
// statement serves both bounded and unbounded periods.
type PostgresAnalyticsStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresAnalyticsStore creates an AnalyticsStore on db.
func NewPostgresAnalyticsStore(db store.DBTX, logger *slog.Logger) *PostgresAnalyticsStore {
	if db == nil {
		// ALLOW-PANIC: constructor misuse
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresAnalyticsStore{
		db:     db,
		logger: logger.With(slog.String("component", "analytics_store")),
	}
}

var _ store.AnalyticsStore = (*PostgresAnalyticsStore)(nil)

const (
	taskWindow = ` FROM tasks t JOIN todo_lists l ON l.id = t.list_id
		WHERE l.owner_id = $1 AND ($2::timestamptz IS NULL OR t.created_at >= $2) `
	listWindow = ` FROM todo_lists l
		WHERE l.owner_id = $1 AND ($2::timestamptz IS NULL OR l.created_at >= $2) `
)

// TaskTotals implements store.AnalyticsStore.TaskTotals
func (s *PostgresAnalyticsStore) TaskTotals(
	ctx context.Context,
	userID uuid.UUID,
	since *time.Time,
) (int, int, error) {
	var total, completed int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COUNT(*) FILTER (WHERE t.is_completed)`+taskWindow,
		userID, since).Scan(&total, &completed)
	if err != nil {
		s.fail(ctx, "task totals", err)
		return 0, 0, MapError(err)
	}
	return total, completed, nil
}

// ListTotal implements store.AnalyticsStore.ListTotal
func (s *PostgresAnalyticsStore) ListTotal(ctx context.Context, userID uuid.UUID, since *time.Time) (int, error) {
	var total int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*)`+listWindow, userID, since).Scan(&total); err != nil {
		s.fail(ctx, "list total", err)
		return 0, MapError(err)
	}
	return total, nil
}

// TasksByPriority implements store.AnalyticsStore.TasksByPriority
func (s *PostgresAnalyticsStore) TasksByPriority(
	ctx context.Context,
	userID uuid.UUID,
	since *time.Time,
) (map[domain.Priority]int, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx,
		`SELECT t.priority, COUNT(*)`+taskWindow+`GROUP BY t.priority`, userID, since)
	if err != nil {
		s.fail(ctx, "tasks by priority", err)
		return nil, MapError(err)
	}
	defer closeRows(log, rows)

	counts := make(map[domain.Priority]int)
	for rows.Next() {
		var priority string
		var n int
		if err := rows.Scan(&priority, &n); err != nil {
			return nil, err
		}
		counts[domain.Priority(priority)] = n
	}
	return counts, rows.Err()
}

// TasksByCategory implements store.AnalyticsStore.TasksByCategory
func (s *PostgresAnalyticsStore) TasksByCategory(
	ctx context.Context,
	userID uuid.UUID,
	since *time.Time,
) ([]domain.CategoryCount, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, `
		SELECT c.id, c.name, COUNT(*)
		FROM tasks t
		JOIN todo_lists l ON l.id = t.list_id
		JOIN categories c ON c.id = t.category_id
		WHERE l.owner_id = $1 AND ($2::timestamptz IS NULL OR t.created_at >= $2)
		GROUP BY c.id, c.name
		ORDER BY COUNT(*) DESC, c.name
	`, userID, since)
	if err != nil {
		s.fail(ctx, "tasks by category", err)
		return nil, MapError(err)
	}
	defer closeRows(log, rows)

	counts := []domain.CategoryCount{}
	for rows.Next() {
		var cc domain.CategoryCount
		if err := rows.Scan(&cc.CategoryID, &cc.CategoryName, &cc.Count); err != nil {
			return nil, err
		}
		counts = append(counts, cc)
	}
	return counts, rows.Err()
}

// RecentTaskCreations implements store.AnalyticsStore.RecentTaskCreations
func (s *PostgresAnalyticsStore) RecentTaskCreations(
	ctx context.Context,
	userID uuid.UUID,
	since *time.Time,
	limit int,
) ([]domain.Activity, error) {
	return s.activity(ctx, domain.ActivityTaskCreated,
		`SELECT t.id, t.title, t.created_at`+taskWindow+
			`ORDER BY t.created_at DESC, t.id DESC LIMIT $3`,
		userID, since, limit)
}

// RecentTaskCompletions implements store.AnalyticsStore.RecentTaskCompletions
func (s *PostgresAnalyticsStore) RecentTaskCompletions(
	ctx context.Context,
	userID uuid.UUID,
	since *time.Time,
	limit int,
) ([]domain.Activity, error) {
	return s.activity(ctx, domain.ActivityTaskCompleted,
		`SELECT t.id, t.title, t.completed_at`+taskWindow+
			`AND t.completed_at IS NOT NULL ORDER BY t.completed_at DESC, t.id DESC LIMIT $3`,
		userID, since, limit)
}

// RecentListCreations implements store.AnalyticsStore.RecentListCreations
func (s *PostgresAnalyticsStore) RecentListCreations(
	ctx context.Context,
	userID uuid.UUID,
	since *time.Time,
	limit int,
) ([]domain.Activity, error) {
	return s.activity(ctx, domain.ActivityListCreated,
		`SELECT l.id, l.name, l.created_at`+listWindow+
			`ORDER BY l.created_at DESC, l.id DESC LIMIT $3`,
		userID, since, limit)
}

func (s *PostgresAnalyticsStore) activity(
	ctx context.Context,
	kind domain.ActivityKind,
	query string,
	args ...any,
) ([]domain.Activity, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		s.fail(ctx, string(kind), err)
		return nil, MapError(err)
	}
	defer closeRows(log, rows)

	events := []domain.Activity{}
	for rows.Next() {
		var id uuid.UUID
		var name string
		var at time.Time
		if err := rows.Scan(&id, &name, &at); err != nil {
			return nil, err
		}
		events = append(events, domain.NewActivity(kind, id, name, at))
	}
	return events, rows.Err()
}

func (s *PostgresAnalyticsStore) fail(ctx context.Context, what string, err error) {
	logger.FromContextOrDefault(ctx, s.logger).Error("analytics query failed",
		slog.String("query", what), redact.Attr(err))
}

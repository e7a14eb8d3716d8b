package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/todolist-api/internal/domain"
	"github.com/phrazzld/todolist-api/internal/platform/logger"
	"github.com/phrazzld/todolist-api/internal/redact"
	"github.com/phrazzld/todolist-api/internal/store"
)

// PostgresTaskStore implements the store.TaskStore interface. Ownership is
// enforced by joining each task to its list.
type PostgresTaskStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTaskStore creates a TaskStore on db. If logger is nil, a
// default logger will be used.
func NewPostgresTaskStore(db store.DBTX, logger *slog.Logger) *PostgresTaskStore {
	if db == nil {
		// ALLOW-PANIC: constructor misuse
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresTaskStore{
		db:     db,
		logger: logger.With(slog.String("component", "task_store")),
	}
}

var _ store.TaskStore = (*PostgresTaskStore)(nil)

const taskColumns = `t.id, t.list_id, t.category_id, t.title, t.description, t.priority,
	t.due_date, t.is_completed, t.completed_at, t.tags, t.created_at, t.updated_at`

const ownedTasks = ` FROM tasks t JOIN todo_lists l ON l.id = t.list_id `

// priorityRank orders priorities by urgency rather than alphabetically.
const priorityRank = `CASE t.priority WHEN 'low' THEN 1 WHEN 'medium' THEN 2 WHEN 'high' THEN 3 WHEN 'urgent' THEN 4 END`

// orderBy renders an ORDER BY clause from a whitelisted sort field.
func orderBy(field store.TaskSortField, ascending bool) string {
	dir := " DESC"
	if ascending {
		dir = " ASC"
	}

	var expr string
	switch field {
	case store.SortByUpdatedAt:
		expr = "t.updated_at" + dir
	case store.SortByDueDate:
		expr = "t.due_date" + dir + " NULLS LAST"
	case store.SortByPriority:
		expr = priorityRank + dir
	case store.SortByTitle:
		expr = "t.title" + dir
	default:
		expr = "t.created_at" + dir
	}
	return " ORDER BY " + expr + ", t.id" + dir + " "
}

// WithTx implements store.TaskStore.WithTx
func (s *PostgresTaskStore) WithTx(tx *sql.Tx) store.TaskStore {
	return &PostgresTaskStore{db: tx, logger: s.logger}
}

// Create implements store.TaskStore.Create
func (s *PostgresTaskStore) Create(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := task.Validate(); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO tasks (id, list_id, category_id, title, description, priority,
			due_date, is_completed, completed_at, tags, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`,
		task.ID,
		task.ListID,
		task.CategoryID,
		task.Title,
		task.Description,
		string(task.Priority),
		task.DueDate,
		task.IsCompleted,
		task.CompletedAt,
		tagsArg(task.Tags),
		task.CreatedAt,
		task.UpdatedAt,
	)
	if err != nil {
		log.Error("failed to create task", redact.Attr(err),
			slog.String("task_id", task.ID.String()),
			slog.String("list_id", task.ListID.String()))
		return MapError(err)
	}

	log.Debug("task created", slog.String("task_id", task.ID.String()))
	return nil
}

// GetByID implements store.TaskStore.GetByID
func (s *PostgresTaskStore) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Task, error) {
	return s.getOwned(ctx, userID, id, "")
}

// GetByIDForUpdate implements store.TaskStore.GetByIDForUpdate
func (s *PostgresTaskStore) GetByIDForUpdate(ctx context.Context, userID, id uuid.UUID) (*domain.Task, error) {
	return s.getOwned(ctx, userID, id, " FOR UPDATE OF t")
}

func (s *PostgresTaskStore) getOwned(ctx context.Context, userID, id uuid.UUID, lock string) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	row := s.db.QueryRowContext(ctx,
		`SELECT `+taskColumns+ownedTasks+`WHERE t.id = $1 AND l.owner_id = $2`+lock, id, userID)
	task, err := scanTask(row)
	if err != nil {
		mapped := mapNotFound(err, store.ErrTaskNotFound)
		if !store.IsNotFoundError(mapped) {
			log.Error("failed to get task", redact.Attr(err), slog.String("task_id", id.String()))
		}
		return nil, mapped
	}
	return task, nil
}

// GetManyForUpdate implements store.TaskStore.GetManyForUpdate
func (s *PostgresTaskStore) GetManyForUpdate(
	ctx context.Context,
	userID uuid.UUID,
	ids []uuid.UUID,
) ([]domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if len(ids) == 0 {
		return []domain.Task{}, nil
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+taskColumns+ownedTasks+
			`WHERE t.id = ANY($1::uuid[]) AND l.owner_id = $2 ORDER BY t.id FOR UPDATE OF t`,
		uuidStrings(ids), userID)
	if err != nil {
		log.Error("failed to lock tasks", redact.Attr(err), slog.Int("requested", len(ids)))
		return nil, MapError(err)
	}
	return s.collect(log, rows)
}

// ListByList implements store.TaskStore.ListByList
func (s *PostgresTaskStore) ListByList(
	ctx context.Context,
	listID uuid.UUID,
	filter store.TaskFilter,
) ([]domain.Task, int, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	w := newWhere("t.list_id = $%d", listID)
	if filter.Completed != nil {
		w.add("t.is_completed = $%d", *filter.Completed)
	}
	if filter.Priority != nil {
		w.add("t.priority = $%d", string(*filter.Priority))
	}
	if filter.CategoryID != nil {
		w.add("t.category_id = $%d", *filter.CategoryID)
	}
	if filter.Search != "" {
		w.add(`t.title ILIKE $%d ESCAPE '\'`, containsPattern(filter.Search))
	}

	var total int
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM tasks t WHERE `+w.sql(), w.args...).Scan(&total); err != nil {
		log.Error("failed to count tasks", redact.Attr(err), slog.String("list_id", listID.String()))
		return nil, 0, MapError(err)
	}

	query := `SELECT ` + taskColumns + ` FROM tasks t WHERE ` + w.sql() +
		orderBy(filter.SortBy, filter.Ascending) + w.limitOffset(filter.Page)
	rows, err := s.db.QueryContext(ctx, query, w.args...)
	if err != nil {
		log.Error("failed to query tasks", redact.Attr(err), slog.String("list_id", listID.String()))
		return nil, 0, MapError(err)
	}
	tasks, err := s.collect(log, rows)
	if err != nil {
		return nil, 0, err
	}
	return tasks, total, nil
}

// Search implements store.TaskStore.Search
func (s *PostgresTaskStore) Search(
	ctx context.Context,
	userID uuid.UUID,
	query string,
	page domain.PageRequest,
) ([]domain.Task, int, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	w := newWhere("l.owner_id = $%d", userID)
	w.add(`t.title ILIKE $%d ESCAPE '\'`, containsPattern(query))

	var total int
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*)`+ownedTasks+`WHERE `+w.sql(), w.args...).Scan(&total); err != nil {
		log.Error("failed to count task search", redact.Attr(err))
		return nil, 0, MapError(err)
	}

	sqlQuery := `SELECT ` + taskColumns + ownedTasks + `WHERE ` + w.sql() +
		orderBy(store.SortByCreatedAt, false) + w.limitOffset(page)
	rows, err := s.db.QueryContext(ctx, sqlQuery, w.args...)
	if err != nil {
		log.Error("failed to search tasks", redact.Attr(err))
		return nil, 0, MapError(err)
	}
	tasks, err := s.collect(log, rows)
	if err != nil {
		return nil, 0, err
	}
	return tasks, total, nil
}

// Update implements store.TaskStore.Update
func (s *PostgresTaskStore) Update(ctx context.Context, userID uuid.UUID, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := task.Validate(); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE tasks t
		SET category_id = $1, title = $2, description = $3, priority = $4, due_date = $5,
		    is_completed = $6, completed_at = $7, tags = $8, updated_at = $9
		FROM todo_lists l
		WHERE t.id = $10 AND t.list_id = l.id AND l.owner_id = $11
	`,
		task.CategoryID,
		task.Title,
		task.Description,
		string(task.Priority),
		task.DueDate,
		task.IsCompleted,
		task.CompletedAt,
		tagsArg(task.Tags),
		task.UpdatedAt,
		task.ID,
		userID,
	)
	if err != nil {
		log.Error("failed to update task", redact.Attr(err), slog.String("task_id", task.ID.String()))
		return MapError(err)
	}
	return CheckRowsAffected(result, store.ErrTaskNotFound)
}

// Delete implements store.TaskStore.Delete
func (s *PostgresTaskStore) Delete(ctx context.Context, userID, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `
		DELETE FROM tasks t
		USING todo_lists l
		WHERE t.id = $1 AND t.list_id = l.id AND l.owner_id = $2
	`, id, userID)
	if err != nil {
		log.Error("failed to delete task", redact.Attr(err), slog.String("task_id", id.String()))
		return MapError(err)
	}
	return CheckRowsAffected(result, store.ErrTaskNotFound)
}

// DeleteMany implements store.TaskStore.DeleteMany
func (s *PostgresTaskStore) DeleteMany(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (int, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if len(ids) == 0 {
		return 0, nil
	}

	result, err := s.db.ExecContext(ctx, `
		DELETE FROM tasks t
		USING todo_lists l
		WHERE t.id = ANY($1::uuid[]) AND t.list_id = l.id AND l.owner_id = $2
	`, uuidStrings(ids), userID)
	if err != nil {
		log.Error("failed to delete tasks", redact.Attr(err), slog.Int("requested", len(ids)))
		return 0, MapError(err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}

	log.Info("tasks deleted", slog.Int64("count", n))
	return int(n), nil
}

func (s *PostgresTaskStore) collect(log *slog.Logger, rows *sql.Rows) ([]domain.Task, error) {
	defer closeRows(log, rows)

	tasks := []domain.Task{}
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			log.Error("failed to scan task row", redact.Attr(err))
			return nil, err
		}
		tasks = append(tasks, *task)
	}
	if err := rows.Err(); err != nil {
		log.Error("error after scanning task rows", redact.Attr(err))
		return nil, err
	}
	return tasks, nil
}

func scanTask(row rowScanner) (*domain.Task, error) {
	var (
		task        domain.Task
		categoryID  uuid.NullUUID
		description sql.NullString
		priority    string
		dueDate     sql.NullTime
		completedAt sql.NullTime
		tags        []string
	)
	if err := row.Scan(
		&task.ID,
		&task.ListID,
		&categoryID,
		&task.Title,
		&description,
		&priority,
		&dueDate,
		&task.IsCompleted,
		&completedAt,
		textArray(&tags),
		&task.CreatedAt,
		&task.UpdatedAt,
	); err != nil {
		return nil, err
	}

	task.CategoryID = nullUUIDPtr(categoryID)
	task.Description = nullStringPtr(description)
	task.Priority = domain.Priority(priority)
	task.DueDate = nullTimePtr(dueDate)
	task.CompletedAt = nullTimePtr(completedAt)
	if tags == nil {
		tags = []string{}
	}
	task.Tags = tags
	return &task, nil
}

// tagsArg keeps an empty tag set from being sent as NULL.
func tagsArg(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}

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

// PostgresListStore implements the store.ListStore interface.
type PostgresListStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresListStore creates a ListStore on db. If logger is nil, a
// default logger will be used.
func NewPostgresListStore(db store.DBTX, logger *slog.Logger) *PostgresListStore {
	if db == nil {
		// ALLOW-PANIC: constructor misuse
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresListStore{
		db:     db,
		logger: logger.With(slog.String("component", "list_store")),
	}
}

var _ store.ListStore = (*PostgresListStore)(nil)

// listSelect reads a list with its task aggregates. Callers append WHERE
// conditions on l and must end with listGroupBy.
const listSelect = `
	SELECT l.id, l.owner_id, l.name, l.description, l.color, l.is_shared,
	       l.created_at, l.updated_at,
	       COUNT(t.id) AS task_count,
	       COUNT(t.id) FILTER (WHERE t.is_completed) AS completed_task_count
	FROM todo_lists l
	LEFT JOIN tasks t ON t.list_id = l.id
`

const listGroupBy = ` GROUP BY l.id `

// WithTx implements store.ListStore.WithTx
func (s *PostgresListStore) WithTx(tx *sql.Tx) store.ListStore {
	return &PostgresListStore{db: tx, logger: s.logger}
}

// Create implements store.ListStore.Create
func (s *PostgresListStore) Create(ctx context.Context, list *domain.TodoList) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := list.Validate(); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO todo_lists (id, owner_id, name, description, color, is_shared, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`,
		list.ID,
		list.OwnerID,
		list.Name,
		list.Description,
		list.Color,
		list.IsShared,
		list.CreatedAt,
		list.UpdatedAt,
	)
	if err != nil {
		log.Error("failed to create list", redact.Attr(err),
			slog.String("list_id", list.ID.String()))
		return MapError(err)
	}

	log.Debug("list created", slog.String("list_id", list.ID.String()))
	return nil
}

// GetByID implements store.ListStore.GetByID
func (s *PostgresListStore) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.TodoList, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	row := s.db.QueryRowContext(ctx,
		listSelect+`WHERE l.id = $1 AND l.owner_id = $2`+listGroupBy, id, ownerID)
	list, err := scanList(row)
	if err != nil {
		mapped := mapNotFound(err, store.ErrListNotFound)
		if !store.IsNotFoundError(mapped) {
			log.Error("failed to get list", redact.Attr(err), slog.String("list_id", id.String()))
		}
		return nil, mapped
	}
	return list, nil
}

// List implements store.ListStore.List
func (s *PostgresListStore) List(
	ctx context.Context,
	ownerID uuid.UUID,
	filter store.ListFilter,
) ([]domain.TodoList, int, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	w := newWhere("l.owner_id = $%d", ownerID)
	if filter.Search != "" {
		w.add(`l.name ILIKE $%d ESCAPE '\'`, containsPattern(filter.Search))
	}

	var total int
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM todo_lists l WHERE `+w.sql(), w.args...).Scan(&total); err != nil {
		log.Error("failed to count lists", redact.Attr(err))
		return nil, 0, MapError(err)
	}

	query := listSelect + `WHERE ` + w.sql() + listGroupBy +
		`ORDER BY l.created_at DESC, l.id DESC ` + w.limitOffset(filter.Page)
	rows, err := s.db.QueryContext(ctx, query, w.args...)
	if err != nil {
		log.Error("failed to query lists", redact.Attr(err))
		return nil, 0, MapError(err)
	}
	defer closeRows(log, rows)

	lists := []domain.TodoList{}
	for rows.Next() {
		list, err := scanList(rows)
		if err != nil {
			log.Error("failed to scan list row", redact.Attr(err))
			return nil, 0, err
		}
		lists = append(lists, *list)
	}
	if err := rows.Err(); err != nil {
		log.Error("error after scanning list rows", redact.Attr(err))
		return nil, 0, err
	}

	return lists, total, nil
}

// Update implements store.ListStore.Update
func (s *PostgresListStore) Update(ctx context.Context, list *domain.TodoList) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `
		UPDATE todo_lists
		SET name = $1, description = $2, color = $3, is_shared = $4, updated_at = $5
		WHERE id = $6 AND owner_id = $7
	`,
		list.Name,
		list.Description,
		list.Color,
		list.IsShared,
		list.UpdatedAt,
		list.ID,
		list.OwnerID,
	)
	if err != nil {
		log.Error("failed to update list", redact.Attr(err), slog.String("list_id", list.ID.String()))
		return MapError(err)
	}
	return CheckRowsAffected(result, store.ErrListNotFound)
}

// Delete implements store.ListStore.Delete
func (s *PostgresListStore) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx,
		`DELETE FROM todo_lists WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		log.Error("failed to delete list", redact.Attr(err), slog.String("list_id", id.String()))
		return MapError(err)
	}
	if err := CheckRowsAffected(result, store.ErrListNotFound); err != nil {
		return err
	}

	log.Info("list deleted", slog.String("list_id", id.String()))
	return nil
}

func scanList(row rowScanner) (*domain.TodoList, error) {
	var list domain.TodoList
	var description sql.NullString
	if err := row.Scan(
		&list.ID,
		&list.OwnerID,
		&list.Name,
		&description,
		&list.Color,
		&list.IsShared,
		&list.CreatedAt,
		&list.UpdatedAt,
		&list.TaskCount,
		&list.CompletedTaskCount,
	); err != nil {
		return nil, err
	}
	list.Description = nullStringPtr(description)
	return &list, nil
}

package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/todolist-api/internal/domain"
	"github.com/phrazzld/todolist-api/internal/platform/logger"
	"github.com/phrazzld/todolist-api/internal/redact"
	"github.com/phrazzld/todolist-api/internal/store"
)

// PostgresCategoryStore implements the store.CategoryStore interface.
type PostgresCategoryStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCategoryStore creates a CategoryStore on db. If logger is nil,
// a default logger will be used.
func NewPostgresCategoryStore(db store.DBTX, logger *slog.Logger) *PostgresCategoryStore {
	if db == nil {
		// ALLOW-PANIC: constructor misuse
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresCategoryStore{
		db:     db,
		logger: logger.With(slog.String("component", "category_store")),
	}
}

var _ store.CategoryStore = (*PostgresCategoryStore)(nil)

const categoryColumns = `id, user_id, name, color, created_at, updated_at`

// WithTx implements store.CategoryStore.WithTx
func (s *PostgresCategoryStore) WithTx(tx *sql.Tx) store.CategoryStore {
	return &PostgresCategoryStore{db: tx, logger: s.logger}
}

// Create implements store.CategoryStore.Create
func (s *PostgresCategoryStore) Create(ctx context.Context, category *domain.Category) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := category.Validate(); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO categories (`+categoryColumns+`) VALUES ($1, $2, $3, $4, $5, $6)`,
		category.ID,
		category.UserID,
		category.Name,
		category.Color,
		category.CreatedAt,
		category.UpdatedAt,
	)
	if err != nil {
		log.Error("failed to create category", redact.Attr(err),
			slog.String("category_id", category.ID.String()))
		return MapError(err)
	}
	return nil
}

// GetByID implements store.CategoryStore.GetByID
func (s *PostgresCategoryStore) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Category, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	row := s.db.QueryRowContext(ctx,
		`SELECT `+categoryColumns+` FROM categories WHERE id = $1 AND user_id = $2`, id, userID)
	category, err := scanCategory(row)
	if err != nil {
		mapped := mapNotFound(err, store.ErrCategoryNotFound)
		if !store.IsNotFoundError(mapped) {
			log.Error("failed to get category", redact.Attr(err), slog.String("category_id", id.String()))
		}
		return nil, mapped
	}
	return category, nil
}

// ListByUser implements store.CategoryStore.ListByUser
func (s *PostgresCategoryStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Category, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+categoryColumns+` FROM categories WHERE user_id = $1 ORDER BY name, id`, userID)
	if err != nil {
		log.Error("failed to list categories", redact.Attr(err))
		return nil, MapError(err)
	}
	defer closeRows(log, rows)

	categories := []domain.Category{}
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			log.Error("failed to scan category row", redact.Attr(err))
			return nil, err
		}
		categories = append(categories, *category)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return categories, nil
}

// Update implements store.CategoryStore.Update
func (s *PostgresCategoryStore) Update(ctx context.Context, category *domain.Category) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `
		UPDATE categories SET name = $1, color = $2, updated_at = $3
		WHERE id = $4 AND user_id = $5
	`,
		category.Name,
		category.Color,
		category.UpdatedAt,
		category.ID,
		category.UserID,
	)
	if err != nil {
		log.Error("failed to update category", redact.Attr(err),
			slog.String("category_id", category.ID.String()))
		return MapError(err)
	}
	return CheckRowsAffected(result, store.ErrCategoryNotFound)
}

// DetachTasks implements store.CategoryStore.DetachTasks
func (s *PostgresCategoryStore) DetachTasks(ctx context.Context, id uuid.UUID) (int, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx,
		`UPDATE tasks SET category_id = NULL, updated_at = $1 WHERE category_id = $2`,
		time.Now().UTC(), id)
	if err != nil {
		log.Error("failed to detach tasks from category", redact.Attr(err),
			slog.String("category_id", id.String()))
		return 0, MapError(err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

// Delete implements store.CategoryStore.Delete
func (s *PostgresCategoryStore) Delete(ctx context.Context, userID, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx,
		`DELETE FROM categories WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		log.Error("failed to delete category", redact.Attr(err),
			slog.String("category_id", id.String()))
		return MapError(err)
	}
	return CheckRowsAffected(result, store.ErrCategoryNotFound)
}

func scanCategory(row rowScanner) (*domain.Category, error) {
	var c domain.Category
	if err := row.Scan(&c.ID, &c.UserID, &c.Name, &c.Color, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

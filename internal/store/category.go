package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/todolist-api/internal/domain"
)

// CategoryStore defines persistence for categories, scoped by owning user.
type CategoryStore interface {
	Create(ctx context.Context, category *domain.Category) error

	// GetByID returns ErrCategoryNotFound when absent or not owned by userID.
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Category, error)

	// ListByUser returns all of the user's categories ordered by name.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Category, error)

	Update(ctx context.Context, category *domain.Category) error

	// DetachTasks clears the category reference on every task that carries it.
	DetachTasks(ctx context.Context, id uuid.UUID) (int, error)

	// Delete returns ErrCategoryNotFound when absent or not owned by userID.
	Delete(ctx context.Context, userID, id uuid.UUID) error

	WithTx(tx *sql.Tx) CategoryStore
}

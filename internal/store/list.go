package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/todolist-api/internal/domain"
)

// ListFilter narrows a list query.
type ListFilter struct {
	// Search is a case-insensitive substring matched against the list name.
	Search string
	Page   domain.PageRequest
}

// ListStore defines persistence for todo lists. Every read and write is
// scoped by the owning user; rows owned by others behave as missing.
type ListStore interface {
	// Create inserts a new list.
	Create(ctx context.Context, list *domain.TodoList) error

	// GetByID returns the list with its task counts.
	// Returns ErrListNotFound when absent or not owned by ownerID.
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.TodoList, error)

	// List returns one page of the owner's lists, newest first, and the
	// total number of matching lists.
	List(ctx context.Context, ownerID uuid.UUID, filter ListFilter) ([]domain.TodoList, int, error)

	// Update persists name, description, color and shared flag.
	// Returns ErrListNotFound when absent or not owned.
	Update(ctx context.Context, list *domain.TodoList) error

	// Delete removes the list; its tasks are removed with it.
	// Returns ErrListNotFound when absent or not owned.
	Delete(ctx context.Context, ownerID, id uuid.UUID) error

	// WithTx returns a ListStore bound to tx.
	WithTx(tx *sql.Tx) ListStore
}

package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/todolist-api/internal/domain"
)

// TaskSortField names a sortable task column.
type TaskSortField string

// Sortable task fields.
const (
	SortByCreatedAt TaskSortField = "created_at"
	SortByUpdatedAt TaskSortField = "updated_at"
	SortByDueDate   TaskSortField = "due_date"
	SortByPriority  TaskSortField = "priority"
	SortByTitle     TaskSortField = "title"
)

// ParseTaskSortField accepts both camelCase and snake_case names and falls
// back to SortByCreatedAt for anything else.
func ParseTaskSortField(s string) TaskSortField {
	switch s {
	case "updatedAt", "updated_at":
		return SortByUpdatedAt
	case "dueDate", "due_date":
		return SortByDueDate
	case "priority":
		return SortByPriority
	case "title":
		return SortByTitle
	default:
		return SortByCreatedAt
	}
}

// TaskFilter narrows and orders a task listing within one list.
type TaskFilter struct {
	Completed  *bool
	Priority   *domain.Priority
	CategoryID *uuid.UUID
	// Search is a case-insensitive substring matched against the title.
	Search    string
	SortBy    TaskSortField
	Ascending bool
	Page      domain.PageRequest
}

// TaskStore defines persistence for tasks. Ownership is resolved through the
// parent list: a task is visible only if its list belongs to the caller.
type TaskStore interface {
	// Create inserts a task. The caller has already verified list and
	// category ownership.
	Create(ctx context.Context, task *domain.Task) error

	// GetByID returns the task if its list is owned by userID.
	// Returns ErrTaskNotFound otherwise.
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Task, error)

	// GetByIDForUpdate is GetByID that also locks the task row for the
	// rest of the transaction.
	GetByIDForUpdate(ctx context.Context, userID, id uuid.UUID) (*domain.Task, error)

	// GetManyForUpdate loads the owned tasks among ids and locks them for the
	// rest of the transaction. Missing or foreign ids are simply absent from
	// the result.
	GetManyForUpdate(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]domain.Task, error)

	// ListByList returns one page of tasks from listID and the total count
	// of matching tasks. The caller has already verified list ownership.
	ListByList(ctx context.Context, listID uuid.UUID, filter TaskFilter) ([]domain.Task, int, error)

	// Search matches titles across every list owned by userID, newest first.
	Search(ctx context.Context, userID uuid.UUID, query string, page domain.PageRequest) ([]domain.Task, int, error)

	// Update persists every mutable field of task if its list is owned by
	// userID. Returns ErrTaskNotFound otherwise.
	Update(ctx context.Context, userID uuid.UUID, task *domain.Task) error

	// Delete removes the task if owned. Returns ErrTaskNotFound otherwise.
	Delete(ctx context.Context, userID, id uuid.UUID) error

	// DeleteMany removes the owned tasks among ids and reports how many
	// rows were deleted.
	DeleteMany(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (int, error)

	// WithTx returns a TaskStore bound to tx.
	WithTx(tx *sql.Tx) TaskStore
}

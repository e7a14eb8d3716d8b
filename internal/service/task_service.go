package service

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/todolist-api/internal/domain"
	"github.com/phrazzld/todolist-api/internal/platform/logger"
	"github.com/phrazzld/todolist-api/internal/store"
)

// TaskService manages tasks inside the calling user's lists.
type TaskService interface {
	List(ctx context.Context, userID, listID uuid.UUID, filter store.TaskFilter) (domain.Page[domain.Task], error)
	Create(ctx context.Context, userID, listID uuid.UUID, draft domain.TaskDraft) (*domain.Task, error)
	Get(ctx context.Context, userID, taskID uuid.UUID) (*domain.Task, error)
	Update(ctx context.Context, userID, taskID uuid.UUID, patch domain.TaskPatch) (*domain.Task, error)
	Toggle(ctx context.Context, userID, taskID uuid.UUID) (*domain.Task, error)
	Delete(ctx context.Context, userID, taskID uuid.UUID) error

	// BulkCreate inserts every draft into listID or none of them.
	BulkCreate(ctx context.Context, userID, listID uuid.UUID, drafts []domain.TaskDraft) ([]domain.Task, error)

	// BulkUpdate applies patch to every task in ids or to none of them.
	// Returns ErrTasksNotAccessible if any id is missing or foreign.
	BulkUpdate(ctx context.Context, userID uuid.UUID, ids []uuid.UUID, patch domain.TaskPatch) ([]domain.Task, error)

	// BulkDelete removes every task in ids or none of them.
	// Returns ErrTasksNotAccessible if any id is missing or foreign.
	BulkDelete(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) error
}

var (
	errEmptyTaskIDs = domain.NewValidationError("task_ids", "must not be empty", nil)
	errEmptyDrafts  = domain.NewValidationError("tasks", "must not be empty", nil)
)

type taskService struct {
	tx         store.Transactor
	tasks      store.TaskStore
	lists      store.ListStore
	categories store.CategoryStore
	logger     *slog.Logger
	now        clock
}

var _ TaskService = (*taskService)(nil)

// NewTaskService creates a TaskService.
func NewTaskService(
	tx store.Transactor,
	tasks store.TaskStore,
	lists store.ListStore,
	categories store.CategoryStore,
	log *slog.Logger,
) TaskService {
	if log == nil {
		log = slog.Default()
	}
	return &taskService{
		tx:         tx,
		tasks:      tasks,
		lists:      lists,
		categories: categories,
		logger:     log.With(slog.String("component", "task_service")),
		now:        utcNow,
	}
}

func (s *taskService) List(
	ctx context.Context,
	userID, listID uuid.UUID,
	filter store.TaskFilter,
) (domain.Page[domain.Task], error) {
	if _, err := s.lists.GetByID(ctx, userID, listID); err != nil {
		return domain.Page[domain.Task]{}, NewServiceError("task", "list", "", err)
	}

	tasks, total, err := s.tasks.ListByList(ctx, listID, filter)
	if err != nil {
		logFailure(logger.FromContextOrDefault(ctx, s.logger), "failed to list tasks", err,
			slog.String("list_id", listID.String()))
		return domain.Page[domain.Task]{}, NewServiceError("task", "list", "", err)
	}
	return domain.NewPage(tasks, filter.Page, total), nil
}

func (s *taskService) Create(
	ctx context.Context,
	userID, listID uuid.UUID,
	draft domain.TaskDraft,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := domain.NewTask(listID, draft)
	if err != nil {
		return nil, NewServiceError("task", "create", "invalid task", err)
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		if _, err := s.lists.WithTx(tx).GetByID(ctx, userID, listID); err != nil {
			return err
		}
		if err := s.checkCategories(ctx, tx, userID, task.CategoryID); err != nil {
			return err
		}
		return s.tasks.WithTx(tx).Create(ctx, task)
	})
	if err != nil {
		logFailure(log, "failed to create task", err, slog.String("list_id", listID.String()))
		return nil, NewServiceError("task", "create", "", err)
	}

	log.Info("task created",
		slog.String("task_id", task.ID.String()),
		slog.String("list_id", listID.String()))
	return task, nil
}

func (s *taskService) Get(ctx context.Context, userID, taskID uuid.UUID) (*domain.Task, error) {
	task, err := s.tasks.GetByID(ctx, userID, taskID)
	if err != nil {
		return nil, NewServiceError("task", "get", "", err)
	}
	return task, nil
}

func (s *taskService) Update(
	ctx context.Context,
	userID, taskID uuid.UUID,
	patch domain.TaskPatch,
) (*domain.Task, error) {
	return s.mutate(ctx, "update", userID, taskID, func(ctx context.Context, tx *sql.Tx, task *domain.Task) error {
		if patch.TouchesCategory() {
			if err := s.checkCategories(ctx, tx, userID, patch.CategoryID.Value); err != nil {
				return err
			}
		}
		return patch.Apply(task, s.now())
	})
}

// Toggle flips completion, stamping or clearing completed_at to match.
func (s *taskService) Toggle(ctx context.Context, userID, taskID uuid.UUID) (*domain.Task, error) {
	return s.mutate(ctx, "toggle", userID, taskID, func(_ context.Context, _ *sql.Tx, task *domain.Task) error {
		task.Toggle(s.now())
		return nil
	})
}

// mutate loads one owned task, lets change modify it and saves the result,
// all inside a transaction.
func (s *taskService) mutate(
	ctx context.Context,
	op string,
	userID, taskID uuid.UUID,
	change func(ctx context.Context, tx *sql.Tx, task *domain.Task) error,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var result *domain.Task
	err := s.tx.RunInTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		txTasks := s.tasks.WithTx(tx)

		task, err := txTasks.GetByIDForUpdate(ctx, userID, taskID)
		if err != nil {
			return err
		}
		if err := change(ctx, tx, task); err != nil {
			return err
		}
		if err := txTasks.Update(ctx, userID, task); err != nil {
			return err
		}
		result = task
		return nil
	})
	if err != nil {
		logFailure(log, "failed to "+op+" task", err, slog.String("task_id", taskID.String()))
		return nil, NewServiceError("task", op, "", err)
	}
	return result, nil
}

func (s *taskService) Delete(ctx context.Context, userID, taskID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	err := s.tx.RunInTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		return s.tasks.WithTx(tx).Delete(ctx, userID, taskID)
	})
	if err != nil {
		logFailure(log, "failed to delete task", err, slog.String("task_id", taskID.String()))
		return NewServiceError("task", "delete", "", err)
	}
	return nil
}

func (s *taskService) BulkCreate(
	ctx context.Context,
	userID, listID uuid.UUID,
	drafts []domain.TaskDraft,
) ([]domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if len(drafts) == 0 {
		return nil, NewServiceError("task", "bulk_create", "", errEmptyDrafts)
	}

	tasks := make([]domain.Task, 0, len(drafts))
	var categoryIDs []*uuid.UUID
	for _, draft := range drafts {
		task, err := domain.NewTask(listID, draft)
		if err != nil {
			return nil, NewServiceError("task", "bulk_create", "invalid task", err)
		}
		tasks = append(tasks, *task)
		categoryIDs = append(categoryIDs, task.CategoryID)
	}

	err := s.tx.RunInTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		if _, err := s.lists.WithTx(tx).GetByID(ctx, userID, listID); err != nil {
			return err
		}
		if err := s.checkCategories(ctx, tx, userID, categoryIDs...); err != nil {
			return err
		}

		txTasks := s.tasks.WithTx(tx)
		for i := range tasks {
			if err := txTasks.Create(ctx, &tasks[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		logFailure(log, "failed to bulk create tasks", err, slog.String("list_id", listID.String()))
		return nil, NewServiceError("task", "bulk_create", "", err)
	}

	log.Info("tasks created",
		slog.String("list_id", listID.String()),
		slog.Int("count", len(tasks)))
	return tasks, nil
}

func (s *taskService) BulkUpdate(
	ctx context.Context,
	userID uuid.UUID,
	ids []uuid.UUID,
	patch domain.TaskPatch,
) ([]domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return nil, NewServiceError("task", "bulk_update", "", errEmptyTaskIDs)
	}

	var updated []domain.Task
	err := s.tx.RunInTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		txTasks := s.tasks.WithTx(tx)

		tasks, err := txTasks.GetManyForUpdate(ctx, userID, ids)
		if err != nil {
			return err
		}
		if len(tasks) != len(ids) {
			return ErrTasksNotAccessible
		}
		if patch.TouchesCategory() {
			if err := s.checkCategories(ctx, tx, userID, patch.CategoryID.Value); err != nil {
				return err
			}
		}

		now := s.now()
		for i := range tasks {
			if err := patch.Apply(&tasks[i], now); err != nil {
				return err
			}
			if err := txTasks.Update(ctx, userID, &tasks[i]); err != nil {
				return err
			}
		}
		updated = tasks
		return nil
	})
	if err != nil {
		logFailure(log, "failed to bulk update tasks", err, slog.Int("count", len(ids)))
		return nil, NewServiceError("task", "bulk_update", "", err)
	}

	log.Info("tasks updated", slog.Int("count", len(updated)))
	return updated, nil
}

func (s *taskService) BulkDelete(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return NewServiceError("task", "bulk_delete", "", errEmptyTaskIDs)
	}

	err := s.tx.RunInTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		txTasks := s.tasks.WithTx(tx)

		tasks, err := txTasks.GetManyForUpdate(ctx, userID, ids)
		if err != nil {
			return err
		}
		if len(tasks) != len(ids) {
			return ErrTasksNotAccessible
		}

		deleted, err := txTasks.DeleteMany(ctx, userID, ids)
		if err != nil {
			return err
		}
		if deleted != len(ids) {
			return ErrTasksNotAccessible
		}
		return nil
	})
	if err != nil {
		logFailure(log, "failed to bulk delete tasks", err, slog.Int("count", len(ids)))
		return NewServiceError("task", "bulk_delete", "", err)
	}

	log.Info("tasks deleted", slog.Int("count", len(ids)))
	return nil
}

// checkCategories verifies that every non-nil category id belongs to userID.
func (s *taskService) checkCategories(ctx context.Context, tx *sql.Tx, userID uuid.UUID, ids ...*uuid.UUID) error {
	categories := s.categories.WithTx(tx)
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if id == nil {
			continue
		}
		if _, ok := seen[*id]; ok {
			continue
		}
		seen[*id] = struct{}{}
		if _, err := categories.GetByID(ctx, userID, *id); err != nil {
			return err
		}
	}
	return nil
}

// uniqueIDs drops duplicates, keeping first occurrences in order.
func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

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

// ListInput carries the fields of a list creation request.
type ListInput struct {
	Name        string
	Description *string
	Color       string
	IsShared    bool
}

// ListService manages the todo lists of the calling user.
type ListService interface {
	List(ctx context.Context, userID uuid.UUID, filter store.ListFilter) (domain.Page[domain.TodoList], error)
	Create(ctx context.Context, userID uuid.UUID, in ListInput) (*domain.TodoList, error)
	Get(ctx context.Context, userID, listID uuid.UUID) (*domain.TodoList, error)
	Update(ctx context.Context, userID, listID uuid.UUID, patch domain.TodoListPatch) (*domain.TodoList, error)
	Delete(ctx context.Context, userID, listID uuid.UUID) error
}

type listService struct {
	tx     store.Transactor
	lists  store.ListStore
	logger *slog.Logger
	now    clock
}

var _ ListService = (*listService)(nil)

// NewListService creates a ListService.
func NewListService(tx store.Transactor, lists store.ListStore, log *slog.Logger) ListService {
	if log == nil {
		log = slog.Default()
	}
	return &listService{
		tx:     tx,
		lists:  lists,
		logger: log.With(slog.String("component", "list_service")),
		now:    utcNow,
	}
}

func (s *listService) List(
	ctx context.Context,
	userID uuid.UUID,
	filter store.ListFilter,
) (domain.Page[domain.TodoList], error) {
	lists, total, err := s.lists.List(ctx, userID, filter)
	if err != nil {
		logFailure(logger.FromContextOrDefault(ctx, s.logger), "failed to list todo lists", err)
		return domain.Page[domain.TodoList]{}, NewServiceError("list", "list", "", err)
	}
	return domain.NewPage(lists, filter.Page, total), nil
}

func (s *listService) Create(ctx context.Context, userID uuid.UUID, in ListInput) (*domain.TodoList, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	list, err := domain.NewTodoList(userID, in.Name, in.Description, in.Color, in.IsShared)
	if err != nil {
		return nil, NewServiceError("list", "create", "invalid list", err)
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		return s.lists.WithTx(tx).Create(ctx, list)
	})
	if err != nil {
		logFailure(log, "failed to create todo list", err)
		return nil, NewServiceError("list", "create", "", err)
	}

	log.Info("todo list created", slog.String("list_id", list.ID.String()))
	return list, nil
}

func (s *listService) Get(ctx context.Context, userID, listID uuid.UUID) (*domain.TodoList, error) {
	list, err := s.lists.GetByID(ctx, userID, listID)
	if err != nil {
		return nil, NewServiceError("list", "get", "", err)
	}
	return list, nil
}

// Update applies patch and returns the list reloaded with its task counts.
func (s *listService) Update(
	ctx context.Context,
	userID, listID uuid.UUID,
	patch domain.TodoListPatch,
) (*domain.TodoList, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var updated *domain.TodoList
	err := s.tx.RunInTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.lists.WithTx(tx)

		list, err := txStore.GetByID(ctx, userID, listID)
		if err != nil {
			return err
		}
		if err := patch.Apply(list, s.now()); err != nil {
			return err
		}
		if err := txStore.Update(ctx, list); err != nil {
			return err
		}
		updated = list
		return nil
	})
	if err != nil {
		logFailure(log, "failed to update todo list", err, slog.String("list_id", listID.String()))
		return nil, NewServiceError("list", "update", "", err)
	}
	return updated, nil
}

func (s *listService) Delete(ctx context.Context, userID, listID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	err := s.tx.RunInTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		return s.lists.WithTx(tx).Delete(ctx, userID, listID)
	})
	if err != nil {
		logFailure(log, "failed to delete todo list", err, slog.String("list_id", listID.String()))
		return NewServiceError("list", "delete", "", err)
	}

	log.Info("todo list deleted", slog.String("list_id", listID.String()))
	return nil
}

package mocks

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/todolist-api/internal/domain"
	"github.com/phrazzld/todolist-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// MockTaskStore is a testify mock of store.TaskStore.
type MockTaskStore struct {
	mock.Mock
}

var _ store.TaskStore = (*MockTaskStore)(nil)

func (m *MockTaskStore) Create(ctx context.Context, task *domain.Task) error {
	return m.Called(ctx, task).Error(0)
}

func (m *MockTaskStore) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Task, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}

func (m *MockTaskStore) GetByIDForUpdate(ctx context.Context, userID, id uuid.UUID) (*domain.Task, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}

func (m *MockTaskStore) GetManyForUpdate(
	ctx context.Context,
	userID uuid.UUID,
	ids []uuid.UUID,
) ([]domain.Task, error) {
	args := m.Called(ctx, userID, ids)
	tasks, _ := args.Get(0).([]domain.Task)
	return tasks, args.Error(1)
}

func (m *MockTaskStore) ListByList(
	ctx context.Context,
	listID uuid.UUID,
	filter store.TaskFilter,
) ([]domain.Task, int, error) {
	args := m.Called(ctx, listID, filter)
	tasks, _ := args.Get(0).([]domain.Task)
	return tasks, args.Int(1), args.Error(2)
}

func (m *MockTaskStore) Search(
	ctx context.Context,
	userID uuid.UUID,
	query string,
	page domain.PageRequest,
) ([]domain.Task, int, error) {
	args := m.Called(ctx, userID, query, page)
	tasks, _ := args.Get(0).([]domain.Task)
	return tasks, args.Int(1), args.Error(2)
}

func (m *MockTaskStore) Update(ctx context.Context, userID uuid.UUID, task *domain.Task) error {
	return m.Called(ctx, userID, task).Error(0)
}

func (m *MockTaskStore) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return m.Called(ctx, userID, id).Error(0)
}

func (m *MockTaskStore) DeleteMany(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (int, error) {
	args := m.Called(ctx, userID, ids)
	return args.Int(0), args.Error(1)
}

// WithTx returns the mock itself.
func (m *MockTaskStore) WithTx(*sql.Tx) store.TaskStore {
	return m
}

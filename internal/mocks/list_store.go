package mocks

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/todolist-api/internal/domain"
	"github.com/phrazzld/todolist-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// MockListStore is a testify mock of store.ListStore.
type MockListStore struct {
	mock.Mock
}

var _ store.ListStore = (*MockListStore)(nil)

func (m *MockListStore) Create(ctx context.Context, list *domain.TodoList) error {
	return m.Called(ctx, list).Error(0)
}

func (m *MockListStore) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.TodoList, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TodoList), args.Error(1)
}

func (m *MockListStore) List(
	ctx context.Context,
	ownerID uuid.UUID,
	filter store.ListFilter,
) ([]domain.TodoList, int, error) {
	args := m.Called(ctx, ownerID, filter)
	lists, _ := args.Get(0).([]domain.TodoList)
	return lists, args.Int(1), args.Error(2)
}

func (m *MockListStore) Update(ctx context.Context, list *domain.TodoList) error {
	return m.Called(ctx, list).Error(0)
}

func (m *MockListStore) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return m.Called(ctx, ownerID, id).Error(0)
}

// WithTx returns the mock itself.
func (m *MockListStore) WithTx(*sql.Tx) store.ListStore {
	return m
}

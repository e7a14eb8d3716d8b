package mocks

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/todolist-api/internal/domain"
	"github.com/phrazzld/todolist-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// MockCategoryStore is a testify mock of store.CategoryStore.
type MockCategoryStore struct {
	mock.Mock
}

var _ store.CategoryStore = (*MockCategoryStore)(nil)

func (m *MockCategoryStore) Create(ctx context.Context, category *domain.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *MockCategoryStore) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Category, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Category, error) {
	args := m.Called(ctx, userID)
	categories, _ := args.Get(0).([]domain.Category)
	return categories, args.Error(1)
}

func (m *MockCategoryStore) Update(ctx context.Context, category *domain.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *MockCategoryStore) DetachTasks(ctx context.Context, id uuid.UUID) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

func (m *MockCategoryStore) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return m.Called(ctx, userID, id).Error(0)
}

// WithTx returns the mock itself.
func (m *MockCategoryStore) WithTx(*sql.Tx) store.CategoryStore {
	return m
}

package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/todolist-api/internal/domain"
	"github.com/phrazzld/todolist-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// MockAnalyticsStore is a testify mock of store.AnalyticsStore.
type MockAnalyticsStore struct {
	mock.Mock
}

var _ store.AnalyticsStore = (*MockAnalyticsStore)(nil)

func (m *MockAnalyticsStore) TaskTotals(
	ctx context.Context,
	userID uuid.UUID,
	since *time.Time,
) (int, int, error) {
	args := m.Called(ctx, userID, since)
	return args.Int(0), args.Int(1), args.Error(2)
}

func (m *MockAnalyticsStore) ListTotal(ctx context.Context, userID uuid.UUID, since *time.Time) (int, error) {
	args := m.Called(ctx, userID, since)
	return args.Int(0), args.Error(1)
}

func (m *MockAnalyticsStore) TasksByPriority(
	ctx context.Context,
	userID uuid.UUID,
	since *time.Time,
) (map[domain.Priority]int, error) {
	args := m.Called(ctx, userID, since)
	counts, _ := args.Get(0).(map[domain.Priority]int)
	return counts, args.Error(1)
}

func (m *MockAnalyticsStore) TasksByCategory(
	ctx context.Context,
	userID uuid.UUID,
	since *time.Time,
) ([]domain.CategoryCount, error) {
	args := m.Called(ctx, userID, since)
	counts, _ := args.Get(0).([]domain.CategoryCount)
	return counts, args.Error(1)
}

func (m *MockAnalyticsStore) RecentTaskCreations(
	ctx context.Context,
	userID uuid.UUID,
	since *time.Time,
	limit int,
) ([]domain.Activity, error) {
	return m.activity(m.Called(ctx, userID, since, limit))
}

func (m *MockAnalyticsStore) RecentTaskCompletions(
	ctx context.Context,
	userID uuid.UUID,
	since *time.Time,
	limit int,
) ([]domain.Activity, error) {
	return m.activity(m.Called(ctx, userID, since, limit))
}

func (m *MockAnalyticsStore) RecentListCreations(
	ctx context.Context,
	userID uuid.UUID,
	since *time.Time,
	limit int,
) ([]domain.Activity, error) {
	return m.activity(m.Called(ctx, userID, since, limit))
}

func (m *MockAnalyticsStore) activity(args mock.Arguments) ([]domain.Activity, error) {
	events, _ := args.Get(0).([]domain.Activity)
	return events, args.Error(1)
}

package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/todolist-api/internal/domain"
	"github.com/phrazzld/todolist-api/internal/service"
	"github.com/phrazzld/todolist-api/internal/service/auth"
	"github.com/phrazzld/todolist-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// MockAuthService is a testify mock of service.AuthService.
type MockAuthService struct {
	mock.Mock
}

var _ service.AuthService = (*MockAuthService)(nil)

func (m *MockAuthService) Register(ctx context.Context, in service.RegisterInput) (*service.AuthResult, error) {
	args := m.Called(ctx, in)
	res, _ := args.Get(0).(*service.AuthResult)
	return res, args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*service.AuthResult, error) {
	args := m.Called(ctx, email, password)
	res, _ := args.Get(0).(*service.AuthResult)
	return res, args.Error(1)
}

func (m *MockAuthService) Refresh(ctx context.Context, in service.RefreshInput) (*auth.TokenPair, error) {
	args := m.Called(ctx, in)
	pair, _ := args.Get(0).(*auth.TokenPair)
	return pair, args.Error(1)
}

// MockUserService is a testify mock of service.UserService.
type MockUserService struct {
	mock.Mock
}

var _ service.UserService = (*MockUserService)(nil)

func (m *MockUserService) GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, userID)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *MockUserService) UpdateProfile(
	ctx context.Context,
	userID uuid.UUID,
	patch domain.UserPatch,
) (*domain.User, error) {
	args := m.Called(ctx, userID, patch)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

// MockListService is a testify mock of service.ListService.
type MockListService struct {
	mock.Mock
}

var _ service.ListService = (*MockListService)(nil)

func (m *MockListService) List(
	ctx context.Context,
	userID uuid.UUID,
	filter store.ListFilter,
) (domain.Page[domain.TodoList], error) {
	args := m.Called(ctx, userID, filter)
	page, _ := args.Get(0).(domain.Page[domain.TodoList])
	return page, args.Error(1)
}

func (m *MockListService) Create(
	ctx context.Context,
	userID uuid.UUID,
	in service.ListInput,
) (*domain.TodoList, error) {
	args := m.Called(ctx, userID, in)
	list, _ := args.Get(0).(*domain.TodoList)
	return list, args.Error(1)
}

func (m *MockListService) Get(ctx context.Context, userID, listID uuid.UUID) (*domain.TodoList, error) {
	args := m.Called(ctx, userID, listID)
	list, _ := args.Get(0).(*domain.TodoList)
	return list, args.Error(1)
}

func (m *MockListService) Update(
	ctx context.Context,
	userID, listID uuid.UUID,
	patch domain.TodoListPatch,
) (*domain.TodoList, error) {
	args := m.Called(ctx, userID, listID, patch)
	list, _ := args.Get(0).(*domain.TodoList)
	return list, args.Error(1)
}

func (m *MockListService) Delete(ctx context.Context, userID, listID uuid.UUID) error {
	return m.Called(ctx, userID, listID).Error(0)
}

// MockTaskService is a testify mock of service.TaskService.
type MockTaskService struct {
	mock.Mock
}

var _ service.TaskService = (*MockTaskService)(nil)

func (m *MockTaskService) List(
	ctx context.Context,
	userID, listID uuid.UUID,
	filter store.TaskFilter,
) (domain.Page[domain.Task], error) {
	args := m.Called(ctx, userID, listID, filter)
	page, _ := args.Get(0).(domain.Page[domain.Task])
	return page, args.Error(1)
}

func (m *MockTaskService) Create(
	ctx context.Context,
	userID, listID uuid.UUID,
	draft domain.TaskDraft,
) (*domain.Task, error) {
	args := m.Called(ctx, userID, listID, draft)
	task, _ := args.Get(0).(*domain.Task)
	return task, args.Error(1)
}

func (m *MockTaskService) Get(ctx context.Context, userID, taskID uuid.UUID) (*domain.Task, error) {
	args := m.Called(ctx, userID, taskID)
	task, _ := args.Get(0).(*domain.Task)
	return task, args.Error(1)
}

func (m *MockTaskService) Update(
	ctx context.Context,
	userID, taskID uuid.UUID,
	patch domain.TaskPatch,
) (*domain.Task, error) {
	args := m.Called(ctx, userID, taskID, patch)
	task, _ := args.Get(0).(*domain.Task)
	return task, args.Error(1)
}

func (m *MockTaskService) Toggle(ctx context.Context, userID, taskID uuid.UUID) (*domain.Task, error) {
	args := m.Called(ctx, userID, taskID)
	task, _ := args.Get(0).(*domain.Task)
	return task, args.Error(1)
}

func (m *MockTaskService) Delete(ctx context.Context, userID, taskID uuid.UUID) error {
	return m.Called(ctx, userID, taskID).Error(0)
}

func (m *MockTaskService) BulkCreate(
	ctx context.Context,
	userID, listID uuid.UUID,
	drafts []domain.TaskDraft,
) ([]domain.Task, error) {
	args := m.Called(ctx, userID, listID, drafts)
	tasks, _ := args.Get(0).([]domain.Task)
	return tasks, args.Error(1)
}

func (m *MockTaskService) BulkUpdate(
	ctx context.Context,
	userID uuid.UUID,
	ids []uuid.UUID,
	patch domain.TaskPatch,
) ([]domain.Task, error) {
	args := m.Called(ctx, userID, ids, patch)
	tasks, _ := args.Get(0).([]domain.Task)
	return tasks, args.Error(1)
}

func (m *MockTaskService) BulkDelete(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) error {
	return m.Called(ctx, userID, ids).Error(0)
}

// MockCategoryService is a testify mock of service.CategoryService.
type MockCategoryService struct {
	mock.Mock
}

var _ service.CategoryService = (*MockCategoryService)(nil)

func (m *MockCategoryService) List(ctx context.Context, userID uuid.UUID) ([]domain.Category, error) {
	args := m.Called(ctx, userID)
	categories, _ := args.Get(0).([]domain.Category)
	return categories, args.Error(1)
}

func (m *MockCategoryService) Create(
	ctx context.Context,
	userID uuid.UUID,
	name, color string,
) (*domain.Category, error) {
	args := m.Called(ctx, userID, name, color)
	category, _ := args.Get(0).(*domain.Category)
	return category, args.Error(1)
}

func (m *MockCategoryService) Get(ctx context.Context, userID, categoryID uuid.UUID) (*domain.Category, error) {
	args := m.Called(ctx, userID, categoryID)
	category, _ := args.Get(0).(*domain.Category)
	return category, args.Error(1)
}

func (m *MockCategoryService) Update(
	ctx context.Context,
	userID, categoryID uuid.UUID,
	patch domain.CategoryPatch,
) (*domain.Category, error) {
	args := m.Called(ctx, userID, categoryID, patch)
	category, _ := args.Get(0).(*domain.Category)
	return category, args.Error(1)
}

func (m *MockCategoryService) Delete(ctx context.Context, userID, categoryID uuid.UUID) error {
	return m.Called(ctx, userID, categoryID).Error(0)
}

// MockSearchService is a testify mock of service.SearchService.
type MockSearchService struct {
	mock.Mock
}

var _ service.SearchService = (*MockSearchService)(nil)

func (m *MockSearchService) Search(
	ctx context.Context,
	userID uuid.UUID,
	q service.SearchQuery,
) (*service.SearchResult, error) {
	args := m.Called(ctx, userID, q)
	res, _ := args.Get(0).(*service.SearchResult)
	return res, args.Error(1)
}

// MockAnalyticsService is a testify mock of service.AnalyticsService.
type MockAnalyticsService struct {
	mock.Mock
}

var _ service.AnalyticsService = (*MockAnalyticsService)(nil)

func (m *MockAnalyticsService) Summary(
	ctx context.Context,
	userID uuid.UUID,
	period domain.Period,
) (*domain.Analytics, error) {
	args := m.Called(ctx, userID, period)
	res, _ := args.Get(0).(*domain.Analytics)
	return res, args.Error(1)
}

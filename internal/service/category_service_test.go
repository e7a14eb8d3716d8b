package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/todolist-api/internal/domain"
	"github.com/phrazzld/todolist-api/internal/mocks"
	"github.com/phrazzld/todolist-api/internal/service"
	"github.com/phrazzld/todolist-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCategoryService_Delete(t *testing.T) {
	ctx := context.Background()
	userID, categoryID := uuid.New(), uuid.New()

	t.Run("detaches tasks before deleting", func(t *testing.T) {
		categories := &mocks.MockCategoryStore{}
		svc := service.NewCategoryService(&mocks.NoopTransactor{}, categories, nil)

		var order []string
		categories.On("GetByID", mock.Anything, userID, categoryID).Return(&domain.Category{ID: categoryID}, nil)
		categories.On("DetachTasks", mock.Anything, categoryID).
			Run(func(mock.Arguments) { order = append(order, "detach") }).Return(3, nil)
		categories.On("Delete", mock.Anything, userID, categoryID).
			Run(func(mock.Arguments) { order = append(order, "delete") }).Return(nil)

		require.NoError(t, svc.Delete(ctx, userID, categoryID))
		assert.Equal(t, []string{"detach", "delete"}, order)
	})

	t.Run("foreign category is never detached", func(t *testing.T) {
		categories := &mocks.MockCategoryStore{}
		svc := service.NewCategoryService(&mocks.NoopTransactor{}, categories, nil)
		categories.On("GetByID", mock.Anything, userID, categoryID).Return(nil, store.ErrCategoryNotFound)

		err := svc.Delete(ctx, userID, categoryID)
		assert.ErrorIs(t, err, store.ErrCategoryNotFound)
		categories.AssertNotCalled(t, "DetachTasks", mock.Anything, mock.Anything)
	})

	t.Run("detach failure aborts", func(t *testing.T) {
		categories := &mocks.MockCategoryStore{}
		svc := service.NewCategoryService(&mocks.NoopTransactor{}, categories, nil)
		boom := errors.New("deadlock detected")
		categories.On("GetByID", mock.Anything, userID, categoryID).Return(&domain.Category{ID: categoryID}, nil)
		categories.On("DetachTasks", mock.Anything, categoryID).Return(0, boom)

		err := svc.Delete(ctx, userID, categoryID)
		assert.ErrorIs(t, err, boom)
		categories.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestCategoryService_CreateAndList(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	categories := &mocks.MockCategoryStore{}
	svc := service.NewCategoryService(&mocks.NoopTransactor{}, categories, nil)

	categories.On("Create", mock.Anything, mock.AnythingOfType("*domain.Category")).Return(nil)
	categories.On("ListByUser", mock.Anything, userID).Return(nil, nil)

	category, err := svc.Create(ctx, userID, "Work", "#FF0000")
	require.NoError(t, err)
	assert.Equal(t, "#FF0000", category.Color)

	_, err = svc.Create(ctx, userID, "Work", "red")
	assert.ErrorIs(t, err, domain.ErrValidation)

	list, err := svc.List(ctx, userID)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestCategoryService_Update(t *testing.T) {
	ctx := context.Background()
	userID, categoryID := uuid.New(), uuid.New()
	categories := &mocks.MockCategoryStore{}
	svc := service.NewCategoryService(&mocks.NoopTransactor{}, categories, nil)
	existing := &domain.Category{ID: categoryID, UserID: userID, Name: "Work", Color: domain.DefaultColor}
	name := "Office"

	categories.On("GetByID", mock.Anything, userID, categoryID).Return(existing, nil)
	categories.On("Update", mock.Anything, existing).Return(nil)

	updated, err := svc.Update(ctx, userID, categoryID, domain.CategoryPatch{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Office", updated.Name)
	assert.Equal(t, domain.DefaultColor, updated.Color)
}

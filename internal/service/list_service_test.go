package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/todolist-api/internal/domain"
	"github.com/phrazzld/todolist-api/internal/mocks"
	"github.com/phrazzld/todolist-api/internal/service"
	"github.com/phrazzld/todolist-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListService_List(t *testing.T) {
	lists := &mocks.MockListStore{}
	svc := service.NewListService(&mocks.NoopTransactor{}, lists, nil)
	userID := uuid.New()
	filter := store.ListFilter{Search: "home", Page: domain.PageRequest{Page: 1, Limit: 20}}

	lists.On("List", mock.Anything, userID, filter).Return(nil, 0, nil)

	page, err := svc.List(context.Background(), userID, filter)
	require.NoError(t, err)
	assert.NotNil(t, page.Data)
	assert.Empty(t, page.Data)
	assert.Equal(t, 0, page.Pagination.TotalPages)
	assert.False(t, page.Pagination.HasNext)
	assert.False(t, page.Pagination.HasPrev)
}

func TestListService_Create(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("defaults color", func(t *testing.T) {
		lists := &mocks.MockListStore{}
		svc := service.NewListService(&mocks.NoopTransactor{}, lists, nil)
		lists.On("Create", mock.Anything, mock.AnythingOfType("*domain.TodoList")).Return(nil)

		list, err := svc.Create(ctx, userID, service.ListInput{Name: "  Groceries "})
		require.NoError(t, err)
		assert.Equal(t, "Groceries", list.Name)
		assert.Equal(t, domain.DefaultColor, list.Color)
		assert.Equal(t, userID, list.OwnerID)
	})

	t.Run("empty name", func(t *testing.T) {
		lists := &mocks.MockListStore{}
		svc := service.NewListService(&mocks.NoopTransactor{}, lists, nil)

		_, err := svc.Create(ctx, userID, service.ListInput{Name: " "})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("transaction failure", func(t *testing.T) {
		lists := &mocks.MockListStore{}
		txErr := errors.New("begin failed")
		svc := service.NewListService(&mocks.NoopTransactor{Err: txErr}, lists, nil)

		_, err := svc.Create(ctx, userID, service.ListInput{Name: "Groceries"})
		assert.ErrorIs(t, err, txErr)
	})
}

func TestListService_Update(t *testing.T) {
	ctx := context.Background()
	userID, listID := uuid.New(), uuid.New()
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("clears description", func(t *testing.T) {
		lists := &mocks.MockListStore{}
		svc := service.NewListService(&mocks.NoopTransactor{}, lists, nil)
		service.SetClock(svc, func() time.Time { return now })
		desc := "weekly shop"
		existing := &domain.TodoList{ID: listID, OwnerID: userID, Name: "Groceries", Description: &desc, Color: domain.DefaultColor}

		lists.On("GetByID", mock.Anything, userID, listID).Return(existing, nil)
		lists.On("Update", mock.Anything, existing).Return(nil)

		updated, err := svc.Update(ctx, userID, listID, domain.TodoListPatch{Description: domain.Null[string]()})
		require.NoError(t, err)
		assert.Nil(t, updated.Description)
		assert.Equal(t, "Groceries", updated.Name)
		assert.Equal(t, now, updated.UpdatedAt)
	})

	t.Run("foreign list", func(t *testing.T) {
		lists := &mocks.MockListStore{}
		svc := service.NewListService(&mocks.NoopTransactor{}, lists, nil)
		lists.On("GetByID", mock.Anything, userID, listID).Return(nil, store.ErrListNotFound)

		_, err := svc.Update(ctx, userID, listID, domain.TodoListPatch{})
		assert.ErrorIs(t, err, store.ErrListNotFound)
	})
}

func TestListService_Delete(t *testing.T) {
	lists := &mocks.MockListStore{}
	svc := service.NewListService(&mocks.NoopTransactor{}, lists, nil)
	userID, listID := uuid.New(), uuid.New()

	lists.On("Delete", mock.Anything, userID, listID).Return(store.ErrListNotFound)

	err := svc.Delete(context.Background(), userID, listID)
	assert.ErrorIs(t, err, store.ErrListNotFound)

	var svcErr *service.ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "delete", svcErr.Operation)
}

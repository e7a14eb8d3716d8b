package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTodoList(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	list, err := NewTodoList(owner, " Groceries ", nil, "", false)
	require.NoError(t, err)

	assert.Equal(t, owner, list.OwnerID)
	assert.Equal(t, "Groceries", list.Name)
	assert.Equal(t, DefaultColor, list.Color)
	assert.Zero(t, list.TaskCount)

	_, err = NewTodoList(owner, "", nil, "", false)
	assert.ErrorIs(t, err, ErrEmptyListName)

	_, err = NewTodoList(owner, "ok", nil, "red", false)
	assert.ErrorIs(t, err, ErrInvalidColor)

	_, err = NewTodoList(uuid.Nil, "ok", nil, "#fff", false)
	assert.ErrorIs(t, err, ErrEmptyListOwnerID)
}

func TestTodoListPatchApply(t *testing.T) {
	t.Parallel()

	list, err := NewTodoList(uuid.New(), "Work", strPtr("desc"), "#123456", false)
	require.NoError(t, err)

	now := time.Now().UTC()
	shared := true
	require.NoError(t, TodoListPatch{IsShared: &shared, Description: Null[string]()}.Apply(list, now))

	assert.Equal(t, "Work", list.Name)
	assert.True(t, list.IsShared)
	assert.Nil(t, list.Description)
	assert.Equal(t, "#123456", list.Color)

	assert.ErrorIs(t, TodoListPatch{Name: strPtr("  ")}.Apply(list, now), ErrEmptyListName)
}

func TestCategoryLifecycle(t *testing.T) {
	t.Parallel()

	c, err := NewCategory(uuid.New(), "Home", "")
	require.NoError(t, err)
	assert.Equal(t, DefaultColor, c.Color)

	color := "#ABC"
	require.NoError(t, CategoryPatch{Color: &color}.Apply(c, time.Now()))
	assert.Equal(t, "#ABC", c.Color)
	assert.Equal(t, "Home", c.Name)

	_, err = NewCategory(uuid.New(), " ", "")
	assert.ErrorIs(t, err, ErrEmptyCategoryName)
}

func TestNameLengthCountsCharacters(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	tests := []struct {
		name    string
		create  func(name string) error
		tooLong error
	}{
		{
			name: "list",
			create: func(name string) error {
				_, err := NewTodoList(owner, name, nil, "", false)
				return err
			},
			tooLong: ErrListNameTooLong,
		},
		{
			name: "task",
			create: func(name string) error {
				_, err := NewTask(uuid.New(), TaskDraft{Title: name})
				return err
			},
			tooLong: ErrTaskTitleTooLong,
		},
		{
			name: "category",
			create: func(name string) error {
				_, err := NewCategory(owner, name, "")
				return err
			},
			tooLong: ErrCategoryNameTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NoError(t, tt.create(strings.Repeat("日", 150)))
			assert.NoError(t, tt.create(strings.Repeat("é", MaxNameLength)))
			assert.ErrorIs(t, tt.create(strings.Repeat("é", MaxNameLength+1)), tt.tooLong)
		})
	}
}

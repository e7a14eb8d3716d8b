package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/phrazzld/todolist-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestSentinelErrors(t *testing.T) {
	assert.Equal(t, "incorrect email or password", ErrInvalidCredentials.Error())
	assert.ErrorIs(t, ErrTasksNotAccessible, store.ErrNotFound)
	assert.True(t, store.IsNotFoundError(ErrTasksNotAccessible))
	assert.False(t, errors.Is(ErrInvalidCredentials, store.ErrNotFound))
}

func TestServiceError_Error(t *testing.T) {
	tests := []struct {
		name     string
		service  string
		op       string
		message  string
		err      error
		expected string
	}{
		{
			name:     "with underlying error",
			service:  "user",
			op:       "create",
			err:      errors.New("database connection failed"),
			expected: "user service create operation failed: database connection failed",
		},
		{
			name:     "without underlying error",
			service:  "task",
			op:       "delete",
			expected: "task service delete operation failed",
		},
		{
			name:     "with message and sentinel",
			service:  "task",
			op:       "bulk_update",
			message:  "lock tasks",
			err:      ErrTasksNotAccessible,
			expected: "task service bulk_update operation failed: lock tasks: entity not found: some tasks not found or not accessible",
		},
		{
			name:     "empty service name",
			op:       "update",
			err:      errors.New("validation failed"),
			expected: "service update operation failed: validation failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewServiceError(tt.service, tt.op, tt.message, tt.err)
			assert.Equal(t, tt.expected, err.Error())
		})
	}
}

func TestServiceError_Unwrap(t *testing.T) {
	err := fmt.Errorf("handler: %w", NewServiceError("list", "get", "", store.ErrListNotFound))

	assert.ErrorIs(t, err, store.ErrListNotFound)
	assert.ErrorIs(t, err, store.ErrNotFound)

	var svcErr *ServiceError
	assert.True(t, errors.As(err, &svcErr))
	assert.Equal(t, "list", svcErr.Service)
	assert.Equal(t, "get", svcErr.Operation)
}

package service

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/phrazzld/todolist-api/internal/domain"
	"github.com/phrazzld/todolist-api/internal/redact"
	"github.com/phrazzld/todolist-api/internal/store"
)

// Sentinel errors callers check with errors.Is. The API layer maps them to
// status codes.
var (
	// ErrInvalidCredentials covers both an unknown email and a wrong password
	// so login failures do not reveal which accounts exist.
	ErrInvalidCredentials = errors.New("incorrect email or password")

	// ErrTasksNotAccessible is returned by bulk operations when at least one
	// id is missing or belongs to another user. It wraps store.ErrNotFound.
	ErrTasksNotAccessible = fmt.Errorf("%w: some tasks not found or not accessible", store.ErrNotFound)

	// ErrEmptyQuery is returned when a search has no query text.
	ErrEmptyQuery = errors.New("search query cannot be empty")
)

// ServiceError records which service operation failed. It unwraps to the
// underlying error so sentinel checks keep working through it.
type ServiceError struct {
	Service   string
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface.
func (e *ServiceError) Error() string {
	var b strings.Builder
	if e.Service != "" {
		b.WriteString(e.Service)
		b.WriteString(" ")
	}
	b.WriteString("service ")
	b.WriteString(e.Operation)
	b.WriteString(" operation failed")
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError creates a new ServiceError.
func NewServiceError(service, operation, message string, err error) *ServiceError {
	return &ServiceError{
		Service:   service,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// isExpected reports whether err is a client-caused outcome rather than a fault.
func isExpected(err error) bool {
	return errors.Is(err, domain.ErrValidation) ||
		store.IsNotFoundError(err) ||
		store.IsDuplicateError(err) ||
		errors.Is(err, store.ErrInvalidEntity)
}

// logFailure logs expected failures at debug and everything else at error.
func logFailure(log *slog.Logger, msg string, err error, attrs ...any) {
	args := append([]any{redact.Attr(err)}, attrs...)
	if isExpected(err) {
		log.Debug(msg, args...)
		return
	}
	log.Error(msg, args...)
}

package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/todolist-api/internal/api/shared"
	"github.com/phrazzld/todolist-api/internal/domain"
	"github.com/phrazzld/todolist-api/internal/redact"
	"github.com/phrazzld/todolist-api/internal/service"
	"github.com/phrazzld/todolist-api/internal/service/auth"
	"github.com/phrazzld/todolist-api/internal/store"
)

const genericErrorMessage = "An unexpected error occurred"

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	var fieldErrs validator.ValidationErrors
	switch {
	case err == nil:
		return http.StatusInternalServerError

	// Malformed requests
	case errors.Is(err, shared.ErrInvalidJSON),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	// Validation errors
	case errors.As(err, &fieldErrs),
		errors.Is(err, domain.ErrValidation):
		return http.StatusUnprocessableEntity

	// Authentication errors
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, domain.ErrUnauthorized),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrWrongTokenType),
		errors.Is(err, auth.ErrInvalidRefreshToken),
		errors.Is(err, auth.ErrExpiredRefreshToken):
		return http.StatusUnauthorized

	// Not found errors, including entities owned by another user
	case store.IsNotFoundError(err):
		return http.StatusNotFound

	// Conflict errors
	case store.IsDuplicateError(err):
		return http.StatusConflict

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// ErrorCode returns the machine-readable code for an HTTP error status.
func ErrorCode(status int) string {
	switch status {
	case http.StatusBadRequest:
		return shared.CodeInvalidRequest
	case http.StatusUnauthorized:
		return shared.CodeUnauthenticated
	case http.StatusNotFound:
		return shared.CodeNotFound
	case http.StatusConflict:
		return shared.CodeConflict
	case http.StatusUnprocessableEntity:
		return shared.CodeValidation
	case http.StatusTooManyRequests:
		return shared.CodeRateLimited
	default:
		return shared.CodeInternal
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return genericErrorMessage
	}

	var fieldErrs validator.ValidationErrors
	var validationErr *domain.ValidationError

	switch {
	case errors.Is(err, shared.ErrEmptyBody):
		return "Request body is required"
	case errors.Is(err, shared.ErrInvalidJSON):
		return "Invalid request body"
	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"

	case errors.As(err, &fieldErrs):
		return SanitizeValidationError(fieldErrs)
	case errors.As(err, &validationErr):
		return describeValidationError(validationErr)
	case errors.Is(err, domain.ErrValidation):
		return describeDomainError(err)

	// Authentication errors
	case errors.Is(err, service.ErrInvalidCredentials):
		return "Incorrect email or password"
	case errors.Is(err, auth.ErrExpiredToken):
		return "Token has expired"
	case errors.Is(err, auth.ErrInvalidRefreshToken),
		errors.Is(err, auth.ErrExpiredRefreshToken):
		return "Invalid refresh token"
	case errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, domain.ErrUnauthorized):
		return "Not authenticated"
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrWrongTokenType):
		return "Could not validate credentials"

	// Not found errors
	case errors.Is(err, service.ErrTasksNotAccessible):
		return "Some tasks not found or not accessible"
	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"
	case errors.Is(err, store.ErrListNotFound):
		return "List not found"
	case errors.Is(err, store.ErrTaskNotFound):
		return "Task not found"
	case errors.Is(err, store.ErrCategoryNotFound):
		return "Category not found"
	case store.IsNotFoundError(err):
		return "Resource not found"

	// Conflict errors
	case errors.Is(err, store.ErrEmailExists):
		return "Email already registered"
	case errors.Is(err, store.ErrUsernameExists):
		return "Username already taken"
	case store.IsDuplicateError(err):
		return "Resource already exists"

	default:
		return genericErrorMessage
	}
}

// SanitizeValidationError turns the first failed struct rule into a
// user-friendly message naming the JSON field.
func SanitizeValidationError(errs validator.ValidationErrors) string {
	if len(errs) == 0 {
		return "Validation error"
	}
	fe := errs[0]
	return fmt.Sprintf("Invalid %s: %s", fe.Field(), getValidationTagMessage(fe.Tag()))
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "email":
		return "invalid email format"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "oneof":
		return "invalid value"
	case "hexcolor", "iscolor":
		return "must be a hex color"
	case "uuid", "uuid4":
		return "must be a UUID"
	case "dive":
		return "invalid item"
	default:
		return "validation failed"
	}
}

func describeValidationError(e *domain.ValidationError) string {
	if e.Field == "" {
		return capitalize(e.Message)
	}
	return fmt.Sprintf("Invalid %s: %s", e.Field, e.Message)
}

// describeDomainError strips the generic "validation failed: " prefix from
// domain sentinel errors, whose remaining text is written for clients.
func describeDomainError(err error) string {
	msg := err.Error()
	if i := strings.LastIndex(msg, domain.ErrValidation.Error()+": "); i >= 0 {
		msg = msg[i+len(domain.ErrValidation.Error())+2:]
	}
	if msg == "" || msg == domain.ErrValidation.Error() {
		return "Validation error"
	}
	return capitalize(msg)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// ErrorHandler writes error responses for handler failures.
type ErrorHandler struct {
	debug bool
}

// NewErrorHandler returns an ErrorHandler. With debug on, 5xx responses carry
// the redacted error chain in their details field.
func NewErrorHandler(debug bool) *ErrorHandler {
	return &ErrorHandler{debug: debug}
}

// Handle maps err to a status, code and safe message, logs it and writes the response.
func (h *ErrorHandler) Handle(w http.ResponseWriter, r *http.Request, err error, opts ...shared.ResponseOption) {
	status := MapErrorToStatusCode(err)
	if h.debug && status >= http.StatusInternalServerError && err != nil {
		opts = append(opts, shared.WithDetails(redact.Error(err)))
	}
	shared.RespondWithErrorAndLog(w, r, status, ErrorCode(status), GetSafeErrorMessage(err), err, opts...)
}

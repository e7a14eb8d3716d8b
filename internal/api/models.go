package api

import (
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/phrazzld/todolist-api/internal/domain"
	"github.com/phrazzld/todolist-api/internal/service"
	"github.com/phrazzld/todolist-api/internal/service/auth"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Email     string  `json:"email"      validate:"required,email"`
	Username  string  `json:"username"   validate:"required,max=50"`
	Password  string  `json:"password"   validate:"required,min=8,max=72"`
	FirstName *string `json:"first_name" validate:"omitempty,max=100"`
	LastName  *string `json:"last_name"  validate:"omitempty,max=100"`
}

// ToInput converts the request to service input.
func (r RegisterRequest) ToInput() service.RegisterInput {
	return service.RegisterInput{
		Email:     r.Email,
		Username:  r.Username,
		Password:  r.Password,
		FirstName: r.FirstName,
		LastName:  r.LastName,
	}
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse defines the successful response for register and login.
type AuthResponse struct {
	User *domain.User `json:"user"`

	// Token is the JWT access token used for API authorization
	Token string `json:"token"`

	// RefreshToken is the JWT token used to obtain new access tokens
	RefreshToken string `json:"refresh_token"`

	// ExpiresAt is the RFC 3339 timestamp when the access token expires
	ExpiresAt time.Time `json:"expires_at"`
}

func newAuthResponse(res *service.AuthResult) AuthResponse {
	return AuthResponse{
		User:         res.User,
		Token:        res.Tokens.AccessToken,
		RefreshToken: res.Tokens.RefreshToken,
		ExpiresAt:    res.Tokens.ExpiresAt,
	}
}

// RefreshTokenRequest defines the optional payload for the token refresh
// endpoint. Without it the bearer access token is re-issued.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// RefreshTokenResponse defines the successful response for the token refresh endpoint.
type RefreshTokenResponse struct {
	Token        string    `json:"token"`
	RefreshToken string    `json:"refresh_token"`
	TokenType    string    `json:"token_type"`
	ExpiresAt    time.Time `json:"expires_at"`
}

func newRefreshTokenResponse(pair *auth.TokenPair) RefreshTokenResponse {
	return RefreshTokenResponse{
		Token:        pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    "bearer",
		ExpiresAt:    pair.ExpiresAt,
	}
}

// MessageResponse carries a single human-readable message.
type MessageResponse struct {
	Message string `json:"message"`
}

// UpdateProfileRequest defines the payload for PUT /v1/users/me. Names may be
// cleared with an explicit null.
type UpdateProfileRequest struct {
	Username  *string                 `json:"username" validate:"omitempty,min=1,max=50"`
	FirstName domain.Optional[string] `json:"first_name"`
	LastName  domain.Optional[string] `json:"last_name"`
}

// ToPatch converts the request to a domain patch.
func (r UpdateProfileRequest) ToPatch() domain.UserPatch {
	return domain.UserPatch{
		Username:  r.Username,
		FirstName: r.FirstName,
		LastName:  r.LastName,
	}
}

// CreateListRequest defines the payload for creating a todo list.
type CreateListRequest struct {
	Name        string  `json:"name"        validate:"required,max=200"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	Color       string  `json:"color"       validate:"omitempty,hexcolor"`
	IsShared    bool    `json:"is_shared"`
}

// ToInput converts the request to service input.
func (r CreateListRequest) ToInput() service.ListInput {
	return service.ListInput{
		Name:        r.Name,
		Description: r.Description,
		Color:       r.Color,
		IsShared:    r.IsShared,
	}
}

// UpdateListRequest defines the payload for updating a todo list. Absent
// fields are left unchanged.
type UpdateListRequest struct {
	Name        *string                 `json:"name"      validate:"omitempty,min=1,max=200"`
	Description domain.Optional[string] `json:"description"`
	Color       *string                 `json:"color"     validate:"omitempty,hexcolor"`
	IsShared    *bool                   `json:"is_shared"`
}

// ToPatch converts the request to a domain patch.
func (r UpdateListRequest) ToPatch() domain.TodoListPatch {
	return domain.TodoListPatch{
		Name:        r.Name,
		Description: r.Description,
		Color:       r.Color,
		IsShared:    r.IsShared,
	}
}

// CreateTaskRequest defines the payload for creating a task.
type CreateTaskRequest struct {
	Title       string          `json:"title"       validate:"required,max=200"`
	Description *string         `json:"description" validate:"omitempty,max=2000"`
	Priority    domain.Priority `json:"priority"    validate:"omitempty,oneof=low medium high urgent"`
	DueDate     *time.Time      `json:"due_date"`
	CategoryID  *uuid.UUID      `json:"category_id"`
	Tags        []string        `json:"tags"        validate:"omitempty,max=20,dive,max=50"`
}

// ToDraft converts the request to a domain draft.
func (r CreateTaskRequest) ToDraft() domain.TaskDraft {
	return domain.TaskDraft{
		Title:       r.Title,
		Description: r.Description,
		Priority:    r.Priority,
		DueDate:     r.DueDate,
		CategoryID:  r.CategoryID,
		Tags:        r.Tags,
	}
}

// UpdateTaskRequest defines the payload for updating one or many tasks.
// Description, due date and category may be cleared with an explicit null.
type UpdateTaskRequest struct {
	Title       *string                    `json:"title"        validate:"omitempty,min=1,max=200"`
	Description domain.Optional[string]    `json:"description"`
	Priority    *domain.Priority           `json:"priority"     validate:"omitempty,oneof=low medium high urgent"`
	DueDate     domain.Optional[time.Time] `json:"due_date"`
	CategoryID  domain.Optional[uuid.UUID] `json:"category_id"`
	Tags        *[]string                  `json:"tags"         validate:"omitempty,max=20,dive,max=50"`
	IsCompleted *bool                      `json:"is_completed"`
}

// maxDescriptionLength matches the create rule for descriptions.
const maxDescriptionLength = 2000

// Validate applies the description limit, which struct tags cannot reach
// through domain.Optional.
func (r UpdateTaskRequest) Validate() error {
	if d := r.Description.Value; d != nil && utf8.RuneCountInString(*d) > maxDescriptionLength {
		return domain.NewValidationError("description", "must be at most 2000 characters long", nil)
	}
	return nil
}

// ToPatch converts the request to a domain patch.
func (r UpdateTaskRequest) ToPatch() domain.TaskPatch {
	return domain.TaskPatch{
		Title:       r.Title,
		Description: r.Description,
		Priority:    r.Priority,
		DueDate:     r.DueDate,
		CategoryID:  r.CategoryID,
		Tags:        r.Tags,
		IsCompleted: r.IsCompleted,
	}
}

// BulkCreateTasksRequest defines the payload for creating many tasks in one list.
type BulkCreateTasksRequest struct {
	ListID uuid.UUID           `json:"list_id" validate:"required"`
	Tasks  []CreateTaskRequest `json:"tasks"   validate:"required,min=1,max=100,dive"`
}

// ToDrafts converts every task in the request to a domain draft.
func (r BulkCreateTasksRequest) ToDrafts() []domain.TaskDraft {
	drafts := make([]domain.TaskDraft, len(r.Tasks))
	for i, t := range r.Tasks {
		drafts[i] = t.ToDraft()
	}
	return drafts
}

// BulkUpdateTasksRequest defines the payload for applying one update to many tasks.
type BulkUpdateTasksRequest struct {
	TaskIDs []uuid.UUID       `json:"task_ids" validate:"required,min=1"`
	Updates UpdateTaskRequest `json:"updates"`
}

// Validate checks the shared update.
func (r BulkUpdateTasksRequest) Validate() error {
	return r.Updates.Validate()
}

// BulkDeleteTasksRequest defines the payload for deleting many tasks.
type BulkDeleteTasksRequest struct {
	TaskIDs []uuid.UUID `json:"task_ids" validate:"required,min=1"`
}

// CreateCategoryRequest defines the payload for creating a category.
type CreateCategoryRequest struct {
	Name  string `json:"name"  validate:"required,max=200"`
	Color string `json:"color" validate:"omitempty,hexcolor"`
}

// UpdateCategoryRequest defines the payload for updating a category.
type UpdateCategoryRequest struct {
	Name  *string `json:"name"  validate:"omitempty,min=1,max=200"`
	Color *string `json:"color" validate:"omitempty,hexcolor"`
}

// ToPatch converts the request to a domain patch.
func (r UpdateCategoryRequest) ToPatch() domain.CategoryPatch {
	return domain.CategoryPatch{Name: r.Name, Color: r.Color}
}

// nonNilTasks renders a nil task slice as [].
func nonNilTasks(tasks []domain.Task) []domain.Task {
	if tasks == nil {
		return []domain.Task{}
	}
	return tasks
}

// RootResponse is returned by GET /.
type RootResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
	Docs    string `json:"docs"`
}

// Dependency states reported by the health endpoint.
const (
	StatusHealthy  = "healthy"
	StatusDegraded = "degraded"
	DependencyUp   = "up"
	DependencyDown = "down"
)

// HealthResponse is returned by GET /health. Cache is only reported when a
// shared rate limit store is configured.
type HealthResponse struct {
	Status   string `json:"status"`
	Version  string `json:"version"`
	Database string `json:"database"`
	Cache    string `json:"cache,omitempty"`
}

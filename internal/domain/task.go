package domain

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Priority is the urgency level of a task.
type Priority string

// Possible priority values, lowest first.
const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Priorities lists every priority in rank order.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}

// Valid reports whether p is one of the four known priorities.
func (p Priority) Valid() bool {
	return p.Rank() > 0
}

// Rank orders priorities from 1 (low) to 4 (urgent). Unknown values rank 0.
func (p Priority) Rank() int {
	for i, known := range Priorities {
		if p == known {
			return i + 1
		}
	}
	return 0
}

// Validation errors for Task
var (
	ErrEmptyTaskID       = invalid("task ID cannot be empty")
	ErrEmptyTaskListID   = invalid("task list ID cannot be empty")
	ErrEmptyTaskTitle    = invalid("task title cannot be empty")
	ErrTaskTitleTooLong  = invalid("task title must be at most 200 characters long")
	ErrInvalidPriority   = invalid("priority must be one of low, medium, high, urgent")
	ErrCompletionInvalid = invalid("completed_at must be set exactly when the task is completed")
)

// Task is a single unit of work inside a TodoList.
type Task struct {
	ID          uuid.UUID  `json:"id"`
	ListID      uuid.UUID  `json:"list_id"`
	CategoryID  *uuid.UUID `json:"category_id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Priority    Priority   `json:"priority"`
	DueDate     *time.Time `json:"due_date"`
	IsCompleted bool       `json:"is_completed"`
	CompletedAt *time.Time `json:"completed_at"`
	Tags        []string   `json:"tags"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// TaskDraft carries the client-supplied fields for a new task.
type TaskDraft struct {
	Title       string
	Description *string
	Priority    Priority
	DueDate     *time.Time
	CategoryID  *uuid.UUID
	Tags        []string
}

// NewTask creates an incomplete task in listID from draft.
// An empty priority becomes medium and nil tags become an empty set.
func NewTask(listID uuid.UUID, draft TaskDraft) (*Task, error) {
	priority := draft.Priority
	if priority == "" {
		priority = PriorityMedium
	}
	now := time.Now().UTC()
	t := &Task{
		ID:          uuid.New(),
		ListID:      listID,
		CategoryID:  draft.CategoryID,
		Title:       strings.TrimSpace(draft.Title),
		Description: draft.Description,
		Priority:    priority,
		DueDate:     draft.DueDate,
		Tags:        normalizeTags(draft.Tags),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Validate checks if the Task has valid data.
func (t *Task) Validate() error {
	if t.ID == uuid.Nil {
		return ErrEmptyTaskID
	}
	if t.ListID == uuid.Nil {
		return ErrEmptyTaskListID
	}
	if t.Title == "" {
		return ErrEmptyTaskTitle
	}
	if utf8.RuneCountInString(t.Title) > MaxNameLength {
		return ErrTaskTitleTooLong
	}
	if !t.Priority.Valid() {
		return ErrInvalidPriority
	}
	if t.IsCompleted != (t.CompletedAt != nil) {
		return ErrCompletionInvalid
	}
	return nil
}

// SetCompleted changes the completion flag. completed_at is stamped only on
// a false to true transition and cleared whenever the flag becomes false.
func (t *Task) SetCompleted(completed bool, now time.Time) {
	switch {
	case completed && !t.IsCompleted:
		ts := now
		t.CompletedAt = &ts
	case !completed:
		t.CompletedAt = nil
	}
	t.IsCompleted = completed
}

// Toggle flips the completion flag.
func (t *Task) Toggle(now time.Time) {
	t.SetCompleted(!t.IsCompleted, now)
	t.UpdatedAt = now
}

// TaskPatch holds the task fields a client supplied in an update.
type TaskPatch struct {
	Title       *string
	Description Optional[string]
	Priority    *Priority
	DueDate     Optional[time.Time]
	CategoryID  Optional[uuid.UUID]
	Tags        *[]string
	IsCompleted *bool
}

// TouchesCategory reports whether the patch assigns a non-null category,
// which callers must check for ownership.
func (p TaskPatch) TouchesCategory() bool {
	return p.CategoryID.Set && p.CategoryID.Value != nil
}

// Apply copies the supplied fields onto t and re-validates it.
func (p TaskPatch) Apply(t *Task, now time.Time) error {
	if p.Title != nil {
		t.Title = strings.TrimSpace(*p.Title)
	}
	if p.Description.Set {
		t.Description = p.Description.Value
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.DueDate.Set {
		t.DueDate = p.DueDate.Value
	}
	if p.CategoryID.Set {
		t.CategoryID = p.CategoryID.Value
	}
	if p.Tags != nil {
		t.Tags = normalizeTags(*p.Tags)
	}
	if p.IsCompleted != nil {
		t.SetCompleted(*p.IsCompleted, now)
	}
	t.UpdatedAt = now
	return t.Validate()
}

func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			out = append(out, tag)
		}
	}
	return out
}

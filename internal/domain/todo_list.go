package domain

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// DefaultColor is the display color assigned to lists and categories
// created without one.
const DefaultColor = "#4CAF50"

// Validation errors for TodoList
var (
	ErrEmptyListID      = invalid("list ID cannot be empty")
	ErrEmptyListOwnerID = invalid("list owner ID cannot be empty")
	ErrEmptyListName    = invalid("list name cannot be empty")
	ErrListNameTooLong  = invalid("list name must be at most 200 characters long")
	ErrInvalidColor     = invalid("color must be a hex value like #4CAF50")
)

// MaxNameLength bounds list, category and task title lengths.
const MaxNameLength = 200

// TodoList is a named collection of tasks owned by one user.
type TodoList struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Color       string    `json:"color"`
	IsShared    bool      `json:"is_shared"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Read-side aggregates, filled by the store on reads.
	TaskCount          int `json:"task_count"`
	CompletedTaskCount int `json:"completed_task_count"`
}

// NewTodoList creates a list for ownerID. An empty color gets DefaultColor.
func NewTodoList(ownerID uuid.UUID, name string, description *string, color string, isShared bool) (*TodoList, error) {
	if color == "" {
		color = DefaultColor
	}
	now := time.Now().UTC()
	list := &TodoList{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Name:        strings.TrimSpace(name),
		Description: description,
		Color:       color,
		IsShared:    isShared,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := list.Validate(); err != nil {
		return nil, err
	}
	return list, nil
}

// Validate checks if the TodoList has valid data.
func (l *TodoList) Validate() error {
	if l.ID == uuid.Nil {
		return ErrEmptyListID
	}
	if l.OwnerID == uuid.Nil {
		return ErrEmptyListOwnerID
	}
	if l.Name == "" {
		return ErrEmptyListName
	}
	if utf8.RuneCountInString(l.Name) > MaxNameLength {
		return ErrListNameTooLong
	}
	if !isHexColor(l.Color) {
		return ErrInvalidColor
	}
	return nil
}

// TodoListPatch holds the list fields a client supplied in an update.
type TodoListPatch struct {
	Name        *string
	Description Optional[string]
	Color       *string
	IsShared    *bool
}

// Apply copies the supplied fields onto l and re-validates it.
func (p TodoListPatch) Apply(l *TodoList, now time.Time) error {
	if p.Name != nil {
		l.Name = strings.TrimSpace(*p.Name)
	}
	if p.Description.Set {
		l.Description = p.Description.Value
	}
	if p.Color != nil {
		l.Color = *p.Color
	}
	if p.IsShared != nil {
		l.IsShared = *p.IsShared
	}
	l.UpdatedAt = now
	return l.Validate()
}

// isHexColor accepts #RGB and #RRGGBB.
func isHexColor(s string) bool {
	if len(s) != 4 && len(s) != 7 {
		return false
	}
	if s[0] != '#' {
		return false
	}
	for _, c := range s[1:] {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

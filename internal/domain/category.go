package domain

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Validation errors for Category
var (
	ErrEmptyCategoryID     = invalid("category ID cannot be empty")
	ErrEmptyCategoryUserID = invalid("category user ID cannot be empty")
	ErrEmptyCategoryName   = invalid("category name cannot be empty")
	ErrCategoryNameTooLong = invalid("category name must be at most 200 characters long")
)

// Category is a user-defined label that tasks may reference.
type Category struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewCategory creates a category for userID. An empty color gets DefaultColor.
func NewCategory(userID uuid.UUID, name, color string) (*Category, error) {
	if color == "" {
		color = DefaultColor
	}
	now := time.Now().UTC()
	c := &Category{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      strings.TrimSpace(name),
		Color:     color,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks if the Category has valid data.
func (c *Category) Validate() error {
	if c.ID == uuid.Nil {
		return ErrEmptyCategoryID
	}
	if c.UserID == uuid.Nil {
		return ErrEmptyCategoryUserID
	}
	if c.Name == "" {
		return ErrEmptyCategoryName
	}
	if utf8.RuneCountInString(c.Name) > MaxNameLength {
		return ErrCategoryNameTooLong
	}
	if !isHexColor(c.Color) {
		return ErrInvalidColor
	}
	return nil
}

// CategoryPatch holds the category fields a client supplied in an update.
type CategoryPatch struct {
	Name  *string
	Color *string
}

// Apply copies the supplied fields onto c and re-validates it.
func (p CategoryPatch) Apply(c *Category, now time.Time) error {
	if p.Name != nil {
		c.Name = strings.TrimSpace(*p.Name)
	}
	if p.Color != nil {
		c.Color = *p.Color
	}
	c.UpdatedAt = now
	return c.Validate()
}

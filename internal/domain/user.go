package domain

import (
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Common validation errors
var (
	ErrEmptyUserID         = invalid("user ID cannot be empty")
	ErrEmptyEmail          = invalid("email cannot be empty")
	ErrInvalidEmail        = invalid("invalid email format")
	ErrEmptyUsername       = invalid("username cannot be empty")
	ErrUsernameTooLong     = invalid("username must be at most 50 characters long")
	ErrPasswordTooShort    = invalid("password must be at least 8 characters long")
	ErrPasswordTooLong     = invalid("password must be at most 72 characters long")
	ErrEmptyHashedPassword = invalid("hashed password cannot be empty")
)

const (
	// MinPasswordLength is the shortest accepted plaintext password.
	MinPasswordLength = 8
	// MaxPasswordLength is bcrypt's input limit.
	MaxPasswordLength = 72
	// MaxUsernameLength bounds the username column.
	MaxUsernameLength = 50
)

// User represents a registered user. It owns lists and categories.
type User struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	Username       string    `json:"username"`
	FirstName      *string   `json:"first_name"`
	LastName       *string   `json:"last_name"`
	Password       string    `json:"-"` // Plaintext, only set during registration
	HashedPassword string    `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewUser creates a new User with a fresh ID and timestamps.
// The caller is responsible for hashing Password before storing the user.
func NewUser(email, username, password string, firstName, lastName *string) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		ID:        uuid.New(),
		Email:     strings.TrimSpace(email),
		Username:  strings.TrimSpace(username),
		FirstName: firstName,
		LastName:  lastName,
		Password:  password,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrEmptyUserID
	}

	if u.Email == "" {
		return ErrEmptyEmail
	}

	if addr, err := mail.ParseAddress(u.Email); err != nil || addr.Address != u.Email {
		return ErrInvalidEmail
	}

	if err := validateUsername(u.Username); err != nil {
		return err
	}

	if u.Password != "" {
		if len(u.Password) < MinPasswordLength {
			return ErrPasswordTooShort
		}
		if len(u.Password) > MaxPasswordLength {
			return ErrPasswordTooLong
		}
	} else if u.HashedPassword == "" {
		return ErrEmptyHashedPassword
	}

	return nil
}

func validateUsername(username string) error {
	if strings.TrimSpace(username) == "" {
		return ErrEmptyUsername
	}
	if utf8.RuneCountInString(username) > MaxUsernameLength {
		return ErrUsernameTooLong
	}
	return nil
}

// UserPatch carries the profile fields a user may change about themselves.
type UserPatch struct {
	Username  *string
	FirstName Optional[string]
	LastName  Optional[string]
}

// Apply copies the supplied fields onto u and bumps UpdatedAt.
func (p UserPatch) Apply(u *User, now time.Time) error {
	if p.Username != nil {
		username := strings.TrimSpace(*p.Username)
		if err := validateUsername(username); err != nil {
			return err
		}
		u.Username = username
	}
	if p.FirstName.Set {
		u.FirstName = p.FirstName.Value
	}
	if p.LastName.Set {
		u.LastName = p.LastName.Value
	}
	u.UpdatedAt = now
	return nil
}

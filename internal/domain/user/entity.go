package user

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrEmptyDisplayName   = errors.New("display name must not be empty")
	ErrInvalidDisplayName = errors.New("display name too long")
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

const maxDisplayNameLen = 64

type Email string

func NewEmail(raw string) (Email, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || !emailPattern.MatchString(trimmed) {
		return "", ErrInvalidEmail
	}
	return Email(strings.ToLower(trimmed)), nil
}

func (e Email) String() string { return string(e) }

type User struct {
	id           uuid.UUID
	email        Email
	passwordHash string
	displayName  string
	createdAt    time.Time
}

func NewUser(email Email, passwordHash, displayName string) (*User, error) {
	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		return nil, ErrEmptyDisplayName
	}
	if len(displayName) > maxDisplayNameLen {
		return nil, ErrInvalidDisplayName
	}

	return &User{
		id:           uuid.New(),
		email:        email,
		passwordHash: passwordHash,
		displayName:  displayName,
	}, nil
}

func Reconstruct(id uuid.UUID, email Email, passwordHash, displayName string, createdAt time.Time) *User {
	return &User{
		id:           id,
		email:        email,
		passwordHash: passwordHash,
		displayName:  displayName,
		createdAt:    createdAt,
	}
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Email() Email         { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) DisplayName() string  { return u.displayName }
func (u *User) CreatedAt() time.Time { return u.createdAt }

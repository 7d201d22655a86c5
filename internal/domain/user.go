package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for User
var (
	ErrEmptyUserID         = errors.New("user ID cannot be empty")
	ErrEmptyUserName       = errors.New("user name cannot be empty")
	ErrEmptyEmail          = errors.New("email cannot be empty")
	ErrEmptyCountry        = errors.New("country cannot be empty")
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")
)

// User represents a registered user. The password is stored only as a
// bcrypt hash, which is never serialized.
type User struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"`
	Country        string    `json:"country"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewUser creates a new User with the given profile data and password hash.
// It generates a new UUID for the user ID, normalizes the email to lowercase
// so uniqueness is case-insensitive, and sets the creation/update timestamps.
// Returns an error if validation fails.
func NewUser(name, email, hashedPassword, country string) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		ID:             uuid.New(),
		Name:           strings.TrimSpace(name),
		Email:          NormalizeEmail(email),
		HashedPassword: hashedPassword,
		Country:        strings.TrimSpace(country),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrEmptyUserID
	}

	if u.Name == "" {
		return ErrEmptyUserName
	}

	if u.Email == "" {
		return ErrEmptyEmail
	}

	if !validEmailFormat(u.Email) {
		return ErrInvalidEmail
	}

	if u.Country == "" {
		return ErrEmptyCountry
	}

	if u.HashedPassword == "" {
		return ErrEmptyHashedPassword
	}

	return nil
}

// NormalizeEmail lowercases and trims an email address. All email
// comparisons in the system go through this normalization.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// validEmailFormat performs a basic structural check of an email address.
// Request-level validation applies the stricter validator rules; this is
// the domain's last line of defense against obviously broken data.
func validEmailFormat(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	domainPart := email[at+1:]
	dot := strings.Index(domainPart, ".")
	return dot > 0 && dot < len(domainPart)-1
}

package domain

import (
	"errors"
	"regexp"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidEmail     = errors.New("invalid email address")
	ErrEmptyName        = errors.New("name cannot be empty")
	ErrNameTooLong      = errors.New("name exceeds maximum length")
	ErrPasswordTooShort = errors.New("password is too short")
)

// MaxNameLength is the maximum allowed name length.
const MaxNameLength = 255

// MinPasswordLength is the minimum allowed password length.
const MinPasswordLength = 8

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Email represents a validated, normalized email address.
type Email struct {
	value string
}

// NewEmail creates a validated email address.
func NewEmail(value string) (Email, error) {
	value = strings.TrimSpace(strings.ToLower(value))
	if value == "" || !emailRegex.MatchString(value) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: value}, nil
}

// String returns the email string.
func (e Email) String() string { return e.value }

// Equals checks if two emails are equal.
func (e Email) Equals(other Email) bool { return e.value == other.value }

// Name represents a validated user name.
type Name struct {
	value string
}

// NewName creates a validated name.
func NewName(value string) (Name, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return Name{}, ErrEmptyName
	}
	if len(value) > MaxNameLength {
		return Name{}, ErrNameTooLong
	}
	return Name{value: value}, nil
}

// String returns the name string.
func (n Name) String() string { return n.value }

// Equals checks if two names are equal.
func (n Name) Equals(other Name) bool { return n.value == other.value }

// PasswordHash holds a bcrypt digest. The plaintext never leaves the
// constructor.
type PasswordHash struct {
	value string
}

// NewPasswordHash hashes a plaintext password.
func NewPasswordHash(plaintext string) (PasswordHash, error) {
	if len(plaintext) < MinPasswordLength {
		return PasswordHash{}, ErrPasswordTooShort
	}
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return PasswordHash{}, err
	}
	return PasswordHash{value: string(digest)}, nil
}

// RehydratePasswordHash wraps a stored digest.
func RehydratePasswordHash(digest string) PasswordHash {
	return PasswordHash{value: digest}
}

// String returns the stored digest.
func (p PasswordHash) String() string { return p.value }

// Matches reports whether the plaintext password matches the digest.
func (p PasswordHash) Matches(plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(p.value), []byte(plaintext)) == nil
}

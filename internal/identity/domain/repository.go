package domain

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	// ErrUserNotFound is returned when a user does not exist in the store.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailTaken is returned when registering an email that is already in use.
	ErrEmailTaken = errors.New("email already registered")
)

// Repository defines the interface for user persistence.
type Repository interface {
	Save(ctx context.Context, user *User) error
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByEmail(ctx context.Context, email Email) (*User, error)
}

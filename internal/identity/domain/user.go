package domain

import (
	"time"

	"github.com/google/uuid"

	sharedDomain "github.com/taskdeck/taskdeck/internal/shared/domain"
)

// User represents a user account in the system.
type User struct {
	sharedDomain.BaseAggregateRoot
	email        Email
	name         Name
	passwordHash PasswordHash
}

// NewUser creates a new user with the given email, name and password hash.
func NewUser(email Email, name Name, passwordHash PasswordHash) *User {
	u := &User{
		BaseAggregateRoot: sharedDomain.NewBaseAggregateRoot(),
		email:             email,
		name:              name,
		passwordHash:      passwordHash,
	}

	u.AddDomainEvent(NewUserRegistered(u.ID(), email.String(), name.String()))

	return u
}

// RehydrateUser reconstructs a user from persisted state.
func RehydrateUser(id uuid.UUID, email Email, name Name, passwordHash PasswordHash, createdAt, updatedAt time.Time) *User {
	return &User{
		BaseAggregateRoot: sharedDomain.RehydrateBaseAggregateRoot(sharedDomain.RehydrateBaseEntity(id, createdAt, updatedAt)),
		email:             email,
		name:              name,
		passwordHash:      passwordHash,
	}
}

func (u *User) Email() Email               { return u.email }
func (u *User) Name() Name                 { return u.name }
func (u *User) PasswordHash() PasswordHash { return u.passwordHash }

// UpdateName changes the user's name.
func (u *User) UpdateName(name Name) {
	if u.name.Equals(name) {
		return
	}
	u.name = name
	u.Touch()
}

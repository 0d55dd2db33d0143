// Package persistence provides the user store drivers.
package persistence

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/taskdeck/taskdeck/internal/identity/domain"
)

// MemoryUserRepository implements domain.Repository over an in-process map.
type MemoryUserRepository struct {
	mu      sync.RWMutex
	users   map[uuid.UUID]*domain.User
	byEmail map[string]uuid.UUID
}

// NewMemoryUserRepository creates an empty in-memory user repository.
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		users:   make(map[uuid.UUID]*domain.User),
		byEmail: make(map[string]uuid.UUID),
	}
}

func cloneUser(u *domain.User) *domain.User {
	return domain.RehydrateUser(u.ID(), u.Email(), u.Name(), u.PasswordHash(), u.CreatedAt(), u.UpdatedAt())
}

// Save stores a snapshot of the user. Saving a new user with an email
// that belongs to another account fails with domain.ErrEmailTaken.
func (r *MemoryUserRepository) Save(ctx context.Context, u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	email := u.Email().String()
	if existing, ok := r.byEmail[email]; ok && existing != u.ID() {
		return domain.ErrEmailTaken
	}

	if prev, ok := r.users[u.ID()]; ok && prev.Email().String() != email {
		delete(r.byEmail, prev.Email().String())
	}

	r.users[u.ID()] = cloneUser(u)
	r.byEmail[email] = u.ID()
	return nil
}

// FindByID retrieves a user by ID.
func (r *MemoryUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

// FindByEmail retrieves a user by normalized email.
func (r *MemoryUserRepository) FindByEmail(ctx context.Context, email domain.Email) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email.String()]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(r.users[id]), nil
}

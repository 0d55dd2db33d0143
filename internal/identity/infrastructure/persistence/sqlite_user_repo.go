package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/taskdeck/taskdeck/internal/identity/domain"
)

const sqliteUserSchema = `
CREATE TABLE IF NOT EXISTS users (
    id            TEXT PRIMARY KEY,
    email         TEXT NOT NULL UNIQUE,
    name          TEXT NOT NULL,
    password_hash TEXT NOT NULL,
    created_at    TEXT NOT NULL,
    updated_at    TEXT NOT NULL
);
`

// SQLiteUserRepository implements domain.Repository using SQLite.
type SQLiteUserRepository struct {
	db *sql.DB
}

// NewSQLiteUserRepository creates a new SQLite user repository and
// ensures the schema exists.
func NewSQLiteUserRepository(ctx context.Context, db *sql.DB) (*SQLiteUserRepository, error) {
	if _, err := db.ExecContext(ctx, sqliteUserSchema); err != nil {
		return nil, fmt.Errorf("ensure users schema: %w", err)
	}
	return &SQLiteUserRepository{db: db}, nil
}

// Save persists a user, inserting or replacing by ID. The unique email
// index turns duplicate registrations into domain.ErrEmailTaken.
func (r *SQLiteUserRepository) Save(ctx context.Context, u *domain.User) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (id, email, name, password_hash, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			email = excluded.email,
			name = excluded.name,
			password_hash = excluded.password_hash,
			updated_at = excluded.updated_at`,
		u.ID().String(), u.Email().String(), u.Name().String(), u.PasswordHash().String(),
		u.CreatedAt().Format(time.RFC3339), u.UpdatedAt().Format(time.RFC3339),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed: users.email") {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("save user: %w", err)
	}
	return nil
}

// FindByID retrieves a user by ID.
func (r *SQLiteUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, email, name, password_hash, created_at, updated_at
		FROM users WHERE id = ?`, id.String())
	return scanUser(row)
}

// FindByEmail retrieves a user by normalized email.
func (r *SQLiteUserRepository) FindByEmail(ctx context.Context, email domain.Email) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, email, name, password_hash, created_at, updated_at
		FROM users WHERE email = ?`, email.String())
	return scanUser(row)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*domain.User, error) {
	var idStr, emailStr, nameStr, hashStr, createdStr, updStr string
	if err := row.Scan(&idStr, &emailStr, &nameStr, &hashStr, &createdStr, &updStr); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, fmt.Errorf("parse user id: %w", err)
	}
	email, err := domain.NewEmail(emailStr)
	if err != nil {
		return nil, fmt.Errorf("rehydrate email: %w", err)
	}
	name, err := domain.NewName(nameStr)
	if err != nil {
		return nil, fmt.Errorf("rehydrate name: %w", err)
	}
	createdAt, err := time.Parse(time.RFC3339, createdStr)
	if err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}
	updatedAt, err := time.Parse(time.RFC3339, updStr)
	if err != nil {
		return nil, fmt.Errorf("parse updated_at: %w", err)
	}

	return domain.RehydrateUser(id, email, name, domain.RehydratePasswordHash(hashStr), createdAt, updatedAt), nil
}

package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taskdeck/taskdeck/internal/identity/domain"
)

const postgresUserSchema = `
CREATE TABLE IF NOT EXISTS users (
    id            UUID PRIMARY KEY,
    email         TEXT NOT NULL UNIQUE,
    name          TEXT NOT NULL,
    password_hash TEXT NOT NULL,
    created_at    TIMESTAMPTZ NOT NULL,
    updated_at    TIMESTAMPTZ NOT NULL
);
`

// uniqueViolation is the Postgres error code for unique constraint violations.
const uniqueViolation = "23505"

// PostgresUserRepository implements domain.Repository using PostgreSQL.
type PostgresUserRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresUserRepository creates a new PostgreSQL user repository and
// ensures the schema exists.
func NewPostgresUserRepository(ctx context.Context, pool *pgxpool.Pool) (*PostgresUserRepository, error) {
	if _, err := pool.Exec(ctx, postgresUserSchema); err != nil {
		return nil, fmt.Errorf("ensure users schema: %w", err)
	}
	return &PostgresUserRepository{pool: pool}, nil
}

// Save persists a user, inserting or updating by ID.
func (r *PostgresUserRepository) Save(ctx context.Context, u *domain.User) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO users (id, email, name, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			email = EXCLUDED.email,
			name = EXCLUDED.name,
			password_hash = EXCLUDED.password_hash,
			updated_at = EXCLUDED.updated_at`,
		u.ID(), u.Email().String(), u.Name().String(), u.PasswordHash().String(),
		u.CreatedAt(), u.UpdatedAt(),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("save user: %w", err)
	}
	return nil
}

// FindByID retrieves a user by ID.
func (r *PostgresUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, email, name, password_hash, created_at, updated_at
		FROM users WHERE id = $1`, id)
	return scanPostgresUser(row)
}

// FindByEmail retrieves a user by normalized email.
func (r *PostgresUserRepository) FindByEmail(ctx context.Context, email domain.Email) (*domain.User, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, email, name, password_hash, created_at, updated_at
		FROM users WHERE email = $1`, email.String())
	return scanPostgresUser(row)
}

func scanPostgresUser(row pgx.Row) (*domain.User, error) {
	var (
		id                   uuid.UUID
		emailStr, nameStr    string
		hashStr              string
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(&id, &emailStr, &nameStr, &hashStr, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	email, err := domain.NewEmail(emailStr)
	if err != nil {
		return nil, fmt.Errorf("rehydrate email: %w", err)
	}
	name, err := domain.NewName(nameStr)
	if err != nil {
		return nil, fmt.Errorf("rehydrate name: %w", err)
	}

	return domain.RehydrateUser(id, email, name, domain.RehydratePasswordHash(hashStr), createdAt, updatedAt), nil
}

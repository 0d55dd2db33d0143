// Package auth implements user registration and login with signed
// bearer tokens.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/taskdeck/taskdeck/internal/identity/domain"
	"github.com/taskdeck/taskdeck/internal/shared/infrastructure/eventbus"
)

// ErrInvalidCredentials is returned when login fails. The reason is
// deliberately not disclosed to the caller.
var ErrInvalidCredentials = errors.New("invalid email or password")

// UserView is the account representation returned to clients. It never
// carries the password hash.
type UserView struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// AuthResult is the outcome of a successful register or login.
type AuthResult struct {
	Token string   `json:"token"`
	User  UserView `json:"user"`
}

// Service handles registration and authentication.
type Service struct {
	userRepo  domain.Repository
	tokens    *TokenManager
	publisher eventbus.Publisher
	logger    *slog.Logger
}

// NewService creates an auth service.
func NewService(userRepo domain.Repository, tokens *TokenManager, publisher eventbus.Publisher, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		userRepo:  userRepo,
		tokens:    tokens,
		publisher: publisher,
		logger:    logger,
	}
}

// RegisterInput contains the fields for creating an account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// Register creates a new account and returns a bearer token for it.
// Registering an email that is already in use fails with
// domain.ErrEmailTaken.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	email, err := domain.NewEmail(input.Email)
	if err != nil {
		return nil, err
	}
	name, err := domain.NewName(input.Name)
	if err != nil {
		return nil, err
	}
	hash, err := domain.NewPasswordHash(input.Password)
	if err != nil {
		return nil, err
	}

	if _, err := s.userRepo.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("check email: %w", err)
	}

	user := domain.NewUser(email, name, hash)
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("save user: %w", err)
	}

	if err := s.publisher.Publish(ctx, user.DomainEvents()...); err != nil {
		return nil, fmt.Errorf("publish events: %w", err)
	}
	user.ClearDomainEvents()

	s.logger.InfoContext(ctx, "user registered", "user_id", user.ID().String())

	return s.authResult(user)
}

// LoginInput contains the credentials for logging in.
type LoginInput struct {
	Email    string
	Password string
}

// Login verifies credentials and returns a bearer token. Unknown email
// and wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	email, err := domain.NewEmail(input.Email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if !user.PasswordHash().Matches(input.Password) {
		return nil, ErrInvalidCredentials
	}

	s.logger.InfoContext(ctx, "user logged in", "user_id", user.ID().String())

	return s.authResult(user)
}

// VerifyToken validates a bearer token and returns the account it
// belongs to.
func (s *Service) VerifyToken(ctx context.Context, token string) (uuid.UUID, error) {
	userID, err := s.tokens.Verify(token)
	if err != nil {
		return uuid.Nil, err
	}
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return uuid.Nil, ErrInvalidToken
		}
		return uuid.Nil, fmt.Errorf("find user: %w", err)
	}
	return userID, nil
}

func (s *Service) authResult(user *domain.User) (*AuthResult, error) {
	token, err := s.tokens.Issue(user.ID(), user.Email().String())
	if err != nil {
		return nil, err
	}
	return &AuthResult{
		Token: token,
		User: UserView{
			ID:    user.ID(),
			Name:  user.Name().String(),
			Email: user.Email().String(),
		},
	}, nil
}

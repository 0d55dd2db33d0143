package auth

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/taskdeck/internal/identity/domain"
	"github.com/taskdeck/taskdeck/internal/identity/infrastructure/persistence"
	"github.com/taskdeck/taskdeck/internal/shared/infrastructure/eventbus"
)

func newTestService() *Service {
	repo := persistence.NewMemoryUserRepository()
	tokens := NewTokenManager(DefaultTokenConfig())
	return NewService(repo, tokens, eventbus.NopPublisher{}, nil)
}

func registerInput() RegisterInput {
	return RegisterInput{Name: "Jamie", Email: "jamie@example.com", Password: "correct-horse"}
}

func TestService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("creates an account with a token", func(t *testing.T) {
		service := newTestService()

		result, err := service.Register(ctx, registerInput())

		require.NoError(t, err)
		assert.NotEmpty(t, result.Token)
		assert.Equal(t, "Jamie", result.User.Name)
		assert.Equal(t, "jamie@example.com", result.User.Email)
		assert.NotEqual(t, uuid.Nil, result.User.ID)
	})

	t.Run("rejects a duplicate email", func(t *testing.T) {
		service := newTestService()
		_, err := service.Register(ctx, registerInput())
		require.NoError(t, err)

		input := registerInput()
		input.Name = "Other Jamie"
		_, err = service.Register(ctx, input)

		assert.ErrorIs(t, err, domain.ErrEmailTaken)
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		service := newTestService()

		_, err := service.Register(ctx, RegisterInput{Name: "Jamie", Email: "nope", Password: "correct-horse"})
		assert.ErrorIs(t, err, domain.ErrInvalidEmail)

		_, err = service.Register(ctx, RegisterInput{Name: "Jamie", Email: "jamie@example.com", Password: "short"})
		assert.ErrorIs(t, err, domain.ErrPasswordTooShort)
	})
}

func TestService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("returns a token for valid credentials", func(t *testing.T) {
		service := newTestService()
		registered, err := service.Register(ctx, registerInput())
		require.NoError(t, err)

		result, err := service.Login(ctx, LoginInput{Email: "jamie@example.com", Password: "correct-horse"})

		require.NoError(t, err)
		assert.NotEmpty(t, result.Token)
		assert.Equal(t, registered.User.ID, result.User.ID)
	})

	t.Run("normalizes the email", func(t *testing.T) {
		service := newTestService()
		_, err := service.Register(ctx, registerInput())
		require.NoError(t, err)

		_, err = service.Login(ctx, LoginInput{Email: "JAMIE@example.com", Password: "correct-horse"})
		assert.NoError(t, err)
	})

	t.Run("wrong password and unknown email look the same", func(t *testing.T) {
		service := newTestService()
		_, err := service.Register(ctx, registerInput())
		require.NoError(t, err)

		_, wrongPassword := service.Login(ctx, LoginInput{Email: "jamie@example.com", Password: "battery-staple"})
		_, unknownEmail := service.Login(ctx, LoginInput{Email: "ghost@example.com", Password: "correct-horse"})

		assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
		assert.ErrorIs(t, unknownEmail, ErrInvalidCredentials)
	})
}

func TestService_VerifyToken(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves the account", func(t *testing.T) {
		service := newTestService()
		registered, err := service.Register(ctx, registerInput())
		require.NoError(t, err)

		userID, err := service.VerifyToken(ctx, registered.Token)

		require.NoError(t, err)
		assert.Equal(t, registered.User.ID, userID)
	})

	t.Run("rejects tokens for deleted accounts", func(t *testing.T) {
		repo := persistence.NewMemoryUserRepository()
		tokens := NewTokenManager(DefaultTokenConfig())
		service := NewService(repo, tokens, eventbus.NopPublisher{}, nil)

		token, err := tokens.Issue(uuid.New(), "ghost@example.com")
		require.NoError(t, err)

		_, err = service.VerifyToken(ctx, token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects garbage tokens", func(t *testing.T) {
		service := newTestService()

		_, err := service.VerifyToken(ctx, "garbage")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

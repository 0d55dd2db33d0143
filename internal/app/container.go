// Package app wires configuration, storage drivers, and handlers into
// a running application.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "modernc.org/sqlite"

	"github.com/taskdeck/taskdeck/internal/identity/application/auth"
	identityDomain "github.com/taskdeck/taskdeck/internal/identity/domain"
	identityPersistence "github.com/taskdeck/taskdeck/internal/identity/infrastructure/persistence"
	"github.com/taskdeck/taskdeck/internal/shared/infrastructure/eventbus"
	"github.com/taskdeck/taskdeck/internal/tasks/application/commands"
	"github.com/taskdeck/taskdeck/internal/tasks/application/queries"
	"github.com/taskdeck/taskdeck/internal/tasks/domain/task"
	taskPersistence "github.com/taskdeck/taskdeck/internal/tasks/infrastructure/persistence"
	"github.com/taskdeck/taskdeck/pkg/config"
)

// Database driver names accepted in configuration.
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// ErrUnknownDriver is returned for an unrecognized DATABASE_DRIVER.
var ErrUnknownDriver = errors.New("unknown database driver")

// Container holds the wired application dependencies.
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	TaskRepo task.Repository
	UserRepo identityDomain.Repository

	AuthService *auth.Service

	ListTasks     *queries.ListTasksHandler
	Calendar      *queries.CalendarHandler
	CreateTask    *commands.CreateTaskHandler
	UpdateTask    *commands.UpdateTaskHandler
	SetCompletion *commands.SetCompletionHandler
	DeleteTask    *commands.DeleteTaskHandler

	closers []func() error
}

// NewContainer builds the application from configuration.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	if logger == nil {
		logger = slog.Default()
	}

	c := &Container{Config: cfg, Logger: logger}

	if err := c.initRepositories(ctx); err != nil {
		return nil, err
	}

	publisher := eventbus.NewLogPublisher(logger)

	tokenCfg := auth.DefaultTokenConfig()
	if cfg.JWTSecret != "" {
		tokenCfg.Secret = cfg.JWTSecret
	} else if cfg.IsProduction() {
		return nil, errors.New("JWT_SECRET is required in production")
	}
	if cfg.TokenTTL > 0 {
		tokenCfg.TTL = cfg.TokenTTL
	}

	c.AuthService = auth.NewService(c.UserRepo, auth.NewTokenManager(tokenCfg), publisher, logger)

	c.ListTasks = queries.NewListTasksHandler(c.TaskRepo)
	c.Calendar = queries.NewCalendarHandler(c.TaskRepo)
	c.CreateTask = commands.NewCreateTaskHandler(c.TaskRepo, publisher)
	c.UpdateTask = commands.NewUpdateTaskHandler(c.TaskRepo, publisher)
	c.SetCompletion = commands.NewSetCompletionHandler(c.TaskRepo, publisher)
	c.DeleteTask = commands.NewDeleteTaskHandler(c.TaskRepo, publisher)

	logger.Info("container initialized", "driver", cfg.DatabaseDriver)

	return c, nil
}

func (c *Container) initRepositories(ctx context.Context) error {
	cfg := c.Config

	switch cfg.DatabaseDriver {
	case DriverMemory, "":
		c.TaskRepo = taskPersistence.NewMemoryTaskRepository()
		c.UserRepo = identityPersistence.NewMemoryUserRepository()
		return nil

	case DriverSQLite:
		db, err := sql.Open("sqlite", cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("open sqlite database: %w", err)
		}
		if err := db.PingContext(ctx); err != nil {
			db.Close()
			return fmt.Errorf("ping sqlite database: %w", err)
		}
		c.closers = append(c.closers, db.Close)

		taskRepo, err := taskPersistence.NewSQLiteTaskRepository(ctx, db)
		if err != nil {
			return err
		}
		userRepo, err := identityPersistence.NewSQLiteUserRepository(ctx, db)
		if err != nil {
			return err
		}
		c.TaskRepo = taskRepo
		c.UserRepo = userRepo
		return nil

	case DriverPostgres:
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("connect to postgres: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return fmt.Errorf("ping postgres: %w", err)
		}
		c.closers = append(c.closers, func() error {
			pool.Close()
			return nil
		})

		taskRepo, err := taskPersistence.NewPostgresTaskRepository(ctx, pool)
		if err != nil {
			return err
		}
		userRepo, err := identityPersistence.NewPostgresUserRepository(ctx, pool)
		if err != nil {
			return err
		}
		c.TaskRepo = taskRepo
		c.UserRepo = userRepo
		return nil

	default:
		return fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.DatabaseDriver)
	}
}

// Close releases held resources.
func (c *Container) Close() error {
	var errs []error
	for _, closer := range c.closers {
		if err := closer(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

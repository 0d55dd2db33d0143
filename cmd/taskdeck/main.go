package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/taskdeck/taskdeck/adapter/cli"
	"github.com/taskdeck/taskdeck/adapter/cli/task"
	"github.com/taskdeck/taskdeck/internal/app"
	"github.com/taskdeck/taskdeck/pkg/config"
	"github.com/taskdeck/taskdeck/pkg/observability"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		cancel()
	}()

	cfg, err := config.Load()
	if err != nil {
		cfg = &config.Config{AppEnv: "development"}
	}

	logCfg := observability.DefaultLogConfig()
	logCfg.Level = observability.LogLevel(cfg.LogLevel)
	logCfg.Format = observability.LogFormat(cfg.LogFormat)
	logger := observability.NewLogger(logCfg)
	cli.SetLogger(logger)

	container, err := app.NewContainer(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize application", "error", err)
		os.Exit(1)
	}
	defer container.Close()

	localUser, err := uuid.Parse(cfg.LocalUserID)
	if err != nil {
		logger.Error("invalid TASKDECK_USER_ID", "error", err)
		os.Exit(1)
	}

	cli.SetApp(&cli.App{Container: container, CurrentUserID: localUser})
	cli.Root().AddCommand(task.Cmd)

	cli.Execute(ctx)
}

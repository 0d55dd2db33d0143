package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/adapter/api"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("application not initialized")
		}

		cfg := api.DefaultServerConfig()
		if serveAddr != "" {
			cfg.Addr = serveAddr
		} else if app.Config.HTTPAddr != "" {
			cfg.Addr = app.Config.HTTPAddr
		}

		server := api.NewServer(
			cfg,
			api.NewAuthHandler(app.AuthService),
			api.NewTaskHandler(app.ListTasks, app.Calendar, app.CreateTask, app.UpdateTask, app.SetCompletion, app.DeleteTask),
			app.Logger,
		)

		errCh := make(chan error, 1)
		go func() {
			errCh <- server.Start()
		}()

		select {
		case err := <-errCh:
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		case <-cmd.Context().Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides HTTP_ADDR)")
	rootCmd.AddCommand(serveCmd)
}

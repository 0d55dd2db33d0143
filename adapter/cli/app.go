// Package cli implements the taskdeck command tree.
package cli

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/taskdeck/taskdeck/internal/app"
)

// App carries the initialized container and the user the CLI acts as.
type App struct {
	*app.Container
	CurrentUserID uuid.UUID
}

var currentApp *App

// SetApp installs the initialized application for commands to use.
func SetApp(a *App) {
	currentApp = a
}

// GetApp returns the installed application, or nil when initialization
// failed.
func GetApp() *App {
	return currentApp
}

// SetLogger installs the logger used by command hooks.
func SetLogger(l *slog.Logger) {
	logger = l
}

// Package task implements the task subcommands.
package task

import (
	"github.com/spf13/cobra"
)

// Cmd is the parent command for task operations.
var Cmd = &cobra.Command{
	Use:   "task",
	Short: "Manage tasks",
	Long:  `Create, list, complete, and delete tasks against the configured store.`,
}

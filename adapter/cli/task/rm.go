package task

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/adapter/cli"
	"github.com/taskdeck/taskdeck/internal/tasks/application/commands"
)

var rmCmd = &cobra.Command{
	Use:     "rm <task-id>",
	Short:   "Delete a task",
	Aliases: []string{"delete"},
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil {
			return fmt.Errorf("application not initialized")
		}

		taskID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid task id: %w", err)
		}

		err = app.DeleteTask.Handle(cmd.Context(), commands.DeleteTaskCommand{
			TaskID:  taskID,
			OwnerID: app.CurrentUserID,
		})
		if err != nil {
			return fmt.Errorf("failed to delete task: %w", err)
		}

		fmt.Printf("Deleted task %s\n", taskID)
		return nil
	},
}

func init() {
	Cmd.AddCommand(rmCmd)
}

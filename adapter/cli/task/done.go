package task

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/adapter/cli"
	"github.com/taskdeck/taskdeck/internal/tasks/application/commands"
)

var reopen bool

var doneCmd = &cobra.Command{
	Use:   "done <task-id>",
	Short: "Mark a task completed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil {
			return fmt.Errorf("application not initialized")
		}

		taskID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid task id: %w", err)
		}

		err = app.SetCompletion.Handle(cmd.Context(), commands.SetCompletionCommand{
			TaskID:    taskID,
			OwnerID:   app.CurrentUserID,
			Completed: !reopen,
		})
		if err != nil {
			return fmt.Errorf("failed to update task: %w", err)
		}

		if reopen {
			fmt.Printf("Reopened task %s\n", taskID)
		} else {
			fmt.Printf("Completed task %s\n", taskID)
		}
		return nil
	},
}

func init() {
	doneCmd.Flags().BoolVar(&reopen, "reopen", false, "mark the task active again")
	Cmd.AddCommand(doneCmd)
}

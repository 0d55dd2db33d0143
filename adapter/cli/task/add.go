package task

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/adapter/cli"
	"github.com/taskdeck/taskdeck/internal/tasks/application/commands"
	"github.com/taskdeck/taskdeck/internal/tasks/application/queries"
)

var (
	addDescription string
	addCategory    string
	addDue         string
)

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Create a task",
	Long: `Create a task with a title, category, and due date.

Examples:
  taskdeck task add "Buy groceries" --due 2026-09-01 --category Personal
  taskdeck task add "Ship release" --due 2026-09-15T17:00:00Z --category Work`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil {
			return fmt.Errorf("application not initialized")
		}

		dueDate, ok := queries.ParseDueDate(addDue)
		if !ok {
			return fmt.Errorf("invalid --due format, use YYYY-MM-DD or RFC3339")
		}

		result, err := app.CreateTask.Handle(cmd.Context(), commands.CreateTaskCommand{
			OwnerID:     app.CurrentUserID,
			Title:       strings.Join(args, " "),
			Description: addDescription,
			Category:    addCategory,
			DueDate:     dueDate,
		})
		if err != nil {
			return fmt.Errorf("failed to create task: %w", err)
		}

		fmt.Printf("Created task %s\n", result.TaskID)
		return nil
	},
}

func init() {
	addCmd.Flags().StringVar(&addDescription, "desc", "", "task description")
	addCmd.Flags().StringVar(&addCategory, "category", "Personal", "task category")
	addCmd.Flags().StringVar(&addDue, "due", "", "due date (YYYY-MM-DD or RFC3339)")
	_ = addCmd.MarkFlagRequired("due")
	Cmd.AddCommand(addCmd)
}

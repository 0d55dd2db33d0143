package task

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/adapter/cli"
	"github.com/taskdeck/taskdeck/internal/tasks/application/queries"
)

var (
	filterCategory string
	filterStatus   string
	filterSearch   string
	filterDate     string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	Long: `List tasks with optional filtering.

Filter Options:
  --category  Filter by exact category (Personal, Work, Urgent)
  --status    Filter by status (all, active, completed)
  --search    Case-insensitive text search over title and description
  --date      Only tasks due on a calendar day (YYYY-MM-DD)

Examples:
  taskdeck task list
  taskdeck task list --status active
  taskdeck task list --category Work --search report
  taskdeck task list --date 2026-09-01`,
	Aliases: []string{"ls"},
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil {
			return fmt.Errorf("application not initialized")
		}

		spec := queries.FilterSpec{
			Category: filterCategory,
			Status:   filterStatus,
			Search:   filterSearch,
		}
		if filterDate != "" {
			date, err := time.ParseInLocation(queries.DayKeyLayout, filterDate, time.Local)
			if err != nil {
				return fmt.Errorf("invalid --date format, use YYYY-MM-DD: %w", err)
			}
			spec.Date = &date
		}

		tasks, err := app.ListTasks.Handle(cmd.Context(), queries.ListTasksQuery{
			OwnerID: app.CurrentUserID,
			Spec:    spec,
		})
		if err != nil {
			return fmt.Errorf("failed to list tasks: %w", err)
		}

		if len(tasks) == 0 {
			fmt.Println("No tasks found.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tCATEGORY\tDUE\tDONE")
		for _, t := range tasks {
			done := " "
			if t.Completed {
				done = "x"
			}
			due := t.DueDate
			if parsed, ok := queries.ParseDueDate(t.DueDate); ok {
				due = parsed.Format(queries.DayKeyLayout)
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t[%s]\n", t.ID, t.Title, t.Category, due, done)
		}
		return w.Flush()
	},
}

func init() {
	listCmd.Flags().StringVar(&filterCategory, "category", "", "filter by exact category")
	listCmd.Flags().StringVar(&filterStatus, "status", "", "filter by status (all, active, completed)")
	listCmd.Flags().StringVar(&filterSearch, "search", "", "text search over title and description")
	listCmd.Flags().StringVar(&filterDate, "date", "", "filter by due day (YYYY-MM-DD)")
	Cmd.AddCommand(listCmd)
}

package task

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/adapter/cli"
	"github.com/taskdeck/taskdeck/internal/tasks/application/queries"
)

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Show per-day task counts",
	Long:  `Show, for each day with due tasks, how many are due and how many are done.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil {
			return fmt.Errorf("application not initialized")
		}

		view, err := app.Calendar.Handle(cmd.Context(), queries.CalendarQuery{
			OwnerID: app.CurrentUserID,
		})
		if err != nil {
			return fmt.Errorf("failed to build calendar: %w", err)
		}

		if len(view.Days) == 0 {
			fmt.Println("No tasks scheduled.")
			return nil
		}

		days := make([]string, 0, len(view.Days))
		for day := range view.Days {
			days = append(days, day)
		}
		sort.Strings(days)

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "DAY\tDUE\tDONE\tSTATUS")
		for _, day := range days {
			entry := view.Days[day]
			fmt.Fprintf(w, "%s\t%d\t%d\t%s\n", day, entry.Total, entry.CompletedCount, entry.Status)
		}
		return w.Flush()
	},
}

func init() {
	Cmd.AddCommand(calendarCmd)
}

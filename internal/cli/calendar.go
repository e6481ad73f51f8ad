package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nhle/devdesign-studio/internal/calendar"
	"github.com/nhle/devdesign-studio/internal/model"
)

func newCalendarCmd(a *App) *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "calendar PROJECT",
		Short: "List dated to-dos grouped by day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prefix := ""
			if month != "" {
				year, m, err := calendar.ParseYearMonth(month)
				if err != nil {
					return writeErr(cmd, err)
				}
				prefix = fmt.Sprintf("%04d-%02d-", year, int(m))
			}

			t, err := a.load(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			p, err := resolveProject(t, args[0])
			if err != nil {
				return writeErr(cmd, err)
			}

			out := cmd.OutOrStdout()
			byDate := calendar.GroupTodosByDate(p)
			dates := make([]string, 0, len(byDate))
			for d := range byDate {
				if strings.HasPrefix(d, prefix) {
					dates = append(dates, d)
				}
			}
			sort.Strings(dates)

			if len(dates) == 0 {
				_, err = fmt.Fprintln(out, "no dated to-dos")
				return err
			}
			for _, d := range dates {
				heading := d
				if f, ok := calendar.FormatDate(d); ok {
					heading = f.Weekday + ", " + f.Date
				}
				fmt.Fprintln(out, heading)
				for _, todo := range byDate[d] {
					fmt.Fprintln(out, "  "+todoLine(todo))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "Only show YYYY-MM")
	return cmd
}

func todoLine(t model.Todo) string {
	box := "[ ]"
	if t.Checked {
		box = "[x]"
	}
	line := box
	if t.Time != "" {
		line += " " + t.Time
	}
	return line + " " + t.Text
}

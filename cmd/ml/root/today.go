package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"moodline/internal/journal"
	"moodline/internal/ui"
)

func newTodayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "today",
		Short: "Show today's entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx, cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			e, ok, err := svc.Today(ctx, time.Now())
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No entry yet today. Use `ml log` to add one."))
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconJournal, "Today ("+e.DayKey+")"))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Mood", ui.MoodText(e.Mood)))
			for _, a := range journal.Attributes {
				fmt.Fprintf(cmd.OutOrStdout(), "- %-12s %d/10\n", a, e.Attrs.Value(a))
			}
			if e.Clock != "" {
				fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Logged at", e.Clock))
			}
			if e.Notes != "" {
				fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Notes", e.Notes))
			}
			return nil
		},
	}

	return cmd
}

package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"moodline/internal/journal"
	"moodline/internal/ui"
)

func newHistoryCmd() *cobra.Command {
	var rangeStr string
	var moodStr string
	var search string
	var sortStr string
	var desc bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List past entries with filters",
		RunE: func(cmd *cobra.Command, args []string) error {
			rf, err := journal.ParseRangeFilter(rangeStr)
			if err != nil {
				return err
			}
			mf, err := journal.ParseMoodFilter(moodStr)
			if err != nil {
				return err
			}
			sk, err := journal.ParseSortKey(sortStr)
			if err != nil {
				return err
			}

			ctx := context.Background()
			svc, cleanup, err := openService(ctx, cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			entries, err := svc.History(ctx, time.Now(),
				journal.Filter{Range: rf, Mood: mf, Search: search},
				journal.Sort{Key: sk, Descending: desc},
			)
			if err != nil {
				return err
			}

			stats, err := svc.Stats(ctx, time.Now())
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconJournal, "History"))
			if len(entries) == 0 {
				if stats.Total == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No entries yet. Use `ml log` to add the first one."))
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No entries match the current filters."))
				}
				return nil
			}
			for _, e := range entries {
				notes := ""
				if e.Notes != "" {
					notes = " " + ui.Muted.Render(e.Notes)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "- %s %s%s\n", e.DayKey, ui.MoodText(e.Mood), notes)
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render(fmt.Sprintf("%d of %d entries", len(entries), stats.Total)))
			return nil
		},
	}

	cmd.Flags().StringVar(&rangeStr, "range", "all", "Date range (all|7d|30d)")
	cmd.Flags().StringVar(&moodStr, "mood", "any", "Mood filter (any|good|tough)")
	cmd.Flags().StringVarP(&search, "search", "s", "", "Substring search over notes")
	cmd.Flags().StringVar(&sortStr, "sort", "day", "Sort key (day|mood)")
	cmd.Flags().BoolVar(&desc, "desc", false, "Sort descending")

	return cmd
}

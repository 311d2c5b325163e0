package root

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"moodline/internal/journal"
	"moodline/internal/ui"
)

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show aggregate statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx, cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			p, err := svc.ActiveProfile(ctx)
			if err != nil {
				return err
			}
			stats, err := svc.Stats(ctx, time.Now())
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconSpark, "Statistics — "+p.DisplayName))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Entries", stats.Total))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Streak", fmt.Sprintf("%s %d days", ui.IconStreak, stats.Streak)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Weekly average", ui.MeanText(stats.Weekly)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Monthly average", ui.MeanText(stats.Monthly)))
			fmt.Fprintln(cmd.OutOrStdout(), "")

			fmt.Fprintln(cmd.OutOrStdout(), ui.H2.Render("Attributes"))
			for _, a := range stats.Attributes {
				if !a.Mean.Valid {
					fmt.Fprintf(cmd.OutOrStdout(), "- %-12s %s\n", a.Attribute, ui.Muted.Render("no data"))
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "- %-12s %.1f %s\n", a.Attribute, journal.Round1(a.Mean.Value), attrBar(a.Percent, 20))
			}
			fmt.Fprintln(cmd.OutOrStdout(), "")

			fmt.Fprintln(cmd.OutOrStdout(), ui.H2.Render("Time of day"))
			for _, bc := range stats.Distribution {
				icon := ui.IconSun
				if bc.Band == "night" || bc.Band == "evening" {
					icon = ui.IconMoon
				}
				fmt.Fprintf(cmd.OutOrStdout(), "- %s %-9s %d\n", icon, bc.Band, bc.Count)
			}
			return nil
		},
	}

	return cmd
}

func attrBar(percent float64, width int) string {
	filled := int(percent / 100 * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"moodline/internal/dateutil"
	"moodline/internal/journal"
	"moodline/internal/ui"
)

func newLogCmd() *cobra.Command {
	var energy, sleep, stress, productivity, social int
	var notes string
	var on string
	var noClock bool

	cmd := &cobra.Command{
		Use:   "log <mood>",
		Short: "Log today's mood (1-10) with five attribute ratings",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("mood value is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			mood, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("mood must be a number: %q", args[0])
			}

			ctx := context.Background()
			svc, cleanup, err := openService(ctx, cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			now := time.Now()
			dayKey := dateutil.DayKey(now)
			if on != "" {
				if _, err := dateutil.ParseDayKey(on); err != nil {
					return err
				}
				dayKey = on
			}
			clock := now.Format(dateutil.ClockLayout)
			if noClock || on != "" {
				clock = ""
			}

			entry := journal.Entry{
				DayKey: dayKey,
				Clock:  clock,
				Mood:   mood,
				Attrs: journal.AttributeSet{
					Energy:       energy,
					Sleep:        sleep,
					Stress:       stress,
					Productivity: productivity,
					Social:       social,
				},
				Notes: notes,
			}

			res, err := svc.Log(ctx, entry)
			if err != nil {
				return err
			}

			verb := "Logged"
			if res.Replaced {
				verb = "Replaced"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s for %s: %s\n",
				ui.Heading(ui.IconJournal, verb), "entry", res.Entry.DayKey, ui.MoodText(res.Entry.Mood))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Streak", fmt.Sprintf("%s %d days", ui.IconStreak, res.Streak)))
			return nil
		},
	}

	cmd.Flags().IntVarP(&energy, "energy", "e", 5, "Energy (1-10)")
	cmd.Flags().IntVar(&sleep, "sleep", 5, "Sleep quality (1-10)")
	cmd.Flags().IntVar(&stress, "stress", 5, "Stress (1-10)")
	cmd.Flags().IntVarP(&productivity, "productivity", "p", 5, "Productivity (1-10)")
	cmd.Flags().IntVar(&social, "social", 5, "Social (1-10)")
	cmd.Flags().StringVarP(&notes, "notes", "n", "", "Note text (max 200 chars)")
	cmd.Flags().StringVar(&on, "on", "", "Log for a past day (YYYY-MM-DD) instead of today")
	cmd.Flags().BoolVar(&noClock, "no-clock", false, "Do not record submission time")

	return cmd
}

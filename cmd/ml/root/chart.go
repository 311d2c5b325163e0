package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"moodline/internal/chart"
	"moodline/internal/journal"
	"moodline/internal/ui"
)

func newChartCmd() *cobra.Command {
	var granularityStr string
	var width int
	var height int

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Render the mood line chart",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := journal.ParseGranularity(granularityStr)
			if err != nil {
				return err
			}

			ctx := context.Background()
			svc, cleanup, err := openService(ctx, cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			series, err := svc.ChartSeries(ctx, time.Now(), g)
			if err != nil {
				return err
			}

			geo := chart.Map(series, width, height, 1)
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconChart, "Mood ("+string(g)+")"))
			rendered := chart.RenderText(geo)
			if !geo.Empty {
				rendered = ui.BandStyle(geo.Band).Render(rendered)
			}
			fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return nil
		},
	}

	cmd.Flags().StringVarP(&granularityStr, "granularity", "g", "daily", "Bucketing (daily|weekly|monthly)")
	cmd.Flags().IntVar(&width, "width", 60, "Chart width in columns")
	cmd.Flags().IntVar(&height, "height", 12, "Chart height in rows")

	return cmd
}

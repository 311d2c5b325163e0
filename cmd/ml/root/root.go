package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"moodline/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "ml",
	Short:         "Moodline — local-first daily mood journal",
	Long:          "Moodline is a local-first CLI/TUI mood journal: one entry per day, history, statistics, and a mood chart.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newLogCmd(),
		newTodayCmd(),
		newHistoryCmd(),
		newStatsCmd(),
		newChartCmd(),
		newProfileCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}

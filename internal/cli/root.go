package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "vitals",
	Short: "Vitals CLI - Personal wellness statistics from a daily journal",
	Long: `Vitals CLI computes derived statistics from a personal wellness
journal: cross-metric correlations over daily habit tracking, and
recency-weighted muscle, skeletal, and organ fatigue from workout logs.

Journals are plain YAML files; results can be printed, served to local
dashboard clients, or recorded and replayed.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(correlateCmd)
	rootCmd.AddCommand(fatigueCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(journalCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(versionCmd)
}

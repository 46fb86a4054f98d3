package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vitalslab/vitals-cli/internal/fatigue"
	"github.com/vitalslab/vitals-cli/internal/stats"
)

var (
	reportJournal  JournalOptions
	reportAsOf     string
	reportWellness bool
	reportJSON     bool
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print a full dashboard snapshot",
	Long: `Runs the complete pipeline over the journal and prints one snapshot:
fatigue scores for every muscle, skeletal, and organ region plus the
detected metric correlations.

The JSON form is the same payload 'vitals serve' broadcasts.

Examples:
  vitals report --sample
  vitals report --wellness --json`,
	RunE: runReport,
}

func init() {
	registerJournalFlags(&reportJournal, reportCmd.Flags())
	reportCmd.Flags().StringVar(&reportAsOf, "as-of", "", "Reference date YYYY-MM-DD (defaults to now)")
	reportCmd.Flags().BoolVar(&reportWellness, "wellness", true, "Merge the wellness organ overlay")
	reportCmd.Flags().BoolVar(&reportJSON, "json", false, "Print the snapshot as JSON")
}

func runReport(cmd *cobra.Command, args []string) error {
	registry, err := loadRegistry(reportJournal)
	if err != nil {
		return err
	}

	now, err := parseAsOf(reportAsOf)
	if err != nil {
		return fmt.Errorf("invalid --as-of date: %w", err)
	}

	snapshot := buildSnapshot(registry, 0, fatigue.Config{Now: now}, reportWellness)
	out := cmd.OutOrStdout()

	if reportJSON {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(snapshot)
	}

	summary := registry.Summary()
	fmt.Fprintf(out, "📋 Vitals Report (%s)\n\n", snapshot.GeneratedAt)
	fmt.Fprintf(out, "  Entries:   %d over %d day(s)\n", summary.EntryCount, summary.TrackedDays)
	fmt.Fprintf(out, "  Workouts:  %d using %d template(s)\n", summary.WorkoutCount, summary.TemplateCount)

	fmt.Fprintf(out, "\n💪 Muscles\n\n")
	printScoreSection(cmd, snapshot.Muscles)
	fmt.Fprintf(out, "\n🦴 Skeletal\n\n")
	printScoreSection(cmd, snapshot.Skeletal)
	fmt.Fprintf(out, "\n🫀 Organs\n\n")
	printScoreSection(cmd, snapshot.Organs)

	fmt.Fprintf(out, "\n🔍 Correlations\n\n")
	if len(snapshot.Correlations) == 0 {
		fmt.Fprintln(out, "  none detected")
	}
	for _, result := range snapshot.Correlations {
		p := "n/a"
		if result.PValue != nil {
			p = fmt.Sprintf("%.4f", *result.PValue)
		}
		fmt.Fprintf(out, "  %-32s r=%+.3f  p=%s  n=%d\n",
			fmt.Sprintf("%s × %s", stats.MetricLabel(result.MetricX), stats.MetricLabel(result.MetricY)),
			result.Correlation, p, result.SampleSize)
	}

	if len(snapshot.Notes) > 0 {
		fmt.Fprintf(out, "\n📝 Notes\n\n")
		for _, note := range snapshot.Notes {
			fmt.Fprintf(out, "  - %s\n", note)
		}
	}
	fmt.Fprintln(out)
	return nil
}

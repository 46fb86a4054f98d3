package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vitalslab/vitals-cli/internal/models"
	"github.com/vitalslab/vitals-cli/internal/stats"
)

var (
	correlateJournal JournalOptions
	correlateX       string
	correlateY       string
	correlateJSON    bool
)

var correlateCmd = &cobra.Command{
	Use:   "correlate",
	Short: "Discover correlations between tracked metrics",
	Long: `Computes Pearson correlations over the daily journal, using only the
days where both metrics of a pair were logged.

Without flags, every pair of tracked metrics is evaluated and the pairs
passing the discovery thresholds are printed, strongest first. With --x
and --y, a single pair is evaluated regardless of thresholds.

Examples:
  vitals correlate --sample
  vitals correlate --x sleep --y mood
  vitals correlate --journal ./journal --json`,
	RunE: runCorrelate,
}

func init() {
	registerJournalFlags(&correlateJournal, correlateCmd.Flags())
	correlateCmd.Flags().StringVar(&correlateX, "x", "", "First metric of a specific pair")
	correlateCmd.Flags().StringVar(&correlateY, "y", "", "Second metric of a specific pair")
	correlateCmd.Flags().BoolVar(&correlateJSON, "json", false, "Print results as JSON")
}

func runCorrelate(cmd *cobra.Command, args []string) error {
	if (correlateX == "") != (correlateY == "") {
		return fmt.Errorf("--x and --y must be used together")
	}

	registry, err := loadRegistry(correlateJournal)
	if err != nil {
		return err
	}

	samples := registry.DailySamples()

	if correlateX != "" {
		for _, metric := range []string{correlateX, correlateY} {
			if !stats.IsTrackedMetric(metric) {
				return fmt.Errorf("unknown metric %q (see 'vitals journal list' for tracked metrics)", metric)
			}
		}

		result := stats.ComputePairCorrelation(samples, correlateX, correlateY)
		if result == nil {
			fmt.Fprintf(cmd.OutOrStdout(), "Not enough overlapping days for %s × %s (need %d with both logged)\n",
				stats.MetricLabel(correlateX), stats.MetricLabel(correlateY), stats.MinDaysForCorrelation)
			return nil
		}
		return printCorrelations(cmd, []models.PairCorrelationResult{*result}, len(samples))
	}

	detected := stats.DetectCorrelations(samples)
	return printCorrelations(cmd, detected, len(samples))
}

func printCorrelations(cmd *cobra.Command, results []models.PairCorrelationResult, totalDays int) error {
	out := cmd.OutOrStdout()

	if correlateJSON {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(results)
	}

	if len(results) == 0 {
		fmt.Fprintf(out, "No correlations detected over %d tracked day(s)\n", totalDays)
		return nil
	}

	fmt.Fprintf(out, "🔍 Correlations (%d tracked day(s))\n\n", totalDays)
	fmt.Fprintf(out, "  %-32s %5s %8s %8s %18s\n", "Pair", "n", "r", "p", "95% CI")

	for _, result := range results {
		pair := fmt.Sprintf("%s × %s", stats.MetricLabel(result.MetricX), stats.MetricLabel(result.MetricY))

		p := "n/a"
		if result.PValue != nil {
			p = fmt.Sprintf("%.4f", *result.PValue)
		}
		ci := "n/a"
		if result.CILower != nil && result.CIUpper != nil {
			ci = fmt.Sprintf("[%+.2f, %+.2f]", *result.CILower, *result.CIUpper)
		}

		fmt.Fprintf(out, "  %-32s %5d %+8.3f %8s %18s\n", pair, result.SampleSize, result.Correlation, p, ci)
	}
	fmt.Fprintln(out)
	return nil
}

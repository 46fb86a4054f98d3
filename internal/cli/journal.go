package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vitalslab/vitals-cli/internal/fatigue"
	"github.com/vitalslab/vitals-cli/internal/stats"
)

var (
	journalListOpts     JournalOptions
	journalDescribeOpts JournalOptions
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Inspect the loaded journal",
	Long:  `Commands for listing journal contents and describing workout templates.`,
}

var journalListCmd = &cobra.Command{
	Use:   "list",
	Short: "Summarize the journal contents",
	Long:  `Shows entry, template, and workout counts, the loaded sources, and the tracked metrics.`,
	RunE:  runJournalList,
}

var journalDescribeCmd = &cobra.Command{
	Use:   "describe <template-id>",
	Short: "Describe a workout template in detail",
	Long:  `Shows a workout template's exercises and the per-muscle load one session contributes.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalDescribe,
}

func init() {
	registerJournalFlags(&journalListOpts, journalListCmd.Flags())
	registerJournalFlags(&journalDescribeOpts, journalDescribeCmd.Flags())
	journalCmd.AddCommand(journalListCmd)
	journalCmd.AddCommand(journalDescribeCmd)
}

func runJournalList(cmd *cobra.Command, args []string) error {
	registry, err := loadRegistry(journalListOpts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	summary := registry.Summary()

	fmt.Fprintf(out, "📓 Journal Summary\n\n")
	fmt.Fprintf(out, "  Daily entries:  %d over %d day(s)\n", summary.EntryCount, summary.TrackedDays)
	fmt.Fprintf(out, "  Templates:      %d\n", summary.TemplateCount)
	fmt.Fprintf(out, "  Workout logs:   %d\n\n", summary.WorkoutCount)

	fmt.Fprintln(out, "Sources:")
	for _, source := range registry.Sources() {
		fmt.Fprintf(out, "  %s\n", source)
	}

	fmt.Fprintln(out, "\nTemplates:")
	for _, template := range registry.Templates() {
		fmt.Fprintf(out, "  %-20s %s (%d exercise(s))\n", template.ID, template.Name, len(template.Exercises))
	}

	fmt.Fprintln(out, "\nTracked metrics:")
	for _, metric := range stats.TrackedMetrics() {
		fmt.Fprintf(out, "  %-16s %s\n", metric, stats.MetricLabel(metric))
	}
	fmt.Fprintln(out)
	return nil
}

func runJournalDescribe(cmd *cobra.Command, args []string) error {
	registry, err := loadRegistry(journalDescribeOpts)
	if err != nil {
		return err
	}

	template, err := registry.Template(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Template: %s\n", template.ID)
	fmt.Fprintf(out, "Name: %s\n\n", template.Name)

	fmt.Fprintln(out, "Exercises:")
	for _, exercise := range template.Exercises {
		fmt.Fprintf(out, "  %s\n", exercise.Name)
		fmt.Fprintf(out, "    Sets x Reps: %dx%d\n", exercise.Sets, exercise.Reps)
		if exercise.RestSeconds > 0 {
			fmt.Fprintf(out, "    Rest: %ds\n", exercise.RestSeconds)
		}
		fmt.Fprintf(out, "    Muscles: %v\n", exercise.Muscles)
	}

	load := fatigue.TemplateLoad(template)
	groups := make([]fatigue.MuscleGroup, 0, len(load))
	for group := range load {
		groups = append(groups, group)
	}
	sort.Slice(groups, func(i, j int) bool {
		if load[groups[i]] != load[groups[j]] {
			return load[groups[i]] > load[groups[j]]
		}
		return groups[i] < groups[j]
	})

	fmt.Fprintln(out, "\nPer-session muscle load:")
	for _, group := range groups {
		fmt.Fprintf(out, "  %-16s %.0f\n", group, load[group])
	}

	fmt.Fprintln(out)
	return nil
}

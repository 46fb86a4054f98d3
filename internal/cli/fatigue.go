package cli

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/vitalslab/vitals-cli/internal/fatigue"
	"github.com/vitalslab/vitals-cli/internal/plugin"
)

var (
	fatigueJournal  JournalOptions
	fatigueAsOf     string
	fatigueHalfLife float64
	fatigueWellness bool
	fatiguePlugin   string
	fatigueOpacity  bool
)

var fatigueCmd = &cobra.Command{
	Use:   "fatigue",
	Short: "Compute muscle, skeletal, and organ fatigue from workout logs",
	Long: `Replays the workout log history through a recency-weighted load model
and prints 0-100 fatigue scores per muscle group, then propagates the
scores to skeletal and organ regions.

With --wellness, daily habit entries (alcohol, caffeine, poor sleep,
symptoms) add a decayed organ overlay merged by elementwise maximum.

A custom recovery curve can be supplied as a WASM plugin exporting
decay_new/decay_weight/decay_free.

Examples:
  vitals fatigue --sample
  vitals fatigue --wellness --as-of 2026-08-24
  vitals fatigue --half-life 5
  vitals fatigue --recovery-plugin ./curves/linear.wasm`,
	RunE: runFatigue,
}

func init() {
	registerJournalFlags(&fatigueJournal, fatigueCmd.Flags())
	fatigueCmd.Flags().StringVar(&fatigueAsOf, "as-of", "", "Reference date YYYY-MM-DD (defaults to now)")
	fatigueCmd.Flags().Float64Var(&fatigueHalfLife, "half-life", 0, "Recovery half-life in days (default 7)")
	fatigueCmd.Flags().BoolVar(&fatigueWellness, "wellness", false, "Merge the wellness organ overlay")
	fatigueCmd.Flags().StringVar(&fatiguePlugin, "recovery-plugin", "", "WASM recovery-curve plugin path")
	fatigueCmd.Flags().BoolVar(&fatigueOpacity, "opacity", false, "Show dashboard opacity per score")
}

func runFatigue(cmd *cobra.Command, args []string) error {
	registry, err := loadRegistry(fatigueJournal)
	if err != nil {
		return err
	}

	now, err := parseAsOf(fatigueAsOf)
	if err != nil {
		return fmt.Errorf("invalid --as-of date: %w", err)
	}

	cfg := fatigue.Config{Now: now, HalfLifeDays: fatigueHalfLife}

	if fatiguePlugin != "" {
		halfLife := fatigueHalfLife
		if halfLife <= 0 {
			halfLife = fatigue.DefaultHalfLifeDays
		}
		ctx := context.Background()
		engine, err := plugin.NewEngine(ctx, fatiguePlugin, halfLife*24)
		if err != nil {
			return fmt.Errorf("failed to load recovery plugin: %w", err)
		}
		defer engine.Close(ctx)
		cfg.Weight = engine.WeightFunc(ctx)
		fmt.Fprintf(cmd.OutOrStdout(), "🧩 Recovery plugin loaded: %s\n\n", fatiguePlugin)
	}

	muscles := fatigue.ComputeMuscleFatigue(registry.FatiguePayload(), cfg)
	skeletal := fatigue.SkeletalImpact(muscles)
	organs := fatigue.OrganImpact(muscles)

	var notes []string
	if fatigueWellness {
		ref := now
		if ref.IsZero() {
			ref = time.Now()
		}
		wellness, wellnessNotes := fatigue.WellnessOrganImpact(registry.Entries(), ref)
		organs = fatigue.MergeOrganImpact(organs, wellness)
		notes = wellnessNotes
	}

	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "💪 Muscle Fatigue (%d workout(s) on record)\n\n", len(registry.Workouts()))
	printScoreSection(cmd, muscleScores(muscles))

	fmt.Fprintf(out, "\n🦴 Skeletal Load\n\n")
	printScoreSection(cmd, skeletalScores(skeletal))

	fmt.Fprintf(out, "\n🫀 Organ Impact\n\n")
	printScoreSection(cmd, organScores(organs))

	if len(notes) > 0 {
		fmt.Fprintf(out, "\n📝 Wellness Notes\n\n")
		for _, note := range notes {
			fmt.Fprintf(out, "  - %s\n", note)
		}
	}
	fmt.Fprintln(out)
	return nil
}

func printScoreSection(cmd *cobra.Command, scores map[string]float64) {
	out := cmd.OutOrStdout()

	names := make([]string, 0, len(scores))
	for name := range scores {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if scores[names[i]] != scores[names[j]] {
			return scores[names[i]] > scores[names[j]]
		}
		return names[i] < names[j]
	})

	for _, name := range names {
		score := scores[name]
		if fatigueOpacity {
			fmt.Fprintf(out, "  %-16s %s %6.1f  opacity %.2f\n", name, renderBar(score, 24), score, fatigue.GradeOpacity(score))
		} else {
			fmt.Fprintf(out, "  %-16s %s %6.1f\n", name, renderBar(score, 24), score)
		}
	}
}

package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vitalslab/vitals-cli/internal/journal"
)

var (
	demoOut  string
	demoDays int
	demoSeed int64
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Generate a synthetic demo journal",
	Long: `Writes a seeded synthetic journal to disk: daily metric entries with
built-in habit couplings, study hours, and a rotating workout split.
The same seed always produces the same journal.

Examples:
  vitals demo
  vitals demo --out ./journal --days 90 --seed 42`,
	RunE: runDemo,
}

func init() {
	demoCmd.Flags().StringVar(&demoOut, "out", "journal", "Output directory")
	demoCmd.Flags().IntVar(&demoDays, "days", 60, "Number of days to generate")
	demoCmd.Flags().Int64Var(&demoSeed, "seed", time.Now().UnixNano(), "Random seed for deterministic output")
}

func runDemo(cmd *cobra.Command, args []string) error {
	if err := os.MkdirAll(demoOut, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	files := journal.GenerateDemo(journal.DemoConfig{
		Seed: demoSeed,
		Days: demoDays,
	})

	for i := range files {
		data, err := yaml.Marshal(&files[i])
		if err != nil {
			return fmt.Errorf("failed to marshal journal file: %w", err)
		}

		path := filepath.Join(demoOut, journal.FileName(&files[i]))
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✅ Wrote %s\n", path)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\nGenerated %d day(s) with seed %d\n", demoDays, demoSeed)
	fmt.Fprintf(cmd.OutOrStdout(), "Try: vitals report --journal %s\n", demoOut)
	return nil
}

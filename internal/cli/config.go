package cli

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/vitalslab/vitals-cli/internal/journal"
)

// JournalOptions are the shared data-source flags for commands that read
// a journal.
type JournalOptions struct {
	Dir    string
	Sample bool
}

func registerJournalFlags(opts *JournalOptions, flags *pflag.FlagSet) {
	flags.StringVar(&opts.Dir, "journal", "", "Journal directory (defaults to ./journal)")
	flags.BoolVar(&opts.Sample, "sample", false, "Use the built-in sample journal")
}

// loadRegistry resolves the journal source in flag order: explicit
// sample, explicit directory, then the default directory.
func loadRegistry(opts JournalOptions) (*journal.Registry, error) {
	if opts.Sample {
		return journal.LoadSample()
	}

	dir := opts.Dir
	if dir == "" {
		dir = getJournalDir()
	}

	registry := journal.NewRegistry()
	if err := registry.LoadFromDir(dir); err != nil {
		return nil, fmt.Errorf("failed to load journal from %s (try --sample or 'vitals demo'): %w", dir, err)
	}
	return registry, nil
}

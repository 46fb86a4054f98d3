package journal

import "embed"

//go:embed samples/*.yaml
var sampleFS embed.FS

// LoadSample returns a registry backed by the embedded sample journal,
// useful for trying the CLI before any real data exists.
func LoadSample() (*Registry, error) {
	registry := NewRegistry()
	if err := registry.LoadFromEmbedded(sampleFS, "samples"); err != nil {
		return nil, err
	}
	return registry, nil
}

package journal

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vitalslab/vitals-cli/internal/fatigue"
	"github.com/vitalslab/vitals-cli/internal/models"
	"github.com/vitalslab/vitals-cli/internal/stats"
)

// Registry holds all loaded journal data
type Registry struct {
	entries    []models.DailyEntry
	studyHours map[string]float64
	templates  map[string]models.WorkoutTemplate
	workouts   []models.WorkoutLogEntry
	sources    []string
}

// NewRegistry creates an empty journal registry
func NewRegistry() *Registry {
	return &Registry{
		studyHours: make(map[string]float64),
		templates:  make(map[string]models.WorkoutTemplate),
	}
}

// AddFile merges one journal file into the registry
func (r *Registry) AddFile(file *File) error {
	if err := file.Validate(); err != nil {
		return err
	}

	switch file.Kind {
	case KindDaily:
		r.entries = append(r.entries, file.Entries...)
		for date, hours := range file.StudyHours {
			r.studyHours[date] = hours
		}
	case KindTemplates:
		for _, template := range file.Templates {
			r.templates[template.ID] = template
		}
	case KindWorkouts:
		r.workouts = append(r.workouts, file.Workouts...)
	}
	return nil
}

// LoadFromFile loads a journal file from a YAML file on disk
func (r *Registry) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read journal file: %w", err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse journal YAML: %w", err)
	}

	if err := r.AddFile(&file); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	r.sources = append(r.sources, path)
	return nil
}

// LoadFromDir loads all journal files from a directory
func (r *Registry) LoadFromDir(dir string) error {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read journal directory: %w", err)
	}

	for _, dirEntry := range dirEntries {
		if dirEntry.IsDir() {
			continue
		}
		if !strings.HasSuffix(dirEntry.Name(), ".yaml") && !strings.HasSuffix(dirEntry.Name(), ".yml") {
			continue
		}

		path := filepath.Join(dir, dirEntry.Name())
		if err := r.LoadFromFile(path); err != nil {
			return fmt.Errorf("failed to load journal from %s: %w", path, err)
		}
	}

	return nil
}

// LoadFromEmbedded loads journal files from an embedded filesystem
func (r *Registry) LoadFromEmbedded(fs embed.FS, dir string) error {
	dirEntries, err := fs.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read embedded journal: %w", err)
	}

	for _, dirEntry := range dirEntries {
		if dirEntry.IsDir() {
			continue
		}
		if !strings.HasSuffix(dirEntry.Name(), ".yaml") && !strings.HasSuffix(dirEntry.Name(), ".yml") {
			continue
		}

		path := filepath.Join(dir, dirEntry.Name())
		data, err := fs.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read embedded file %s: %w", path, err)
		}

		var file File
		if err := yaml.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("failed to parse journal YAML from %s: %w", path, err)
		}
		if err := r.AddFile(&file); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		r.sources = append(r.sources, "embedded:"+path)
	}

	return nil
}

// Merge folds a received journal export into the registry
func (r *Registry) Merge(export *models.JournalExport) {
	r.entries = append(r.entries, export.Entries...)
	for date, hours := range export.StudyHours {
		r.studyHours[date] = hours
	}
	for _, template := range export.Templates {
		r.templates[template.ID] = template
	}
	r.workouts = append(r.workouts, export.Workouts...)
	r.sources = append(r.sources, "export:"+export.ExportID)
}

// DailySamples aggregates the loaded daily entries into per-date samples
func (r *Registry) DailySamples() []models.DailyMetricSample {
	return stats.BuildDailySamples(r.entries, r.studyHours)
}

// FatiguePayload packages the loaded workout history for the fatigue model
func (r *Registry) FatiguePayload() fatigue.Payload {
	return fatigue.Payload{
		Templates: r.Templates(),
		Logs:      r.Workouts(),
	}
}

// Entries returns the raw daily entries in load order
func (r *Registry) Entries() []models.DailyEntry {
	entries := make([]models.DailyEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Templates returns all workout templates sorted by id
func (r *Registry) Templates() []models.WorkoutTemplate {
	templates := make([]models.WorkoutTemplate, 0, len(r.templates))
	for _, template := range r.templates {
		templates = append(templates, template)
	}
	sort.Slice(templates, func(i, j int) bool {
		return templates[i].ID < templates[j].ID
	})
	return templates
}

// Template retrieves a workout template by id
func (r *Registry) Template(id string) (models.WorkoutTemplate, error) {
	template, ok := r.templates[id]
	if !ok {
		return models.WorkoutTemplate{}, fmt.Errorf("template '%s' not found", id)
	}
	return template, nil
}

// Workouts returns all workout logs sorted by date
func (r *Registry) Workouts() []models.WorkoutLogEntry {
	workouts := make([]models.WorkoutLogEntry, len(r.workouts))
	copy(workouts, r.workouts)
	sort.Slice(workouts, func(i, j int) bool {
		return workouts[i].Date < workouts[j].Date
	})
	return workouts
}

// Sources lists where the loaded data came from
func (r *Registry) Sources() []string {
	sources := make([]string, len(r.sources))
	copy(sources, r.sources)
	return sources
}

// Stats summarizes the registry contents
type Stats struct {
	EntryCount    int
	TrackedDays   int
	TemplateCount int
	WorkoutCount  int
}

// Summary returns counts over the loaded journal
func (r *Registry) Summary() Stats {
	days := make(map[string]bool)
	for _, entry := range r.entries {
		days[entry.Date] = true
	}
	for date := range r.studyHours {
		days[date] = true
	}
	return Stats{
		EntryCount:    len(r.entries),
		TrackedDays:   len(days),
		TemplateCount: len(r.templates),
		WorkoutCount:  len(r.workouts),
	}
}

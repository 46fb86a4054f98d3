package journal

import (
	"fmt"

	"github.com/vitalslab/vitals-cli/internal/models"
)

// File kinds a journal directory may contain
const (
	KindDaily     = "daily"
	KindTemplates = "templates"
	KindWorkouts  = "workouts"
)

// File is one YAML journal file. Kind selects which of the payload
// sections is meaningful; the others stay empty.
type File struct {
	Kind       string                   `yaml:"kind"`
	Entries    []models.DailyEntry      `yaml:"entries,omitempty"`
	StudyHours map[string]float64       `yaml:"study_hours,omitempty"`
	Templates  []models.WorkoutTemplate `yaml:"templates,omitempty"`
	Workouts   []models.WorkoutLogEntry `yaml:"workouts,omitempty"`
}

// Validate checks the file kind and the identifiers the registry keys on.
// Individual entry dates are left to the consumers, which skip malformed
// ones rather than reject the whole file.
func (f *File) Validate() error {
	switch f.Kind {
	case KindDaily, KindTemplates, KindWorkouts:
	default:
		return fmt.Errorf("unknown journal file kind %q", f.Kind)
	}

	for _, template := range f.Templates {
		if template.ID == "" {
			return fmt.Errorf("template %q has no id", template.Name)
		}
	}
	for _, workout := range f.Workouts {
		if workout.TemplateID == "" {
			return fmt.Errorf("workout log %q references no template", workout.ID)
		}
	}
	return nil
}

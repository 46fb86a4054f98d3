package models

import "time"

// DailyEntry is one raw journal log entry. Several entries may exist for
// the same date; each records a subset of the tracked metrics.
type DailyEntry struct {
	Date    string             `json:"date" yaml:"date"`
	Metrics map[string]float64 `json:"metrics" yaml:"metrics"`
}

// DailyMetricSample is one calendar day's aggregated values. A metric
// absent from Values was not recorded that day (undefined, not zero).
type DailyMetricSample struct {
	Date   string             `json:"date"`
	Values map[string]float64 `json:"values"`
}

// Exercise is a single exercise within a workout template
type Exercise struct {
	Name        string   `json:"name" yaml:"name"`
	Muscles     []string `json:"muscles" yaml:"muscles"`
	Sets        int      `json:"sets" yaml:"sets"`
	Reps        int      `json:"reps" yaml:"reps"`
	RestSeconds int      `json:"rest_seconds" yaml:"rest_seconds"`
}

// WorkoutTemplate is an ordered list of exercises
type WorkoutTemplate struct {
	ID        string     `json:"id" yaml:"id"`
	Name      string     `json:"name" yaml:"name"`
	Exercises []Exercise `json:"exercises" yaml:"exercises"`
}

// WorkoutLogEntry records a template performed on a given date.
// Entries referencing a deleted template are skipped by consumers.
type WorkoutLogEntry struct {
	ID         string `json:"id" yaml:"id"`
	TemplateID string `json:"template" yaml:"template"`
	Date       string `json:"date" yaml:"date"`
}

// PairCorrelationResult holds the correlation statistics for an ordered
// pair of metric keys. PValue and the CI bounds are nil when the matched
// sample is too small (n <= 3) to support them.
type PairCorrelationResult struct {
	MetricX     string   `json:"metric_x"`
	MetricY     string   `json:"metric_y"`
	SampleSize  int      `json:"sample_size"`
	Correlation float64  `json:"correlation"`
	PValue      *float64 `json:"p_value,omitempty"`
	CILower     *float64 `json:"ci_lower,omitempty"`
	CIUpper     *float64 `json:"ci_upper,omitempty"`
	AverageX    float64  `json:"average_x"`
	AverageY    float64  `json:"average_y"`
}

// ValidDate reports whether s is a fixed-width YYYY-MM-DD date string.
// The fixed width is what makes lexicographic comparison chronological.
func ValidDate(s string) bool {
	if len(s) != 10 {
		return false
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

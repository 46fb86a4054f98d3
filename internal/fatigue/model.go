package fatigue

import (
	"math"
	"time"

	"github.com/vitalslab/vitals-cli/internal/models"
)

// DefaultHalfLifeDays is the recovery half-life for muscle load. A
// session contributes half its load after a week and effectively
// nothing after a month.
const DefaultHalfLifeDays = 7.0

// WeightFunc maps hours since a session to a recency weight in [0, 1].
// More recent sessions must weigh more; sufficiently old ones must decay
// toward zero.
type WeightFunc func(ageHours float64) float64

// Payload is the full workout history the model replays
type Payload struct {
	Templates []models.WorkoutTemplate
	Logs      []models.WorkoutLogEntry
}

// Config tunes the fatigue computation
type Config struct {
	// Now is the reference time for decay; zero means time.Now()
	Now time.Time
	// HalfLifeDays overrides DefaultHalfLifeDays when positive
	HalfLifeDays float64
	// Weight replaces the built-in exponential decay when set
	Weight WeightFunc
}

// ExponentialDecay returns the standard half-life weighting
func ExponentialDecay(halfLifeHours float64) WeightFunc {
	return func(ageHours float64) float64 {
		if ageHours < 0 {
			ageHours = 0
		}
		return math.Exp(-math.Ln2 * ageHours / halfLifeHours)
	}
}

// TemplateLoad sums per-exercise load into a raw per-muscle load vector.
// Each exercise contributes max(1, sets*reps) to every muscle it targets;
// unknown muscle tags are ignored.
func TemplateLoad(template models.WorkoutTemplate) map[MuscleGroup]float64 {
	load := make(map[MuscleGroup]float64)
	for _, exercise := range template.Exercises {
		volume := float64(exercise.Sets * exercise.Reps)
		if volume < 1 {
			volume = 1
		}
		for _, tag := range exercise.Muscles {
			group, ok := ParseMuscleGroup(tag)
			if !ok {
				continue
			}
			load[group] += volume
		}
	}
	return load
}

// ComputeMuscleFatigue replays the full log history through the recency
// weighting and returns a 0-100 normalized score per muscle group. Logs
// referencing a missing template and logs with malformed dates are
// skipped. An empty history yields all-zero scores.
func ComputeMuscleFatigue(payload Payload, cfg Config) map[MuscleGroup]float64 {
	now := cfg.Now
	if now.IsZero() {
		now = time.Now()
	}

	weight := cfg.Weight
	if weight == nil {
		halfLife := cfg.HalfLifeDays
		if halfLife <= 0 {
			halfLife = DefaultHalfLifeDays
		}
		weight = ExponentialDecay(halfLife * 24)
	}

	templates := make(map[string]models.WorkoutTemplate, len(payload.Templates))
	for _, template := range payload.Templates {
		templates[template.ID] = template
	}

	raw := make(map[MuscleGroup]float64)
	for _, logEntry := range payload.Logs {
		template, ok := templates[logEntry.TemplateID]
		if !ok {
			continue
		}
		performedAt, err := time.Parse("2006-01-02", logEntry.Date)
		if err != nil {
			continue
		}

		w := weight(now.Sub(performedAt).Hours())
		if math.IsNaN(w) || math.IsInf(w, 0) || w <= 0 {
			continue
		}
		if w > 1 {
			w = 1
		}

		for group, load := range TemplateLoad(template) {
			raw[group] += load * w
		}
	}

	scores := make(map[MuscleGroup]float64, len(muscleGroups))
	for _, group := range muscleGroups {
		scores[group] = raw[group]
	}
	return normalizeMuscles(scores)
}

// normalizeMuscles rescales so the hardest-hit muscle maps to 100.
// All-zero input stays all-zero.
func normalizeMuscles(raw map[MuscleGroup]float64) map[MuscleGroup]float64 {
	var max float64
	for _, v := range raw {
		if v > max {
			max = v
		}
	}
	if max <= 0 {
		return raw
	}
	for k, v := range raw {
		raw[k] = v / max * 100
	}
	return raw
}

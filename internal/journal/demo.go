package journal

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vitalslab/vitals-cli/internal/models"
)

// DemoConfig controls demo journal generation
type DemoConfig struct {
	Seed    int64
	Days    int
	EndDate time.Time // zero means today
}

// GenerateDemo produces a seeded synthetic journal: daily metric entries
// with built-in couplings (so the correlation engine has something to
// find), study hours, and a rotating workout split. The same seed always
// yields the same journal.
func GenerateDemo(cfg DemoConfig) []File {
	rng := rand.New(rand.NewSource(cfg.Seed))

	end := cfg.EndDate
	if end.IsZero() {
		end = time.Now()
	}
	days := cfg.Days
	if days <= 0 {
		days = 60
	}

	daily := File{Kind: KindDaily, StudyHours: make(map[string]float64)}
	templates := File{Kind: KindTemplates, Templates: demoTemplates()}
	workouts := File{Kind: KindWorkouts}

	split := 0
	for i := days - 1; i >= 0; i-- {
		day := end.AddDate(0, 0, -i)
		date := day.Format("2006-01-02")
		weekend := day.Weekday() == time.Saturday || day.Weekday() == time.Sunday

		caffeine := clampRange(150+rng.NormFloat64()*60, 0, 500)
		alcohol := 0.0
		if weekend && rng.Float64() < 0.5 {
			alcohol = clampRange(2+rng.NormFloat64()*1.5, 0, 8)
		}

		sleep := 3.5 + rng.NormFloat64()*0.6
		// Heavier caffeine and alcohol days sleep worse
		sleep -= (caffeine - 150) / 250
		sleep -= alcohol * 0.25
		sleep = clampRange(sleep, 1, 5)

		study := clampRange(3+rng.NormFloat64()*1.8, 0, 9)
		if weekend {
			study = clampRange(study-1.5, 0, 9)
		}

		mood := clampRange(2.5+sleep*0.3+rng.NormFloat64()*0.5, 1, 5)
		productivity := clampRange(1+study*0.4+rng.NormFloat64()*0.6, 1, 5)
		motivation := clampRange(mood*0.7+rng.NormFloat64()*0.7, 1, 5)

		metrics := map[string]float64{
			"sleep":        round1(sleep),
			"caffeine":     float64(int(caffeine)),
			"mood":         round1(mood),
			"productivity": round1(productivity),
			"motivation":   round1(motivation),
		}
		if alcohol > 0 {
			metrics["alcohol"] = round1(alcohol)
		}
		if rng.Float64() < 0.12 {
			metrics["headache"] = float64(1 + rng.Intn(4))
		}
		if rng.Float64() < 0.08 {
			metrics["coughing"] = float64(1 + rng.Intn(3))
		}
		if sleep < 2.5 || rng.Float64() < 0.15 {
			metrics["fatigue"] = round1(clampRange(6-sleep+rng.NormFloat64()*0.5, 1, 5))
		}

		daily.Entries = append(daily.Entries, models.DailyEntry{Date: date, Metrics: metrics})
		daily.StudyHours[date] = round1(study)

		// Train roughly every other day, rotating the split
		if i%2 == 0 {
			template := templates.Templates[split%len(templates.Templates)]
			split++
			workouts.Workouts = append(workouts.Workouts, models.WorkoutLogEntry{
				ID:         fmt.Sprintf("demo-%03d", split),
				TemplateID: template.ID,
				Date:       date,
			})
		}
	}

	return []File{daily, templates, workouts}
}

func demoTemplates() []models.WorkoutTemplate {
	return []models.WorkoutTemplate{
		{
			ID:   "push-day",
			Name: "Push Day",
			Exercises: []models.Exercise{
				{Name: "Bench Press", Muscles: []string{"chest", "triceps", "shoulders"}, Sets: 4, Reps: 8, RestSeconds: 150},
				{Name: "Overhead Press", Muscles: []string{"shoulders", "triceps"}, Sets: 3, Reps: 10, RestSeconds: 120},
				{Name: "Cable Fly", Muscles: []string{"chest"}, Sets: 3, Reps: 12, RestSeconds: 90},
			},
		},
		{
			ID:   "pull-day",
			Name: "Pull Day",
			Exercises: []models.Exercise{
				{Name: "Deadlift", Muscles: []string{"lower_back", "glutes", "hamstrings"}, Sets: 3, Reps: 5, RestSeconds: 180},
				{Name: "Barbell Row", Muscles: []string{"upper_back", "biceps"}, Sets: 4, Reps: 8, RestSeconds: 120},
				{Name: "Curl", Muscles: []string{"biceps"}, Sets: 3, Reps: 12, RestSeconds: 60},
			},
		},
		{
			ID:   "leg-day",
			Name: "Leg Day",
			Exercises: []models.Exercise{
				{Name: "Squat", Muscles: []string{"quads", "glutes", "core"}, Sets: 5, Reps: 5, RestSeconds: 180},
				{Name: "Romanian Deadlift", Muscles: []string{"hamstrings", "glutes", "lower_back"}, Sets: 3, Reps: 8, RestSeconds: 150},
				{Name: "Calf Raise", Muscles: []string{"calves"}, Sets: 4, Reps: 15, RestSeconds: 60},
			},
		},
	}
}

func clampRange(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

func round1(value float64) float64 {
	return float64(int(value*10+0.5)) / 10
}

// FileName suggests the on-disk name for a generated journal file
func FileName(file *File) string {
	switch file.Kind {
	case KindDaily:
		return "daily.yaml"
	case KindTemplates:
		return "templates.yaml"
	case KindWorkouts:
		return "workouts.yaml"
	}
	return fmt.Sprintf("journal-%s.yaml", file.Kind)
}

package fatigue

import (
	"math"
	"testing"
	"time"

	"github.com/vitalslab/vitals-cli/internal/models"
)

var testNow = time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)

func pushTemplate() models.WorkoutTemplate {
	return models.WorkoutTemplate{
		ID:   "push-day",
		Name: "Push Day",
		Exercises: []models.Exercise{
			{Name: "Bench Press", Muscles: []string{"chest", "triceps", "shoulders"}, Sets: 4, Reps: 8, RestSeconds: 120},
			{Name: "Overhead Press", Muscles: []string{"shoulders", "triceps"}, Sets: 3, Reps: 10, RestSeconds: 90},
		},
	}
}

func legTemplate() models.WorkoutTemplate {
	return models.WorkoutTemplate{
		ID:   "leg-day",
		Name: "Leg Day",
		Exercises: []models.Exercise{
			{Name: "Squat", Muscles: []string{"quads", "glutes", "lower_back"}, Sets: 5, Reps: 5, RestSeconds: 180},
		},
	}
}

func TestTemplateLoad(t *testing.T) {
	load := TemplateLoad(pushTemplate())

	// chest: 4*8 = 32; shoulders: 32 + 30 = 62; triceps: 32 + 30 = 62
	if load[Chest] != 32 {
		t.Errorf("expected chest load 32, got %v", load[Chest])
	}
	if load[Shoulders] != 62 {
		t.Errorf("expected shoulders load 62, got %v", load[Shoulders])
	}
	if load[Triceps] != 62 {
		t.Errorf("expected triceps load 62, got %v", load[Triceps])
	}
	if _, ok := load[Quads]; ok {
		t.Error("quads should not appear in a push template")
	}
}

func TestTemplateLoad_MinimumOne(t *testing.T) {
	template := models.WorkoutTemplate{
		ID: "stretch",
		Exercises: []models.Exercise{
			{Name: "Hold", Muscles: []string{"core"}, Sets: 0, Reps: 0},
		},
	}

	load := TemplateLoad(template)
	if load[Core] != 1 {
		t.Errorf("expected minimum load 1, got %v", load[Core])
	}
}

func TestTemplateLoad_UnknownMuscleIgnored(t *testing.T) {
	template := models.WorkoutTemplate{
		ID: "odd",
		Exercises: []models.Exercise{
			{Name: "Neck Curl", Muscles: []string{"neck", "chest"}, Sets: 2, Reps: 10},
		},
	}

	load := TemplateLoad(template)
	if len(load) != 1 {
		t.Errorf("expected only chest to be loaded, got %v", load)
	}
	if load[Chest] != 20 {
		t.Errorf("expected chest load 20, got %v", load[Chest])
	}
}

func TestComputeMuscleFatigue_EmptyHistory(t *testing.T) {
	scores := ComputeMuscleFatigue(Payload{}, Config{Now: testNow})

	if len(scores) != len(MuscleGroups()) {
		t.Fatalf("expected a score for every muscle group, got %d", len(scores))
	}
	for group, score := range scores {
		if score != 0 {
			t.Errorf("expected zero score for %s, got %v", group, score)
		}
	}
}

func TestComputeMuscleFatigue_NormalizationInvariant(t *testing.T) {
	payload := Payload{
		Templates: []models.WorkoutTemplate{pushTemplate(), legTemplate()},
		Logs: []models.WorkoutLogEntry{
			{ID: "l1", TemplateID: "push-day", Date: "2026-08-22"},
			{ID: "l2", TemplateID: "leg-day", Date: "2026-08-23"},
		},
	}

	scores := ComputeMuscleFatigue(payload, Config{Now: testNow})

	var max float64
	for _, score := range scores {
		if score < 0 || score > 100 {
			t.Errorf("score out of range: %v", score)
		}
		if score > max {
			max = score
		}
	}
	if math.Abs(max-100) > 1e-9 {
		t.Errorf("expected max score exactly 100, got %v", max)
	}
}

func TestComputeMuscleFatigue_RecencyDominates(t *testing.T) {
	// Same volume logged recently and 30+ days ago, on disjoint muscle
	// groups; the recent session must contribute far more.
	mixed := Payload{
		Templates: []models.WorkoutTemplate{pushTemplate(), legTemplate()},
		Logs: []models.WorkoutLogEntry{
			{ID: "r", TemplateID: "push-day", Date: "2026-08-23"},
			{ID: "o", TemplateID: "leg-day", Date: "2026-07-20"},
		},
	}

	scores := ComputeMuscleFatigue(mixed, Config{Now: testNow})
	if scores[Chest] <= scores[Quads] {
		t.Errorf("recent push (chest=%v) should dominate old legs (quads=%v)",
			scores[Chest], scores[Quads])
	}

	// And the raw decay property itself
	decay := ExponentialDecay(DefaultHalfLifeDays * 24)
	if decay(24) <= decay(24*35) {
		t.Error("decay weight must fall with age")
	}
	if decay(24*35) > 0.05 {
		t.Errorf("35-day-old session should contribute near zero, got weight %v", decay(24*35))
	}
}

func TestComputeMuscleFatigue_OrphanedLogSkipped(t *testing.T) {
	payload := Payload{
		Templates: []models.WorkoutTemplate{pushTemplate()},
		Logs: []models.WorkoutLogEntry{
			{ID: "l1", TemplateID: "deleted-template", Date: "2026-08-23"},
		},
	}

	scores := ComputeMuscleFatigue(payload, Config{Now: testNow})
	for group, score := range scores {
		if score != 0 {
			t.Errorf("orphaned log must not contribute: %s=%v", group, score)
		}
	}
}

func TestComputeMuscleFatigue_CustomWeightFunc(t *testing.T) {
	payload := Payload{
		Templates: []models.WorkoutTemplate{pushTemplate()},
		Logs: []models.WorkoutLogEntry{
			{ID: "l1", TemplateID: "push-day", Date: "2026-08-01"},
		},
	}

	// A weight function that zeroes everything means an all-zero result
	scores := ComputeMuscleFatigue(payload, Config{
		Now:    testNow,
		Weight: func(ageHours float64) float64 { return 0 },
	})
	for group, score := range scores {
		if score != 0 {
			t.Errorf("expected zero with zero weighting, got %s=%v", group, score)
		}
	}
}

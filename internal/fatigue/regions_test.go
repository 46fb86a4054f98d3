package fatigue

import (
	"math"
	"testing"

	"github.com/vitalslab/vitals-cli/internal/models"
)

func TestSkeletalImpact_Normalized(t *testing.T) {
	muscles := map[MuscleGroup]float64{
		Chest:     100,
		Shoulders: 60,
	}

	impact := SkeletalImpact(muscles)
	if len(impact) != len(SkeletalRegions()) {
		t.Fatalf("expected a score for every skeletal region, got %d", len(impact))
	}

	var max float64
	for region, score := range impact {
		if score < 0 || score > 100 {
			t.Errorf("%s out of range: %v", region, score)
		}
		if score > max {
			max = score
		}
	}
	if math.Abs(max-100) > 1e-9 {
		t.Errorf("expected max region score 100, got %v", max)
	}

	// Chest load lands mostly on the ribcage
	if impact[Ribcage] <= impact[LegBones] {
		t.Errorf("ribcage (%v) should dominate leg bones (%v) for upper-body load",
			impact[Ribcage], impact[LegBones])
	}
}

func TestOrganImpact_LegsDriveHeart(t *testing.T) {
	muscles := map[MuscleGroup]float64{
		Quads:      100,
		Hamstrings: 80,
	}

	impact := OrganImpact(muscles)
	if impact[Heart] != 100 {
		t.Errorf("expected heart to be the max organ at 100, got %v", impact[Heart])
	}
	if impact[Liver] != 0 {
		t.Errorf("leg training should not touch the liver, got %v", impact[Liver])
	}
}

func TestImpact_AllZero(t *testing.T) {
	skeletal := SkeletalImpact(map[MuscleGroup]float64{})
	for region, score := range skeletal {
		if score != 0 {
			t.Errorf("expected zero for %s, got %v", region, score)
		}
	}

	organs := OrganImpact(map[MuscleGroup]float64{Chest: 0})
	for region, score := range organs {
		if score != 0 {
			t.Errorf("expected zero for %s, got %v", region, score)
		}
	}
}

func TestMergeOrganImpact_ElementwiseMax(t *testing.T) {
	workout := map[OrganRegion]float64{Heart: 100, Lungs: 60, Liver: 0}
	wellness := map[OrganRegion]float64{Heart: 30, Liver: 100, Brain: 45}

	merged := MergeOrganImpact(workout, wellness)

	if merged[Heart] != 100 {
		t.Errorf("expected heart 100, got %v", merged[Heart])
	}
	if merged[Liver] != 100 {
		t.Errorf("expected liver 100, got %v", merged[Liver])
	}
	if merged[Lungs] != 60 {
		t.Errorf("expected lungs 60, got %v", merged[Lungs])
	}
	if merged[Brain] != 45 {
		t.Errorf("expected brain 45, got %v", merged[Brain])
	}
}

func TestWellnessOrganImpact_AlcoholHitsLiver(t *testing.T) {
	entries := []models.DailyEntry{
		{Date: "2026-08-23", Metrics: map[string]float64{"alcohol": 5}},
	}

	impact, notes := WellnessOrganImpact(entries, testNow)
	if impact[Liver] != 100 {
		t.Errorf("expected liver as max organ at 100, got %v", impact[Liver])
	}
	if impact[Lungs] != 0 {
		t.Errorf("alcohol should not touch the lungs, got %v", impact[Lungs])
	}
	if len(notes) == 0 {
		t.Error("expected an advisory note for heavy alcohol intake")
	}
}

func TestWellnessOrganImpact_LookbackWindow(t *testing.T) {
	entries := []models.DailyEntry{
		{Date: "2026-08-10", Metrics: map[string]float64{"alcohol": 5}}, // outside 5-day window
	}

	impact, notes := WellnessOrganImpact(entries, testNow)
	for region, score := range impact {
		if score != 0 {
			t.Errorf("entry outside lookback must not score: %s=%v", region, score)
		}
	}
	if len(notes) != 0 {
		t.Errorf("expected no notes, got %v", notes)
	}
}

func TestWellnessOrganImpact_RecencyWeighting(t *testing.T) {
	yesterday := []models.DailyEntry{
		{Date: "2026-08-23", Metrics: map[string]float64{"caffeine": 300}},
	}
	fourDaysAgo := []models.DailyEntry{
		{Date: "2026-08-20", Metrics: map[string]float64{"caffeine": 300}},
	}

	// Both normalize their own max to 100, so compare via a combined run
	// where the recent dose must dominate the raw accumulation.
	combined := []models.DailyEntry{
		{Date: "2026-08-23", Metrics: map[string]float64{"caffeine": 300}},
		{Date: "2026-08-20", Metrics: map[string]float64{"headache": 4}},
	}
	impact, _ := WellnessOrganImpact(combined, testNow)
	if impact[Heart] <= impact[Brain]/2 {
		t.Errorf("recent caffeine (heart=%v) should outweigh old headache (brain=%v)",
			impact[Heart], impact[Brain])
	}

	recent, _ := WellnessOrganImpact(yesterday, testNow)
	old, _ := WellnessOrganImpact(fourDaysAgo, testNow)
	if recent[Heart] != 100 || old[Heart] != 100 {
		t.Error("independently normalized runs should both peak at 100")
	}
}

func TestWellnessOrganImpact_SleepDeficit(t *testing.T) {
	badSleep := []models.DailyEntry{
		{Date: "2026-08-23", Metrics: map[string]float64{"sleep": 1}},
	}
	goodSleep := []models.DailyEntry{
		{Date: "2026-08-23", Metrics: map[string]float64{"sleep": 5}},
	}

	badImpact, badNotes := WellnessOrganImpact(badSleep, testNow)
	if badImpact[Brain] != 100 {
		t.Errorf("poor sleep should load the brain, got %v", badImpact[Brain])
	}
	if len(badNotes) == 0 {
		t.Error("expected a sleep advisory note")
	}

	goodImpact, goodNotes := WellnessOrganImpact(goodSleep, testNow)
	for region, score := range goodImpact {
		if score != 0 {
			t.Errorf("restful sleep must not score: %s=%v", region, score)
		}
	}
	if len(goodNotes) != 0 {
		t.Errorf("expected no notes for restful sleep, got %v", goodNotes)
	}
}

func TestGradeOpacity(t *testing.T) {
	tests := []struct {
		grade    float64
		expected float64
	}{
		{0, 0},
		{-10, 0},
		{100, 0.98},
		{150, 0.98}, // clamped
	}

	for _, test := range tests {
		got := GradeOpacity(test.grade)
		if math.Abs(got-test.expected) > 1e-9 {
			t.Errorf("GradeOpacity(%v): expected %v, got %v", test.grade, test.expected, got)
		}
	}

	// Any positive grade lands in [0.2, 0.98] and grows with the grade
	prev := 0.0
	for grade := 1.0; grade <= 100; grade += 1 {
		opacity := GradeOpacity(grade)
		if opacity < 0.2 || opacity > 0.98 {
			t.Fatalf("opacity out of range at grade %v: %v", grade, opacity)
		}
		if opacity <= prev {
			t.Fatalf("opacity not increasing at grade %v", grade)
		}
		prev = opacity
	}
}

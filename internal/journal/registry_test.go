package journal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vitalslab/vitals-cli/internal/models"
)

func TestRegistry_LoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "daily.yaml")
	content := `kind: daily
entries:
  - date: "2026-08-01"
    metrics: {mood: 4, caffeine: 150}
  - date: "2026-08-02"
    metrics: {mood: 3}
study_hours:
  "2026-08-01": 3.5
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	registry := NewRegistry()
	if err := registry.LoadFromFile(path); err != nil {
		t.Fatalf("failed to load: %v", err)
	}

	entries := registry.Entries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Metrics["mood"] != 4 {
		t.Errorf("expected mood 4, got %v", entries[0].Metrics["mood"])
	}

	samples := registry.DailySamples()
	if len(samples) != 2 {
		t.Fatalf("expected 2 samples, got %d", len(samples))
	}
	if samples[0].Values["studyTime"] != 3.5 {
		t.Errorf("expected studyTime merged, got %v", samples[0].Values)
	}
}

func TestRegistry_LoadFromDir(t *testing.T) {
	dir := t.TempDir()

	files := map[string]string{
		"templates.yaml": `kind: templates
templates:
  - id: push-day
    name: Push Day
    exercises:
      - name: Bench Press
        muscles: [chest]
        sets: 4
        reps: 8
`,
		"workouts.yml": `kind: workouts
workouts:
  - id: w1
    template: push-day
    date: "2026-08-20"
`,
		"notes.txt": "not yaml, must be skipped",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}

	registry := NewRegistry()
	if err := registry.LoadFromDir(dir); err != nil {
		t.Fatalf("failed to load dir: %v", err)
	}

	if len(registry.Templates()) != 1 {
		t.Errorf("expected 1 template, got %d", len(registry.Templates()))
	}
	if len(registry.Workouts()) != 1 {
		t.Errorf("expected 1 workout, got %d", len(registry.Workouts()))
	}

	payload := registry.FatiguePayload()
	if len(payload.Templates) != 1 || len(payload.Logs) != 1 {
		t.Errorf("fatigue payload incomplete: %+v", payload)
	}
}

func TestRegistry_UnknownKind(t *testing.T) {
	registry := NewRegistry()
	err := registry.AddFile(&File{Kind: "grocery-list"})
	if err == nil {
		t.Error("expected error for unknown file kind")
	}
}

func TestRegistry_TemplateWithoutID(t *testing.T) {
	registry := NewRegistry()
	err := registry.AddFile(&File{
		Kind:      KindTemplates,
		Templates: []models.WorkoutTemplate{{Name: "Anonymous"}},
	})
	if err == nil {
		t.Error("expected error for template without id")
	}
}

func TestRegistry_Merge(t *testing.T) {
	registry := NewRegistry()
	export := &models.JournalExport{
		ExportID: "exp-1",
		Entries: []models.DailyEntry{
			{Date: "2026-08-21", Metrics: map[string]float64{"mood": 5}},
		},
		StudyHours: map[string]float64{"2026-08-21": 2},
		Templates: []models.WorkoutTemplate{
			{ID: "push-day", Name: "Push Day"},
		},
		Workouts: []models.WorkoutLogEntry{
			{ID: "w9", TemplateID: "push-day", Date: "2026-08-21"},
		},
	}

	registry.Merge(export)

	summary := registry.Summary()
	if summary.EntryCount != 1 || summary.TemplateCount != 1 || summary.WorkoutCount != 1 {
		t.Errorf("unexpected summary after merge: %+v", summary)
	}
	if summary.TrackedDays != 1 {
		t.Errorf("expected 1 tracked day, got %d", summary.TrackedDays)
	}

	if _, err := registry.Template("push-day"); err != nil {
		t.Errorf("expected merged template to resolve: %v", err)
	}
	if _, err := registry.Template("missing"); err == nil {
		t.Error("expected error for unknown template")
	}
}

func TestRegistry_WorkoutsSortedByDate(t *testing.T) {
	registry := NewRegistry()
	err := registry.AddFile(&File{
		Kind: KindWorkouts,
		Workouts: []models.WorkoutLogEntry{
			{ID: "b", TemplateID: "t", Date: "2026-08-22"},
			{ID: "a", TemplateID: "t", Date: "2026-08-01"},
		},
	})
	if err != nil {
		t.Fatalf("failed to add file: %v", err)
	}

	workouts := registry.Workouts()
	if workouts[0].ID != "a" {
		t.Errorf("expected workouts sorted by date, got %v first", workouts[0].ID)
	}
}

func TestLoadSample(t *testing.T) {
	registry, err := LoadSample()
	if err != nil {
		t.Fatalf("failed to load embedded sample: %v", err)
	}

	summary := registry.Summary()
	if summary.EntryCount == 0 || summary.TemplateCount == 0 || summary.WorkoutCount == 0 {
		t.Errorf("sample journal incomplete: %+v", summary)
	}

	samples := registry.DailySamples()
	if len(samples) < 7 {
		t.Errorf("sample journal should span at least a week, got %d days", len(samples))
	}
}

func TestGenerateDemo_Deterministic(t *testing.T) {
	cfg := DemoConfig{Seed: 42, Days: 30}
	first := GenerateDemo(cfg)
	second := GenerateDemo(cfg)

	if len(first) != 3 {
		t.Fatalf("expected 3 files, got %d", len(first))
	}

	var daily, templates, workouts *File
	for i := range first {
		switch first[i].Kind {
		case KindDaily:
			daily = &first[i]
		case KindTemplates:
			templates = &first[i]
		case KindWorkouts:
			workouts = &first[i]
		}
	}
	if daily == nil || templates == nil || workouts == nil {
		t.Fatal("expected daily, templates and workouts files")
	}
	if len(daily.Entries) != 30 {
		t.Errorf("expected 30 daily entries, got %d", len(daily.Entries))
	}
	if len(workouts.Workouts) == 0 {
		t.Error("expected some workout logs")
	}

	// Metric values must be identical across runs with the same seed
	for i := range first {
		if first[i].Kind != KindDaily {
			continue
		}
		for j := range first[i].Entries {
			a := first[i].Entries[j]
			b := second[i].Entries[j]
			if a.Date != b.Date {
				t.Fatalf("demo not deterministic: %s vs %s", a.Date, b.Date)
			}
			for key, value := range a.Metrics {
				if b.Metrics[key] != value {
					t.Fatalf("demo not deterministic at %s/%s", a.Date, key)
				}
			}
		}
	}

	registry := NewRegistry()
	for i := range first {
		if err := registry.AddFile(&first[i]); err != nil {
			t.Fatalf("generated file rejected: %v", err)
		}
	}
	if len(registry.DailySamples()) != 30 {
		t.Errorf("expected 30 samples from demo journal")
	}
}

package models

import "testing"

func validExport() JournalExport {
	return JournalExport{
		Schema:       "vitals.journal.export.v1",
		ExportID:     "test-123",
		CreatedAtUTC: "2026-08-16T12:00:00Z",
		Range: ExportRange{
			FromDate: "2026-08-01",
			ToDate:   "2026-08-16",
		},
		Device: ExportDevice{
			Platform:   "ios",
			AppVersion: "1.0.0",
		},
		Entries: []DailyEntry{
			{Date: "2026-08-15", Metrics: map[string]float64{"mood": 4}},
		},
	}
}

func TestJournalExport_Validate_Valid(t *testing.T) {
	export := validExport()
	if err := export.Validate(); err != nil {
		t.Errorf("expected valid export, got error: %v", err)
	}
}

func TestJournalExport_Validate_InvalidSchema(t *testing.T) {
	export := validExport()
	export.Schema = "wrong.schema"

	err := export.Validate()
	if err == nil {
		t.Fatal("expected error for invalid schema")
	}

	valErr, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if valErr.Field != "schema" {
		t.Errorf("expected field 'schema', got '%s'", valErr.Field)
	}
}

func TestJournalExport_Validate_MissingExportID(t *testing.T) {
	export := validExport()
	export.ExportID = ""

	err := export.Validate()
	if err == nil {
		t.Fatal("expected error for missing export_id")
	}

	valErr, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if valErr.Field != "export_id" {
		t.Errorf("expected field 'export_id', got '%s'", valErr.Field)
	}
}

func TestJournalExport_Validate_BadTimestamp(t *testing.T) {
	export := validExport()
	export.CreatedAtUTC = "not-a-timestamp"

	if err := export.Validate(); err == nil {
		t.Error("expected error for invalid created_at_utc")
	}
}

func TestJournalExport_Validate_BadRangeDate(t *testing.T) {
	export := validExport()
	export.Range.FromDate = "01/08/2026"

	if err := export.Validate(); err == nil {
		t.Error("expected error for non-ISO range date")
	}
}

func TestJournalExport_Validate_BadEntryDate(t *testing.T) {
	export := validExport()
	export.Entries = append(export.Entries, DailyEntry{Date: "2026-8-1"})

	if err := export.Validate(); err == nil {
		t.Error("expected error for non-padded entry date")
	}
}

func TestNewExportReceipt(t *testing.T) {
	export := validExport()
	export.Workouts = []WorkoutLogEntry{
		{ID: "w1", TemplateID: "push", Date: "2026-08-15"},
	}

	receipt := NewExportReceipt(&export, true)

	if receipt.ExportID != "test-123" {
		t.Errorf("expected export_id 'test-123', got '%s'", receipt.ExportID)
	}
	if receipt.EntryCount != 1 {
		t.Errorf("expected 1 entry, got %d", receipt.EntryCount)
	}
	if receipt.WorkoutCount != 1 {
		t.Errorf("expected 1 workout, got %d", receipt.WorkoutCount)
	}
	if !receipt.Duplicate {
		t.Error("expected duplicate flag to be set")
	}
	if receipt.Range != "2026-08-01 to 2026-08-16" {
		t.Errorf("unexpected range: %s", receipt.Range)
	}
}

func TestValidDate(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"2026-08-24", true},
		{"2026-8-24", false},
		{"2026-08-32", false},
		{"20260824", false},
		{"", false},
		{"2026-08-24T00:00:00Z", false},
	}

	for _, test := range tests {
		if got := ValidDate(test.input); got != test.valid {
			t.Errorf("ValidDate(%q): expected %v, got %v", test.input, test.valid, got)
		}
	}
}

package models

import "time"

// ExportSchema is the schema identifier for journal export payloads
const ExportSchema = "vitals.journal.export.v1"

// JournalExport represents the Journal Export Schema v1 payload sent by
// a companion app or another vitals instance.
type JournalExport struct {
	Schema       string             `json:"schema"`
	ExportID     string             `json:"export_id"`
	CreatedAtUTC string             `json:"created_at_utc"`
	Range        ExportRange        `json:"range"`
	Device       ExportDevice       `json:"device"`
	Entries      []DailyEntry       `json:"entries"`
	StudyHours   map[string]float64 `json:"study_hours,omitempty"`
	Templates    []WorkoutTemplate  `json:"templates,omitempty"`
	Workouts     []WorkoutLogEntry  `json:"workouts,omitempty"`
}

// ExportRange represents the date range of the export
type ExportRange struct {
	FromDate string `json:"from_date"`
	ToDate   string `json:"to_date"`
}

// ExportDevice contains device metadata
type ExportDevice struct {
	Platform   string `json:"platform"`
	AppVersion string `json:"app_version"`
}

// Validate checks if the export payload is valid according to schema v1
func (e *JournalExport) Validate() error {
	if e.Schema != ExportSchema {
		return &ValidationError{Field: "schema", Message: "must be '" + ExportSchema + "'"}
	}
	if e.ExportID == "" {
		return &ValidationError{Field: "export_id", Message: "is required"}
	}
	if e.CreatedAtUTC == "" {
		return &ValidationError{Field: "created_at_utc", Message: "is required"}
	}
	if _, err := time.Parse(time.RFC3339, e.CreatedAtUTC); err != nil {
		return &ValidationError{Field: "created_at_utc", Message: "must be valid RFC3339 timestamp"}
	}
	if e.Range.FromDate == "" || e.Range.ToDate == "" {
		return &ValidationError{Field: "range", Message: "from_date and to_date are required"}
	}
	if !ValidDate(e.Range.FromDate) || !ValidDate(e.Range.ToDate) {
		return &ValidationError{Field: "range", Message: "dates must be YYYY-MM-DD"}
	}
	if e.Device.Platform == "" {
		return &ValidationError{Field: "device.platform", Message: "is required"}
	}
	if e.Device.AppVersion == "" {
		return &ValidationError{Field: "device.app_version", Message: "is required"}
	}
	for i := range e.Entries {
		if !ValidDate(e.Entries[i].Date) {
			return &ValidationError{Field: "entries", Message: "entry dates must be YYYY-MM-DD"}
		}
	}
	for i := range e.Workouts {
		if !ValidDate(e.Workouts[i].Date) {
			return &ValidationError{Field: "workouts", Message: "workout dates must be YYYY-MM-DD"}
		}
	}
	return nil
}

// ValidationError represents a schema validation error
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ExportReceipt represents the summary of a received export
type ExportReceipt struct {
	ExportID     string `json:"export_id"`
	ReceivedAt   string `json:"received_at"`
	Range        string `json:"range"`
	EntryCount   int    `json:"entry_count"`
	WorkoutCount int    `json:"workout_count"`
	Platform     string `json:"platform"`
	Duplicate    bool   `json:"duplicate,omitempty"`
}

// NewExportReceipt creates a receipt from a journal export
func NewExportReceipt(export *JournalExport, duplicate bool) ExportReceipt {
	return ExportReceipt{
		ExportID:     export.ExportID,
		ReceivedAt:   time.Now().UTC().Format(time.RFC3339),
		Range:        export.Range.FromDate + " to " + export.Range.ToDate,
		EntryCount:   len(export.Entries),
		WorkoutCount: len(export.Workouts),
		Platform:     export.Device.Platform,
		Duplicate:    duplicate,
	}
}

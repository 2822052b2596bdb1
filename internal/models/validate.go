// ABOUTME: Validation of raw check-in submissions against field domains.
// ABOUTME: Produces a canonical Entry or a ValidationError naming the bad field.
package models

import (
	"fmt"
	"math"
	"time"
)

// ValidationError reports a single out-of-domain field in a submission.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// EntryInput is a raw check-in submission before validation.
// A zero RecordedAt means the caller wants the timestamp assigned at ingestion.
type EntryInput struct {
	SleepHours      float64
	MoodScore       int
	MessagesSent    int
	Steps           int
	ScreenTimeHours float64
	RecordedAt      time.Time
	Notes           string
}

// Validate checks every field against its domain. Boundary values are valid.
// Returns a *ValidationError for the first field that fails, nil otherwise.
func (in EntryInput) Validate() error {
	if math.IsNaN(in.SleepHours) || math.IsInf(in.SleepHours, 0) {
		return &ValidationError{Field: "sleep_hours", Reason: "must be a finite number"}
	}
	if in.SleepHours < 0 || in.SleepHours > 24 {
		return &ValidationError{Field: "sleep_hours", Reason: "must be between 0 and 24"}
	}
	if in.MoodScore < 1 || in.MoodScore > 10 {
		return &ValidationError{Field: "mood_score", Reason: "must be between 1 and 10"}
	}
	if in.MessagesSent < 0 {
		return &ValidationError{Field: "messages_sent", Reason: "must be zero or greater"}
	}
	if in.Steps < 0 {
		return &ValidationError{Field: "steps", Reason: "must be zero or greater"}
	}
	if math.IsNaN(in.ScreenTimeHours) || math.IsInf(in.ScreenTimeHours, 0) {
		return &ValidationError{Field: "screen_time_hours", Reason: "must be a finite number"}
	}
	if in.ScreenTimeHours < 0 {
		return &ValidationError{Field: "screen_time_hours", Reason: "must be zero or greater"}
	}
	return nil
}

// NewEntryFromInput validates a submission and builds the canonical Entry.
// The input's RecordedAt is honored when set; otherwise it stays zero so the
// store can assign it at append time.
func NewEntryFromInput(in EntryInput) (*Entry, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	e := NewEntry(in.SleepHours, in.MoodScore, in.MessagesSent, in.Steps, in.ScreenTimeHours)
	e.RecordedAt = in.RecordedAt
	if in.Notes != "" {
		e.WithNotes(in.Notes)
	}
	return e, nil
}

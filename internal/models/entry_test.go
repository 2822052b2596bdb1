// ABOUTME: Tests for the Entry model and submission validation.
// ABOUTME: Covers field domains, boundary values, and non-finite rejection.
package models

import (
	"math"
	"testing"
	"time"
)

func TestNewEntry(t *testing.T) {
	e := NewEntry(6.5, 7, 25, 5000, 3.0)

	if e.ID.String() == "" {
		t.Error("expected UUID to be set")
	}
	if e.SleepHours != 6.5 {
		t.Errorf("SleepHours = %f, want 6.5", e.SleepHours)
	}
	if e.MoodScore != 7 {
		t.Errorf("MoodScore = %d, want 7", e.MoodScore)
	}
	if e.RecordedAt.IsZero() {
		t.Error("expected RecordedAt to be set")
	}
	if e.Notes != nil {
		t.Error("expected Notes to be nil by default")
	}
}

func TestEntryWithNotes(t *testing.T) {
	e := NewEntry(7, 8, 20, 4000, 2).WithNotes("slept well")
	if e.Notes == nil || *e.Notes != "slept well" {
		t.Errorf("Notes = %v, want 'slept well'", e.Notes)
	}
}

func TestValidateDomains(t *testing.T) {
	valid := EntryInput{SleepHours: 6.5, MoodScore: 7, MessagesSent: 25, Steps: 5000, ScreenTimeHours: 3}

	tests := []struct {
		name      string
		mutate    func(*EntryInput)
		wantField string
	}{
		{"valid baseline", func(in *EntryInput) {}, ""},
		{"sleep lower boundary", func(in *EntryInput) { in.SleepHours = 0 }, ""},
		{"sleep upper boundary", func(in *EntryInput) { in.SleepHours = 24 }, ""},
		{"sleep negative", func(in *EntryInput) { in.SleepHours = -0.5 }, "sleep_hours"},
		{"sleep over 24", func(in *EntryInput) { in.SleepHours = 24.1 }, "sleep_hours"},
		{"sleep NaN", func(in *EntryInput) { in.SleepHours = math.NaN() }, "sleep_hours"},
		{"sleep Inf", func(in *EntryInput) { in.SleepHours = math.Inf(1) }, "sleep_hours"},
		{"mood lower boundary", func(in *EntryInput) { in.MoodScore = 1 }, ""},
		{"mood upper boundary", func(in *EntryInput) { in.MoodScore = 10 }, ""},
		{"mood zero", func(in *EntryInput) { in.MoodScore = 0 }, "mood_score"},
		{"mood over 10", func(in *EntryInput) { in.MoodScore = 11 }, "mood_score"},
		{"messages zero", func(in *EntryInput) { in.MessagesSent = 0 }, ""},
		{"messages negative", func(in *EntryInput) { in.MessagesSent = -1 }, "messages_sent"},
		{"steps zero", func(in *EntryInput) { in.Steps = 0 }, ""},
		{"steps negative", func(in *EntryInput) { in.Steps = -100 }, "steps"},
		{"screen zero", func(in *EntryInput) { in.ScreenTimeHours = 0 }, ""},
		{"screen negative", func(in *EntryInput) { in.ScreenTimeHours = -2 }, "screen_time_hours"},
		{"screen NaN", func(in *EntryInput) { in.ScreenTimeHours = math.NaN() }, "screen_time_hours"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)
			err := in.Validate()

			if tt.wantField == "" {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}

			if err == nil {
				t.Fatalf("Validate() expected error for field %s, got nil", tt.wantField)
			}
			verr, ok := err.(*ValidationError)
			if !ok {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if verr.Field != tt.wantField {
				t.Errorf("Field = %s, want %s", verr.Field, tt.wantField)
			}
		})
	}
}

func TestNewEntryFromInput(t *testing.T) {
	at := time.Date(2026, 3, 1, 8, 30, 0, 0, time.UTC)
	e, err := NewEntryFromInput(EntryInput{
		SleepHours:      5,
		MoodScore:       4,
		MessagesSent:    7,
		Steps:           2000,
		ScreenTimeHours: 4,
		RecordedAt:      at,
		Notes:           "rough night",
	})
	if err != nil {
		t.Fatalf("NewEntryFromInput failed: %v", err)
	}
	if !e.RecordedAt.Equal(at) {
		t.Errorf("RecordedAt = %v, want %v", e.RecordedAt, at)
	}
	if e.Notes == nil || *e.Notes != "rough night" {
		t.Errorf("Notes = %v, want 'rough night'", e.Notes)
	}
}

func TestNewEntryFromInputLeavesTimestampUnset(t *testing.T) {
	e, err := NewEntryFromInput(EntryInput{SleepHours: 7, MoodScore: 8, MessagesSent: 20, Steps: 5000, ScreenTimeHours: 3})
	if err != nil {
		t.Fatalf("NewEntryFromInput failed: %v", err)
	}
	// A zero RecordedAt signals the store to assign one at append time.
	if !e.RecordedAt.IsZero() {
		t.Errorf("RecordedAt = %v, want zero", e.RecordedAt)
	}
}

func TestNewEntryFromInputRejectsInvalid(t *testing.T) {
	_, err := NewEntryFromInput(EntryInput{SleepHours: 30, MoodScore: 7})
	if err == nil {
		t.Fatal("expected validation error for sleep_hours = 30")
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Field: "mood_score", Reason: "must be between 1 and 10"}
	want := "invalid mood_score: must be between 1 and 10"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

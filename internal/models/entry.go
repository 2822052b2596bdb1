// ABOUTME: Entry model for daily behavioral check-ins.
// ABOUTME: Defines the canonical record for sleep, mood, messaging, steps, screen time.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Entry represents a single validated behavioral check-in.
// Entries are immutable once stored; corrections are new entries.
type Entry struct {
	ID              uuid.UUID `json:"id" yaml:"id"`
	SleepHours      float64   `json:"sleep_hours" yaml:"sleep_hours"`
	MoodScore       int       `json:"mood_score" yaml:"mood_score"`
	MessagesSent    int       `json:"messages_sent" yaml:"messages_sent"`
	Steps           int       `json:"steps" yaml:"steps"`
	ScreenTimeHours float64   `json:"screen_time_hours" yaml:"screen_time_hours"`
	RecordedAt      time.Time `json:"recorded_at" yaml:"recorded_at"`
	Notes           *string   `json:"notes,omitempty" yaml:"notes,omitempty"`
	CreatedAt       time.Time `json:"created_at" yaml:"created_at"`
}

// NewEntry creates an Entry with a generated UUID and current timestamps.
// The caller is expected to have validated the input first.
func NewEntry(sleepHours float64, moodScore, messagesSent, steps int, screenTimeHours float64) *Entry {
	now := time.Now()
	return &Entry{
		ID:              uuid.New(),
		SleepHours:      sleepHours,
		MoodScore:       moodScore,
		MessagesSent:    messagesSent,
		Steps:           steps,
		ScreenTimeHours: screenTimeHours,
		RecordedAt:      now,
		CreatedAt:       now,
	}
}

// WithRecordedAt sets a custom recorded_at timestamp.
func (e *Entry) WithRecordedAt(t time.Time) *Entry {
	e.RecordedAt = t
	return e
}

// WithNotes sets notes on the entry.
func (e *Entry) WithNotes(notes string) *Entry {
	e.Notes = &notes
	return e
}

// ABOUTME: Entry operations for SQLite storage.
// ABOUTME: Implements append-only writes with non-decreasing timestamp enforcement.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/mindguard/internal/models"
)

// AppendEntry stores a new entry. A zero RecordedAt is assigned the current
// time. Appends that would regress the recorded_at order return ErrOutOfOrder
// with no mutation. Timestamps are normalized to UTC so their RFC3339 form
// sorts chronologically.
func (d *DB) AppendEntry(e *models.Entry) error {
	if e.RecordedAt.IsZero() {
		e.RecordedAt = d.now()
	}
	e.RecordedAt = e.RecordedAt.UTC()

	latest, err := d.latestRecordedAt()
	if err != nil {
		return fmt.Errorf("append entry: %w", err)
	}
	if latest != nil && e.RecordedAt.Before(*latest) {
		return fmt.Errorf("append entry at %s: %w", e.RecordedAt.Format(time.RFC3339), ErrOutOfOrder)
	}

	query := `
		INSERT INTO entries (id, sleep_hours, mood_score, messages_sent, steps, screen_time_hours, recorded_at, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err = d.db.Exec(query,
		e.ID.String(),
		e.SleepHours,
		e.MoodScore,
		e.MessagesSent,
		e.Steps,
		e.ScreenTimeHours,
		e.RecordedAt.Format(time.RFC3339),
		e.Notes,
		e.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("append entry: %w", err)
	}
	return nil
}

// GetEntry retrieves an entry by ID or ID prefix.
func (d *DB) GetEntry(idOrPrefix string) (*models.Entry, error) {
	id, err := d.resolveEntryID(idOrPrefix)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT id, sleep_hours, mood_score, messages_sent, steps, screen_time_hours, recorded_at, notes, created_at
		FROM entries
		WHERE id = ?
	`
	return d.scanEntry(d.db.QueryRow(query, id))
}

// Latest returns the n most recently appended entries in chronological order.
func (d *DB) Latest(n int) ([]*models.Entry, error) {
	if n <= 0 {
		return []*models.Entry{}, nil
	}

	query := `
		SELECT id, sleep_hours, mood_score, messages_sent, steps, screen_time_hours, recorded_at, notes, created_at
		FROM entries
		ORDER BY recorded_at DESC, created_at DESC
		LIMIT ?
	`
	rows, err := d.db.Query(query, n)
	if err != nil {
		return nil, fmt.Errorf("latest entries: %w", err)
	}
	defer rows.Close()

	entries, err := d.scanEntries(rows)
	if err != nil {
		return nil, err
	}

	// Query returns newest-first; flip to chronological.
	reverse(entries)
	return entries, nil
}

// All returns the full history in chronological order.
func (d *DB) All() ([]*models.Entry, error) {
	query := `
		SELECT id, sleep_hours, mood_score, messages_sent, steps, screen_time_hours, recorded_at, notes, created_at
		FROM entries
		ORDER BY recorded_at ASC, created_at ASC
	`
	rows, err := d.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("all entries: %w", err)
	}
	defer rows.Close()

	return d.scanEntries(rows)
}

// latestRecordedAt returns the most recent recorded_at, or nil when empty.
func (d *DB) latestRecordedAt() (*time.Time, error) {
	var s string
	err := d.db.QueryRow(`SELECT recorded_at FROM entries ORDER BY recorded_at DESC LIMIT 1`).Scan(&s)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, fmt.Errorf("parse recorded_at %q: %w", s, err)
	}
	return &t, nil
}

// resolveEntryID finds the full ID from a prefix.
func (d *DB) resolveEntryID(idOrPrefix string) (string, error) {
	// If it looks like a full UUID, use it directly
	if len(idOrPrefix) == 36 && strings.Count(idOrPrefix, "-") == 4 {
		return idOrPrefix, nil
	}

	// Search by prefix
	query := `SELECT id FROM entries WHERE id LIKE ? || '%'`
	rows, err := d.db.Query(query, idOrPrefix)
	if err != nil {
		return "", fmt.Errorf("resolve entry ID: %w", err)
	}
	defer rows.Close()

	var matches []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return "", fmt.Errorf("scan entry ID: %w", err)
		}
		matches = append(matches, id)
	}

	if len(matches) == 0 {
		return "", fmt.Errorf("%s: %w", idOrPrefix, ErrNotFound)
	}
	if len(matches) > 1 {
		return "", fmt.Errorf("ambiguous prefix %s: matches multiple records", idOrPrefix)
	}

	return matches[0], nil
}

// scanEntry scans a single row into an Entry struct.
func (d *DB) scanEntry(row *sql.Row) (*models.Entry, error) {
	var e models.Entry
	var idStr, recordedAt, createdAt string
	var notes sql.NullString

	err := row.Scan(&idStr, &e.SleepHours, &e.MoodScore, &e.MessagesSent, &e.Steps, &e.ScreenTimeHours, &recordedAt, &notes, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan entry: %w", err)
	}

	e.ID, _ = uuid.Parse(idStr)
	e.RecordedAt, _ = time.Parse(time.RFC3339, recordedAt)
	e.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	if notes.Valid {
		e.Notes = &notes.String
	}

	return &e, nil
}

// scanEntries scans multiple rows into a slice of Entries.
func (d *DB) scanEntries(rows *sql.Rows) ([]*models.Entry, error) {
	var entries []*models.Entry

	for rows.Next() {
		var e models.Entry
		var idStr, recordedAt, createdAt string
		var notes sql.NullString

		err := rows.Scan(&idStr, &e.SleepHours, &e.MoodScore, &e.MessagesSent, &e.Steps, &e.ScreenTimeHours, &recordedAt, &notes, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}

		e.ID, _ = uuid.Parse(idStr)
		e.RecordedAt, _ = time.Parse(time.RFC3339, recordedAt)
		e.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		if notes.Valid {
			e.Notes = &notes.String
		}

		entries = append(entries, &e)
	}

	return entries, rows.Err()
}

// reverse flips a slice of entries in place.
func reverse(entries []*models.Entry) {
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
}

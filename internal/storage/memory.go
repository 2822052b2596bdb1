// ABOUTME: In-memory Repository implementation for tests and ephemeral use.
// ABOUTME: Append-only slice guarded by a RWMutex; readers get copies.
package storage

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/harperreed/mindguard/internal/models"
)

// MemoryStore is an in-memory implementation of Repository. Appends are
// serialized by the write lock; reads snapshot under the read lock so they
// never observe a partially appended entry.
type MemoryStore struct {
	mu      sync.RWMutex
	entries []*models.Entry
	now     func() time.Time
}

// Compile-time check that MemoryStore implements Repository.
var _ Repository = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{now: time.Now}
}

// WithClock overrides the wall-clock source used for timestamp assignment.
func (s *MemoryStore) WithClock(now func() time.Time) *MemoryStore {
	s.now = now
	return s
}

// AppendEntry stores a new entry, assigning the timestamp when unset and
// rejecting recorded_at regressions with ErrOutOfOrder.
func (s *MemoryStore) AppendEntry(e *models.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e.RecordedAt.IsZero() {
		e.RecordedAt = s.now()
	}
	e.RecordedAt = e.RecordedAt.UTC()

	if n := len(s.entries); n > 0 && e.RecordedAt.Before(s.entries[n-1].RecordedAt) {
		return fmt.Errorf("append entry at %s: %w", e.RecordedAt.Format(time.RFC3339), ErrOutOfOrder)
	}

	stored := *e
	s.entries = append(s.entries, &stored)
	return nil
}

// GetEntry retrieves an entry by ID or ID prefix.
func (s *MemoryStore) GetEntry(idOrPrefix string) (*models.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matches []*models.Entry
	for _, e := range s.entries {
		if strings.HasPrefix(e.ID.String(), idOrPrefix) {
			matches = append(matches, e)
		}
	}

	if len(matches) == 0 {
		return nil, fmt.Errorf("%s: %w", idOrPrefix, ErrNotFound)
	}
	if len(matches) > 1 {
		return nil, fmt.Errorf("ambiguous prefix %s: matches multiple records", idOrPrefix)
	}

	out := *matches[0]
	return &out, nil
}

// Latest returns the n most recently appended entries in chronological order.
func (s *MemoryStore) Latest(n int) ([]*models.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if n <= 0 {
		return []*models.Entry{}, nil
	}
	start := len(s.entries) - n
	if start < 0 {
		start = 0
	}
	return copyEntries(s.entries[start:]), nil
}

// All returns the full history in chronological order.
func (s *MemoryStore) All() ([]*models.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyEntries(s.entries), nil
}

// Close releases resources. For MemoryStore this is a no-op.
func (s *MemoryStore) Close() error {
	return nil
}

// copyEntries deep-copies a window so callers cannot mutate stored state.
func copyEntries(entries []*models.Entry) []*models.Entry {
	out := make([]*models.Entry, len(entries))
	for i, e := range entries {
		c := *e
		out[i] = &c
	}
	return out
}

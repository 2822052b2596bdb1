// ABOUTME: Repository interface for the append-only check-in history.
// ABOUTME: Defines the store contract shared by sqlite, markdown, charm, and memory backends.
package storage

import (
	"errors"

	"github.com/harperreed/mindguard/internal/models"
)

// Sentinel errors shared by all backends.
var (
	// ErrOutOfOrder is returned when an append would place an entry before
	// the most recent one. History is append-only and time-ordered;
	// backdated corrections are rejected rather than re-timestamped.
	ErrOutOfOrder = errors.New("entry recorded_at precedes latest stored entry")

	// ErrNotFound is returned when no entry matches an ID or prefix.
	ErrNotFound = errors.New("entry not found")
)

// Repository defines the storage contract for check-in history.
// AppendEntry is the sole mutator: entries are immutable once stored and
// must arrive in non-decreasing recorded_at order. A zero RecordedAt is
// assigned by the store at append time.
type Repository interface {
	AppendEntry(e *models.Entry) error
	GetEntry(idOrPrefix string) (*models.Entry, error)

	// Latest returns the n most recently appended entries in chronological
	// order (oldest first), or fewer if history is shorter. n <= 0 yields
	// an empty window.
	Latest(n int) ([]*models.Entry, error)

	// All returns the full history in chronological order.
	All() ([]*models.Entry, error)

	// Export/Import
	GetAllData() (*ExportData, error)
	ImportData(data *ExportData) error

	// Lifecycle
	Close() error
}

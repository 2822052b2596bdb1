// ABOUTME: Data migration between check-in storage backends.
// ABOUTME: Copies entries from source to destination in chronological order.

package storage

import (
	"fmt"
	"os"
)

// MigrateSummary holds counts of migrated records.
type MigrateSummary struct {
	Entries int
}

// MigrateData copies all entries from src to dst storage in chronological
// order, preserving IDs and timestamps. The destination should be empty
// before calling this function; a non-empty destination with a newer tail
// rejects older source entries via the ordering invariant.
func MigrateData(src, dst Repository) (*MigrateSummary, error) {
	summary := &MigrateSummary{}

	entries, err := src.All()
	if err != nil {
		return nil, fmt.Errorf("list source entries: %w", err)
	}

	for _, e := range entries {
		if err := dst.AppendEntry(e); err != nil {
			return nil, fmt.Errorf("append entry %s: %w", e.ID, err)
		}
		summary.Entries++
	}

	return summary, nil
}

// IsDirNonEmpty checks whether a directory exists and contains any files or
// subdirectories. Returns false if the directory does not exist or is empty.
func IsDirNonEmpty(path string) (bool, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return len(entries) > 0, nil
}

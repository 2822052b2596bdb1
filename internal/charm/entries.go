// ABOUTME: Check-in entry operations for Charm KV storage.
// ABOUTME: Implements the shared Repository contract with type-prefixed keys.
package charm

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/harperreed/mindguard/internal/models"
	"github.com/harperreed/mindguard/internal/storage"
)

var _ storage.Repository = (*Client)(nil)

// AppendEntry stores a new check-in in the KV store. Entries must arrive
// in non-decreasing recorded_at order; backdated entries are rejected.
func (c *Client) AppendEntry(e *models.Entry) error {
	if e.RecordedAt.IsZero() {
		e.RecordedAt = time.Now().UTC()
	}
	e.RecordedAt = e.RecordedAt.UTC()

	existing, err := c.All()
	if err != nil {
		return err
	}
	if n := len(existing); n > 0 && e.RecordedAt.Before(existing[n-1].RecordedAt) {
		return fmt.Errorf("append entry at %s: %w",
			e.RecordedAt.Format(time.RFC3339), storage.ErrOutOfOrder)
	}

	key := EntryPrefix + e.ID.String()
	data, err := marshalJSON(e)
	if err != nil {
		return fmt.Errorf("marshal entry: %w", err)
	}
	return c.set(key, data)
}

// GetEntry retrieves a check-in by ID or ID prefix.
func (c *Client) GetEntry(idOrPrefix string) (*models.Entry, error) {
	data, err := c.getByIDPrefix(EntryPrefix, idOrPrefix)
	if err != nil {
		if errors.Is(err, errNoMatch) {
			return nil, fmt.Errorf("get entry %s: %w", idOrPrefix, storage.ErrNotFound)
		}
		return nil, fmt.Errorf("get entry: %w", err)
	}

	entry, err := unmarshalJSON[models.Entry](data)
	if err != nil {
		return nil, fmt.Errorf("unmarshal entry: %w", err)
	}

	return entry, nil
}

// Latest returns the n most recent check-ins in chronological order.
func (c *Client) Latest(n int) ([]*models.Entry, error) {
	if n <= 0 {
		return []*models.Entry{}, nil
	}
	all, err := c.All()
	if err != nil {
		return nil, err
	}
	if len(all) > n {
		all = all[len(all)-n:]
	}
	return all, nil
}

// All returns the full check-in history in chronological order.
func (c *Client) All() ([]*models.Entry, error) {
	allData, err := c.listByPrefix(EntryPrefix)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}

	entries := make([]*models.Entry, 0, len(allData))
	for _, data := range allData {
		e, err := unmarshalJSON[models.Entry](data)
		if err != nil {
			continue // Skip invalid entries
		}
		entries = append(entries, e)
	}

	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].RecordedAt.Equal(entries[j].RecordedAt) {
			return entries[i].RecordedAt.Before(entries[j].RecordedAt)
		}
		return entries[i].CreatedAt.Before(entries[j].CreatedAt)
	})

	return entries, nil
}

// GetAllData exports the full history as a portable snapshot.
func (c *Client) GetAllData() (*storage.ExportData, error) {
	entries, err := c.All()
	if err != nil {
		return nil, err
	}
	return storage.NewExportData(entries), nil
}

// ImportData appends every entry from the snapshot, oldest first.
func (c *Client) ImportData(data *storage.ExportData) error {
	if data == nil {
		return nil
	}
	entries := make([]*models.Entry, len(data.Entries))
	copy(entries, data.Entries)
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].RecordedAt.Before(entries[j].RecordedAt)
	})
	for _, e := range entries {
		if err := c.AppendEntry(e); err != nil {
			return fmt.Errorf("import entry %s: %w", e.ID, err)
		}
	}
	return nil
}

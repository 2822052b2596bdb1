// ABOUTME: SQLite schema definition and initialization.
// ABOUTME: Defines the append-only entries table with a recorded_at index.
package storage

// initSchema creates or updates the database schema.
func (d *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS entries (
		id TEXT PRIMARY KEY,
		sleep_hours REAL NOT NULL,
		mood_score INTEGER NOT NULL,
		messages_sent INTEGER NOT NULL,
		steps INTEGER NOT NULL,
		screen_time_hours REAL NOT NULL,
		recorded_at DATETIME NOT NULL,
		notes TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_entries_recorded ON entries(recorded_at DESC);
	`

	_, err := d.db.Exec(schema)
	return err
}

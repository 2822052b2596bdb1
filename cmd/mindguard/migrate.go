// ABOUTME: CLI command for migrating check-in data between backends.
// ABOUTME: Copies from the charm KV store into a local SQLite database.
package main

import (
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/harperreed/mindguard/internal/charm"
	"github.com/harperreed/mindguard/internal/storage"
	"github.com/spf13/cobra"
)

var migrateDryRun bool

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Migrate from Charm KV to SQLite",
	Long: `Migrate check-in data from Charm KV storage to SQLite.

Use this when moving off the charm backend, e.g. to keep data fully
local. Entries are copied in chronological order with their original
IDs and timestamps.

IMPORTANT:

  - This command requires the Charm KV data to exist
  - The SQLite database is created at ~/.local/share/mindguard/mindguard.db
  - Migrating into a non-empty database fails if any copied check-in
    predates the latest stored one
  - Run with --dry-run first to see what would be migrated

USAGE:

  mindguard migrate --dry-run   # Preview what would be migrated
  mindguard migrate             # Perform the migration

AFTER MIGRATION:

  Switch your config to the sqlite backend, then optionally delete the
  old Charm data:
    rm -rf ~/.local/share/charm/kv/mindguard/`,
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := charm.InitClient()
		if err != nil {
			return fmt.Errorf("failed to open charm storage: %w", err)
		}
		defer src.Close()

		entries, err := src.All()
		if err != nil {
			return fmt.Errorf("failed to read charm data: %w", err)
		}

		if migrateDryRun {
			color.Yellow("Dry run mode - no changes will be made")
			fmt.Println()
			fmt.Printf("Would migrate %d check-in(s) to %s\n",
				len(entries), filepath.Join(storage.DataDir(), "mindguard.db"))
			return nil
		}

		dst, err := storage.OpenDefault()
		if err != nil {
			return fmt.Errorf("failed to open sqlite database: %w", err)
		}
		defer dst.Close()

		summary, err := storage.MigrateData(src, dst)
		if err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}

		color.Green("✓ Migration complete")
		fmt.Printf("  Check-ins migrated: %d\n", summary.Entries)
		fmt.Println()
		fmt.Println("Set the sqlite backend in ~/.config/mindguard/config.json to use it.")

		return nil
	},
}

func init() {
	migrateCmd.Flags().BoolVar(&migrateDryRun, "dry-run", false, "preview migration without making changes")
	rootCmd.AddCommand(migrateCmd)
}

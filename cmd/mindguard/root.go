// ABOUTME: Root Cobra command for mindguard CLI.
// ABOUTME: Handles config loading and storage lifecycle via PersistentPre/PostRunE.
package main

import (
	"fmt"
	"path/filepath"

	"github.com/harperreed/mindguard/internal/config"
	"github.com/harperreed/mindguard/internal/engine"
	"github.com/harperreed/mindguard/internal/storage"
	"github.com/spf13/cobra"
)

var (
	cfg  *config.Config
	repo storage.Repository
	eng  *engine.Engine

	flagDB      string
	flagBackend string
)

var rootCmd = &cobra.Command{
	Use:   "mindguard",
	Short: "Daily check-in tracker with crisis risk scoring",
	Long: `MindGuard is a CLI tool for logging daily behavioral check-ins and
scoring them for mental-health crisis risk.

WHAT IT TRACKS:

  Each check-in records five signals for the day:

  sleep_hours        Hours slept (0-24)
  mood_score         Self-reported mood (1-10)
  messages_sent      Messages sent (social engagement proxy)
  steps              Step count (physical activity proxy)
  screen_time_hours  Hours of screen time

RISK MODEL:

  Every check-in is scored 0.0-1.0 by additive rules over the five
  signals. Scores map to levels: low (< 0.3), medium (0.3-0.6),
  high (>= 0.6). Each level carries intervention suggestions.

QUICK START:

  $ mindguard add --sleep 7.5 --mood 8 --messages 25 --steps 9000 --screen 3
  $ mindguard list                      # See recent check-ins
  $ mindguard predict                   # Score the latest check-in
  $ mindguard trend --window 7          # Weekly means and correlations
  $ mindguard suggest high              # Interventions for a risk level

STORAGE BACKENDS:

  sqlite     Local SQLite database (default)
  markdown   Plain Markdown files with YAML frontmatter
  charm      Charm KV with E2E-encrypted cloud sync
  memory     Ephemeral in-memory store

  Select with --backend or persist via the config file.

SYNC (CHARM BACKEND):

  $ mindguard sync link      # Link device to your Charm account
  $ mindguard sync status    # Check sync status
  $ mindguard sync wipe      # Delete cloud and local data

MCP INTEGRATION:

  Run 'mindguard mcp' to start the Model Context Protocol server for use
  with Claude Desktop or other MCP-compatible AI assistants. Add to your
  Claude config:

  {
    "mcpServers": {
      "mindguard": { "command": "mindguard", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  Check-ins are stored at ~/.local/share/mindguard by default.
  Config lives at ~/.config/mindguard/config.json.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip storage init for commands that manage their own stores
		// or need none at all
		switch cmd.Name() {
		case "version", "help", "completion", "install-skill", "migrate",
			"sync", "link", "unlink", "status", "repair", "reset", "wipe":
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if flagBackend != "" {
			cfg.Backend = flagBackend
		}

		if flagDB != "" {
			// Explicit database path forces the sqlite backend.
			cfg.Backend = "sqlite"
			cfg.DataDir = filepath.Dir(flagDB)
			repo, err = storage.Open(flagDB)
		} else {
			repo, err = cfg.OpenStorage()
		}
		if err != nil {
			return fmt.Errorf("failed to open storage: %w", err)
		}

		eng = engine.New(repo)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if repo != nil {
			return repo.Close()
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "sqlite database path (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "storage backend: sqlite, markdown, charm, memory")
}

// ABOUTME: CLI command for listing check-in history.
// ABOUTME: Shows recent check-ins with their risk assessments.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/mindguard/internal/risk"
	"github.com/spf13/cobra"
)

var listLimit int

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "l"},
	Short:   "List check-ins",
	Long: `List recent check-ins from your history, oldest first.

OUTPUT FORMAT:

  Each line shows: ID  TIMESTAMP  SLEEP  MOOD  MSGS  STEPS  SCREEN  RISK  (NOTES)

  The ID is an 8-character prefix you can use to look up an entry.
  Risk is the computed score and level for that check-in.

EXAMPLES:

  mindguard list            # Show last 20 check-ins
  mindguard list -n 7       # Show the last week`,
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := eng.History(listLimit)
		if err != nil {
			return fmt.Errorf("failed to list check-ins: %w", err)
		}

		if len(entries) == 0 {
			fmt.Println("No check-ins found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, e := range entries {
			a := risk.Score(e)
			notes := ""
			if e.Notes != nil && *e.Notes != "" {
				notes = faint.Sprintf(" (%s)", truncate(*e.Notes, 30))
			}
			fmt.Printf("%s %s %s %s %s %s %s %.2f %s%s\n",
				faint.Sprint(e.ID.String()[:8]),
				faint.Sprint(e.RecordedAt.Format("2006-01-02 15:04")),
				padRight(fmt.Sprintf("sleep %.1fh", e.SleepHours), 12),
				padRight(fmt.Sprintf("mood %d", e.MoodScore), 8),
				padRight(fmt.Sprintf("msgs %d", e.MessagesSent), 9),
				padRight(fmt.Sprintf("steps %d", e.Steps), 12),
				padRight(fmt.Sprintf("screen %.1fh", e.ScreenTimeHours), 13),
				a.Score,
				levelSprint(a.Level),
				notes)
		}

		return nil
	},
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

func init() {
	listCmd.Flags().IntVarP(&listLimit, "limit", "n", 20, "max number of results")
	rootCmd.AddCommand(listCmd)
}

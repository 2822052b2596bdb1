// ABOUTME: CLI command for logging daily check-ins.
// ABOUTME: Validates input, stores the entry, and prints its risk assessment.
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/mindguard/internal/engine"
	"github.com/harperreed/mindguard/internal/models"
	"github.com/harperreed/mindguard/internal/risk"
	"github.com/spf13/cobra"
)

var (
	addSleep    float64
	addMood     int
	addMessages int
	addSteps    int
	addScreen   float64
	addAt       string
	addNotes    string
)

var addCmd = &cobra.Command{
	Use:     "add",
	Aliases: []string{"a", "checkin"},
	Short:   "Log a daily check-in",
	Long: `Log a daily check-in with all five behavioral signals.

The check-in is validated, appended to history, and scored immediately.
Check-ins must arrive in chronological order; a --at timestamp earlier
than the latest stored check-in is rejected.

Examples:
  mindguard add --sleep 7.5 --mood 8 --messages 25 --steps 9000 --screen 3
  mindguard add --sleep 4 --mood 3 --messages 2 --steps 800 --screen 9 --notes "rough day"
  mindguard add --sleep 6 --mood 5 --messages 10 --steps 4000 --screen 5 --at "2026-02-14 21:00"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		in := models.EntryInput{
			SleepHours:      addSleep,
			MoodScore:       addMood,
			MessagesSent:    addMessages,
			Steps:           addSteps,
			ScreenTimeHours: addScreen,
			Notes:           addNotes,
		}

		if addAt != "" {
			t, err := parseTime(addAt)
			if err != nil {
				return fmt.Errorf("invalid timestamp: %s", addAt)
			}
			in.RecordedAt = t
		}

		sub, err := eng.Submit(in)
		if err != nil {
			return fmt.Errorf("failed to log check-in: %w", err)
		}

		color.Green("✓ Logged check-in")
		fmt.Printf("  %s %s\n",
			color.New(color.Faint).Sprint(sub.Entry.ID.String()[:8]),
			color.New(color.Faint).Sprint(sub.Entry.RecordedAt.Format("2006-01-02 15:04")))
		printAssessment(sub)

		return nil
	},
}

// printAssessment renders a submission's score, level, factors, and suggestion.
func printAssessment(sub *engine.Submission) {
	fmt.Printf("  Risk: %.2f %s\n", sub.Assessment.Score, levelSprint(sub.Assessment.Level))
	if len(sub.Assessment.TriggeredFactors) > 0 {
		fmt.Printf("  Factors: %s\n", strings.Join(sub.Assessment.TriggeredFactors, ", "))
	}
	fmt.Printf("  Suggestion: %s\n", sub.Suggestion)
}

// levelSprint colors a risk level for terminal output.
func levelSprint(level risk.Level) string {
	switch level {
	case risk.LevelLow:
		return color.GreenString(string(level))
	case risk.LevelMedium:
		return color.YellowString(string(level))
	case risk.LevelHigh:
		return color.RedString(string(level))
	default:
		return string(level)
	}
}

func parseTime(s string) (time.Time, error) {
	formats := []string{
		"2006-01-02 15:04",
		"2006-01-02T15:04",
		"2006-01-02",
		time.RFC3339,
	}
	for _, f := range formats {
		if t, err := time.Parse(f, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time format")
}

func init() {
	addCmd.Flags().Float64Var(&addSleep, "sleep", 0, "hours slept (0-24)")
	addCmd.Flags().IntVar(&addMood, "mood", 0, "mood score (1-10)")
	addCmd.Flags().IntVar(&addMessages, "messages", 0, "messages sent")
	addCmd.Flags().IntVar(&addSteps, "steps", 0, "step count")
	addCmd.Flags().Float64Var(&addScreen, "screen", 0, "screen time in hours")
	addCmd.Flags().StringVar(&addAt, "at", "", "timestamp (YYYY-MM-DD HH:MM)")
	addCmd.Flags().StringVar(&addNotes, "notes", "", "notes for the check-in")

	_ = addCmd.MarkFlagRequired("sleep")
	_ = addCmd.MarkFlagRequired("mood")
	_ = addCmd.MarkFlagRequired("messages")
	_ = addCmd.MarkFlagRequired("steps")
	_ = addCmd.MarkFlagRequired("screen")

	rootCmd.AddCommand(addCmd)
}

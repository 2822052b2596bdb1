// ABOUTME: CLI command for scoring the latest check-in.
// ABOUTME: Supports what-if assessments via signal flags without storing.
package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/mindguard/internal/engine"
	"github.com/harperreed/mindguard/internal/models"
	"github.com/spf13/cobra"
)

var (
	predictSleep    float64
	predictMood     int
	predictMessages int
	predictSteps    int
	predictScreen   float64
)

var predictCmd = &cobra.Command{
	Use:     "predict",
	Aliases: []string{"p"},
	Short:   "Score the latest check-in",
	Long: `Score the most recent check-in without recording anything.

With no flags, the latest stored check-in is re-scored. Passing all five
signal flags scores a hypothetical check-in instead, also without
storing it.

EXAMPLES:

  mindguard predict                     # Score the latest stored check-in
  mindguard predict --sleep 4 --mood 3 --messages 2 --steps 800 --screen 9`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().NFlag() > 0 && cmd.Flags().Changed("sleep") {
			sub, err := eng.Assess(models.EntryInput{
				SleepHours:      predictSleep,
				MoodScore:       predictMood,
				MessagesSent:    predictMessages,
				Steps:           predictSteps,
				ScreenTimeHours: predictScreen,
			})
			if err != nil {
				return fmt.Errorf("failed to assess check-in: %w", err)
			}

			fmt.Println("Hypothetical check-in (not stored):")
			printAssessment(sub)
			return nil
		}

		sub, err := eng.PredictLatest()
		if err != nil {
			if errors.Is(err, engine.ErrNoData) {
				fmt.Println("No check-ins recorded yet.")
				return nil
			}
			return fmt.Errorf("failed to score latest check-in: %w", err)
		}

		fmt.Printf("Latest check-in %s %s\n",
			color.New(color.Faint).Sprint(sub.Entry.ID.String()[:8]),
			color.New(color.Faint).Sprint(sub.Entry.RecordedAt.Format("2006-01-02 15:04")))
		printAssessment(sub)

		return nil
	},
}

func init() {
	predictCmd.Flags().Float64Var(&predictSleep, "sleep", 0, "hours slept (0-24)")
	predictCmd.Flags().IntVar(&predictMood, "mood", 0, "mood score (1-10)")
	predictCmd.Flags().IntVar(&predictMessages, "messages", 0, "messages sent")
	predictCmd.Flags().IntVar(&predictSteps, "steps", 0, "step count")
	predictCmd.Flags().Float64Var(&predictScreen, "screen", 0, "screen time in hours")
	rootCmd.AddCommand(predictCmd)
}

// ABOUTME: CLI command for intervention suggestions.
// ABOUTME: Resolves a risk level (given or from the latest check-in) to suggestions.
package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/mindguard/internal/engine"
	"github.com/harperreed/mindguard/internal/risk"
	"github.com/spf13/cobra"
)

var suggestAll bool

var suggestCmd = &cobra.Command{
	Use:       "suggest [level]",
	Short:     "Get intervention suggestions",
	ValidArgs: []string{"low", "medium", "high"},
	Args:      cobra.MaximumNArgs(1),
	Long: `Get intervention suggestions for a risk level.

With no argument, the level comes from scoring your latest check-in.
Pass a level (low, medium, high) to look up suggestions directly.

EXAMPLES:

  mindguard suggest           # Suggestions for your current risk level
  mindguard suggest high      # Suggestions for high risk
  mindguard suggest low --all # Full ranked list for low risk`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var level risk.Level

		if len(args) == 1 {
			if !risk.IsValidLevel(args[0]) {
				return fmt.Errorf("unknown risk level: %s (use low, medium, or high)", args[0])
			}
			level = risk.Level(args[0])
		} else {
			sub, err := eng.PredictLatest()
			if err != nil {
				if errors.Is(err, engine.ErrNoData) {
					fmt.Println("No check-ins recorded yet. Pass a level: mindguard suggest <low|medium|high>")
					return nil
				}
				return fmt.Errorf("failed to score latest check-in: %w", err)
			}
			level = sub.Assessment.Level
			fmt.Printf("Current risk level: %s\n\n", levelSprint(level))
		}

		if suggestAll {
			for i, s := range eng.Suggestions(level) {
				fmt.Printf("%d. %s\n", i+1, s)
			}
			return nil
		}

		color.Green("✓ %s", eng.Suggestion(level))
		return nil
	},
}

func init() {
	suggestCmd.Flags().BoolVar(&suggestAll, "all", false, "show the full ranked suggestion list")
	rootCmd.AddCommand(suggestCmd)
}

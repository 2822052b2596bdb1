// ABOUTME: CLI command for trend summaries over recent check-ins.
// ABOUTME: Prints per-metric stats, the risk series, and the correlation matrix.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/mindguard/internal/trend"
	"github.com/spf13/cobra"
)

var trendWindow int

var trendCmd = &cobra.Command{
	Use:     "trend",
	Aliases: []string{"t"},
	Short:   "Summarize recent check-ins",
	Long: `Summarize the most recent check-ins: per-metric means and latest
values, the risk score series, and pairwise correlations between all
signals and the risk score.

Correlation cells print as "--" when undefined: fewer than two
check-ins in the window, or a signal with zero variance.

EXAMPLES:

  mindguard trend               # Summarize the default window
  mindguard trend --window 30   # Summarize the last 30 check-ins`,
	RunE: func(cmd *cobra.Command, args []string) error {
		window := trendWindow
		if window <= 0 {
			window = cfg.GetWindow()
		}

		summary, err := eng.Trend(window)
		if err != nil {
			return fmt.Errorf("failed to summarize trend: %w", err)
		}

		if summary.Count == 0 {
			fmt.Println("No check-ins found.")
			return nil
		}

		fmt.Printf("Trend over last %d check-in(s)\n\n", summary.Count)

		fmt.Println("Metrics:")
		for _, name := range trend.SeriesNames {
			stats, ok := summary.Stats[name]
			if !ok {
				continue
			}
			fmt.Printf("  %s mean %8.2f  latest %8.2f\n",
				padRight(name, 18), stats.Mean, stats.Latest)
		}

		fmt.Println()
		fmt.Println("Risk series:")
		for i, score := range summary.RiskScores {
			fmt.Printf("  %.2f %s\n", score, levelSprint(summary.RiskLevels[i]))
		}

		if summary.Correlations != nil {
			fmt.Println()
			fmt.Println("Correlations:")
			printMatrix(summary.Correlations)
		}

		return nil
	},
}

// printMatrix renders the correlation matrix with "--" for undefined cells.
func printMatrix(m *trend.Matrix) {
	faint := color.New(color.Faint)

	header := padRight("", 18)
	for _, name := range m.Names {
		header += padRight(shortName(name), 8)
	}
	fmt.Printf("  %s\n", faint.Sprint(header))

	for i, name := range m.Names {
		row := padRight(shortName(name), 18)
		for j := range m.Names {
			cell := m.Cells[i][j]
			if cell == nil {
				row += padRight("--", 8)
			} else {
				row += padRight(fmt.Sprintf("%+.2f", *cell), 8)
			}
		}
		fmt.Printf("  %s\n", row)
	}
}

// shortName compacts series names for matrix column headers.
func shortName(series string) string {
	switch series {
	case trend.SeriesSleep:
		return "sleep"
	case trend.SeriesMood:
		return "mood"
	case trend.SeriesMessages:
		return "msgs"
	case trend.SeriesSteps:
		return "steps"
	case trend.SeriesScreen:
		return "screen"
	case trend.SeriesRisk:
		return "risk"
	default:
		return series
	}
}

func init() {
	trendCmd.Flags().IntVarP(&trendWindow, "window", "w", 0, "number of recent check-ins to summarize")
	rootCmd.AddCommand(trendCmd)
}

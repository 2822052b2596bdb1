// ABOUTME: Trend aggregation over a window of check-in entries.
// ABOUTME: Rolling means, risk-score series, and pairwise Pearson correlation.

// Package trend derives rolling statistics from a chronological window of
// entries. Correlation cells are nil when they cannot be computed (fewer
// than two samples or a constant series) so degenerate windows report
// "insufficient data" instead of leaking NaN.
package trend

import (
	"math"

	"github.com/harperreed/mindguard/internal/models"
	"github.com/harperreed/mindguard/internal/risk"
)

// Series names in declared order. The correlation matrix rows and columns
// follow this order.
const (
	SeriesSleep    = "sleep_hours"
	SeriesMood     = "mood_score"
	SeriesMessages = "messages_sent"
	SeriesSteps    = "steps"
	SeriesScreen   = "screen_time_hours"
	SeriesRisk     = "risk_score"
)

// SeriesNames lists every correlated series in matrix order.
var SeriesNames = []string{
	SeriesSleep, SeriesMood, SeriesMessages, SeriesSteps, SeriesScreen, SeriesRisk,
}

// MetricStats holds the rolling statistics for one series.
type MetricStats struct {
	Mean   float64 `json:"mean"`
	Latest float64 `json:"latest"`
}

// Matrix is a pairwise correlation matrix over SeriesNames. A nil cell means
// the pair's correlation is undefined for this window.
type Matrix struct {
	Names []string     `json:"names"`
	Cells [][]*float64 `json:"cells"`
}

// At returns the correlation between two named series, or nil when the pair
// is undefined or unknown.
func (m *Matrix) At(a, b string) *float64 {
	ai, bi := -1, -1
	for i, name := range m.Names {
		if name == a {
			ai = i
		}
		if name == b {
			bi = i
		}
	}
	if ai < 0 || bi < 0 {
		return nil
	}
	return m.Cells[ai][bi]
}

// Summary holds the derived statistics for a history window.
type Summary struct {
	Count        int                    `json:"count"`
	Stats        map[string]MetricStats `json:"stats,omitempty"`
	RiskScores   []float64              `json:"risk_scores"`
	RiskLevels   []risk.Level           `json:"risk_levels"`
	Correlations *Matrix                `json:"correlations,omitempty"`
}

// Summarize computes the trend summary for a chronological window.
// Pure function of its input; calling it twice yields identical output.
func Summarize(window []*models.Entry) Summary {
	s := Summary{Count: len(window)}
	if len(window) == 0 {
		return s
	}

	series := make(map[string][]float64, len(SeriesNames))
	for _, e := range window {
		a := risk.Score(e)
		s.RiskScores = append(s.RiskScores, a.Score)
		s.RiskLevels = append(s.RiskLevels, a.Level)

		series[SeriesSleep] = append(series[SeriesSleep], e.SleepHours)
		series[SeriesMood] = append(series[SeriesMood], float64(e.MoodScore))
		series[SeriesMessages] = append(series[SeriesMessages], float64(e.MessagesSent))
		series[SeriesSteps] = append(series[SeriesSteps], float64(e.Steps))
		series[SeriesScreen] = append(series[SeriesScreen], e.ScreenTimeHours)
	}
	series[SeriesRisk] = s.RiskScores

	s.Stats = make(map[string]MetricStats, len(SeriesNames))
	for _, name := range SeriesNames {
		values := series[name]
		s.Stats[name] = MetricStats{
			Mean:   mean(values),
			Latest: values[len(values)-1],
		}
	}

	s.Correlations = correlate(series)
	return s
}

// correlate builds the pairwise Pearson matrix over all series.
func correlate(series map[string][]float64) *Matrix {
	m := &Matrix{
		Names: SeriesNames,
		Cells: make([][]*float64, len(SeriesNames)),
	}
	for i, a := range SeriesNames {
		m.Cells[i] = make([]*float64, len(SeriesNames))
		for j, b := range SeriesNames {
			if r, ok := pearson(series[a], series[b]); ok {
				v := r
				m.Cells[i][j] = &v
			}
		}
	}
	return m
}

// mean returns the arithmetic mean of a non-empty series.
func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// pearson computes the Pearson correlation coefficient of two equal-length
// series. Returns ok=false when the sample size is below 2 or either series
// has zero variance.
func pearson(x, y []float64) (r float64, ok bool) {
	n := len(x)
	if n < 2 || len(y) != n {
		return 0, false
	}

	mx, my := mean(x), mean(y)
	var cov, varX, varY float64
	for i := 0; i < n; i++ {
		dx := x[i] - mx
		dy := y[i] - my
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	if varX == 0 || varY == 0 {
		return 0, false
	}

	r = cov / math.Sqrt(varX*varY)
	// Guard against float drift pushing past the mathematical bounds.
	if r > 1 {
		r = 1
	}
	if r < -1 {
		r = -1
	}
	return r, true
}

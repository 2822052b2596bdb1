// ABOUTME: Risk level taxonomy and assessment result types.
// ABOUTME: Defines score thresholds for the low/medium/high buckets.

// Package risk implements deterministic rule-based crisis risk scoring for
// behavioral check-in entries.
//
// Each entry is evaluated against a fixed table of weighted rules covering
// sleep, mood, social activity, screen time, and movement. Rule weights are
// additive and the final score is clamped to [0, 1]. Tiered rules (sleep,
// mood, social) are mutually exclusive per metric: the severe tier suppresses
// the mild one. Scoring is a total function over any validated entry.
package risk

// Level represents the discrete risk bucket derived from a score.
type Level string

const (
	LevelLow    Level = "low"
	LevelMedium Level = "medium"
	LevelHigh   Level = "high"
)

// Score thresholds for level bucketing.
const (
	MediumThreshold = 0.3
	HighThreshold   = 0.6
)

// Assessment is the result of scoring a single entry.
type Assessment struct {
	Score            float64  `json:"score"`
	Level            Level    `json:"level"`
	TriggeredFactors []string `json:"triggered_factors"`
}

// LevelForScore maps a score to its risk level.
func LevelForScore(score float64) Level {
	switch {
	case score >= HighThreshold:
		return LevelHigh
	case score >= MediumThreshold:
		return LevelMedium
	default:
		return LevelLow
	}
}

// IsValidLevel checks if a string names a known risk level.
func IsValidLevel(s string) bool {
	switch Level(s) {
	case LevelLow, LevelMedium, LevelHigh:
		return true
	}
	return false
}

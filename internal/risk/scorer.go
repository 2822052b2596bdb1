// ABOUTME: Rule-table evaluation producing a bounded risk assessment.
// ABOUTME: Additive weights, clamped to [0,1], bucketed into low/medium/high.
package risk

import (
	"math"

	"github.com/harperreed/mindguard/internal/models"
)

// Score evaluates an entry against the rule table and returns its assessment.
// Deterministic and side-effect free; never fails for a validated entry.
func Score(e *models.Entry) Assessment {
	var (
		score   float64
		factors []string
	)

	for _, group := range ruleGroups {
		for _, r := range group {
			if r.Fires(e) {
				score += r.Weight
				factors = append(factors, r.ID)
				break
			}
		}
	}

	// Clamp to [0, 1] and round away float drift from the additive weights.
	score = math.Round(score*100) / 100
	if score > 1.0 {
		score = 1.0
	}
	if score < 0.0 {
		score = 0.0
	}

	return Assessment{
		Score:            score,
		Level:            LevelForScore(score),
		TriggeredFactors: factors,
	}
}

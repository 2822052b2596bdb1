// ABOUTME: Declarative rule table for crisis risk scoring.
// ABOUTME: Groups tiered rules per metric so the severe tier suppresses the mild.
package risk

import "github.com/harperreed/mindguard/internal/models"

// Rule is a single weighted risk factor check.
type Rule struct {
	ID     string
	Weight float64
	Fires  func(e *models.Entry) bool
}

// ruleGroups holds the scoring table in declared order. Within a group only
// the first firing rule counts, which keeps the severe and mild tiers of the
// same metric from double-counting. Single-rule groups are plain booleans.
var ruleGroups = [][]Rule{
	{
		{ID: "sleep-severe", Weight: 0.30, Fires: func(e *models.Entry) bool { return e.SleepHours < 4 }},
		{ID: "sleep-mild", Weight: 0.15, Fires: func(e *models.Entry) bool { return e.SleepHours < 6 }},
	},
	{
		{ID: "mood-severe", Weight: 0.40, Fires: func(e *models.Entry) bool { return e.MoodScore <= 3 }},
		{ID: "mood-mild", Weight: 0.20, Fires: func(e *models.Entry) bool { return e.MoodScore <= 5 }},
	},
	{
		{ID: "social-severe", Weight: 0.20, Fires: func(e *models.Entry) bool { return e.MessagesSent < 5 }},
		{ID: "social-mild", Weight: 0.10, Fires: func(e *models.Entry) bool { return e.MessagesSent < 10 }},
	},
	{
		{ID: "screen-high", Weight: 0.10, Fires: func(e *models.Entry) bool { return e.ScreenTimeHours > 8 }},
	},
	{
		{ID: "movement-low", Weight: 0.10, Fires: func(e *models.Entry) bool { return e.Steps < 1000 }},
	},
}

// RuleIDs returns the identifiers of all rules in declared order.
func RuleIDs() []string {
	var ids []string
	for _, group := range ruleGroups {
		for _, r := range group {
			ids = append(ids, r.ID)
		}
	}
	return ids
}

// ABOUTME: Intervention suggestions mapped from risk levels.
// ABOUTME: Static ranked lists; the primary suggestion is deterministic.
package risk

// interventions holds the ranked suggestion lists per risk level.
// The first entry of each list is the primary suggestion.
var interventions = map[Level][]string{
	LevelLow: {
		"Keep up the good work! Stay connected with friends.",
		"Great job maintaining your routine!",
		"Continue your healthy habits.",
	},
	LevelMedium: {
		"Consider taking a short walk today.",
		"Try a 5-minute breathing exercise.",
		"Reach out to a friend or family member.",
		"Take a break from screens for 30 minutes.",
	},
	LevelHigh: {
		"Please talk to a trusted friend or family member today.",
		"Consider contacting a counselor or mental health professional.",
		"Call a mental health helpline if you're feeling overwhelmed.",
		"Reach out to someone you trust - you don't have to face this alone.",
	},
}

// Suggest returns the primary intervention suggestion for a risk level.
// Unknown levels fall back to the medium list.
func Suggest(level Level) string {
	return Suggestions(level)[0]
}

// Suggestions returns the full ranked suggestion list for a risk level.
func Suggestions(level Level) []string {
	list, ok := interventions[level]
	if !ok {
		list = interventions[LevelMedium]
	}
	out := make([]string, len(list))
	copy(out, list)
	return out
}

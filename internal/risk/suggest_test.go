// ABOUTME: Tests for intervention suggestion selection.
// ABOUTME: Verifies deterministic mapping and level fallback.
package risk

import "testing"

func TestSuggestIsDeterministic(t *testing.T) {
	for _, level := range []Level{LevelLow, LevelMedium, LevelHigh} {
		first := Suggest(level)
		for i := 0; i < 10; i++ {
			if got := Suggest(level); got != first {
				t.Fatalf("Suggest(%s) varied between calls: %q vs %q", level, first, got)
			}
		}
	}
}

func TestSuggestPerLevel(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelLow, "Keep up the good work! Stay connected with friends."},
		{LevelMedium, "Consider taking a short walk today."},
		{LevelHigh, "Please talk to a trusted friend or family member today."},
	}
	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			if got := Suggest(tt.level); got != tt.want {
				t.Errorf("Suggest(%s) = %q, want %q", tt.level, got, tt.want)
			}
		})
	}
}

func TestSuggestUnknownLevelFallsBackToMedium(t *testing.T) {
	if got := Suggest(Level("panic")); got != Suggest(LevelMedium) {
		t.Errorf("unknown level suggestion = %q, want medium fallback", got)
	}
}

func TestSuggestionsReturnsCopy(t *testing.T) {
	list := Suggestions(LevelHigh)
	if len(list) == 0 {
		t.Fatal("expected non-empty suggestion list")
	}
	list[0] = "mutated"
	if Suggest(LevelHigh) == "mutated" {
		t.Error("Suggestions leaked internal slice")
	}
}

func TestIsValidLevel(t *testing.T) {
	for _, s := range []string{"low", "medium", "high"} {
		if !IsValidLevel(s) {
			t.Errorf("IsValidLevel(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"", "extreme", "Low"} {
		if IsValidLevel(s) {
			t.Errorf("IsValidLevel(%q) = true, want false", s)
		}
	}
}

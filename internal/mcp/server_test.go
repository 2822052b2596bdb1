// ABOUTME: Tests for MCP server, tools, and resources.
// ABOUTME: Covers NewServer, tool handlers, and resource handlers.
package mcp

import (
	"context"
	"testing"
	"time"

	"github.com/harperreed/mindguard/internal/engine"
	"github.com/harperreed/mindguard/internal/models"
	"github.com/harperreed/mindguard/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// setupTestEngine builds an engine over an ephemeral in-memory store.
func setupTestEngine(t *testing.T) *engine.Engine {
	t.Helper()

	store := storage.NewMemoryStore()
	t.Cleanup(func() { store.Close() })

	return engine.New(store)
}

// healthyInput is a check-in that fires no risk rules.
func healthyInput() logEntryInput {
	return logEntryInput{
		SleepHours:      8,
		MoodScore:       8,
		MessagesSent:    25,
		Steps:           9000,
		ScreenTimeHours: 3,
	}
}

// crisisInput is a check-in that fires every severe rule.
func crisisInput() logEntryInput {
	return logEntryInput{
		SleepHours:      3,
		MoodScore:       2,
		MessagesSent:    1,
		Steps:           300,
		ScreenTimeHours: 9,
	}
}

func TestNewServer(t *testing.T) {
	eng := setupTestEngine(t)

	server, err := NewServer(eng)
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}

	if server == nil {
		t.Fatal("Expected non-nil server")
	}
	if server.mcpServer == nil {
		t.Error("Expected non-nil mcpServer")
	}
	if server.eng == nil {
		t.Error("Expected non-nil engine")
	}
}

func TestHandleLogEntry(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		input     logEntryInput
		wantErr   bool
		errSubstr string
	}{
		{
			name:    "valid check-in",
			input:   healthyInput(),
			wantErr: false,
		},
		{
			name: "valid check-in with notes",
			input: func() logEntryInput {
				in := healthyInput()
				in.Notes = "feeling steady"
				return in
			}(),
			wantErr: false,
		},
		{
			name: "valid check-in with RFC3339 timestamp",
			input: func() logEntryInput {
				in := healthyInput()
				in.RecordedAt = "2026-01-31T08:00:00Z"
				return in
			}(),
			wantErr: false,
		},
		{
			name: "valid check-in with simple timestamp",
			input: func() logEntryInput {
				in := healthyInput()
				in.RecordedAt = "2026-01-31 08:00"
				return in
			}(),
			wantErr: false,
		},
		{
			name: "sleep out of range",
			input: func() logEntryInput {
				in := healthyInput()
				in.SleepHours = 25
				return in
			}(),
			wantErr:   true,
			errSubstr: "sleep_hours",
		},
		{
			name: "mood out of range",
			input: func() logEntryInput {
				in := healthyInput()
				in.MoodScore = 0
				return in
			}(),
			wantErr:   true,
			errSubstr: "mood_score",
		},
		{
			name: "unparseable timestamp",
			input: func() logEntryInput {
				in := healthyInput()
				in.RecordedAt = "yesterday-ish"
				return in
			}(),
			wantErr:   true,
			errSubstr: "invalid recorded_at",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, _ := NewServer(setupTestEngine(t))

			_, output, err := server.handleLogEntry(ctx, &mcp.CallToolRequest{}, tt.input)

			if tt.wantErr {
				if err == nil {
					t.Error("Expected error, got nil")
				} else if tt.errSubstr != "" && !contains(err.Error(), tt.errSubstr) {
					t.Errorf("Expected error containing %q, got: %v", tt.errSubstr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("handleLogEntry failed: %v", err)
			}
			if output.ID == "" {
				t.Error("Expected non-empty entry ID")
			}
			if output.Suggestion == "" {
				t.Error("Expected a suggestion")
			}
		})
	}
}

func TestHandleLogEntryCrisisAssessment(t *testing.T) {
	server, _ := NewServer(setupTestEngine(t))
	ctx := context.Background()

	_, output, err := server.handleLogEntry(ctx, &mcp.CallToolRequest{}, crisisInput())
	if err != nil {
		t.Fatalf("handleLogEntry failed: %v", err)
	}

	if output.RiskScore != 1.0 {
		t.Errorf("Expected risk score 1.0, got %v", output.RiskScore)
	}
	if output.RiskLevel != "high" {
		t.Errorf("Expected level high, got %q", output.RiskLevel)
	}
	if len(output.TriggeredFactors) != 5 {
		t.Errorf("Expected 5 triggered factors, got %d: %v",
			len(output.TriggeredFactors), output.TriggeredFactors)
	}
}

func TestHandleGetHistory(t *testing.T) {
	server, _ := NewServer(setupTestEngine(t))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, _, err := server.handleLogEntry(ctx, &mcp.CallToolRequest{}, healthyInput()); err != nil {
			t.Fatalf("seed check-in %d failed: %v", i, err)
		}
	}

	_, output, err := server.handleGetHistory(ctx, &mcp.CallToolRequest{}, getHistoryInput{Limit: 2})
	if err != nil {
		t.Fatalf("handleGetHistory failed: %v", err)
	}

	entries, ok := output.([]*models.Entry)
	if !ok {
		t.Fatalf("Expected []*models.Entry, got %T", output)
	}
	if len(entries) != 2 {
		t.Errorf("Expected 2 entries, got %d", len(entries))
	}
	if entries[0].RecordedAt.After(entries[1].RecordedAt) {
		t.Error("Expected chronological order, oldest first")
	}
}

func TestHandleGetHistoryEmpty(t *testing.T) {
	server, _ := NewServer(setupTestEngine(t))
	ctx := context.Background()

	_, output, err := server.handleGetHistory(ctx, &mcp.CallToolRequest{}, getHistoryInput{})
	if err != nil {
		t.Fatalf("handleGetHistory failed: %v", err)
	}

	msg, ok := output.(map[string]interface{})
	if !ok {
		t.Fatalf("Expected message map for empty history, got %T", output)
	}
	if msg["message"] != "No check-ins found." {
		t.Errorf("Unexpected message: %v", msg["message"])
	}
}

func TestHandleGetTrend(t *testing.T) {
	server, _ := NewServer(setupTestEngine(t))
	ctx := context.Background()

	if _, _, err := server.handleLogEntry(ctx, &mcp.CallToolRequest{}, healthyInput()); err != nil {
		t.Fatalf("seed check-in failed: %v", err)
	}

	_, output, err := server.handleGetTrend(ctx, &mcp.CallToolRequest{}, getTrendInput{})
	if err != nil {
		t.Fatalf("handleGetTrend failed: %v", err)
	}
	if output == nil {
		t.Fatal("Expected non-nil trend summary")
	}
}

func TestHandleGetTrendEmpty(t *testing.T) {
	server, _ := NewServer(setupTestEngine(t))
	ctx := context.Background()

	_, output, err := server.handleGetTrend(ctx, &mcp.CallToolRequest{}, getTrendInput{})
	if err != nil {
		t.Fatalf("handleGetTrend failed: %v", err)
	}

	msg, ok := output.(map[string]interface{})
	if !ok {
		t.Fatalf("Expected message map for empty trend, got %T", output)
	}
	if msg["message"] != "No check-ins found." {
		t.Errorf("Unexpected message: %v", msg["message"])
	}
}

func TestHandlePredictRisk(t *testing.T) {
	server, _ := NewServer(setupTestEngine(t))
	ctx := context.Background()

	if _, _, err := server.handleLogEntry(ctx, &mcp.CallToolRequest{}, crisisInput()); err != nil {
		t.Fatalf("seed check-in failed: %v", err)
	}

	_, output, err := server.handlePredictRisk(ctx, &mcp.CallToolRequest{}, predictRiskInput{})
	if err != nil {
		t.Fatalf("handlePredictRisk failed: %v", err)
	}

	if output.RiskLevel != "high" {
		t.Errorf("Expected level high, got %q", output.RiskLevel)
	}
	if output.Suggestion == "" {
		t.Error("Expected a suggestion")
	}
}

func TestHandlePredictRiskEmpty(t *testing.T) {
	server, _ := NewServer(setupTestEngine(t))
	ctx := context.Background()

	_, _, err := server.handlePredictRisk(ctx, &mcp.CallToolRequest{}, predictRiskInput{})
	if err == nil {
		t.Error("Expected error for empty history")
	} else if !contains(err.Error(), "no check-ins") {
		t.Errorf("Expected no-data error, got: %v", err)
	}
}

func TestHandleAssessEntryDoesNotStore(t *testing.T) {
	server, _ := NewServer(setupTestEngine(t))
	ctx := context.Background()

	_, output, err := server.handleAssessEntry(ctx, &mcp.CallToolRequest{}, crisisInput())
	if err != nil {
		t.Fatalf("handleAssessEntry failed: %v", err)
	}
	if output.RiskScore != 1.0 {
		t.Errorf("Expected risk score 1.0, got %v", output.RiskScore)
	}
	if output.ID != "" {
		t.Errorf("Expected no stored ID for assessment, got %q", output.ID)
	}

	// History must be untouched
	_, histOut, err := server.handleGetHistory(ctx, &mcp.CallToolRequest{}, getHistoryInput{})
	if err != nil {
		t.Fatalf("handleGetHistory failed: %v", err)
	}
	if _, ok := histOut.(map[string]interface{}); !ok {
		t.Errorf("Expected empty history after assess, got %T", histOut)
	}
}

func TestHandleGetSuggestion(t *testing.T) {
	server, _ := NewServer(setupTestEngine(t))
	ctx := context.Background()

	for _, level := range []string{"low", "medium", "high"} {
		t.Run(level, func(t *testing.T) {
			_, output, err := server.handleGetSuggestion(ctx, &mcp.CallToolRequest{}, getSuggestionInput{Level: level})
			if err != nil {
				t.Fatalf("handleGetSuggestion failed: %v", err)
			}
			if output.Suggestion == "" {
				t.Error("Expected a suggestion")
			}
			if len(output.Alternatives) == 0 {
				t.Error("Expected alternatives")
			}
			if output.Alternatives[0] != output.Suggestion {
				t.Error("Expected primary suggestion to lead the alternatives")
			}
		})
	}
}

func TestHandleGetSuggestionInvalidLevel(t *testing.T) {
	server, _ := NewServer(setupTestEngine(t))
	ctx := context.Background()

	_, _, err := server.handleGetSuggestion(ctx, &mcp.CallToolRequest{}, getSuggestionInput{Level: "catastrophic"})
	if err == nil {
		t.Error("Expected error for unknown level")
	}
}

func TestHandleRecentResource(t *testing.T) {
	server, _ := NewServer(setupTestEngine(t))
	ctx := context.Background()

	if _, _, err := server.handleLogEntry(ctx, &mcp.CallToolRequest{}, healthyInput()); err != nil {
		t.Fatalf("seed check-in failed: %v", err)
	}

	result, err := server.handleRecentResource(ctx, &mcp.ReadResourceRequest{})
	if err != nil {
		t.Fatalf("handleRecentResource failed: %v", err)
	}

	if len(result.Contents) != 1 {
		t.Fatalf("Expected 1 content, got %d", len(result.Contents))
	}
	if result.Contents[0].URI != "mindguard://recent" {
		t.Errorf("Unexpected URI: %s", result.Contents[0].URI)
	}
	if !contains(result.Contents[0].Text, "assessment") {
		t.Error("Expected assessments in recent resource")
	}
}

func TestHandleTodayResourceFiltersOldData(t *testing.T) {
	server, _ := NewServer(setupTestEngine(t))
	ctx := context.Background()

	old := healthyInput()
	old.RecordedAt = time.Now().UTC().AddDate(0, 0, -3).Format(time.RFC3339)
	if _, _, err := server.handleLogEntry(ctx, &mcp.CallToolRequest{}, old); err != nil {
		t.Fatalf("seed old check-in failed: %v", err)
	}
	if _, _, err := server.handleLogEntry(ctx, &mcp.CallToolRequest{}, crisisInput()); err != nil {
		t.Fatalf("seed current check-in failed: %v", err)
	}

	result, err := server.handleTodayResource(ctx, &mcp.ReadResourceRequest{})
	if err != nil {
		t.Fatalf("handleTodayResource failed: %v", err)
	}

	text := result.Contents[0].Text
	if !contains(text, `"count": 1`) {
		t.Errorf("Expected exactly one check-in today, got: %s", text)
	}
}

func TestHandleSummaryResource(t *testing.T) {
	server, _ := NewServer(setupTestEngine(t))
	ctx := context.Background()

	if _, _, err := server.handleLogEntry(ctx, &mcp.CallToolRequest{}, crisisInput()); err != nil {
		t.Fatalf("seed check-in failed: %v", err)
	}

	result, err := server.handleSummaryResource(ctx, &mcp.ReadResourceRequest{})
	if err != nil {
		t.Fatalf("handleSummaryResource failed: %v", err)
	}

	text := result.Contents[0].Text
	if !contains(text, "trend") {
		t.Error("Expected trend summary in dashboard")
	}
	if !contains(text, "suggestion") {
		t.Error("Expected latest suggestion in dashboard")
	}
}

func TestHandleSummaryResourceEmpty(t *testing.T) {
	server, _ := NewServer(setupTestEngine(t))
	ctx := context.Background()

	result, err := server.handleSummaryResource(ctx, &mcp.ReadResourceRequest{})
	if err != nil {
		t.Fatalf("handleSummaryResource failed: %v", err)
	}

	text := result.Contents[0].Text
	if contains(text, `"latest"`) {
		t.Error("Expected no latest assessment for empty history")
	}
}

func contains(s, substr string) bool {
	return len(s) >= len(substr) && (s == substr || len(s) > 0 && containsImpl(s, substr))
}

func containsImpl(s, substr string) bool {
	for i := 0; i <= len(s)-len(substr); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}

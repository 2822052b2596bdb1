// ABOUTME: MCP tool implementations for check-in logging and risk scoring.
// ABOUTME: Exposes log, history, trend, prediction, and suggestion operations.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/harperreed/mindguard/internal/engine"
	"github.com/harperreed/mindguard/internal/models"
	"github.com/harperreed/mindguard/internal/risk"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// log_entry
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_entry",
		Description: "Record a daily behavioral check-in and get its risk assessment",
	}, s.handleLogEntry)

	// get_history
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_history",
		Description: "List recent check-ins in chronological order",
	}, s.handleGetHistory)

	// get_trend
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_trend",
		Description: "Summarize recent check-ins: per-metric means, risk series, and correlations",
	}, s.handleGetTrend)

	// predict_risk
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "predict_risk",
		Description: "Score the most recent check-in without recording anything",
	}, s.handlePredictRisk)

	// assess_entry
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "assess_entry",
		Description: "Score a hypothetical check-in without storing it",
	}, s.handleAssessEntry)

	// get_suggestion
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_suggestion",
		Description: "Get intervention suggestions for a risk level (low, medium, high)",
	}, s.handleGetSuggestion)
}

// Tool input/output types

type logEntryInput struct {
	SleepHours      float64 `json:"sleep_hours" jsonschema:"Hours slept (0-24)"`
	MoodScore       int     `json:"mood_score" jsonschema:"Self-reported mood (1-10)"`
	MessagesSent    int     `json:"messages_sent" jsonschema:"Messages sent today (>= 0)"`
	Steps           int     `json:"steps" jsonschema:"Step count (>= 0)"`
	ScreenTimeHours float64 `json:"screen_time_hours" jsonschema:"Screen time in hours (>= 0)"`
	RecordedAt      string  `json:"recorded_at,omitempty" jsonschema:"Timestamp (ISO 8601), defaults to now"`
	Notes           string  `json:"notes,omitempty" jsonschema:"Optional notes"`
}

type assessmentOutput struct {
	ID               string   `json:"id,omitempty"`
	RiskScore        float64  `json:"risk_score"`
	RiskLevel        string   `json:"risk_level"`
	TriggeredFactors []string `json:"triggered_factors"`
	Suggestion       string   `json:"suggestion"`
	Message          string   `json:"message"`
}

type getHistoryInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Max results (default 20)"`
}

type getTrendInput struct {
	Window int `json:"window,omitempty" jsonschema:"Number of recent check-ins to summarize (default 7)"`
}

type predictRiskInput struct{}

type getSuggestionInput struct {
	Level string `json:"level" jsonschema:"Risk level (low, medium, high)"`
}

type suggestionOutput struct {
	Level        string   `json:"level"`
	Suggestion   string   `json:"suggestion"`
	Alternatives []string `json:"alternatives"`
}

// Tool handlers

func (s *Server) handleLogEntry(ctx context.Context, req *mcp.CallToolRequest, input logEntryInput) (*mcp.CallToolResult, assessmentOutput, error) {
	in, err := entryInputFrom(input)
	if err != nil {
		return nil, assessmentOutput{}, err
	}

	sub, err := s.eng.Submit(in)
	if err != nil {
		return nil, assessmentOutput{}, fmt.Errorf("failed to log check-in: %w", err)
	}

	return nil, submissionOutput(sub, fmt.Sprintf("Logged check-in (ID: %s): risk %.2f (%s)",
		sub.Entry.ID.String()[:8], sub.Assessment.Score, sub.Assessment.Level)), nil
}

func (s *Server) handleGetHistory(ctx context.Context, req *mcp.CallToolRequest, input getHistoryInput) (*mcp.CallToolResult, any, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}

	entries, err := s.eng.History(input.Limit)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list check-ins: %w", err)
	}

	if len(entries) == 0 {
		return nil, map[string]interface{}{"message": "No check-ins found."}, nil
	}

	return nil, entries, nil
}

func (s *Server) handleGetTrend(ctx context.Context, req *mcp.CallToolRequest, input getTrendInput) (*mcp.CallToolResult, any, error) {
	summary, err := s.eng.Trend(input.Window)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to summarize trend: %w", err)
	}

	if summary.Count == 0 {
		return nil, map[string]interface{}{"message": "No check-ins found."}, nil
	}

	return nil, summary, nil
}

func (s *Server) handlePredictRisk(ctx context.Context, req *mcp.CallToolRequest, input predictRiskInput) (*mcp.CallToolResult, assessmentOutput, error) {
	sub, err := s.eng.PredictLatest()
	if err != nil {
		if errors.Is(err, engine.ErrNoData) {
			return nil, assessmentOutput{}, fmt.Errorf("no check-ins recorded yet")
		}
		return nil, assessmentOutput{}, fmt.Errorf("failed to score latest check-in: %w", err)
	}

	return nil, submissionOutput(sub, fmt.Sprintf("Latest check-in (%s): risk %.2f (%s)",
		sub.Entry.RecordedAt.Format("2006-01-02"), sub.Assessment.Score, sub.Assessment.Level)), nil
}

func (s *Server) handleAssessEntry(ctx context.Context, req *mcp.CallToolRequest, input logEntryInput) (*mcp.CallToolResult, assessmentOutput, error) {
	in, err := entryInputFrom(input)
	if err != nil {
		return nil, assessmentOutput{}, err
	}

	sub, err := s.eng.Assess(in)
	if err != nil {
		return nil, assessmentOutput{}, fmt.Errorf("failed to assess check-in: %w", err)
	}

	out := submissionOutput(sub, fmt.Sprintf("Hypothetical check-in: risk %.2f (%s)",
		sub.Assessment.Score, sub.Assessment.Level))
	out.ID = "" // nothing was stored
	return nil, out, nil
}

func (s *Server) handleGetSuggestion(ctx context.Context, req *mcp.CallToolRequest, input getSuggestionInput) (*mcp.CallToolResult, suggestionOutput, error) {
	if !risk.IsValidLevel(input.Level) {
		return nil, suggestionOutput{}, fmt.Errorf("unknown risk level: %s", input.Level)
	}

	level := risk.Level(input.Level)
	return nil, suggestionOutput{
		Level:        string(level),
		Suggestion:   s.eng.Suggestion(level),
		Alternatives: s.eng.Suggestions(level),
	}, nil
}

// entryInputFrom maps the tool payload onto the validation input, parsing
// the optional timestamp.
func entryInputFrom(input logEntryInput) (models.EntryInput, error) {
	in := models.EntryInput{
		SleepHours:      input.SleepHours,
		MoodScore:       input.MoodScore,
		MessagesSent:    input.MessagesSent,
		Steps:           input.Steps,
		ScreenTimeHours: input.ScreenTimeHours,
		Notes:           input.Notes,
	}

	if input.RecordedAt != "" {
		t, err := time.Parse(time.RFC3339, input.RecordedAt)
		if err != nil {
			t, err = time.Parse("2006-01-02 15:04", input.RecordedAt)
		}
		if err != nil {
			return models.EntryInput{}, fmt.Errorf("invalid recorded_at: %s", input.RecordedAt)
		}
		in.RecordedAt = t
	}

	return in, nil
}

// submissionOutput flattens a submission into the shared tool output shape.
func submissionOutput(sub *engine.Submission, message string) assessmentOutput {
	return assessmentOutput{
		ID:               sub.Entry.ID.String()[:8],
		RiskScore:        sub.Assessment.Score,
		RiskLevel:        string(sub.Assessment.Level),
		TriggeredFactors: sub.Assessment.TriggeredFactors,
		Suggestion:       sub.Suggestion,
		Message:          message,
	}
}

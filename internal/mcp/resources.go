// ABOUTME: MCP resource implementations for check-in history.
// ABOUTME: Provides mindguard://recent, mindguard://today, and mindguard://summary.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/harperreed/mindguard/internal/models"
	"github.com/harperreed/mindguard/internal/risk"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// mindguard://recent - Last 10 check-ins with assessments
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "mindguard://recent",
		Name:        "Recent Check-ins",
		Description: "Last 10 check-ins with their risk assessments",
		MIMEType:    "application/json",
	}, s.handleRecentResource)

	// mindguard://today - Check-ins recorded today
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "mindguard://today",
		Name:        "Today's Check-ins",
		Description: "All check-ins recorded today",
		MIMEType:    "application/json",
	}, s.handleTodayResource)

	// mindguard://summary - Latest assessment plus trend over the default window
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "mindguard://summary",
		Name:        "Risk Summary Dashboard",
		Description: "Latest risk assessment, suggestion, and trend summary",
		MIMEType:    "application/json",
	}, s.handleSummaryResource)
}

// assessedEntry pairs a stored check-in with its computed assessment.
type assessedEntry struct {
	Entry      *models.Entry   `json:"entry"`
	Assessment risk.Assessment `json:"assessment"`
}

func assessEntries(entries []*models.Entry) []assessedEntry {
	out := make([]assessedEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, assessedEntry{Entry: e, Assessment: risk.Score(e)})
	}
	return out
}

func resourceResult(uri string, payload interface{}) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// Resource handlers

func (s *Server) handleRecentResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	entries, err := s.eng.History(10)
	if err != nil {
		return nil, fmt.Errorf("failed to list check-ins: %w", err)
	}

	result := map[string]interface{}{
		"entries": assessEntries(entries),
		"count":   len(entries),
	}

	return resourceResult("mindguard://recent", result)
}

func (s *Server) handleTodayResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	now := time.Now().UTC()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	entries, err := s.eng.History(1000)
	if err != nil {
		return nil, fmt.Errorf("failed to list check-ins: %w", err)
	}

	var today []*models.Entry
	for _, e := range entries {
		if e.RecordedAt.After(todayStart) || e.RecordedAt.Equal(todayStart) {
			today = append(today, e)
		}
	}

	result := map[string]interface{}{
		"date":    todayStart.Format("2006-01-02"),
		"entries": assessEntries(today),
		"count":   len(today),
	}

	return resourceResult("mindguard://today", result)
}

func (s *Server) handleSummaryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	summary, err := s.eng.Trend(0)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize trend: %w", err)
	}

	result := map[string]interface{}{
		"generated_at": time.Now().Format(time.RFC3339),
		"trend":        summary,
	}

	if sub, err := s.eng.PredictLatest(); err == nil {
		result["latest"] = map[string]interface{}{
			"entry":      sub.Entry,
			"assessment": sub.Assessment,
			"suggestion": sub.Suggestion,
		}
	}

	return resourceResult("mindguard://summary", result)
}

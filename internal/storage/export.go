// ABOUTME: Export and import functionality for check-in history.
// ABOUTME: Supports JSON, YAML, and Markdown export formats across backends.
package storage

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/harperreed/mindguard/internal/models"
	"github.com/harperreed/mindguard/internal/risk"
	"gopkg.in/yaml.v3"
)

// ExportData represents the full export format for check-in history.
type ExportData struct {
	Version    string          `json:"version" yaml:"version"`
	ExportedAt time.Time       `json:"exported_at" yaml:"exported_at"`
	Tool       string          `json:"tool" yaml:"tool"`
	Entries    []*models.Entry `json:"entries" yaml:"entries"`
}

// GetAllData retrieves all data for export.
func (d *DB) GetAllData() (*ExportData, error) {
	return exportAll(d)
}

// ImportData imports data from an export file.
func (d *DB) ImportData(data *ExportData) error {
	return importAll(d, data)
}

// GetAllData retrieves all data for export.
func (s *MemoryStore) GetAllData() (*ExportData, error) {
	return exportAll(s)
}

// ImportData imports data from an export file.
func (s *MemoryStore) ImportData(data *ExportData) error {
	return importAll(s, data)
}

// NewExportData wraps entries in the versioned export envelope.
func NewExportData(entries []*models.Entry) *ExportData {
	return &ExportData{
		Version:    "1.0",
		ExportedAt: time.Now(),
		Tool:       "mindguard",
		Entries:    entries,
	}
}

// exportAll builds the export envelope from any backend.
func exportAll(r Repository) (*ExportData, error) {
	entries, err := r.All()
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	return NewExportData(entries), nil
}

// importAll appends exported entries in chronological order. Entries older
// than the current history tail are rejected by the ordering invariant.
func importAll(r Repository, data *ExportData) error {
	for _, e := range data.Entries {
		if err := r.AppendEntry(e); err != nil {
			return fmt.Errorf("import entry %s: %w", e.ID.String()[:8], err)
		}
	}
	return nil
}

// ExportJSON exports all data as JSON.
func ExportJSON(r Repository) ([]byte, error) {
	data, err := r.GetAllData()
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(data, "", "  ")
}

// ExportYAML exports all data as YAML.
func ExportYAML(r Repository) ([]byte, error) {
	data, err := r.GetAllData()
	if err != nil {
		return nil, err
	}

	yamlData := struct {
		Version    string      `yaml:"version"`
		ExportedAt string      `yaml:"exported_at"`
		Tool       string      `yaml:"tool"`
		Entries    []yamlEntry `yaml:"entries"`
	}{
		Version:    data.Version,
		ExportedAt: data.ExportedAt.Format(time.RFC3339),
		Tool:       data.Tool,
		Entries:    make([]yamlEntry, 0, len(data.Entries)),
	}

	for _, e := range data.Entries {
		a := risk.Score(e)
		ye := yamlEntry{
			ID:              e.ID.String()[:8],
			RecordedAt:      e.RecordedAt.Format(time.RFC3339),
			SleepHours:      e.SleepHours,
			MoodScore:       e.MoodScore,
			MessagesSent:    e.MessagesSent,
			Steps:           e.Steps,
			ScreenTimeHours: e.ScreenTimeHours,
			RiskScore:       a.Score,
			RiskLevel:       string(a.Level),
		}
		if e.Notes != nil {
			ye.Notes = *e.Notes
		}
		yamlData.Entries = append(yamlData.Entries, ye)
	}

	return yaml.Marshal(yamlData)
}

type yamlEntry struct {
	ID              string  `yaml:"id"`
	RecordedAt      string  `yaml:"recorded_at"`
	SleepHours      float64 `yaml:"sleep_hours"`
	MoodScore       int     `yaml:"mood_score"`
	MessagesSent    int     `yaml:"messages_sent"`
	Steps           int     `yaml:"steps"`
	ScreenTimeHours float64 `yaml:"screen_time_hours"`
	RiskScore       float64 `yaml:"risk_score"`
	RiskLevel       string  `yaml:"risk_level"`
	Notes           string  `yaml:"notes,omitempty"`
}

// ExportMarkdown exports history as a Markdown table with risk assessments.
// A non-nil since filters to entries recorded at or after that time.
func ExportMarkdown(r Repository, since *time.Time) (string, error) {
	entries, err := r.All()
	if err != nil {
		return "", err
	}

	if since != nil {
		var filtered []*models.Entry
		for _, e := range entries {
			if e.RecordedAt.After(*since) || e.RecordedAt.Equal(*since) {
				filtered = append(filtered, e)
			}
		}
		entries = filtered
	}

	var b strings.Builder
	b.WriteString("# MindGuard Check-in History\n\n")
	b.WriteString(fmt.Sprintf("Exported %s\n\n", time.Now().Format("2006-01-02 15:04")))

	if len(entries) == 0 {
		b.WriteString("No entries.\n")
		return b.String(), nil
	}

	b.WriteString("| Date | Sleep (h) | Mood | Messages | Steps | Screen (h) | Risk | Level | Notes |\n")
	b.WriteString("|------|-----------|------|----------|-------|------------|------|-------|-------|\n")
	for _, e := range entries {
		a := risk.Score(e)
		notes := ""
		if e.Notes != nil {
			notes = strings.ReplaceAll(*e.Notes, "|", "\\|")
		}
		b.WriteString(fmt.Sprintf("| %s | %.1f | %d | %d | %d | %.1f | %.2f | %s | %s |\n",
			e.RecordedAt.Format("2006-01-02"),
			e.SleepHours,
			e.MoodScore,
			e.MessagesSent,
			e.Steps,
			e.ScreenTimeHours,
			a.Score,
			a.Level,
			notes))
	}

	return b.String(), nil
}

// ABOUTME: Markdown-file Repository implementation for human-readable journals.
// ABOUTME: One file per entry with YAML frontmatter, organized by year/month.
package storage

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/mindguard/internal/models"
	"gopkg.in/yaml.v3"
)

// MarkdownStore provides file-based storage for check-in entries using
// markdown files. Files are plain text so a journal stays readable and
// greppable without the tool.
type MarkdownStore struct {
	dataDir string
	now     func() time.Time
}

// Compile-time check that MarkdownStore implements Repository.
var _ Repository = (*MarkdownStore)(nil)

// NewMarkdownStore creates a new markdown-backed store rooted at dataDir.
func NewMarkdownStore(dataDir string) (*MarkdownStore, error) {
	if err := os.MkdirAll(dataDir, 0750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &MarkdownStore{dataDir: dataDir, now: time.Now}, nil
}

// WithClock overrides the wall-clock source used for timestamp assignment.
func (s *MarkdownStore) WithClock(now func() time.Time) *MarkdownStore {
	s.now = now
	return s
}

// Close releases resources. For MarkdownStore this is a no-op.
func (s *MarkdownStore) Close() error {
	return nil
}

// entriesDir returns the path to the entries directory.
func (s *MarkdownStore) entriesDir() string {
	return filepath.Join(s.dataDir, "entries")
}

// entryFilePath returns the path for an entry file based on date and ID.
// Format: entries/YYYY/MM/YYYY-MM-DD-<id_prefix>.md.
func (s *MarkdownStore) entryFilePath(recordedAt time.Time, id uuid.UUID) string {
	year := recordedAt.Format("2006")
	month := recordedAt.Format("01")
	date := recordedAt.Format("2006-01-02")
	return filepath.Join(s.entriesDir(), year, month,
		fmt.Sprintf("%s-%s.md", date, id.String()[:8]))
}

// entryFrontmatter holds the YAML frontmatter of an entry file.
type entryFrontmatter struct {
	ID              string  `yaml:"id"`
	SleepHours      float64 `yaml:"sleep_hours"`
	MoodScore       int     `yaml:"mood_score"`
	MessagesSent    int     `yaml:"messages_sent"`
	Steps           int     `yaml:"steps"`
	ScreenTimeHours float64 `yaml:"screen_time_hours"`
	RecordedAt      string  `yaml:"recorded_at"`
	CreatedAt       string  `yaml:"created_at"`
}

// AppendEntry writes a new entry file, assigning the timestamp when unset
// and rejecting recorded_at regressions with ErrOutOfOrder.
func (s *MarkdownStore) AppendEntry(e *models.Entry) error {
	if e.RecordedAt.IsZero() {
		e.RecordedAt = s.now()
	}
	e.RecordedAt = e.RecordedAt.UTC()

	entries, err := s.loadAll()
	if err != nil {
		return fmt.Errorf("append entry: %w", err)
	}
	if n := len(entries); n > 0 && e.RecordedAt.Before(entries[n-1].RecordedAt) {
		return fmt.Errorf("append entry at %s: %w", e.RecordedAt.Format(time.RFC3339), ErrOutOfOrder)
	}

	fm := entryFrontmatter{
		ID:              e.ID.String(),
		SleepHours:      e.SleepHours,
		MoodScore:       e.MoodScore,
		MessagesSent:    e.MessagesSent,
		Steps:           e.Steps,
		ScreenTimeHours: e.ScreenTimeHours,
		RecordedAt:      e.RecordedAt.Format(time.RFC3339),
		CreatedAt:       e.CreatedAt.UTC().Format(time.RFC3339),
	}

	fmBytes, err := yaml.Marshal(fm)
	if err != nil {
		return fmt.Errorf("marshal frontmatter: %w", err)
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(fmBytes)
	b.WriteString("---\n")
	if e.Notes != nil && *e.Notes != "" {
		b.WriteString("\n")
		b.WriteString(*e.Notes)
		b.WriteString("\n")
	}

	path := s.entryFilePath(e.RecordedAt, e.ID)
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("create entry directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(b.String()), 0600); err != nil {
		return fmt.Errorf("write entry file: %w", err)
	}
	return nil
}

// GetEntry retrieves an entry by ID or ID prefix.
func (s *MarkdownStore) GetEntry(idOrPrefix string) (*models.Entry, error) {
	entries, err := s.loadAll()
	if err != nil {
		return nil, err
	}

	var matches []*models.Entry
	for _, e := range entries {
		if strings.HasPrefix(e.ID.String(), idOrPrefix) {
			matches = append(matches, e)
		}
	}

	if len(matches) == 0 {
		return nil, fmt.Errorf("%s: %w", idOrPrefix, ErrNotFound)
	}
	if len(matches) > 1 {
		return nil, fmt.Errorf("ambiguous prefix %s: matches multiple records", idOrPrefix)
	}
	return matches[0], nil
}

// Latest returns the n most recently appended entries in chronological order.
func (s *MarkdownStore) Latest(n int) ([]*models.Entry, error) {
	entries, err := s.loadAll()
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		return []*models.Entry{}, nil
	}
	start := len(entries) - n
	if start < 0 {
		start = 0
	}
	return entries[start:], nil
}

// All returns the full history in chronological order.
func (s *MarkdownStore) All() ([]*models.Entry, error) {
	return s.loadAll()
}

// GetAllData retrieves all data for export.
func (s *MarkdownStore) GetAllData() (*ExportData, error) {
	return exportAll(s)
}

// ImportData imports data from an export file.
func (s *MarkdownStore) ImportData(data *ExportData) error {
	return importAll(s, data)
}

// loadAll reads every entry file and returns entries in chronological order.
func (s *MarkdownStore) loadAll() ([]*models.Entry, error) {
	var entries []*models.Entry

	root := s.entriesDir()
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".md") {
			return nil
		}

		e, err := s.readEntryFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		entries = append(entries, e)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].RecordedAt.Equal(entries[j].RecordedAt) {
			return entries[i].CreatedAt.Before(entries[j].CreatedAt)
		}
		return entries[i].RecordedAt.Before(entries[j].RecordedAt)
	})
	return entries, nil
}

// readEntryFile parses a single entry file into an Entry.
func (s *MarkdownStore) readEntryFile(path string) (*models.Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	fmText, body, err := splitFrontmatter(string(data))
	if err != nil {
		return nil, err
	}

	var fm entryFrontmatter
	if err := yaml.Unmarshal([]byte(fmText), &fm); err != nil {
		return nil, fmt.Errorf("parse frontmatter: %w", err)
	}

	id, err := uuid.Parse(fm.ID)
	if err != nil {
		return nil, fmt.Errorf("parse id %q: %w", fm.ID, err)
	}
	recordedAt, err := time.Parse(time.RFC3339, fm.RecordedAt)
	if err != nil {
		return nil, fmt.Errorf("parse recorded_at %q: %w", fm.RecordedAt, err)
	}
	createdAt, _ := time.Parse(time.RFC3339, fm.CreatedAt)

	e := &models.Entry{
		ID:              id,
		SleepHours:      fm.SleepHours,
		MoodScore:       fm.MoodScore,
		MessagesSent:    fm.MessagesSent,
		Steps:           fm.Steps,
		ScreenTimeHours: fm.ScreenTimeHours,
		RecordedAt:      recordedAt,
		CreatedAt:       createdAt,
	}
	if body = strings.TrimSpace(body); body != "" {
		e.Notes = &body
	}
	return e, nil
}

// splitFrontmatter separates the YAML frontmatter block from the body.
func splitFrontmatter(content string) (frontmatter, body string, err error) {
	if !strings.HasPrefix(content, "---\n") {
		return "", "", fmt.Errorf("missing frontmatter delimiter")
	}
	rest := content[len("---\n"):]
	end := strings.Index(rest, "\n---\n")
	if end < 0 {
		// Frontmatter may close at the end of the file.
		if strings.HasSuffix(rest, "\n---") {
			return rest[:len(rest)-len("\n---")], "", nil
		}
		return "", "", fmt.Errorf("unterminated frontmatter")
	}
	return rest[:end+1], rest[end+len("\n---\n"):], nil
}

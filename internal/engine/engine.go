// ABOUTME: Engine facade tying validation, storage, scoring, and trends together.
// ABOUTME: The narrow interface consumed by the CLI and MCP collaborators.

// Package engine exposes the core check-in operations behind a single
// facade: submit a raw check-in, read history windows, derive trends, and
// fetch intervention suggestions. All mutation funnels through the
// repository's append; everything else is a pure computation.
package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/harperreed/mindguard/internal/models"
	"github.com/harperreed/mindguard/internal/risk"
	"github.com/harperreed/mindguard/internal/storage"
	"github.com/harperreed/mindguard/internal/trend"
)

// DefaultWindow is the history window size used when the caller does not
// specify one.
const DefaultWindow = 7

// ErrNoData is returned when an operation needs stored history and none
// exists yet.
var ErrNoData = errors.New("no check-in data available")

// Engine wraps a repository with the scoring and aggregation operations.
type Engine struct {
	repo storage.Repository
	now  func() time.Time
}

// New creates an Engine over the given repository.
func New(repo storage.Repository) *Engine {
	return &Engine{repo: repo, now: time.Now}
}

// WithClock overrides the wall-clock source used for timestamp assignment.
func (g *Engine) WithClock(now func() time.Time) *Engine {
	g.now = now
	return g
}

// Submission is the result of a successful submit: the stored entry plus
// its assessment and the suggestion for the assessed level.
type Submission struct {
	Entry      *models.Entry   `json:"entry"`
	Assessment risk.Assessment `json:"assessment"`
	Suggestion string          `json:"suggestion"`
}

// Submit validates a raw check-in, appends it to history, and scores it.
// Validation failures surface as *models.ValidationError with no mutation;
// backdated timestamps surface as storage.ErrOutOfOrder.
func (g *Engine) Submit(in models.EntryInput) (*Submission, error) {
	e, err := models.NewEntryFromInput(in)
	if err != nil {
		return nil, err
	}
	if e.RecordedAt.IsZero() {
		e.RecordedAt = g.now()
	}

	if err := g.repo.AppendEntry(e); err != nil {
		return nil, fmt.Errorf("store check-in: %w", err)
	}

	a := risk.Score(e)
	return &Submission{
		Entry:      e,
		Assessment: a,
		Suggestion: risk.Suggest(a.Level),
	}, nil
}

// History returns the last n entries in chronological order.
func (g *Engine) History(n int) ([]*models.Entry, error) {
	return g.repo.Latest(n)
}

// Trend summarizes the last n entries. n defaults to DefaultWindow when
// zero or negative.
func (g *Engine) Trend(n int) (trend.Summary, error) {
	if n <= 0 {
		n = DefaultWindow
	}
	window, err := g.repo.Latest(n)
	if err != nil {
		return trend.Summary{}, fmt.Errorf("read window: %w", err)
	}
	return trend.Summarize(window), nil
}

// PredictLatest scores the most recent stored entry without mutating
// history. Returns ErrNoData when no entries exist.
func (g *Engine) PredictLatest() (*Submission, error) {
	window, err := g.repo.Latest(1)
	if err != nil {
		return nil, fmt.Errorf("read latest: %w", err)
	}
	if len(window) == 0 {
		return nil, ErrNoData
	}

	e := window[0]
	a := risk.Score(e)
	return &Submission{
		Entry:      e,
		Assessment: a,
		Suggestion: risk.Suggest(a.Level),
	}, nil
}

// Assess scores a raw check-in without storing it. Useful for what-if
// queries from the CLI and MCP surface.
func (g *Engine) Assess(in models.EntryInput) (*Submission, error) {
	e, err := models.NewEntryFromInput(in)
	if err != nil {
		return nil, err
	}
	a := risk.Score(e)
	return &Submission{
		Entry:      e,
		Assessment: a,
		Suggestion: risk.Suggest(a.Level),
	}, nil
}

// Suggestion returns the primary intervention suggestion for a level.
func (g *Engine) Suggestion(level risk.Level) string {
	return risk.Suggest(level)
}

// Suggestions returns the full ranked suggestion list for a level.
func (g *Engine) Suggestions(level risk.Level) []string {
	return risk.Suggestions(level)
}

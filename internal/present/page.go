// Package present holds the Presenter implementations used by the HTTP
// surface: an HTML results area and a plain recorder.
package present

import (
	"bytes"
	"html/template"
	"io"
	"log/slog"
	"sync"

	"sunwatch/internal/types"
)

// Column titles of the two-day display
const (
	TodayTitle    = "Today's Data"
	TomorrowTitle = "Tomorrow's Data"
)

// PageState is a snapshot of the results area
type PageState struct {
	PlaceholderVisible bool
	ResultsVisible     bool
	Content            template.HTML
}

// Page models the results container, its placeholder and its content.
// It starts with the placeholder showing and no results.
type Page struct {
	mu     sync.Mutex
	state  PageState // GUARDED_BY(mu)
	logger *slog.Logger
}

func NewPage(logger *slog.Logger) *Page {
	return &Page{
		state:  PageState{PlaceholderVisible: true},
		logger: logger.With("component", "page-presenter"),
	}
}

type column struct {
	Title string
	Day   types.DayRecord
}

// ShowSuccess renders both days side by side and hides the placeholder
func (p *Page) ShowSuccess(today, tomorrow types.DayRecord, timezone string) {
	var buf bytes.Buffer
	err := resultTemplate.Execute(&buf, struct {
		Columns  []column
		Timezone string
	}{
		Columns: []column{
			{Title: TodayTitle, Day: today},
			{Title: TomorrowTitle, Day: tomorrow},
		},
		Timezone: timezone,
	})
	if err != nil {
		p.logger.Error("failed to render result", "error", err)
		p.ShowError("failed to render result")
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.state = PageState{
		PlaceholderVisible: false,
		ResultsVisible:     true,
		Content:            template.HTML(buf.String()),
	}
}

// ShowError replaces the content with message and reveals the results
// area. The placeholder is left as it was.
func (p *Page) ShowError(message string) {
	var buf bytes.Buffer
	if err := errorTemplate.Execute(&buf, message); err != nil {
		p.logger.Error("failed to render error", "error", err)
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.state.Content = template.HTML(buf.String())
	p.state.ResultsVisible = true
}

// Reset clears the content, hides the results and shows the placeholder
func (p *Page) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state = PageState{PlaceholderVisible: true}
}

// State returns a snapshot of the results area
func (p *Page) State() PageState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Render writes the whole widget page. query refills the search box.
func (p *Page) Render(w io.Writer, query string) error {
	s := p.State()
	return pageTemplate.Execute(w, struct {
		PageState
		Query string
	}{
		PageState: s,
		Query:     query,
	})
}

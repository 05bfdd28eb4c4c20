package present

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"sunwatch/internal/types"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleDay(sunrise string) types.DayRecord {
	return types.DayRecord{
		Sunrise:   sunrise,
		Sunset:    "9:58:05 PM",
		Dawn:      "5:02:58 AM",
		Dusk:      "10:41:56 PM",
		DayLength: "16:11:16",
		SolarNoon: "1:52:27 PM",
	}
}

func TestPage_InitialState(t *testing.T) {
	s := NewPage(discardLogger()).State()
	if !s.PlaceholderVisible || s.ResultsVisible || s.Content != "" {
		t.Errorf("initial state = %+v, want placeholder only", s)
	}
}

func TestPage_ShowSuccess(t *testing.T) {
	page := NewPage(discardLogger())
	page.ShowSuccess(sampleDay("5:46:49 AM"), sampleDay("5:47:20 AM"), "Europe/Paris")

	s := page.State()
	if s.PlaceholderVisible {
		t.Error("placeholder visible after success")
	}
	if !s.ResultsVisible {
		t.Error("results hidden after success")
	}

	content := string(s.Content)
	for _, want := range []string{
		"Today&#39;s Data",
		"Tomorrow&#39;s Data",
		"Sunrise: 5:46:49 AM",
		"Sunrise: 5:47:20 AM",
		"Day Length: 16:11:16",
		"Solar Noon: 1:52:27 PM",
		"Timezone: Europe/Paris",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("content missing %q:\n%s", want, content)
		}
	}

	if strings.Index(content, "5:46:49 AM") > strings.Index(content, "5:47:20 AM") {
		t.Error("today column is not rendered before tomorrow")
	}
}

func TestPage_ShowError(t *testing.T) {
	tests := []struct {
		name            string
		before          func(*Page)
		wantPlaceholder bool
	}{
		{
			name:            "from initial state keeps placeholder",
			before:          func(*Page) {},
			wantPlaceholder: true,
		},
		{
			name: "after success keeps placeholder hidden",
			before: func(p *Page) {
				p.ShowSuccess(sampleDay("a"), sampleDay("b"), "UTC")
			},
			wantPlaceholder: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := NewPage(discardLogger())
			tt.before(page)
			page.ShowError("Location not found")

			s := page.State()
			if got, want := string(s.Content), `<p class="error">Location not found</p>`; got != want {
				t.Errorf("Content = %q, want %q", got, want)
			}
			if !s.ResultsVisible {
				t.Error("results hidden after error")
			}
			if s.PlaceholderVisible != tt.wantPlaceholder {
				t.Errorf("PlaceholderVisible = %v, want %v", s.PlaceholderVisible, tt.wantPlaceholder)
			}
		})
	}
}

func TestPage_ShowError_EscapesMarkup(t *testing.T) {
	page := NewPage(discardLogger())
	page.ShowError(`<script>alert("x")</script>`)

	if strings.Contains(string(page.State().Content), "<script>") {
		t.Errorf("error message not escaped: %s", page.State().Content)
	}
}

func TestPage_Reset(t *testing.T) {
	page := NewPage(discardLogger())
	page.ShowSuccess(sampleDay("a"), sampleDay("b"), "UTC")
	page.Reset()

	s := page.State()
	if !s.PlaceholderVisible || s.ResultsVisible || s.Content != "" {
		t.Errorf("state after Reset = %+v, want placeholder only", s)
	}
}

func TestPage_Render(t *testing.T) {
	page := NewPage(discardLogger())

	var buf bytes.Buffer
	if err := page.Render(&buf, `Paris "centre"`); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	html := buf.String()

	if !strings.Contains(html, `<div id="placeholder">`) {
		t.Error("placeholder not visible on empty page")
	}
	if !strings.Contains(html, `<div id="results" class="hidden">`) {
		t.Error("results not hidden on empty page")
	}
	if !strings.Contains(html, `value="Paris &#34;centre&#34;"`) {
		t.Errorf("query not refilled and escaped:\n%s", html)
	}

	page.ShowSuccess(sampleDay("5:46:49 AM"), sampleDay("5:47:20 AM"), "Europe/Paris")
	buf.Reset()
	if err := page.Render(&buf, "Paris"); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	html = buf.String()
	if !strings.Contains(html, `<div id="placeholder" class="hidden">`) {
		t.Error("placeholder visible with results")
	}
	if !strings.Contains(html, "Sunrise: 5:46:49 AM") {
		t.Error("result content missing from page")
	}
}

func TestRecorder(t *testing.T) {
	r := NewRecorder()
	if r.Outcome().Presented {
		t.Fatal("new recorder reports a presented outcome")
	}

	r.Reset()
	r.ShowSuccess(sampleDay("a"), sampleDay("b"), "UTC")
	got := r.Outcome()
	if !got.Presented || !got.Success || got.Today.Sunrise != "a" || got.Tomorrow.Sunrise != "b" || got.Timezone != "UTC" {
		t.Errorf("Outcome() = %+v", got)
	}

	r.Reset()
	r.ShowError("boom")
	got = r.Outcome()
	if got.Success || got.Message != "boom" || got.Resets != 2 {
		t.Errorf("Outcome() = %+v", got)
	}
}

// Package pipeline orchestrates geocoding, timezone resolution and the sun
// data fetch for one location request, and hands the outcome to a Presenter.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"sunwatch/internal/geocode"
	"sunwatch/internal/sundata"
	"sunwatch/internal/timezone"
	"sunwatch/internal/types"
)

const (
	// EmptyInputMessage is reported when a search has no location text
	EmptyInputMessage = "Please enter a location"
	// UnsupportedMessage is reported when no location source is available
	UnsupportedMessage = "Geolocation is not supported"
)

// Result is the terminal outcome of an invocation
type Result struct {
	Invocation uint64
	State      State // Done or Failed
	Today      types.DayRecord
	Tomorrow   types.DayRecord
	Timezone   string
	Message    string // set when State is Failed
	Err        error  // cause of the failure, nil for empty input
	Superseded bool   // a newer invocation started first; nothing was presented
}

// OK reports whether the invocation produced both day records
func (r Result) OK() bool {
	return r.State == Done
}

// Pipeline runs location requests against a single Presenter. Invocations
// may overlap; only the most recent one is allowed to reach the Presenter.
type Pipeline struct {
	geocoder  geocode.Service
	timezones timezone.Service
	sunData   sundata.Service
	presenter Presenter
	logger    *slog.Logger

	mu     sync.Mutex
	latest uint64 // GUARDED_BY(mu)
	state  State  // GUARDED_BY(mu), state of the latest invocation
}

// New creates a pipeline. All services and the presenter are required.
func New(
	geocoder geocode.Service,
	timezones timezone.Service,
	sunData sundata.Service,
	presenter Presenter,
	logger *slog.Logger,
) *Pipeline {
	return &Pipeline{
		geocoder:  geocoder,
		timezones: timezones,
		sunData:   sunData,
		presenter: presenter,
		logger:    logger.With("component", "pipeline"),
	}
}

// State returns the state of the most recent invocation
func (p *Pipeline) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Search resolves free text to coordinates and continues from there.
// Empty text fails before any network call.
func (p *Pipeline) Search(ctx context.Context, text string) Result {
	id := p.begin()
	query := strings.TrimSpace(text)

	p.logger.Debug("search requested", "invocation", id, "query", query)

	if query == "" {
		return p.fail(id, EmptyInputMessage, nil)
	}

	p.transition(id, Geocoding)
	coords, err := p.geocoder.Resolve(ctx, query)
	if err != nil {
		return p.fail(id, err.Error(), err)
	}

	return p.resolve(ctx, id, coords)
}

// Locate asks source for the device position and continues from there,
// skipping geocoding. A nil source means geolocation is unavailable.
func (p *Pipeline) Locate(ctx context.Context, source LocationSource) Result {
	id := p.begin()

	p.logger.Debug("geolocation requested", "invocation", id)

	if source == nil {
		return p.fail(id, UnsupportedMessage, nil)
	}

	coords, err := source.CurrentPosition(ctx)
	if err != nil {
		return p.fail(id, fmt.Sprintf("Geolocation error: %v", err), err)
	}

	p.logger.Debug("device position", "invocation", id, "latitude", coords.Latitude, "longitude", coords.Longitude)

	return p.resolve(ctx, id, coords)
}

func (p *Pipeline) resolve(ctx context.Context, id uint64, coords types.Coords) Result {
	p.transition(id, ResolvingTimezone)
	tz := p.timezones.Resolve(ctx, coords)

	p.transition(id, FetchingSunData)
	today, tomorrow, err := p.sunData.FetchPair(ctx, coords, tz)
	if err != nil {
		return p.fail(id, err.Error(), err)
	}

	res := Result{
		Invocation: id,
		State:      Done,
		Today:      today,
		Tomorrow:   tomorrow,
		Timezone:   tz,
	}
	res.Superseded = !p.finish(id, Done, func(pr Presenter) {
		pr.ShowSuccess(today, tomorrow, tz)
	})
	return res
}

// begin starts a new invocation, superseding any in flight, and clears the
// presenter. Both entry points clear up front.
func (p *Pipeline) begin() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.latest++
	p.state = Idle
	p.presenter.Reset()
	return p.latest
}

func (p *Pipeline) transition(id uint64, s State) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if id != p.latest {
		p.logger.Debug("stale invocation progressed", "invocation", id, "state", s.String())
		return
	}
	p.state = s
	p.logger.Debug("pipeline transition", "invocation", id, "state", s.String())
}

func (p *Pipeline) fail(id uint64, message string, err error) Result {
	if err != nil {
		p.logger.Warn("pipeline failed", "invocation", id, "message", message, "error", err)
	}
	res := Result{
		Invocation: id,
		State:      Failed,
		Message:    message,
		Err:        err,
	}
	res.Superseded = !p.finish(id, Failed, func(pr Presenter) {
		pr.ShowError(message)
	})
	return res
}

// finish applies the terminal state and the presenter write if id is still
// the latest invocation. It reports whether the write happened.
func (p *Pipeline) finish(id uint64, s State, write func(Presenter)) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if id != p.latest {
		p.logger.Debug("dropping stale completion", "invocation", id, "latest", p.latest, "state", s.String())
		return false
	}
	p.state = s
	write(p.presenter)
	p.logger.Debug("pipeline transition", "invocation", id, "state", s.String())
	return true
}

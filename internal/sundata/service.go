// Package sundata fetches the sunrise/sunset records for today and tomorrow.
package sundata

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	cerrors "cloudeng.io/errors"
	"github.com/sourcegraph/conc"

	"sunwatch/internal/dates"
	"sunwatch/internal/providers/fetch"
	"sunwatch/internal/providers/sunrisesunset"
	"sunwatch/internal/types"
)

// DayProvider defines the interface for per-date sun data providers
type DayProvider interface {
	GetDay(ctx context.Context, coords types.Coords, timezone, date string) (*sunrisesunset.SunAPIResponse, error)
}

// Service fetches the today/tomorrow pair for a location
type Service interface {
	FetchPair(ctx context.Context, coords types.Coords, timezone string) (today, tomorrow types.DayRecord, err error)
}

type sunDataService struct {
	provider DayProvider
	now      func() time.Time
	logger   *slog.Logger
}

// NewSunDataService creates a fetcher backed by the sunrisesunset.io client
func NewSunDataService(baseURL string, logger *slog.Logger) Service {
	return NewSunDataServiceWithProvider(sunrisesunset.NewClient(baseURL), time.Now, logger)
}

// NewSunDataServiceWithProvider creates a fetcher with a custom provider and
// clock. The clock decides which calendar day is "today".
func NewSunDataServiceWithProvider(provider DayProvider, now func() time.Time, logger *slog.Logger) Service {
	if now == nil {
		now = time.Now
	}
	return &sunDataService{
		provider: provider,
		now:      now,
		logger:   logger.With("component", "sundata-service"),
	}
}

type dayResult struct {
	date string
	resp *sunrisesunset.SunAPIResponse
	err  error
}

// FetchPair issues both requests in parallel and waits for both to finish.
// It succeeds only when both days report OK.
func (s *sunDataService) FetchPair(ctx context.Context, coords types.Coords, timezone string) (types.DayRecord, types.DayRecord, error) {
	keys := dates.Formatted(s.now())

	var (
		wg       conc.WaitGroup
		today    = dayResult{date: keys.Today}
		tomorrow = dayResult{date: keys.Tomorrow}
	)

	wg.Go(func() {
		today.resp, today.err = s.provider.GetDay(ctx, coords, timezone, today.date)
	})
	wg.Go(func() {
		tomorrow.resp, tomorrow.err = s.provider.GetDay(ctx, coords, timezone, tomorrow.date)
	})

	// Join on both; there is no first-error short circuit
	wg.Wait()

	if err := s.check(today, tomorrow); err != nil {
		s.logger.Error("failed to fetch sun data",
			"coords", coords.String(),
			"timezone", timezone,
			"today", keys.Today,
			"tomorrow", keys.Tomorrow,
			"error", err,
		)
		return types.DayRecord{}, types.DayRecord{}, err
	}

	s.logger.Debug("fetched sun data pair",
		"coords", coords.String(),
		"timezone", timezone,
		"today", keys.Today,
		"tomorrow", keys.Tomorrow,
	)

	return toDayRecord(today.resp.Results), toDayRecord(tomorrow.resp.Results), nil
}

// check classifies the joined results. Network failures take precedence
// since the upstream never got a say; otherwise the first day that is not
// OK is reported.
func (s *sunDataService) check(results ...dayResult) error {
	var transport cerrors.M
	var unavailable *DataUnavailableError

	for _, r := range results {
		switch {
		case r.err != nil && isUpstreamAnswer(r.err):
			if unavailable == nil {
				unavailable = &DataUnavailableError{Date: r.date, Err: r.err}
			}
		case r.err != nil:
			transport.Append(fmt.Errorf("%s: %w", r.date, r.err))
		case r.resp == nil || r.resp.Status != sunrisesunset.StatusOK:
			if unavailable == nil {
				status := ""
				if r.resp != nil {
					status = r.resp.Status
				}
				unavailable = &DataUnavailableError{Date: r.date, Status: status}
			}
		}
	}

	if err := transport.Err(); err != nil {
		return &TransportError{Err: err}
	}
	if unavailable != nil {
		return unavailable
	}
	return nil
}

// isUpstreamAnswer reports whether err came from a response the upstream did
// send, as opposed to a request that never completed.
func isUpstreamAnswer(err error) bool {
	var statusErr *fetch.StatusError
	var decodeErr *fetch.DecodeError
	return errors.As(err, &statusErr) || errors.As(err, &decodeErr)
}

func toDayRecord(r sunrisesunset.SunResults) types.DayRecord {
	return types.DayRecord{
		Sunrise:   r.Sunrise,
		Sunset:    r.Sunset,
		Dawn:      r.Dawn,
		Dusk:      r.Dusk,
		DayLength: r.DayLength,
		SolarNoon: r.SolarNoon,
	}
}

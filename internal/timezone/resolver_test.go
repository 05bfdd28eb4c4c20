package timezone

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"sunwatch/internal/providers/fetch"
	"sunwatch/internal/providers/timezonedb"
	"sunwatch/internal/types"
)

type mockLookupProvider struct {
	response *timezonedb.GetTimeZoneAPIResponse
	err      error
	calls    int
}

func (m *mockLookupProvider) GetTimeZone(ctx context.Context, coords types.Coords) (*timezonedb.GetTimeZoneAPIResponse, error) {
	m.calls++
	return m.response, m.err
}

type mockFinder struct {
	name  string
	err   error
	calls int
}

func (m *mockFinder) Find(coords types.Coords) (string, error) {
	m.calls++
	return m.name, m.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestResolver_Resolve(t *testing.T) {
	paris := types.NewCoords(48.85, 2.35)

	tests := []struct {
		name     string
		response *timezonedb.GetTimeZoneAPIResponse
		err      error
		fallback string
		want     string
	}{
		{
			name:     "ok status",
			response: &timezonedb.GetTimeZoneAPIResponse{Status: "OK", ZoneName: "Europe/Paris"},
			fallback: "UTC",
			want:     "Europe/Paris",
		},
		{
			name:     "failed status",
			response: &timezonedb.GetTimeZoneAPIResponse{Status: "FAILED", Message: "Invalid API key."},
			fallback: "UTC",
			want:     "UTC",
		},
		{
			name:     "ok status without zone",
			response: &timezonedb.GetTimeZoneAPIResponse{Status: "OK"},
			fallback: "UTC",
			want:     "UTC",
		},
		{
			name:     "network failure",
			err:      errors.New("connection reset"),
			fallback: "UTC",
			want:     "UTC",
		},
		{
			name:     "non 200 status",
			err:      &fetch.StatusError{StatusCode: 500, Body: "boom"},
			fallback: "UTC",
			want:     "UTC",
		},
		{
			name:     "malformed body",
			err:      &fetch.DecodeError{Err: errors.New("invalid character")},
			fallback: "UTC",
			want:     "UTC",
		},
		{
			name:     "nil response",
			fallback: "UTC",
			want:     "UTC",
		},
		{
			name:     "configured fallback",
			err:      errors.New("timeout"),
			fallback: "America/Denver",
			want:     "America/Denver",
		},
		{
			name:     "empty fallback defaults to UTC",
			err:      errors.New("timeout"),
			fallback: "",
			want:     "UTC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &mockLookupProvider{response: tt.response, err: tt.err}
			svc := NewResolverWithProviders(provider, nil, tt.fallback, discardLogger())

			got := svc.Resolve(context.Background(), paris)
			if got != tt.want {
				t.Errorf("Resolve() = %q, want %q", got, tt.want)
			}
			if provider.calls != 1 {
				t.Errorf("provider calls = %d, want 1", provider.calls)
			}
		})
	}
}

func TestResolver_FailureIsLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	provider := &mockLookupProvider{response: &timezonedb.GetTimeZoneAPIResponse{Status: "FAILED", Message: "Invalid API key."}}
	svc := NewResolverWithProviders(provider, nil, "UTC", logger)
	svc.Resolve(context.Background(), types.NewCoords(0, 0))

	out := buf.String()
	if !strings.Contains(out, "error fetching timezone") {
		t.Errorf("log output missing warning: %s", out)
	}
	if !strings.Contains(out, "Invalid API key.") {
		t.Errorf("log output missing upstream message: %s", out)
	}
}

func TestResolver_OfflineLookup(t *testing.T) {
	coords := types.NewCoords(48.85, 2.35)

	tests := []struct {
		name        string
		providerErr error
		finder      *mockFinder
		want        string
		wantFinds   int
	}{
		{
			name:      "online success skips offline",
			finder:    &mockFinder{name: "Europe/Berlin"},
			want:      "Europe/Paris",
			wantFinds: 0,
		},
		{
			name:        "online failure uses offline",
			providerErr: errors.New("down"),
			finder:      &mockFinder{name: "Europe/Paris"},
			want:        "Europe/Paris",
			wantFinds:   1,
		},
		{
			name:        "both fail uses fallback",
			providerErr: errors.New("down"),
			finder:      &mockFinder{err: errors.New("ocean")},
			want:        "UTC",
			wantFinds:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &mockLookupProvider{
				response: &timezonedb.GetTimeZoneAPIResponse{Status: "OK", ZoneName: "Europe/Paris"},
				err:      tt.providerErr,
			}
			svc := NewResolverWithProviders(provider, tt.finder, "UTC", discardLogger())

			if got := svc.Resolve(context.Background(), coords); got != tt.want {
				t.Errorf("Resolve() = %q, want %q", got, tt.want)
			}
			if tt.finder.calls != tt.wantFinds {
				t.Errorf("finder calls = %d, want %d", tt.finder.calls, tt.wantFinds)
			}
		})
	}
}

func TestLookupError(t *testing.T) {
	cause := errors.New("reset")
	err := &LookupError{Err: cause}
	if !errors.Is(err, cause) {
		t.Error("LookupError does not unwrap its cause")
	}

	statusErr := &LookupError{Status: "FAILED", Message: "Invalid API key."}
	if !strings.Contains(statusErr.Error(), "FAILED") {
		t.Errorf("Error() = %q, want status included", statusErr.Error())
	}
}

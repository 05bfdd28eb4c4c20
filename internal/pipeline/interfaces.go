package pipeline

import (
	"context"

	"sunwatch/internal/types"
)

// Presenter receives the outcome of an invocation. The pipeline never
// touches display state except through it.
type Presenter interface {
	ShowSuccess(today, tomorrow types.DayRecord, timezone string)
	ShowError(message string)
	Reset()
}

// LocationSource yields the device position. CurrentPosition blocks until
// the platform answers, once per call.
type LocationSource interface {
	CurrentPosition(ctx context.Context) (types.Coords, error)
}

// StaticLocation is a LocationSource for positions the caller already
// holds, such as coordinates reported by a browser.
type StaticLocation types.Coords

func (l StaticLocation) CurrentPosition(ctx context.Context) (types.Coords, error) {
	return types.Coords(l), nil
}

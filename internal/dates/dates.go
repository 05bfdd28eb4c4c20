// Package dates computes the calendar keys used to request sun data.
package dates

import (
	"time"

	"sunwatch/internal/types"
)

// Layout is the date key format accepted by the sun data API
const Layout = "2006-01-02"

// Formatted returns the keys for the calendar day of now and the day after it,
// both in now's location. Tomorrow is derived from the date parts rather than
// by adding 24 hours so DST transitions never skip or repeat a day.
func Formatted(now time.Time) types.DateKeys {
	y, m, d := now.Date()
	// Noon keeps the value away from any midnight DST gap.
	tomorrow := time.Date(y, m, d+1, 12, 0, 0, 0, now.Location())

	return types.DateKeys{
		Today:    now.Format(Layout),
		Tomorrow: tomorrow.Format(Layout),
	}
}

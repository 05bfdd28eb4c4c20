package pipeline

import "fmt"

// State is a stage of one pipeline invocation
type State int

const (
	Idle State = iota
	Geocoding
	ResolvingTimezone
	FetchingSunData
	Done
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Geocoding:
		return "geocoding"
	case ResolvingTimezone:
		return "resolving-timezone"
	case FetchingSunData:
		return "fetching-sun-data"
	case Done:
		return "done"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("unknown (%d)", int(s))
	}
}

package sundata

import "fmt"

// DataUnavailableMessage is shown when the pair could not be assembled
const DataUnavailableMessage = "Error fetching sunrise and sunset data"

// DataUnavailableError means at least one day did not come back OK.
// A single bad day fails the whole pair.
type DataUnavailableError struct {
	Date   string // first date that failed
	Status string // upstream status, empty if the body was unusable
	Err    error
}

func (e *DataUnavailableError) Error() string {
	return DataUnavailableMessage
}

func (e *DataUnavailableError) Unwrap() error {
	return e.Err
}

// TransportError means a sun data request failed at the network level
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("sun data request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

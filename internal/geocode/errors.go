package geocode

import "fmt"

// NotFoundMessage is shown when a query matched no location
const NotFoundMessage = "Location not found"

// NotFoundError means the upstream answered but yielded no usable candidate
type NotFoundError struct {
	Query string
	Err   error // set when the response was malformed
}

func (e *NotFoundError) Error() string {
	return NotFoundMessage
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// TransportError means the geocoding request itself failed
type TransportError struct {
	Query string
	Err   error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("geocoding request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

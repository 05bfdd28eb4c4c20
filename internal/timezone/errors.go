package timezone

import "fmt"

// LookupError describes why the upstream lookup was abandoned. It is only
// ever logged; Resolve substitutes the fallback zone.
type LookupError struct {
	Status  string // upstream status when one was returned
	Message string
	Err     error
}

func (e *LookupError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("timezone lookup failed: %v", e.Err)
	}
	return fmt.Sprintf("timezone not found: status %q: %s", e.Status, e.Message)
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

package quote

import (
	"fmt"
	"strings"
)

// ValidationError reports a malformed or out-of-range stay request. The
// caller should correct the request and retry.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return "invalid stay request: " + strings.Join(e.Violations, ", ")
}

// ConstraintError reports a well-formed request that violates the
// property's booking rules.
type ConstraintError struct {
	Violations []string
}

func (e *ConstraintError) Error() string {
	return "booking constraints violated: " + strings.Join(e.Violations, ", ")
}

// AvailabilityError reports requested nights that are not vacant. When
// the occupancy lookup itself failed, Err carries the cause and Dates is
// empty; the stay is treated as unavailable either way.
type AvailabilityError struct {
	Dates []string
	Err   error
}

func (e *AvailabilityError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("availability check failed: %v", e.Err)
	}
	return "the following dates are not available: " + strings.Join(e.Dates, ", ")
}

func (e *AvailabilityError) Unwrap() error { return e.Err }

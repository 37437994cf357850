package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidDateRange is returned when a booking's check-out date is not
// strictly after its check-in date.
var ErrInvalidDateRange = errors.New("check-out must be after check-in")

// ValidationError reports malformed constructor input (empty required
// strings, bad email format, unparseable dates). These surface as errors and
// are expected to be caught at the API boundary; they are never encoded as a
// Result.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationErrorf(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

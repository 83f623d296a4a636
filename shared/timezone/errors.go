package timezone

import (
	"errors"
	"fmt"
)

// ErrInvalidTimezone is matched by every InvalidTimezoneError through errors.Is.
var ErrInvalidTimezone = errors.New("invalid timezone")

// ErrNilValue is returned by ToCurrent and ToStorage when no value is given.
var ErrNilValue = errors.New("timezone: nil value")

// InvalidTimezoneError reports a timezone value that could not be resolved.
type InvalidTimezoneError struct {
	// Value is the offending input as the caller supplied it.
	Value string
	Err   error
}

func (e *InvalidTimezoneError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("invalid timezone %q", e.Value)
	}

	return fmt.Sprintf("invalid timezone %q: %v", e.Value, e.Err)
}

func (e *InvalidTimezoneError) Unwrap() error {
	return e.Err
}

func (e *InvalidTimezoneError) Is(target error) bool {
	return target == ErrInvalidTimezone
}

func invalid(value string, err error) *InvalidTimezoneError {
	return &InvalidTimezoneError{Value: value, Err: err}
}

package calendar

import (
	"errors"
	"fmt"
)

// ErrOverflow is matched by every *OverflowError via errors.Is.
var ErrOverflow = errors.New("value too large for defined data type")

// ErrHostRange is returned by Bounded32 when the host cannot represent a time.
var ErrHostRange = errors.New("time outside host range")

// OverflowError reports a calendar year that does not fit Tm.Year.
type OverflowError struct {
	// Input is the time being decomposed.
	Input Time

	// Year is the absolute calendar year that was computed.
	Year int64
}

// Error implements the error interface.
func (e *OverflowError) Error() string {
	return fmt.Sprintf("%v: year %d of time %d", ErrOverflow, e.Year, int64(e.Input))
}

// Is makes errors.Is(err, ErrOverflow) true for overflow errors.
func (e *OverflowError) Is(target error) bool {
	return target == ErrOverflow
}

// IsOverflow returns true if err is or wraps an *OverflowError.
func IsOverflow(err error) bool {
	var oe *OverflowError
	return errors.As(err, &oe)
}

// InvariantError reports a Tm field outside its documented range. It signals
// a bug in the arithmetic, not bad input.
type InvariantError struct {
	Field string
	Value int64
	Rule  string
}

// Error implements the error interface.
func (e *InvariantError) Error() string {
	return fmt.Sprintf("calendar invariant violated: %s = %d, want %s", e.Field, e.Value, e.Rule)
}

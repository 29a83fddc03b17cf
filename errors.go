package coordtran

import (
	"errors"
	"fmt"
)

// Contract violations. Match them with errors.Is; use errors.As with
// *InputError for the offending field and value.
var (
	ErrInvalidPoint        = errors.New("coordinate out of range")
	ErrInvalidRange        = errors.New("range must be finite and non-negative")
	ErrInvalidBearing      = errors.New("bearing must be in [0, 360)")
	ErrUndeterminedBearing = errors.New("undetermined bearing requires zero range or a pole-to-pole range from a pole")
)

// InputError describes an argument that breaks the calling contract.
type InputError struct {
	Op    string  // "r2g", "point" or "bearing"
	Field string  // lon, lat, range or bearing
	Value float64 // offending value
	Err   error   // one of the Err* sentinels
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: invalid %s %g: %v", e.Op, e.Field, e.Value, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

func inputError(op, field string, value float64, err error) *InputError {
	return &InputError{Op: op, Field: field, Value: value, Err: err}
}

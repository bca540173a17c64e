package impedance

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidUnit indicates an unrecognized impedance unit.
	ErrInvalidUnit = errors.New("impedance: unrecognized unit")

	// ErrInvalidFactor indicates a static-shift factor that is empty, of
	// the wrong length, or not a number. Concrete failures are reported
	// as *FactorError, which unwraps to this sentinel.
	ErrInvalidFactor = errors.New("impedance: invalid static-shift factor")

	// ErrMissingTensor indicates an operation that needs the impedance
	// tensor before it has been set.
	ErrMissingTensor = errors.New("impedance: tensor is not set")

	// ErrMissingFrequency indicates an operation that needs the frequency
	// axis before it has been set.
	ErrMissingFrequency = errors.New("impedance: frequency is not set")
)

// FactorError reports why a static-shift factor was rejected.
type FactorError struct {
	Name string // "factor_x" or "factor_y"
	Want int    // required length (the frequency count)
	Got  int    // received length; -1 when a value was not a number
}

func (e *FactorError) Error() string {
	if e.Got < 0 {
		return fmt.Sprintf("impedance: %s must contain valid numbers", e.Name)
	}

	return fmt.Sprintf("impedance: %s length must be 1 or %d, got %d", e.Name, e.Want, e.Got)
}

// Unwrap lets errors.Is(err, ErrInvalidFactor) match.
func (e *FactorError) Unwrap() error { return ErrInvalidFactor }

package transferfn

import (
	"errors"
	"fmt"
)

var (
	// ErrShapeMismatch indicates an array length disagrees with the
	// established frequency count. Concrete mismatches are reported as
	// *ShapeError, which unwraps to this sentinel.
	ErrShapeMismatch = errors.New("transferfn: array length disagrees with established frequency count")

	// ErrNotTensorShaped indicates a flat array whose length is not a
	// multiple of 4 and therefore cannot represent (N,2,2) data.
	ErrNotTensorShaped = errors.New("transferfn: flat array length must be a multiple of 4 (N×2×2)")

	// ErrNonPositiveFrequency indicates a frequency value ≤ 0 or NaN.
	ErrNonPositiveFrequency = errors.New("transferfn: frequency values must be positive")
)

// ShapeError reports the expected versus received frequency count for a
// named array field.
type ShapeError struct {
	Field string // "transfer_function", "transfer_function_error", ...
	Want  int    // established frequency count
	Got   int    // frequency count implied by the rejected input
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("transferfn: %s expects %d frequencies, got %d", e.Field, e.Want, e.Got)
}

// Unwrap lets errors.Is(err, ErrShapeMismatch) match.
func (e *ShapeError) Unwrap() error { return ErrShapeMismatch }

package transferfn

import (
	"fmt"
	"math"
)

// Named array fields, used in ShapeError reports.
const (
	fieldTF           = "transfer_function"
	fieldTFError      = "transfer_function_error"
	fieldTFModelError = "transfer_function_model_error"
	fieldFrequency    = "frequency"
)

// Container is flat row-major storage for one station transfer function.
// The complex array and both error arrays hold 4 values per frequency in
// the order (0,0), (0,1), (1,0), (1,1). A nil slice means the field has
// not been written yet. The zero value is an empty, usable Container.
type Container struct {
	n            int // established frequency count; 0 while empty
	tf           []complex128
	tfError      []float64
	tfModelError []float64
	freq         []float64
}

// Index returns the flat offset of matrix entry (r, c) at frequency f.
// Complexity: O(1).
func Index(f, r, c int) int { return 4*f + 2*r + c }

// NFrequencies reports the established frequency count, 0 while empty.
func (s *Container) NFrequencies() int { return s.n }

// IsEmpty reports whether nothing has been written yet.
func (s *Container) IsEmpty() bool { return s.n == 0 }

// HasTF reports whether the transfer function array is present.
func (s *Container) HasTF() bool { return s.tf != nil }

// HasTFError reports whether the error array is present.
func (s *Container) HasTFError() bool { return s.tfError != nil }

// HasTFModelError reports whether the model-error array is present.
func (s *Container) HasTFModelError() bool { return s.tfModelError != nil }

// HasFrequency reports whether the frequency axis is present.
func (s *Container) HasFrequency() bool { return s.freq != nil }

// establish checks a candidate frequency count against the established
// one, adopting it when the Container is still empty.
func (s *Container) establish(field string, n int) error {
	if s.n != 0 && n != s.n {
		return &ShapeError{Field: field, Want: s.n, Got: n}
	}
	s.n = n

	return nil
}

// SetTF stores the flat complex transfer function. A nil input is a
// quiet no-op. The length must be 4×N for the established N; the first
// write establishes N. Validate-then-commit: on error the Container is
// unchanged. Complexity: O(N).
func (s *Container) SetTF(tf []complex128) error {
	if tf == nil {
		return nil
	}
	if len(tf)%4 != 0 || len(tf) == 0 {
		return fmt.Errorf("%w: got length %d", ErrNotTensorShaped, len(tf))
	}
	n := len(tf) / 4
	if s.n != 0 && n != s.n {
		return &ShapeError{Field: fieldTF, Want: s.n, Got: n}
	}

	s.tf = append([]complex128(nil), tf...)
	s.n = n

	return nil
}

// SetTFError stores the flat standard-deviation error array.
// Same contract as SetTF.
func (s *Container) SetTFError(e []float64) error {
	dst, err := s.setRealTensor(fieldTFError, e)
	if err != nil || dst == nil {
		return err
	}
	s.tfError = dst

	return nil
}

// SetTFModelError stores the flat model-error array.
// Same contract as SetTF.
func (s *Container) SetTFModelError(e []float64) error {
	dst, err := s.setRealTensor(fieldTFModelError, e)
	if err != nil || dst == nil {
		return err
	}
	s.tfModelError = dst

	return nil
}

// setRealTensor validates and copies one flat real (N,2,2) array.
// Returns (nil, nil) for the quiet nil no-op.
func (s *Container) setRealTensor(field string, e []float64) ([]float64, error) {
	if e == nil {
		return nil, nil
	}
	if len(e)%4 != 0 || len(e) == 0 {
		return nil, fmt.Errorf("%w: got length %d", ErrNotTensorShaped, len(e))
	}
	if err := s.establish(field, len(e)/4); err != nil {
		return nil, err
	}

	return append([]float64(nil), e...), nil
}

// SetFrequency stores the frequency axis (Hz). A nil input is a quiet
// no-op. Length must equal the established N (first write establishes
// it); every value must be positive and finite. Complexity: O(N).
func (s *Container) SetFrequency(freq []float64) error {
	if freq == nil {
		return nil
	}
	if len(freq) == 0 {
		return fmt.Errorf("%w: empty axis", ErrNonPositiveFrequency)
	}
	for i, f := range freq {
		if !(f > 0) || math.IsInf(f, 1) {
			return fmt.Errorf("%w: frequency[%d] = %g", ErrNonPositiveFrequency, i, f)
		}
	}
	if s.n != 0 && len(freq) != s.n {
		return &ShapeError{Field: fieldFrequency, Want: s.n, Got: len(freq)}
	}

	s.freq = append([]float64(nil), freq...)
	s.n = len(freq)

	return nil
}

// TF returns a copy of the flat transfer function, nil when absent.
func (s *Container) TF() []complex128 {
	if s.tf == nil {
		return nil
	}

	return append([]complex128(nil), s.tf...)
}

// TFError returns a copy of the flat error array, nil when absent.
func (s *Container) TFError() []float64 {
	if s.tfError == nil {
		return nil
	}

	return append([]float64(nil), s.tfError...)
}

// TFModelError returns a copy of the flat model-error array, nil when absent.
func (s *Container) TFModelError() []float64 {
	if s.tfModelError == nil {
		return nil
	}

	return append([]float64(nil), s.tfModelError...)
}

// Frequency returns a copy of the frequency axis, nil when absent.
func (s *Container) Frequency() []float64 {
	if s.freq == nil {
		return nil
	}

	return append([]float64(nil), s.freq...)
}

// Package transferfn stores a generic station transfer function: an
// ordered sequence of N complex 2×2 matrices with two parallel real
// error arrays (standard deviation and model error) and a frequency axis.
//
// What:
//
//   - Container holds the (N,2,2) complex transfer function in a flat
//     row-major slice (4 values per frequency), plus flat error arrays
//     and the frequency axis.
//   - Absence is distinct from zero: a nil slice means "no data yet",
//     never an all-zero array.
//   - The first write of any array establishes the frequency count N;
//     every later write is validated against it before any mutation.
//
// Why:
//
//   - Flat backing slices are cache-friendly and make bulk scaling and
//     copying trivial for the layers above.
//   - Validate-then-commit setters guarantee a Container is never left
//     in a partially mutated state.
//
// Units: the Container is unit-agnostic. Callers (see package impedance)
// decide what the stored magnitudes mean and scale at their boundary.
//
// Errors:
//
//   - ErrShapeMismatch / *ShapeError: array length disagrees with the
//     established frequency count.
//   - ErrNotTensorShaped: flat array length is not a multiple of 4.
//   - ErrNonPositiveFrequency: frequency axis contains a value ≤ 0 or NaN.
package transferfn

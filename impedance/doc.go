// Package impedance models the magnetotelluric impedance tensor Z: an
// ordered sequence of N complex 2×2 matrices, one per frequency, relating
// horizontal electric and magnetic field variations at a survey site.
//
// What:
//
//   - Tensor stores Z, its standard-deviation error array and its
//     model-error array in canonical field units (mV/km/nT), behind a
//     transferfn.Container, and converts to the declared display unit
//     (field or resistance/Ohm) at every boundary crossing.
//   - Derived quantities are pure functions of current state, recomputed
//     on every call: apparent resistivity, phase, their propagated
//     errors, the determinant rotational invariant with its
//     finite-difference error propagation, and per-component extraction
//     for the fixed layout xx=(0,0), xy=(0,1), yx=(1,0), yy=(1,1).
//   - Corrections: static-shift removal and galvanic-distortion removal,
//     the latter delegating estimation and arithmetic to the distortion
//     package behind the Estimator interface.
//   - EstimateDimensionality classifies each frequency as 1-D, 2-D or
//     3-D from phase-tensor eccentricity and skew.
//
// Why:
//
//   - Canonical storage makes unit choice a pure view concern: switching
//     units never alters persisted magnitudes, and round-trips are exact.
//   - Tensor components are correlated, so the determinant error uses a
//     manual finite-difference propagation instead of standard
//     independent-variable error propagation.
//   - Singular tensors yield NaN/Inf by IEEE-754 semantics, never errors:
//     downstream consumers expect NaN-laden arrays, not exceptions.
//
// Errors:
//
//   - ErrInvalidUnit: unrecognized unit.
//   - transferfn.ErrShapeMismatch / *transferfn.ShapeError: array length
//     disagrees with the established frequency count.
//   - ErrInvalidFactor / *FactorError: bad static-shift factor.
//   - ErrMissingTensor, ErrMissingFrequency: operation needs data that
//     has not been set.
//   - distortion.Err*: collaborator failures, propagated unchanged.
//
// Concurrency: not thread-safe for writes; serialize shared instances.
package impedance

// Package distortion estimates and removes galvanic distortion from a
// magnetotelluric impedance tensor.
//
// What:
//
//   - A galvanic distortion is a real 2×2 mixing matrix D relating the
//     observed tensor to the regional one: Z = D·Z0.
//   - Estimate derives D and its uncertainty from impedance samples over
//     a frequency subset, fitting each usable frequency against an
//     assumed 1-D or 2-D regional impedance and averaging.
//   - Remove recovers Z0 = D⁻¹·Z with error propagation through the
//     matrix inverse.
//
// Why:
//
//   - Tensor components are correlated through D, so the removal
//     propagates uncertainty through the inverse explicitly instead of
//     treating entries as independent.
//   - The estimator works on plain arrays (samples, errors, frequencies)
//     so the impedance package can delegate to it behind a small
//     interface without an import cycle.
//
// Selection:
//
//   - Options.Comp picks the regional reference: the determinant
//     invariant (default), the xy component or the yx component.
//   - Options.RestrictTo2D drops 1-D frequencies from the fit; 3-D
//     frequencies are always dropped.
//   - Options.Clockwise fixes the sign convention of the strike rotation
//     applied to 2-D frequencies.
//
// Errors:
//
//   - ErrTooFewFrequencies: fewer than MinFrequencies samples supplied.
//   - ErrNoSuitableFrequencies: every frequency was 3-D, excluded by
//     RestrictTo2D, or numerically unusable.
//   - ErrBadDistortion: a distortion matrix that is not 2×2.
//   - ErrSingularDistortion: D is not invertible.
package distortion

// Package phasetensor implements the magnetotelluric phase tensor of
// Caldwell, Bibby & Brown (2004): Φ = X⁻¹·Y per frequency, where
// Z = X + iY is the impedance tensor.
//
// What:
//
//   - PhaseTensor is built from the same four arrays as the impedance
//     tensor (flat row-major samples, two optional error arrays, the
//     frequency axis).
//   - Eccentricity (Π1/Π2), Skew (β) and Azimuth (α) come out as
//     N-length sequences, ready for dimensionality classification and
//     strike analysis.
//
// Why:
//
//   - Φ is unaffected by galvanic distortion, which makes it the
//     standard tool for judging subsurface dimensionality before any
//     distortion correction is attempted.
//   - The inverse of X is formed through the 2×2 adjugate, so a singular
//     real part yields NaN/Inf entries silently instead of failing the
//     whole axis, matching the numeric convention of package impedance.
//
// Errors:
//
//   - ErrNoTensor: nil impedance samples.
//   - ErrBadShape: array lengths that do not describe (N,2,2) data with
//     a matching frequency axis.
package phasetensor

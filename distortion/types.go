package distortion

import "errors"

// MinFrequencies is the smallest number of impedance samples Estimate
// accepts: one frequency cannot separate distortion from the regional
// response spread.
const MinFrequencies = 2

// Sentinel errors for distortion operations.
var (
	// ErrTooFewFrequencies indicates fewer than MinFrequencies samples.
	ErrTooFewFrequencies = errors.New("distortion: too few frequencies to estimate distortion")
	// ErrNoSuitableFrequencies indicates no frequency survived the
	// dimensionality and numeric filters.
	ErrNoSuitableFrequencies = errors.New("distortion: no suitable frequencies for distortion estimation")
	// ErrBadInput indicates arrays that do not describe (N,2,2) data.
	ErrBadInput = errors.New("distortion: array lengths disagree")
	// ErrBadDistortion indicates a distortion matrix that is not 2×2.
	ErrBadDistortion = errors.New("distortion: distortion matrix must be 2×2")
	// ErrSingularDistortion indicates a non-invertible distortion matrix.
	ErrSingularDistortion = errors.New("distortion: distortion matrix is singular")
)

// SelectionCriterion picks the regional impedance reference used when
// fitting the distortion matrix.
type SelectionCriterion int

const (
	// SelectDet fits against the determinant rotational invariant (default).
	SelectDet SelectionCriterion = iota
	// SelectXY fits against the xy component.
	SelectXY
	// SelectYX fits against the yx component.
	SelectYX
)

// Options tunes distortion estimation.
//   - Comp: regional reference, see SelectionCriterion.
//   - RestrictTo2D: use only frequencies classified 2-D (3-D frequencies
//     are always excluded).
//   - Clockwise: sign convention of the strike rotation for 2-D
//     frequencies.
//   - SkewThreshold, EccentricityThreshold: the per-frequency
//     dimensionality thresholds (degrees, dimensionless).
type Options struct {
	Comp                  SelectionCriterion
	RestrictTo2D          bool
	Clockwise             bool
	SkewThreshold         float64
	EccentricityThreshold float64
}

// DefaultOptions returns the conventional settings: determinant
// reference, all non-3-D frequencies, clockwise rotation, skew 5°,
// eccentricity 0.1.
func DefaultOptions() Options {
	return Options{
		Comp:                  SelectDet,
		Clockwise:             true,
		SkewThreshold:         5,
		EccentricityThreshold: 0.1,
	}
}

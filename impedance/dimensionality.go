package impedance

import "math"

// DimensionalityOptions tunes the phase-tensor thresholds used to
// classify subsurface structure.
type DimensionalityOptions struct {
	// SkewThreshold is the |skew| angle in degrees above which a
	// frequency is classified 3-D.
	SkewThreshold float64
	// EccentricityThreshold is the phase-tensor eccentricity above which
	// a frequency is classified at least 2-D.
	EccentricityThreshold float64
}

// DefaultDimensionalityOptions returns the conventional thresholds:
// skew 5°, eccentricity 0.1.
func DefaultDimensionalityOptions() DimensionalityOptions {
	return DimensionalityOptions{
		SkewThreshold:         5,
		EccentricityThreshold: 0.1,
	}
}

// EstimateDimensionality classifies every frequency as 1-D, 2-D or 3-D.
// All frequencies start at 1; frequencies whose phase-tensor
// eccentricity exceeds the threshold are upgraded to 2; frequencies
// whose |skew| exceeds the threshold are then upgraded to 3. The later
// assignment wins, so a frequency passing both thresholds ends at 3.
// Phase-tensor construction failures propagate unchanged.
func (t *Tensor) EstimateDimensionality(opts DimensionalityOptions) ([]int, error) {
	z := t.store.TF()
	if z == nil {
		return nil, ErrMissingTensor
	}
	freq := t.store.Frequency()
	if freq == nil {
		return nil, ErrMissingFrequency
	}

	pt, err := t.ptFunc(z, t.store.TFError(), t.store.TFModelError(), freq)
	if err != nil {
		return nil, err
	}

	ecc, skew := pt.Eccentricity(), pt.Skew()
	dim := make([]int, len(freq))
	for f := range dim {
		dim[f] = 1
		if ecc[f] > opts.EccentricityThreshold {
			dim[f] = 2
		}
		if math.Abs(skew[f]) > opts.SkewThreshold {
			dim[f] = 3
		}
	}

	return dim, nil
}

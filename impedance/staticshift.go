package impedance

import (
	"math"

	"go.uber.org/zap"
)

// RemoveStaticShift corrects a frequency-independent multiplicative
// distortion of resistivity caused by near-surface heterogeneity.
//
// With the observed tensor Z = S·Z0 for a static-shift matrix S, the
// corrected tensor is Z0 = S⁻¹·Z: the xx/xy row is divided by sqrt(fx)
// and the yx/yy row by sqrt(fy). Factors are given in resistivity scale.
//
// Each factor is either length 1 (broadcast to all frequencies) or
// length N. Any other length, or a NaN entry, rejects the call with a
// *FactorError. Non-positive factors are not an error: their square root
// is NaN and propagates silently, per the package's numeric convention.
//
// When inPlace is true the receiver's tensor is corrected and the
// receiver returned; otherwise a new Tensor is returned carrying the
// corrected tensor plus the original error arrays, frequency and unit.
// Measurement error is unchanged either way: a static shift does not
// alter measurement uncertainty.
func (t *Tensor) RemoveStaticShift(factorX, factorY []float64, inPlace bool) (*Tensor, error) {
	z := t.store.TF()
	if z == nil {
		return nil, ErrMissingTensor
	}
	n := len(z) / 4

	fx, err := t.expandFactor("factor_x", factorX, n)
	if err != nil {
		return nil, err
	}
	fy, err := t.expandFactor("factor_y", factorY, n)
	if err != nil {
		return nil, err
	}

	for f := 0; f < n; f++ {
		sx := complex(math.Sqrt(fx[f]), 0)
		sy := complex(math.Sqrt(fy[f]), 0)
		off := 4 * f
		z[off+0] /= sx
		z[off+1] /= sx
		z[off+2] /= sy
		z[off+3] /= sy
	}

	if inPlace {
		// Canonical values go straight back into the store.
		if err := t.store.SetTF(z); err != nil {
			return nil, err
		}

		return t, nil
	}

	return t.cloneWith(z, t.store.TFError()), nil
}

// expandFactor validates a static-shift factor and broadcasts it to n
// frequencies.
func (t *Tensor) expandFactor(name string, factor []float64, n int) ([]float64, error) {
	var out []float64
	switch len(factor) {
	case 1:
		out = make([]float64, n)
		for i := range out {
			out[i] = factor[0]
		}
	case n:
		out = append([]float64(nil), factor...)
	default:
		err := &FactorError{Name: name, Want: n, Got: len(factor)}
		t.log.Error("invalid static-shift factor",
			zap.String("factor", name),
			zap.Int("want", n),
			zap.Int("got", len(factor)))

		return nil, err
	}

	for _, v := range out {
		if math.IsNaN(v) {
			err := &FactorError{Name: name, Got: -1}
			t.log.Error("static-shift factor is not a number", zap.String("factor", name))

			return nil, err
		}
	}

	return out, nil
}

package impedance

import (
	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/mtz/distortion"
)

// EstimateDistortion derives a frequency-independent galvanic distortion
// matrix and its uncertainty from the first nFrequencies samples
// (nFrequencies ≤ 0 or beyond the axis means all). The error array is
// carried into the estimate when present. Estimator failures (too few
// frequencies, no usable frequencies under opts.RestrictTo2D) propagate
// unchanged.
func (t *Tensor) EstimateDistortion(nFrequencies int, opts distortion.Options) (d, dErr *mat.Dense, err error) {
	z := t.store.TF()
	if z == nil {
		return nil, nil, ErrMissingTensor
	}
	freq := t.store.Frequency()
	if freq == nil {
		return nil, nil, ErrMissingFrequency
	}

	nf := nFrequencies
	if nf <= 0 || nf > len(freq) {
		nf = len(freq)
	}

	var zErr []float64
	if e := t.store.TFError(); e != nil {
		zErr = e[:4*nf]
	}

	d, dErr, err = t.estimator.EstimateDistortion(z[:4*nf], zErr, freq[:nf], opts)
	if err != nil {
		return nil, nil, err
	}
	t.log.Debug("estimated galvanic distortion", zap.Int("n_frequencies", nf))

	return d, dErr, nil
}

// RemoveDistortion removes a galvanic distortion D from the observed
// tensor, Z = D·Z0, recovering Z0 = D⁻¹·Z with error propagation through
// the inverse. When d is nil, the distortion is first estimated over all
// frequencies via EstimateDistortion.
//
// When inPlace is true the receiver's tensor and error array are
// replaced (model error untouched) and the receiver returned; otherwise
// a new Tensor is returned with the model-error array carried over
// unchanged. Collaborator failures (singular distortion, estimation
// failure) propagate unchanged.
func (t *Tensor) RemoveDistortion(d, dErr *mat.Dense, opts distortion.Options, inPlace bool) (*Tensor, error) {
	if t.store.TF() == nil {
		return nil, ErrMissingTensor
	}

	if d == nil {
		var err error
		d, dErr, err = t.EstimateDistortion(0, opts)
		if err != nil {
			return nil, err
		}
	}

	// The collaborator works in canonical units on both sides.
	zc, ec, err := distortion.Remove(t.store.TF(), t.store.TFError(), d, dErr)
	if err != nil {
		return nil, err
	}

	if inPlace {
		if err := t.store.SetTF(zc); err != nil {
			return nil, err
		}
		if err := t.store.SetTFError(ec); err != nil {
			return nil, err
		}

		return t, nil
	}

	return t.cloneWith(zc, ec), nil
}

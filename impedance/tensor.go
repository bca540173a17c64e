package impedance

import (
	"fmt"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/cmplxs"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/mtz/distortion"
	"github.com/katalvlaran/mtz/phasetensor"
	"github.com/katalvlaran/mtz/transferfn"
)

// PhaseTensor is the view of the phase tensor that dimensionality
// estimation needs. The real implementation lives in package
// phasetensor; tests may substitute a double.
type PhaseTensor interface {
	// Eccentricity returns Π1/Π2 per frequency (dimensionless).
	Eccentricity() []float64
	// Skew returns the skew angle β per frequency, in degrees.
	Skew() []float64
}

// PhaseTensorFunc builds a PhaseTensor from canonical-unit impedance
// samples, the two error arrays (either may be nil) and the frequency axis.
type PhaseTensorFunc func(z []complex128, zErr, zModelErr, freq []float64) (PhaseTensor, error)

// Estimator estimates a frequency-independent galvanic distortion matrix
// from impedance samples in canonical field units. zErr may be nil.
type Estimator interface {
	EstimateDistortion(z []complex128, zErr, freq []float64, opts distortion.Options) (d, dErr *mat.Dense, err error)
}

// Tensor is the impedance tensor of one station. Values are stored in
// canonical field units (mV/km/nT) inside a transferfn.Container and
// scaled into the declared display unit at every boundary crossing.
// The zero value is not usable; construct with New.
type Tensor struct {
	store     transferfn.Container
	unit      Unit
	log       *zap.Logger
	estimator Estimator
	ptFunc    PhaseTensorFunc
}

// Option customizes a Tensor at construction time.
type Option func(*Tensor)

// WithLogger injects a structured logger. Default: zap.NewNop().
func WithLogger(l *zap.Logger) Option {
	return func(t *Tensor) {
		if l != nil {
			t.log = l
		}
	}
}

// WithEstimator substitutes the galvanic-distortion estimator.
// Default: distortion.NewEstimator().
func WithEstimator(e Estimator) Option {
	return func(t *Tensor) {
		if e != nil {
			t.estimator = e
		}
	}
}

// WithPhaseTensorFunc substitutes the phase-tensor factory used by
// EstimateDimensionality. Default: phasetensor.New.
func WithPhaseTensorFunc(fn PhaseTensorFunc) Option {
	return func(t *Tensor) {
		if fn != nil {
			t.ptFunc = fn
		}
	}
}

// defaultPhaseTensor adapts phasetensor.New to the PhaseTensorFunc shape.
func defaultPhaseTensor(z []complex128, zErr, zModelErr, freq []float64) (PhaseTensor, error) {
	return phasetensor.New(z, zErr, zModelErr, freq)
}

// New constructs an empty Tensor with the given display unit.
// Data is supplied afterwards through SetFrequency, SetTensor,
// SetTensorError and SetTensorModelError.
func New(unit Unit, opts ...Option) (*Tensor, error) {
	if !unit.valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidUnit, int(unit))
	}

	t := &Tensor{
		unit:      unit,
		log:       zap.NewNop(),
		estimator: distortion.NewEstimator(),
		ptFunc:    defaultPhaseTensor,
	}
	for _, o := range opts {
		o(t)
	}

	return t, nil
}

// Unit returns the current display unit.
func (t *Tensor) Unit() Unit { return t.unit }

// SetUnit switches the display unit. Stored canonical magnitudes are
// untouched; only boundary scaling changes.
func (t *Tensor) SetUnit(u Unit) error {
	if !u.valid() {
		return fmt.Errorf("%w: %d", ErrInvalidUnit, int(u))
	}
	t.unit = u

	return nil
}

// NFrequencies reports the established frequency count, 0 while empty.
func (t *Tensor) NFrequencies() int { return t.store.NFrequencies() }

// HasTensor reports whether the tensor array is present.
func (t *Tensor) HasTensor() bool { return t.store.HasTF() }

// HasTensorError reports whether the error array is present.
func (t *Tensor) HasTensorError() bool { return t.store.HasTFError() }

// HasTensorModelError reports whether the model-error array is present.
func (t *Tensor) HasTensorModelError() bool { return t.store.HasTFModelError() }

// SetFrequency stores the frequency axis (Hz). Nil is a quiet no-op.
// Values must be positive; length must match any established count.
func (t *Tensor) SetFrequency(freq []float64) error {
	return t.store.SetFrequency(freq)
}

// Frequency returns a copy of the frequency axis, nil when absent.
func (t *Tensor) Frequency() []float64 { return t.store.Frequency() }

// Period returns 1/frequency per sample (seconds), nil when absent.
func (t *Tensor) Period() []float64 {
	freq := t.store.Frequency()
	if freq == nil {
		return nil
	}

	out := make([]float64, len(freq))
	for i, f := range freq {
		out[i] = 1.0 / f
	}

	return out
}

// SetTensor stores the impedance tensor, given flat row-major with 4
// values per frequency in the object's display unit. Nil is a quiet
// no-op. A length that disagrees with the established frequency count is
// rejected with *transferfn.ShapeError; prior state is untouched.
func (t *Tensor) SetTensor(z []complex128) error {
	if z == nil {
		return nil
	}

	zc := append([]complex128(nil), z...)
	if f := t.unit.factor(); f != 1 {
		cmplxs.Scale(complex(f, 0), zc)
	}

	return t.store.SetTF(zc)
}

// Tensor returns a copy of the impedance tensor scaled into the display
// unit, nil when absent.
func (t *Tensor) Tensor() []complex128 {
	z := t.store.TF()
	if z == nil {
		return nil
	}
	if f := t.unit.factor(); f != 1 {
		cmplxs.Scale(complex(1/f, 0), z)
	}

	return z
}

// SetTensorError stores the standard-deviation error array (flat, display
// unit). Same contract as SetTensor.
func (t *Tensor) SetTensorError(e []float64) error {
	ec, ok := t.scaleInReal(e)
	if !ok {
		return nil
	}

	return t.store.SetTFError(ec)
}

// TensorError returns a copy of the error array in the display unit,
// nil when absent.
func (t *Tensor) TensorError() []float64 {
	return t.scaleOutReal(t.store.TFError())
}

// SetTensorModelError stores the model-error array (flat, display unit).
// Same contract as SetTensor.
func (t *Tensor) SetTensorModelError(e []float64) error {
	ec, ok := t.scaleInReal(e)
	if !ok {
		return nil
	}

	return t.store.SetTFModelError(ec)
}

// TensorModelError returns a copy of the model-error array in the
// display unit, nil when absent.
func (t *Tensor) TensorModelError() []float64 {
	return t.scaleOutReal(t.store.TFModelError())
}

// scaleInReal copies a real array and scales it into canonical units.
// ok=false flags the quiet nil no-op.
func (t *Tensor) scaleInReal(e []float64) (scaled []float64, ok bool) {
	if e == nil {
		return nil, false
	}

	ec := append([]float64(nil), e...)
	if f := t.unit.factor(); f != 1 {
		floats.Scale(f, ec)
	}

	return ec, true
}

// scaleOutReal scales a canonical real array copy into the display unit.
func (t *Tensor) scaleOutReal(e []float64) []float64 {
	if e == nil {
		return nil
	}
	if f := t.unit.factor(); f != 1 {
		floats.Scale(1/f, e)
	}

	return e
}

// cloneWith builds a Tensor sharing unit, logger and collaborators, with
// the given canonical tensor and error array, carrying over the current
// frequency axis and model-error array.
func (t *Tensor) cloneWith(zCanonical []complex128, errCanonical []float64) *Tensor {
	out := &Tensor{
		unit:      t.unit,
		log:       t.log,
		estimator: t.estimator,
		ptFunc:    t.ptFunc,
	}
	// Canonical values go straight into the store, bypassing unit scaling.
	// Shapes were validated upstream, so these writes cannot fail.
	_ = out.store.SetFrequency(t.store.Frequency())
	_ = out.store.SetTF(zCanonical)
	_ = out.store.SetTFError(errCanonical)
	_ = out.store.SetTFModelError(t.store.TFModelError())

	return out
}

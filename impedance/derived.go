package impedance

import (
	"math"
	"math/cmplx"
)

// apparentResistivityFactor is the standard MT convention constant 0.2,
// from ρa = |Z|²·μ0/(2πf) with Z in mV/km/nT: μ0·10⁶/(2π·10⁻³) ≈ 1/5.
const apparentResistivityFactor = 0.2

// reconstructionFactor is the exact inverse of apparentResistivityFactor,
// used when rebuilding |Z| from apparent resistivity.
const reconstructionFactor = 5.0

// degPerRad converts radians to degrees.
const degPerRad = 180.0 / math.Pi

// All derived quantities operate on canonical-unit values, are pure, and
// are recomputed on every call. Numeric edge cases (zero magnitudes,
// singular tensors) propagate as NaN/Inf per IEEE-754; they are never
// surfaced as errors.

// Resistivity returns the apparent resistivity per tensor entry in Ohm·m,
// flat row-major (4 values per frequency):
// ρa[f,i,j] = 0.2·|Z[f,i,j]|²/f. Nil when tensor or frequency is absent.
func (t *Tensor) Resistivity() []float64 {
	z, freq := t.store.TF(), t.store.Frequency()
	if z == nil || freq == nil {
		return nil
	}

	out := make([]float64, len(z))
	for i, v := range z {
		a := cmplx.Abs(v)
		out[i] = a * a / freq[i/4] * apparentResistivityFactor
	}

	return out
}

// Phase returns the phase per tensor entry in degrees, flat row-major.
// Nil when the tensor is absent.
func (t *Tensor) Phase() []float64 {
	z := t.store.TF()
	if z == nil {
		return nil
	}

	out := make([]float64, len(z))
	for i, v := range z {
		out[i] = cmplx.Phase(v) * degPerRad
	}

	return out
}

// ResistivityError returns the linearized apparent-resistivity error,
// flat row-major: 0.2·2·σ[f,i,j]·|Z[f,i,j]|/f. Valid for small relative
// error only. Nil when tensor, frequency or error array is absent.
func (t *Tensor) ResistivityError() []float64 {
	return t.resErrorFrom(t.store.TFError())
}

// ResistivityModelError is ResistivityError computed from the
// model-error array.
func (t *Tensor) ResistivityModelError() []float64 {
	return t.resErrorFrom(t.store.TFModelError())
}

// PhaseError returns the phase uncertainty in degrees, flat row-major:
// degrees(arctan(σ[f,i,j]/|Z[f,i,j]|)). A zero magnitude yields the
// arctan of Inf or NaN silently. Nil when tensor or error array is absent.
func (t *Tensor) PhaseError() []float64 {
	return t.phaseErrorFrom(t.store.TFError())
}

// PhaseModelError is PhaseError computed from the model-error array.
func (t *Tensor) PhaseModelError() []float64 {
	return t.phaseErrorFrom(t.store.TFModelError())
}

func (t *Tensor) resErrorFrom(sigma []float64) []float64 {
	z, freq := t.store.TF(), t.store.Frequency()
	if z == nil || freq == nil || sigma == nil {
		return nil
	}

	out := make([]float64, len(z))
	for i, v := range z {
		out[i] = 2 * sigma[i] * cmplx.Abs(v) / freq[i/4] * apparentResistivityFactor
	}

	return out
}

func (t *Tensor) phaseErrorFrom(sigma []float64) []float64 {
	z := t.store.TF()
	if z == nil || sigma == nil {
		return nil
	}

	out := make([]float64, len(z))
	for i, v := range z {
		out[i] = math.Atan(sigma[i]/cmplx.Abs(v)) * degPerRad
	}

	return out
}

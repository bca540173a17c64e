package impedance

import (
	"math"
	"math/cmplx"
)

// det2 returns the determinant of the 2×2 block starting at off.
func det2(z []complex128, off int) complex128 {
	return z[off]*z[off+3] - z[off+1]*z[off+2]
}

// Determinant returns the rotational invariant sqrt(det(Z[f])) per
// frequency (complex square root, so negative real determinants land on
// the imaginary axis rather than failing). Nil when the tensor is absent.
func (t *Tensor) Determinant() []complex128 {
	z := t.store.TF()
	if z == nil {
		return nil
	}

	out := make([]complex128, len(z)/4)
	for f := range out {
		out[f] = cmplx.Sqrt(det2(z, 4*f))
	}

	return out
}

// DeterminantError returns the determinant-invariant uncertainty per
// frequency. Tensor components are correlated, so standard error
// propagation does not apply; instead the determinant is evaluated at
// Z+σ and Z−σ and the half-difference is taken:
//
//	σ_det[f] = sqrt(|det(Z[f]+σ[f]) − det(Z[f]−σ[f])| / 2)
//
// Both the error and model-error variants use canonical-unit values with
// no additional unit factor (see DESIGN.md). Nil when tensor or error
// array is absent.
func (t *Tensor) DeterminantError() []float64 {
	return t.detErrorFrom(t.store.TFError())
}

// DeterminantModelError is DeterminantError computed from the
// model-error array.
func (t *Tensor) DeterminantModelError() []float64 {
	return t.detErrorFrom(t.store.TFModelError())
}

func (t *Tensor) detErrorFrom(sigma []float64) []float64 {
	z := t.store.TF()
	if z == nil || sigma == nil {
		return nil
	}

	out := make([]float64, len(z)/4)
	plus := make([]complex128, 4)
	minus := make([]complex128, 4)
	for f := range out {
		off := 4 * f
		for k := 0; k < 4; k++ {
			plus[k] = z[off+k] + complex(sigma[off+k], 0)
			minus[k] = z[off+k] - complex(sigma[off+k], 0)
		}
		out[f] = math.Sqrt(cmplx.Abs(det2(plus, 0)-det2(minus, 0)) / 2)
	}

	return out
}

// PhaseDet returns the phase of the determinant invariant in degrees:
// degrees(atan2(Im det, Re det)). Nil when the tensor is absent.
func (t *Tensor) PhaseDet() []float64 {
	det := t.Determinant()
	if det == nil {
		return nil
	}

	out := make([]float64, len(det))
	for f, d := range det {
		out[f] = math.Atan2(imag(d), real(d)) * degPerRad
	}

	return out
}

// PhaseErrorDet returns the determinant-phase uncertainty in degrees:
// degrees(arcsin(σ_det/|det|)). Near-singular tensors can push the
// arcsin argument past 1, yielding NaN; callers must tolerate it.
func (t *Tensor) PhaseErrorDet() []float64 {
	return t.phaseDetErrorFrom(t.DeterminantError())
}

// PhaseModelErrorDet is PhaseErrorDet computed from the model-error array.
func (t *Tensor) PhaseModelErrorDet() []float64 {
	return t.phaseDetErrorFrom(t.DeterminantModelError())
}

func (t *Tensor) phaseDetErrorFrom(detErr []float64) []float64 {
	det := t.Determinant()
	if det == nil || detErr == nil {
		return nil
	}

	out := make([]float64, len(det))
	for f, d := range det {
		out[f] = math.Asin(detErr[f]/cmplx.Abs(d)) * degPerRad
	}

	return out
}

// ResDet returns the determinant apparent resistivity per frequency:
// 0.2·|det|²/f. Nil when tensor or frequency is absent.
func (t *Tensor) ResDet() []float64 {
	det, freq := t.Determinant(), t.store.Frequency()
	if det == nil || freq == nil {
		return nil
	}

	out := make([]float64, len(det))
	for f, d := range det {
		a := cmplx.Abs(d)
		out[f] = apparentResistivityFactor / freq[f] * a * a
	}

	return out
}

// ResErrorDet returns the determinant-resistivity uncertainty via the
// same finite-difference pattern as DeterminantError:
// 0.2/f·|det+σ_det|² − ResDet.
func (t *Tensor) ResErrorDet() []float64 {
	return t.resDetErrorFrom(t.DeterminantError())
}

// ResModelErrorDet is ResErrorDet computed from the model-error array.
func (t *Tensor) ResModelErrorDet() []float64 {
	return t.resDetErrorFrom(t.DeterminantModelError())
}

func (t *Tensor) resDetErrorFrom(detErr []float64) []float64 {
	det, freq := t.Determinant(), t.store.Frequency()
	if det == nil || freq == nil || detErr == nil {
		return nil
	}

	out := make([]float64, len(det))
	for f, d := range det {
		a := cmplx.Abs(d)
		shifted := cmplx.Abs(d + complex(detErr[f], 0))
		out[f] = apparentResistivityFactor / freq[f] * (shifted*shifted - a*a)
	}

	return out
}

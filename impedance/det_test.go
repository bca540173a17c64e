package impedance_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mtz/impedance"
)

// rotate2x2 applies the orthogonal similarity transform R·Z·Rᵀ with
// rotation angle theta to one flat 2×2 complex block.
func rotate2x2(z []complex128, theta float64) []complex128 {
	c, s := complex(math.Cos(theta), 0), complex(math.Sin(theta), 0)
	z00, z01, z10, z11 := z[0], z[1], z[2], z[3]

	return []complex128{
		c*c*z00 + c*s*(z01+z10) + s*s*z11,
		c*c*z01 - c*s*(z00-z11) - s*s*z10,
		c*c*z10 - c*s*(z00-z11) - s*s*z01,
		c*c*z11 - c*s*(z01+z10) + s*s*z00,
	}
}

// TestDeterminant_KnownValue verifies sqrt(det) for a diagonal tensor.
func TestDeterminant_KnownValue(t *testing.T) {
	zt := newSingleFreq(t, []complex128{2, 0, 0, 2}) // det = 4

	det := zt.Determinant()
	require.Len(t, det, 1)
	assert.InDelta(t, 2.0, real(det[0]), 1e-12)
	assert.InDelta(t, 0.0, imag(det[0]), 1e-12)
}

// TestDeterminant_NegativeDet verifies the complex square root lands on
// the imaginary axis instead of failing for a negative determinant.
func TestDeterminant_NegativeDet(t *testing.T) {
	zt := newSingleFreq(t, []complex128{0, 1, 1, 0}) // det = -1

	det := zt.Determinant()
	assert.InDelta(t, 0.0, real(det[0]), 1e-12)
	assert.InDelta(t, 1.0, math.Abs(imag(det[0])), 1e-12)
}

// TestDeterminantFamily_RotationInvariance verifies that det, res_det and
// phase_det are unchanged under an orthogonal similarity transform of Z.
func TestDeterminantFamily_RotationInvariance(t *testing.T) {
	base := []complex128{0.4 + 0.3i, 2 + 1.5i, -1.8 - 1.2i, -0.3 + 0.2i}

	zt := newSingleFreq(t, base)
	wantDet := zt.Determinant()[0]
	wantRes := zt.ResDet()[0]
	wantPhase := zt.PhaseDet()[0]

	for _, theta := range []float64{0.3, math.Pi / 4, 1.2, 2.9} {
		zr := newSingleFreq(t, rotate2x2(base, theta))

		assert.InDelta(t, cmplx.Abs(wantDet), cmplx.Abs(zr.Determinant()[0]), 1e-9, "|det| at θ=%g", theta)
		assert.InDelta(t, wantRes, zr.ResDet()[0], 1e-9, "res_det at θ=%g", theta)
		assert.InDelta(t, wantPhase, zr.PhaseDet()[0], 1e-9, "phase_det at θ=%g", theta)
	}
}

// TestDeterminantError_FiniteDifference verifies the manual propagation
// σ_det = sqrt(|det(Z+σ) − det(Z−σ)|/2) against a hand-computed value.
func TestDeterminantError_FiniteDifference(t *testing.T) {
	zt := newSingleFreq(t, []complex128{2, 0, 0, 2})
	require.NoError(t, zt.SetTensorError([]float64{0.1, 0, 0, 0.1}))

	// det(Z+σ) = 2.1², det(Z−σ) = 1.9², half difference = 0.4.
	got := zt.DeterminantError()
	require.Len(t, got, 1)
	assert.InDelta(t, math.Sqrt(0.4), got[0], 1e-12)

	// Same formula on the model-error array, same normalization.
	require.NoError(t, zt.SetTensorModelError([]float64{0.1, 0, 0, 0.1}))
	assert.InDelta(t, got[0], zt.DeterminantModelError()[0], 1e-12)
}

// TestPhaseErrorDet_ArcsinDomain verifies the arcsin edge: an error
// larger than |det| produces NaN, silently.
func TestPhaseErrorDet_ArcsinDomain(t *testing.T) {
	zt := newSingleFreq(t, []complex128{2, 0, 0, 2})
	require.NoError(t, zt.SetTensorError([]float64{100, 0, 0, 100}))

	got := zt.PhaseErrorDet()
	require.Len(t, got, 1)
	assert.True(t, math.IsNaN(got[0]), "arcsin argument > 1 must yield NaN, not an error")
}

// TestResDet_Formula verifies ρ_det = 0.2·|det|²/f and its
// finite-difference error variant.
func TestResDet_Formula(t *testing.T) {
	zt := newSingleFreq(t, []complex128{2, 0, 0, 2}) // |det| = 2

	assert.InDelta(t, 0.2*4.0, zt.ResDet()[0], 1e-12)

	require.NoError(t, zt.SetTensorError([]float64{0.1, 0, 0, 0.1}))
	sigma := zt.DeterminantError()[0]
	want := 0.2*(2+sigma)*(2+sigma) - 0.2*4.0
	assert.InDelta(t, want, zt.ResErrorDet()[0], 1e-12)
}

// TestDetFamily_NilWhenAbsent verifies absence propagation.
func TestDetFamily_NilWhenAbsent(t *testing.T) {
	zt, err := impedance.New(impedance.UnitField)
	require.NoError(t, err)

	assert.Nil(t, zt.Determinant())
	assert.Nil(t, zt.DeterminantError())
	assert.Nil(t, zt.PhaseDet())
	assert.Nil(t, zt.ResDet())
	assert.Nil(t, zt.ResErrorDet())
}

package impedance_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mtz/impedance"
)

// newSingleFreq builds a one-frequency tensor in field units.
func newSingleFreq(t *testing.T, z []complex128) *impedance.Tensor {
	t.Helper()
	zt, err := impedance.New(impedance.UnitField)
	require.NoError(t, err)
	require.NoError(t, zt.SetFrequency([]float64{1.0}))
	require.NoError(t, zt.SetTensor(z))

	return zt
}

/// TestResistivityPhase_EndToEnd is the canonical worked example:
// z_xx = 1+1i at 1 Hz gives ρ_xx = 0.2·|1+1i|² = 0.4 Ohm·m and φ_xx = 45°.
func TestResistivityPhase_EndToEnd(t *testing.T) {
	zt := newSingleFreq(t, oneFreqTensor)

	res := zt.ResAt(impedance.CompXX)
	require.Len(t, res, 1)
	assert.InDelta(t, 0.4, res[0], 1e-12)

	phase := zt.PhaseAt(impedance.CompXX)
	require.Len(t, phase, 1)
	assert.InDelta(t, 45.0, phase[0], 1e-12)

	// Off-diagonal: |0.1+0.1i|² = 0.02 → ρ = 0.004.
	assert.InDelta(t, 0.004, zt.ResAt(impedance.CompXY)[0], 1e-12)
	assert.InDelta(t, 45.0, zt.PhaseAt(impedance.CompYX)[0], 1e-12)
}

// TestResistivity_UnitInvariance verifies derived quantities do not
// depend on the display unit: they are computed from canonical storage.
func TestResistivity_UnitInvariance(t *testing.T) {
	zt := newSingleFreq(t, oneFreqTensor)
	want := zt.ResAt(impedance.CompXX)[0]

	require.NoError(t, zt.SetUnit(impedance.UnitResistance))
	assert.InDelta(t, want, zt.ResAt(impedance.CompXX)[0], 1e-12,
		"apparent resistivity must not change with the display unit")
	assert.InDelta(t, 45.0, zt.PhaseAt(impedance.CompXX)[0], 1e-12)
}

// TestResistivityError_Linearized verifies
// σ_ρ = 0.2·2·σ_z·|z|/f against a hand-computed value.
func TestResistivityError_Linearized(t *testing.T) {
	zt := newSingleFreq(t, []complex128{3 + 4i, 1, 1, 1}) // |z_xx| = 5
	require.NoError(t, zt.SetTensorError([]float64{0.1, 0, 0, 0}))

	got := zt.ResErrorAt(impedance.CompXX)
	require.Len(t, got, 1)
	assert.InDelta(t, 0.2*2*0.1*5.0/1.0, got[0], 1e-12)

	// Model-error variant uses the same formula on the other array.
	require.NoError(t, zt.SetTensorModelError([]float64{0.2, 0, 0, 0}))
	assert.InDelta(t, 0.2*2*0.2*5.0/1.0, zt.ResModelErrorAt(impedance.CompXX)[0], 1e-12)
}

// TestPhaseError_Arctan verifies σ_φ = degrees(arctan(σ_z/|z|)) and its
// silent edge cases at zero magnitude.
func TestPhaseError_Arctan(t *testing.T) {
	zt := newSingleFreq(t, []complex128{1, 0, 1, 1})
	require.NoError(t, zt.SetTensorError([]float64{1, 0.5, 0, 0}))

	got := zt.PhaseErrorAt(impedance.CompXX)
	assert.InDelta(t, 45.0, got[0], 1e-12, "σ = |z| gives arctan(1) = 45°")

	// |z| = 0 with σ > 0: arctan(+Inf) = 90°, silently.
	assert.InDelta(t, 90.0, zt.PhaseErrorAt(impedance.CompXY)[0], 1e-12)

	// |z| = 0 with σ = 0: 0/0 is NaN and stays NaN.
	zt2 := newSingleFreq(t, []complex128{0, 1, 1, 1})
	require.NoError(t, zt2.SetTensorError([]float64{0, 0, 0, 0}))
	assert.True(t, math.IsNaN(zt2.PhaseErrorAt(impedance.CompXX)[0]),
		"0/0 must propagate as NaN, not an error")
}

// TestDerived_NilWhenAbsent verifies derived quantities signal absence
// with nil rather than zero-filled arrays.
func TestDerived_NilWhenAbsent(t *testing.T) {
	zt, err := impedance.New(impedance.UnitField)
	require.NoError(t, err)

	assert.Nil(t, zt.Resistivity())
	assert.Nil(t, zt.Phase())
	assert.Nil(t, zt.ResAt(impedance.CompXX))

	// With a tensor but no error array, the error quantities stay nil.
	require.NoError(t, zt.SetFrequency([]float64{1}))
	require.NoError(t, zt.SetTensor(oneFreqTensor))
	assert.Nil(t, zt.ResistivityError())
	assert.Nil(t, zt.PhaseError())
	assert.Nil(t, zt.ResistivityModelError())
	assert.Nil(t, zt.PhaseModelError())
	assert.NotNil(t, zt.Resistivity())
}

// TestTensorAt_FixedLayout verifies the xx/xy/yx/yy index mapping.
func TestTensorAt_FixedLayout(t *testing.T) {
	zt := newSingleFreq(t, []complex128{1, 2, 3, 4})

	assert.Equal(t, complex128(1), zt.TensorAt(impedance.CompXX)[0])
	assert.Equal(t, complex128(2), zt.TensorAt(impedance.CompXY)[0])
	assert.Equal(t, complex128(3), zt.TensorAt(impedance.CompYX)[0])
	assert.Equal(t, complex128(4), zt.TensorAt(impedance.CompYY)[0])
}

package impedance_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mtz/impedance"
)

// stubPhaseTensor returns canned eccentricity and skew sequences.
type stubPhaseTensor struct {
	ecc, skew []float64
}

func (s stubPhaseTensor) Eccentricity() []float64 { return s.ecc }
func (s stubPhaseTensor) Skew() []float64         { return s.skew }

// newStubbed builds a 3-frequency tensor whose phase tensor is replaced
// by a canned double.
func newStubbed(t *testing.T, ecc, skew []float64) *impedance.Tensor {
	t.Helper()
	zt, err := impedance.New(impedance.UnitField,
		impedance.WithPhaseTensorFunc(func(_ []complex128, _, _, _ []float64) (impedance.PhaseTensor, error) {
			return stubPhaseTensor{ecc: ecc, skew: skew}, nil
		}))
	require.NoError(t, err)
	require.NoError(t, zt.SetFrequency([]float64{100, 10, 1}))
	require.NoError(t, zt.SetTensor(make([]complex128, 12)))

	return zt
}

// TestEstimateDimensionality_Thresholds is the canonical classification
// case: skew [0,0,10] and eccentricity [0,0.2,0] with thresholds (5, 0.1)
// must yield [1,2,3].
func TestEstimateDimensionality_Thresholds(t *testing.T) {
	zt := newStubbed(t, []float64{0, 0.2, 0}, []float64{0, 0, 10})

	dim, err := zt.EstimateDimensionality(impedance.DefaultDimensionalityOptions())
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, dim)
}

// TestEstimateDimensionality_LaterAssignmentWins verifies a frequency
// passing both thresholds ends at 3, not 2.
func TestEstimateDimensionality_LaterAssignmentWins(t *testing.T) {
	zt := newStubbed(t, []float64{0.5, 0.5, 0.5}, []float64{0, -20, 20})

	dim, err := zt.EstimateDimensionality(impedance.DefaultDimensionalityOptions())
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 3}, dim, "|skew| beyond threshold overrides the 2-D upgrade")
}

// TestEstimateDimensionality_DefaultPhaseTensor exercises the real
// phasetensor collaborator: a 1-D tensor (anti-diagonal, equal moduli)
// has zero eccentricity and zero skew at every frequency.
func TestEstimateDimensionality_DefaultPhaseTensor(t *testing.T) {
	zt, err := impedance.New(impedance.UnitField)
	require.NoError(t, err)
	require.NoError(t, zt.SetFrequency([]float64{10, 1}))
	require.NoError(t, zt.SetTensor([]complex128{
		0, 2 + 2i, -2 - 2i, 0,
		0, 5 + 1i, -5 - 1i, 0,
	}))

	dim, err := zt.EstimateDimensionality(impedance.DefaultDimensionalityOptions())
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1}, dim)
}

// TestEstimateDimensionality_MissingData verifies the guard errors.
func TestEstimateDimensionality_MissingData(t *testing.T) {
	zt, err := impedance.New(impedance.UnitField)
	require.NoError(t, err)

	_, err = zt.EstimateDimensionality(impedance.DefaultDimensionalityOptions())
	assert.ErrorIs(t, err, impedance.ErrMissingTensor)

	require.NoError(t, zt.SetTensor(make([]complex128, 4)))
	_, err = zt.EstimateDimensionality(impedance.DefaultDimensionalityOptions())
	assert.ErrorIs(t, err, impedance.ErrMissingFrequency)
}

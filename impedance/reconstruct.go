package impedance

import (
	"math"
	"math/cmplx"

	"go.uber.org/zap"

	"github.com/katalvlaran/mtz/transferfn"
)

// zErrorReconstructionFactor is the empirically calibrated constant in
// the inverse error formula, roughly 5·(2π)² ≈ 250. It is not rigorously
// derived; it is reproduced exactly for compatibility with paired
// tooling.
const zErrorReconstructionFactor = 250.0

// ResistivityPhaseErrors carries the optional uncertainty inputs for
// SetResistivityPhase. Any nil field leaves the corresponding tensor
// error array unset.
type ResistivityPhaseErrors struct {
	Res        []float64 // apparent-resistivity error, Ohm·m
	Phase      []float64 // phase error, degrees
	ResModel   []float64 // apparent-resistivity model error, Ohm·m
	PhaseModel []float64 // phase model error, degrees
}

// SetResistivityPhase reconstructs the impedance tensor from apparent
// resistivity (Ohm·m) and phase (degrees), the inverse of the
// Resistivity/Phase formulas:
//
//	|Z[f,i,j]| = sqrt(5·f·ρ[f,i,j]),  arg Z[f,i,j] = radians(φ[f,i,j])
//
// (5 is exactly 1/0.2, so the round-trip through Resistivity/Phase is
// exact up to floating-point error). All arrays are flat row-major with
// 4 values per frequency. If resistivity, phase or frequency is nil the
// call logs and returns nil without touching state. The frequency axis
// is set first (validated for positivity and shape); a shape mismatch
// anywhere aborts before the tensor is written.
//
// Error reconstruction uses the documented empirical inverse
//
//	σ_z = |sqrt(f·σ_ρ·250) · tan(radians(σ_φ))|
//
// applied independently to the error and model-error pairs; a pair with
// either input nil leaves that error array unset.
func (t *Tensor) SetResistivityPhase(resistivity, phase, frequency []float64, errs ResistivityPhaseErrors) error {
	if resistivity == nil || phase == nil || frequency == nil {
		t.log.Debug("cannot reconstruct tensor: resistivity, phase or frequency is nil",
			zap.Bool("have_resistivity", resistivity != nil),
			zap.Bool("have_phase", phase != nil),
			zap.Bool("have_frequency", frequency != nil))

		return nil
	}

	if err := t.store.SetFrequency(frequency); err != nil {
		return err
	}
	if len(resistivity) != 4*len(frequency) {
		return &transferfn.ShapeError{Field: "resistivity", Want: len(frequency), Got: len(resistivity) / 4}
	}
	if len(phase) != len(resistivity) {
		return &transferfn.ShapeError{Field: "phase", Want: len(frequency), Got: len(phase) / 4}
	}

	z := make([]complex128, len(resistivity))
	for i := range z {
		amp := math.Sqrt(reconstructionFactor * frequency[i/4] * resistivity[i])
		z[i] = complex(amp, 0) * cmplx.Exp(complex(0, phase[i]/degPerRad))
	}
	// Reconstructed values are canonical field units.
	if err := t.store.SetTF(z); err != nil {
		return err
	}

	zErr, err := t.reconstructZError(frequency, errs.Res, errs.Phase, "resistivity_error")
	if err != nil {
		return err
	}
	if err := t.store.SetTFError(zErr); err != nil {
		return err
	}

	zModelErr, err := t.reconstructZError(frequency, errs.ResModel, errs.PhaseModel, "resistivity_model_error")
	if err != nil {
		return err
	}

	return t.store.SetTFModelError(zModelErr)
}

// reconstructZError applies the empirical inverse error formula; nil
// when either input of the pair is absent.
func (t *Tensor) reconstructZError(frequency, resErr, phaseErr []float64, field string) ([]float64, error) {
	if resErr == nil || phaseErr == nil {
		return nil, nil
	}
	if len(resErr) != 4*len(frequency) || len(phaseErr) != len(resErr) {
		return nil, &transferfn.ShapeError{Field: field, Want: len(frequency), Got: len(resErr) / 4}
	}

	out := make([]float64, len(resErr))
	for i := range out {
		amp := math.Sqrt(frequency[i/4] * resErr[i] * zErrorReconstructionFactor)
		out[i] = math.Abs(amp * math.Tan(phaseErr[i]/degPerRad))
	}

	return out, nil
}

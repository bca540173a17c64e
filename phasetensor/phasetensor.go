package phasetensor

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrNoTensor indicates nil impedance samples.
	ErrNoTensor = errors.New("phasetensor: impedance samples must not be nil")
	// ErrBadShape indicates array lengths that do not describe (N,2,2)
	// data with a matching frequency axis.
	ErrBadShape = errors.New("phasetensor: array lengths disagree")
)

const degPerRad = 180.0 / math.Pi

// PhaseTensor holds Φ = X⁻¹·Y per frequency, flat row-major (4 values
// per frequency). Immutable once built; all derived sequences are
// recomputed per call.
type PhaseTensor struct {
	phi  []float64
	freq []float64
}

// New builds the phase tensor from flat row-major impedance samples.
// zErr and zModelErr are accepted for interface symmetry with the
// impedance tensor and may be nil; the point estimates below do not use
// them. freq may be nil; when present its length must match. A singular
// Re(Z) block produces NaN/Inf entries for that frequency, silently.
func New(z []complex128, zErr, zModelErr, freq []float64) (*PhaseTensor, error) {
	if z == nil {
		return nil, ErrNoTensor
	}
	if len(z) == 0 || len(z)%4 != 0 {
		return nil, fmt.Errorf("%w: %d impedance values", ErrBadShape, len(z))
	}
	n := len(z) / 4
	if freq != nil && len(freq) != n {
		return nil, fmt.Errorf("%w: %d frequencies for %d samples", ErrBadShape, len(freq), n)
	}
	if zErr != nil && len(zErr) != len(z) {
		return nil, fmt.Errorf("%w: %d error values for %d samples", ErrBadShape, len(zErr), len(z))
	}
	if zModelErr != nil && len(zModelErr) != len(z) {
		return nil, fmt.Errorf("%w: %d model-error values for %d samples", ErrBadShape, len(zModelErr), len(z))
	}

	pt := &PhaseTensor{
		phi:  make([]float64, len(z)),
		freq: append([]float64(nil), freq...),
	}
	for f := 0; f < n; f++ {
		off := 4 * f
		x00, x01 := real(z[off]), real(z[off+1])
		x10, x11 := real(z[off+2]), real(z[off+3])
		y00, y01 := imag(z[off]), imag(z[off+1])
		y10, y11 := imag(z[off+2]), imag(z[off+3])

		// Adjugate inverse of X; det 0 divides through to Inf/NaN.
		det := x00*x11 - x01*x10
		pt.phi[off+0] = (x11*y00 - x01*y10) / det
		pt.phi[off+1] = (x11*y01 - x01*y11) / det
		pt.phi[off+2] = (x00*y10 - x10*y00) / det
		pt.phi[off+3] = (x00*y11 - x10*y01) / det
	}

	return pt, nil
}

// NFrequencies reports the number of frequencies.
func (p *PhaseTensor) NFrequencies() int { return len(p.phi) / 4 }

// Phi returns a copy of the flat phase-tensor values.
func (p *PhaseTensor) Phi() []float64 { return append([]float64(nil), p.phi...) }

// Frequency returns a copy of the frequency axis, nil when absent.
func (p *PhaseTensor) Frequency() []float64 {
	if p.freq == nil {
		return nil
	}

	return append([]float64(nil), p.freq...)
}

// pi1 and pi2 are the rotational invariants of Φ:
// Π1 = ½·sqrt((Φ11−Φ22)² + (Φ12+Φ21)²), Π2 = ½·sqrt((Φ11+Φ22)² + (Φ12−Φ21)²).
func (p *PhaseTensor) pi(f int) (pi1, pi2 float64) {
	off := 4 * f
	d, s := p.phi[off]-p.phi[off+3], p.phi[off]+p.phi[off+3]
	a, b := p.phi[off+1]+p.phi[off+2], p.phi[off+1]-p.phi[off+2]

	return 0.5 * math.Hypot(d, a), 0.5 * math.Hypot(s, b)
}

// Eccentricity returns Π1/Π2 per frequency. A circular (1-D) phase
// tensor has eccentricity 0; strong ellipticity signals 2-D structure.
func (p *PhaseTensor) Eccentricity() []float64 {
	out := make([]float64, p.NFrequencies())
	for f := range out {
		pi1, pi2 := p.pi(f)
		out[f] = pi1 / pi2
	}

	return out
}

// Skew returns the skew angle β = ½·atan2(Φ12−Φ21, Φ11+Φ22) per
// frequency, in degrees. |β| beyond a few degrees signals 3-D structure.
func (p *PhaseTensor) Skew() []float64 {
	out := make([]float64, p.NFrequencies())
	for f := range out {
		off := 4 * f
		out[f] = 0.5 * math.Atan2(p.phi[off+1]-p.phi[off+2], p.phi[off]+p.phi[off+3]) * degPerRad
	}

	return out
}

// Azimuth returns α = ½·atan2(Φ12+Φ21, Φ11−Φ22) per frequency, in
// degrees: the orientation of the phase-tensor ellipse's major axis.
func (p *PhaseTensor) Azimuth() []float64 {
	out := make([]float64, p.NFrequencies())
	for f := range out {
		off := 4 * f
		out[f] = 0.5 * math.Atan2(p.phi[off+1]+p.phi[off+2], p.phi[off]-p.phi[off+3]) * degPerRad
	}

	return out
}

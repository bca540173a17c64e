package impedance

import "math"

// mu0 is the vacuum magnetic permeability, H/m.
const mu0 = 4 * math.Pi * 1e-7

// DepthOfInvestigation holds Niblett-Bostick penetration-depth estimates
// in meters, one per frequency.
type DepthOfInvestigation struct {
	Det []float64 // from the determinant apparent resistivity
	XY  []float64 // from ρa(xy)
	YX  []float64 // from ρa(yx)
}

// EstimateDepthOfInvestigation returns the Niblett-Bostick depth
//
//	h[f] = sqrt(ρa[f]·T[f] / (2π·μ0))
//
// for the determinant, xy and yx apparent resistivities. Nil when tensor
// or frequency is absent.
func (t *Tensor) EstimateDepthOfInvestigation() *DepthOfInvestigation {
	period := t.Period()
	resDet := t.ResDet()
	if period == nil || resDet == nil {
		return nil
	}

	return &DepthOfInvestigation{
		Det: bostickDepth(resDet, period),
		XY:  bostickDepth(t.ResAt(CompXY), period),
		YX:  bostickDepth(t.ResAt(CompYX), period),
	}
}

func bostickDepth(res, period []float64) []float64 {
	out := make([]float64, len(res))
	for f := range out {
		out[f] = math.Sqrt(res[f] * period[f] / (2 * math.Pi * mu0))
	}

	return out
}

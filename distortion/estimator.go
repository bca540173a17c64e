package distortion

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/mtz/phasetensor"
)

// Estimator is the default galvanic-distortion estimator. It satisfies
// the Estimator interface of package impedance. The zero value is ready
// to use.
type Estimator struct{}

// NewEstimator returns the default estimator.
func NewEstimator() *Estimator { return &Estimator{} }

// EstimateDistortion forwards to Estimate.
func (*Estimator) EstimateDistortion(z []complex128, zErr, freq []float64, opts Options) (*mat.Dense, *mat.Dense, error) {
	return Estimate(z, zErr, freq, opts)
}

// Estimate derives a frequency-independent real distortion matrix D and
// its uncertainty from flat row-major impedance samples in canonical
// field units.
//
// Per frequency the regional impedance Z0 is modelled from the phase
// tensor: 1-D frequencies use the anti-diagonal form s·[[0,1],[-1,0]]
// with s picked by opts.Comp; 2-D frequencies are rotated into strike
// coordinates (phase-tensor azimuth, sign per opts.Clockwise), fitted
// against their off-diagonal regional form, and the per-frequency
// estimate D_f = Re(Z·Z0⁻¹) is rotated back. 3-D frequencies are always
// skipped, 1-D ones too under opts.RestrictTo2D, and frequencies whose
// estimate contains NaN/Inf (singular reference) are dropped.
//
// D is the mean of the kept per-frequency estimates. The returned
// uncertainty combines the per-entry spread across frequencies with a
// linearized measurement term |σ_Z|/|s| when zErr is present.
func Estimate(z []complex128, zErr, freq []float64, opts Options) (*mat.Dense, *mat.Dense, error) {
	if len(z) == 0 || len(z)%4 != 0 {
		return nil, nil, fmt.Errorf("%w: %d impedance values", ErrBadInput, len(z))
	}
	n := len(z) / 4
	if len(freq) != n {
		return nil, nil, fmt.Errorf("%w: %d frequencies for %d samples", ErrBadInput, len(freq), n)
	}
	if zErr != nil && len(zErr) != len(z) {
		return nil, nil, fmt.Errorf("%w: %d error values for %d samples", ErrBadInput, len(zErr), len(z))
	}
	if n < MinFrequencies {
		return nil, nil, fmt.Errorf("%w: have %d, need %d", ErrTooFewFrequencies, n, MinFrequencies)
	}

	pt, err := phasetensor.New(z, zErr, nil, freq)
	if err != nil {
		return nil, nil, err
	}
	ecc, skew, azimuth := pt.Eccentricity(), pt.Skew(), pt.Azimuth()

	var (
		estimates [][4]float64
		sigmas    [][4]float64
	)
	for f := 0; f < n; f++ {
		if math.Abs(skew[f]) > opts.SkewThreshold {
			continue // 3-D
		}
		twoD := ecc[f] > opts.EccentricityThreshold
		if !twoD && opts.RestrictTo2D {
			continue
		}

		var df [4]float64
		var s complex128
		var ok bool
		if twoD {
			df, s, ok = fit2D(z[4*f:4*f+4], azimuth[f], opts.Clockwise)
		} else {
			df, s, ok = fit1D(z[4*f:4*f+4], opts.Comp)
		}
		if !ok {
			continue
		}

		estimates = append(estimates, df)
		if zErr != nil {
			mag := cmplx.Abs(s)
			var sf [4]float64
			for k := 0; k < 4; k++ {
				sf[k] = zErr[4*f+k] / mag
			}
			sigmas = append(sigmas, sf)
		}
	}
	if len(estimates) == 0 {
		return nil, nil, ErrNoSuitableFrequencies
	}

	var mean, spread, sigma [4]float64
	for _, e := range estimates {
		for k := 0; k < 4; k++ {
			mean[k] += e[k]
		}
	}
	for k := 0; k < 4; k++ {
		mean[k] /= float64(len(estimates))
	}
	for _, e := range estimates {
		for k := 0; k < 4; k++ {
			d := e[k] - mean[k]
			spread[k] += d * d
		}
	}
	for _, sf := range sigmas {
		for k := 0; k < 4; k++ {
			sigma[k] += sf[k]
		}
	}

	var dErr [4]float64
	for k := 0; k < 4; k++ {
		std := math.Sqrt(spread[k] / float64(len(estimates)))
		meas := 0.0
		if len(sigmas) > 0 {
			meas = sigma[k] / float64(len(sigmas))
		}
		dErr[k] = math.Hypot(std, meas)
	}

	return mat.NewDense(2, 2, mean[:]), mat.NewDense(2, 2, dErr[:]), nil
}

// regionalScalar picks the complex reference s for the 1-D regional form
// s·[[0,1],[-1,0]].
func regionalScalar(z []complex128, comp SelectionCriterion) complex128 {
	switch comp {
	case SelectXY:
		return z[1]
	case SelectYX:
		return -z[2]
	default:
		return cmplx.Sqrt(z[0]*z[3] - z[1]*z[2])
	}
}

// fit1D estimates D = Re(Z·Z0⁻¹) for the 1-D regional form.
func fit1D(z []complex128, comp SelectionCriterion) (df [4]float64, s complex128, ok bool) {
	s = regionalScalar(z, comp)
	// Z0⁻¹ = [[0, -1/s],[1/s, 0]]
	df[0] = real(z[1] / s)
	df[1] = real(-z[0] / s)
	df[2] = real(z[3] / s)
	df[3] = real(-z[2] / s)

	return df, s, finite(df)
}

// fit2D rotates Z into strike coordinates, fits against the 2-D regional
// off-diagonal form, and rotates the estimate back.
func fit2D(z []complex128, azimuthDeg float64, clockwise bool) (df [4]float64, s complex128, ok bool) {
	theta := azimuthDeg * math.Pi / 180
	if !clockwise {
		theta = -theta
	}
	c, sn := math.Cos(theta), math.Sin(theta)

	// Zr = R·Z·Rᵀ with R = [[c, sn],[-sn, c]].
	cc, ss, cs := complex(c*c, 0), complex(sn*sn, 0), complex(c*sn, 0)
	zr00 := cc*z[0] + cs*(z[1]+z[2]) + ss*z[3]
	zr01 := cc*z[1] - cs*(z[0]-z[3]) - ss*z[2]
	zr10 := cc*z[2] - cs*(z[0]-z[3]) - ss*z[1]
	zr11 := cc*z[3] - cs*(z[1]+z[2]) + ss*z[0]

	// Dr = Re(Zr·Z0r⁻¹) with Z0r = [[0, zr01],[zr10, 0]].
	dr00, dr01 := 1.0, real(zr00/zr10)
	dr10, dr11 := real(zr11/zr01), 1.0

	// D = Rᵀ·Dr·R.
	df[0] = c*(c*dr00-sn*dr10) - sn*(c*dr01-sn*dr11)
	df[1] = c*(c*dr01-sn*dr11) + sn*(c*dr00-sn*dr10)
	df[2] = c*(c*dr10+sn*dr00) - sn*(c*dr11+sn*dr01)
	df[3] = c*(c*dr11+sn*dr01) + sn*(c*dr10+sn*dr00)

	s = zr01

	return df, s, finite(df)
}

func finite(v [4]float64) bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}

	return true
}

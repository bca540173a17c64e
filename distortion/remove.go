package distortion

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// Remove recovers the regional tensor Z0 = D⁻¹·Z from flat row-major
// impedance samples in canonical field units. zErr and dErr may be nil.
//
// Error propagation: with Dinv = D⁻¹ and the element-wise absolute
// linearization δDinv = |Dinv|·|δD|·|Dinv|,
//
//	σ_Z0[i,j] = Σ_k |Dinv[i,k]|·σ_Z[k,j] + Σ_k δDinv[i,k]·|Z[k,j]|
//
// The returned error array is nil when both zErr and dErr are nil.
func Remove(z []complex128, zErr []float64, d, dErr *mat.Dense) ([]complex128, []float64, error) {
	if len(z) == 0 || len(z)%4 != 0 {
		return nil, nil, fmt.Errorf("%w: %d impedance values", ErrBadInput, len(z))
	}
	if zErr != nil && len(zErr) != len(z) {
		return nil, nil, fmt.Errorf("%w: %d error values for %d samples", ErrBadInput, len(zErr), len(z))
	}
	if r, c := d.Dims(); r != 2 || c != 2 {
		return nil, nil, fmt.Errorf("%w: got %d×%d", ErrBadDistortion, r, c)
	}
	if dErr != nil {
		if r, c := dErr.Dims(); r != 2 || c != 2 {
			return nil, nil, fmt.Errorf("%w: error matrix is %d×%d", ErrBadDistortion, r, c)
		}
	}

	var inv mat.Dense
	if err := inv.Inverse(d); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrSingularDistortion, err)
	}

	// δDinv = |Dinv|·|δD|·|Dinv|, entry-wise absolutes.
	var dInvErr [4]float64
	if dErr != nil {
		absInv := [4]float64{
			math.Abs(inv.At(0, 0)), math.Abs(inv.At(0, 1)),
			math.Abs(inv.At(1, 0)), math.Abs(inv.At(1, 1)),
		}
		absErr := [4]float64{
			math.Abs(dErr.At(0, 0)), math.Abs(dErr.At(0, 1)),
			math.Abs(dErr.At(1, 0)), math.Abs(dErr.At(1, 1)),
		}
		var tmp [4]float64 // |δD|·|Dinv|
		for i := 0; i < 2; i++ {
			for j := 0; j < 2; j++ {
				tmp[2*i+j] = absErr[2*i]*absInv[j] + absErr[2*i+1]*absInv[2+j]
			}
		}
		for i := 0; i < 2; i++ {
			for j := 0; j < 2; j++ {
				dInvErr[2*i+j] = absInv[2*i]*tmp[j] + absInv[2*i+1]*tmp[2+j]
			}
		}
	}

	i00 := complex(inv.At(0, 0), 0)
	i01 := complex(inv.At(0, 1), 0)
	i10 := complex(inv.At(1, 0), 0)
	i11 := complex(inv.At(1, 1), 0)

	out := make([]complex128, len(z))
	for f := 0; f < len(z)/4; f++ {
		off := 4 * f
		out[off+0] = i00*z[off+0] + i01*z[off+2]
		out[off+1] = i00*z[off+1] + i01*z[off+3]
		out[off+2] = i10*z[off+0] + i11*z[off+2]
		out[off+3] = i10*z[off+1] + i11*z[off+3]
	}

	if zErr == nil && dErr == nil {
		return out, nil, nil
	}

	errAt := func(i int) float64 {
		if zErr == nil {
			return 0
		}

		return math.Abs(zErr[i])
	}

	outErr := make([]float64, len(z))
	absI := [4]float64{
		math.Abs(inv.At(0, 0)), math.Abs(inv.At(0, 1)),
		math.Abs(inv.At(1, 0)), math.Abs(inv.At(1, 1)),
	}
	for f := 0; f < len(z)/4; f++ {
		off := 4 * f
		for i := 0; i < 2; i++ {
			for j := 0; j < 2; j++ {
				v := absI[2*i]*errAt(off+j) + absI[2*i+1]*errAt(off+2+j)
				v += dInvErr[2*i]*cmplx.Abs(z[off+j]) + dInvErr[2*i+1]*cmplx.Abs(z[off+2+j])
				outErr[2*i+j+off] = v
			}
		}
	}

	return out, outErr, nil
}

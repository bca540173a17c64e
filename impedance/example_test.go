package impedance_test

import (
	"fmt"

	"github.com/katalvlaran/mtz/impedance"
)

// ExampleTensor demonstrates the canonical workflow: construct, load one
// frequency, read apparent resistivity and phase.
func ExampleTensor() {
	z, _ := impedance.New(impedance.UnitField)
	_ = z.SetFrequency([]float64{1.0})
	_ = z.SetTensor([]complex128{1 + 1i, 0.1 + 0.1i, 0.1 + 0.1i, 1 + 1i})

	fmt.Printf("rho_xx = %.2f Ohm·m\n", z.ResAt(impedance.CompXX)[0])
	fmt.Printf("phase_xx = %.1f deg\n", z.PhaseAt(impedance.CompXX)[0])
	// Output:
	// rho_xx = 0.40 Ohm·m
	// phase_xx = 45.0 deg
}

// ExampleTensor_removeStaticShift demonstrates static-shift correction:
// a resistivity-scale factor of 4 on the x row divides the tensor row by
// 2 and the apparent resistivity by 4.
func ExampleTensor_removeStaticShift() {
	z, _ := impedance.New(impedance.UnitField)
	_ = z.SetFrequency([]float64{1.0})
	_ = z.SetTensor([]complex128{1 + 1i, 0.1 + 0.1i, 0.1 + 0.1i, 1 + 1i})

	corrected, _ := z.RemoveStaticShift([]float64{4}, []float64{1}, false)

	fmt.Printf("before: rho_xx = %.2f\n", z.ResAt(impedance.CompXX)[0])
	fmt.Printf("after:  rho_xx = %.2f\n", corrected.ResAt(impedance.CompXX)[0])
	// Output:
	// before: rho_xx = 0.40
	// after:  rho_xx = 0.10
}

// ExampleParseUnit demonstrates unit parsing and the fixed conversion.
func ExampleParseUnit() {
	u, _ := impedance.ParseUnit("ohm")

	z, _ := impedance.New(impedance.UnitField)
	_ = z.SetFrequency([]float64{1.0})
	_ = z.SetTensor([]complex128{0, 1, -1, 0})

	_ = z.SetUnit(u)
	fmt.Printf("z_xy = %.6f Ohm\n", real(z.TensorAt(impedance.CompXY)[0]))
	// Output:
	// z_xy = 0.001257 Ohm
}

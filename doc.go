// Package mtz models the magnetotelluric impedance tensor — the
// frequency-indexed 2×2 complex transfer function between magnetic and
// electric field variations measured at a survey site.
//
// 🚀 What is mtz?
//
//	A focused numerical library that brings together:
//		• transferfn  — flat, validated storage of the (N,2,2) transfer
//		  function, its error arrays and the frequency axis
//		• impedance   — the impedance tensor: units, apparent resistivity,
//		  phase, determinant invariants, static-shift and galvanic-distortion
//		  correction, dimensionality estimation
//		• phasetensor — the Caldwell phase tensor (eccentricity, skew, azimuth)
//		• distortion  — galvanic-distortion estimation and removal
//
// ✨ Why choose mtz?
//
//   - Unit-safe – canonical field units (mV/km/nT) under the hood, exact
//     and symmetric conversion to Ohms at the boundary
//   - Honest numerics – singular tensors yield NaN, never panics or
//     surprise errors, matching geophysical convention
//   - Swappable collaborators – distortion estimation and the phase tensor
//     sit behind small interfaces, trivially replaced by test doubles
//   - Extensible – functional options, structured logging via zap
//
// Quick start:
//
//	z, _ := impedance.New(impedance.UnitField)
//	_ = z.SetFrequency([]float64{10, 1, 0.1})
//	_ = z.SetTensor(samples) // flat row-major, 4 values per frequency
//	rho := z.ResAt(impedance.CompXY)
//
// Dive into DESIGN.md for the numerical conventions and the package
// example tests for worked examples.
//
//	go get github.com/katalvlaran/mtz
package mtz

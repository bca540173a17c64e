// Package impedance defines the Tensor type, its unit system and its
// fixed component layout.
package impedance

import (
	"fmt"
	"math"
)

// Unit selects the display unit for impedance values at the API boundary.
// Stored values are always canonical field units; Unit only affects what
// is read and written at the boundary.
type Unit int

const (
	// UnitField is the canonical magnetotelluric field unit, mV/km/nT.
	UnitField Unit = iota
	// UnitResistance is SI impedance, Ohm.
	UnitResistance
)

// FieldPerOhm converts a resistance-unit (Ohm) impedance magnitude into
// canonical field units: Z[mV/km/nT] = Z[Ohm] · 10⁴/(4π). The factor is
// 10⁴/(4π) because Z[Ohm] = μ0·10³·Z[mV/km/nT] with μ0 = 4π·10⁻⁷.
// Fixed constant, shared with paired tooling.
const FieldPerOhm = 1.0e4 / (4.0 * math.Pi)

// factor returns the multiplier that takes display-unit magnitudes into
// canonical field units.
func (u Unit) factor() float64 {
	if u == UnitResistance {
		return FieldPerOhm
	}

	return 1.0
}

// valid reports whether u is a recognized unit.
func (u Unit) valid() bool { return u == UnitField || u == UnitResistance }

// String implements fmt.Stringer.
func (u Unit) String() string {
	switch u {
	case UnitField:
		return "field"
	case UnitResistance:
		return "resistance"
	default:
		return fmt.Sprintf("Unit(%d)", int(u))
	}
}

// ParseUnit maps a unit name onto a Unit. Recognized names are
// "field"/"mt" and "resistance"/"ohm". Anything else yields ErrInvalidUnit.
func ParseUnit(s string) (Unit, error) {
	switch s {
	case "field", "mt":
		return UnitField, nil
	case "resistance", "ohm":
		return UnitResistance, nil
	default:
		return UnitField, fmt.Errorf("%w: %q", ErrInvalidUnit, s)
	}
}

// Component names one entry of the 2×2 impedance tensor. The mapping to
// matrix indices is fixed: xx=(0,0), xy=(0,1), yx=(1,0), yy=(1,1).
type Component int

const (
	// CompXX is the (0,0) tensor entry.
	CompXX Component = iota
	// CompXY is the (0,1) tensor entry.
	CompXY
	// CompYX is the (1,0) tensor entry.
	CompYX
	// CompYY is the (1,1) tensor entry.
	CompYY
)

// offset returns the component's position within one flat 4-entry block.
func (c Component) offset() int { return int(c) }

// String implements fmt.Stringer.
func (c Component) String() string {
	switch c {
	case CompXX:
		return "xx"
	case CompXY:
		return "xy"
	case CompYX:
		return "yx"
	case CompYY:
		return "yy"
	default:
		return fmt.Sprintf("Component(%d)", int(c))
	}
}

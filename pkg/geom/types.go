// Package geom defines the shared value types used throughout kerf:
// 2D/3D vectors, axis-aligned bounds, measurement units, rotation
// directions and tool path compensation modes.
package geom

import "math"

// MMPerInch is the fixed metric/imperial conversion factor.
const MMPerInch = 25.4

// Units selects between metric (millimeter) and imperial (inch)
// measurements. Both a Program and a Tool carry their own Units;
// mismatches are converted before geometry resolution.
type Units int

const (
	Metric Units = iota
	Imperial
)

func (u Units) String() string {
	switch u {
	case Imperial:
		return "\""
	default:
		return "mm"
	}
}

// Name returns the unit name used in serialized documents and error
// messages.
func (u Units) Name() string {
	if u == Imperial {
		return "imperial"
	}
	return "metric"
}

// FromMM converts a millimeter measurement into this unit.
func (u Units) FromMM(v float64) float64 {
	if u == Imperial {
		return v / MMPerInch
	}
	return v
}

// DefaultZEnd returns the conventional vertical bottom value, expressed
// in this unit.
func (u Units) DefaultZEnd() float64 {
	return u.FromMM(0.1)
}

// DefaultZMaxStep returns the conventional maximum depth per pass,
// expressed in this unit.
func (u Units) DefaultZMaxStep() float64 {
	return u.FromMM(1.0)
}

// Direction is a rotation direction, used both for spindles and for
// arc interpolation.
type Direction int

const (
	Clockwise Direction = iota
	Counterclockwise
)

func (d Direction) String() string {
	switch d {
	case Counterclockwise:
		return "counterclockwise"
	default:
		return "clockwise"
	}
}

// Axis names one of the three machine axes.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	default:
		return "Z"
	}
}

// Compensation indicates how a nominal boundary is offset by the tool
// radius. Outer shrinks the path by the tool radius so the finished
// opening matches the requested size (holes, pockets); Inner grows it
// so the remaining stock matches the requested size (bosses, cutouts).
type Compensation int

const (
	CompensationNone Compensation = iota
	CompensationInner
	CompensationOuter
)

func (c Compensation) String() string {
	switch c {
	case CompensationInner:
		return "inner"
	case CompensationOuter:
		return "outer"
	default:
		return "none"
	}
}

// Round rounds a value to three decimals. All serialized coordinates
// and feeds go through this to keep G-code output free of float noise.
func Round(v float64) float64 {
	return math.Round(v*1000) / 1000
}

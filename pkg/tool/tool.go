// Package tool describes the cutters a program may reference. Tools
// are plain comparable values; two tools with equal fields are the
// same tool for program assembly and merging.
package tool

import (
	"fmt"
	"math"

	"github.com/chazu/kerf/pkg/geom"
)

// Shape identifies the cutter geometry.
type Shape int

const (
	Cylindrical Shape = iota
	Ballnose
	Conical
)

func (s Shape) String() string {
	switch s {
	case Ballnose:
		return "ballnose"
	case Conical:
		return "conical"
	default:
		return "cylindrical"
	}
}

// Tool is a cutter description. Angle is only meaningful for Conical
// tools, where it is the full tip angle in degrees.
type Tool struct {
	Shape        Shape
	Units        geom.Units
	Diameter     float64
	Length       float64
	Angle        float64
	Direction    geom.Direction
	SpindleSpeed float64
	FeedRate     float64
}

// NewCylindrical returns a flat end mill description.
func NewCylindrical(units geom.Units, length, diameter float64, direction geom.Direction, spindleSpeed, feedRate float64) Tool {
	return Tool{
		Shape:        Cylindrical,
		Units:        units,
		Diameter:     diameter,
		Length:       length,
		Direction:    direction,
		SpindleSpeed: spindleSpeed,
		FeedRate:     feedRate,
	}
}

// NewBallnose returns a ball end mill description.
func NewBallnose(units geom.Units, length, diameter float64, direction geom.Direction, spindleSpeed, feedRate float64) Tool {
	return Tool{
		Shape:        Ballnose,
		Units:        units,
		Diameter:     diameter,
		Length:       length,
		Direction:    direction,
		SpindleSpeed: spindleSpeed,
		FeedRate:     feedRate,
	}
}

// NewConical returns a v-bit description. The cutting length is
// derived from the tip angle and diameter.
func NewConical(units geom.Units, angle, diameter float64, direction geom.Direction, spindleSpeed, feedRate float64) Tool {
	length := (diameter / 2) / math.Tan(angle/2*math.Pi/180)
	return Tool{
		Shape:        Conical,
		Units:        units,
		Diameter:     diameter,
		Length:       length,
		Angle:        angle,
		Direction:    direction,
		SpindleSpeed: spindleSpeed,
		FeedRate:     feedRate,
	}
}

// Radius returns half the tool diameter.
func (t Tool) Radius() float64 {
	return t.Diameter / 2
}

// ConvertUnits returns the tool with its linear dimensions expressed
// in the given units. Converting to the tool's own units is a no-op.
func (t Tool) ConvertUnits(units geom.Units) Tool {
	if t.Units == units {
		return t
	}
	factor := geom.MMPerInch
	if units == geom.Imperial {
		factor = 1 / geom.MMPerInch
	}
	t.Units = units
	t.Diameter *= factor
	t.Length *= factor
	return t
}

// Validate reports a ToolError for physically meaningless tools.
func (t Tool) Validate() error {
	if t.Diameter <= 0 {
		return &ToolError{Tool: t, Reason: "diameter must be positive"}
	}
	if t.Length <= 0 {
		return &ToolError{Tool: t, Reason: "length must be positive"}
	}
	if t.Shape == Conical && (t.Angle <= 0 || t.Angle >= 180) {
		return &ToolError{Tool: t, Reason: "angle must be between 0 and 180 degrees"}
	}
	if t.SpindleSpeed <= 0 {
		return &ToolError{Tool: t, Reason: "spindle speed must be positive"}
	}
	if t.FeedRate <= 0 {
		return &ToolError{Tool: t, Reason: "feed rate must be positive"}
	}
	return nil
}

// String returns a short human readable description used in program
// comments and tool listings.
func (t Tool) String() string {
	dir := "CW"
	if t.Direction == geom.Counterclockwise {
		dir = "CCW"
	}
	if t.Shape == Conical {
		return fmt.Sprintf(
			"%s: angle = %g°, diameter = %g%s, length = %g%s, direction = %s, spindle speed = %g rpm, feed rate = %g%s/min",
			t.Shape, t.Angle,
			geom.Round(t.Diameter), t.Units,
			geom.Round(t.Length), t.Units,
			dir, t.SpindleSpeed, t.FeedRate, t.Units,
		)
	}
	return fmt.Sprintf(
		"%s: diameter = %g%s, length = %g%s, direction = %s, spindle speed = %g rpm, feed rate = %g%s/min",
		t.Shape,
		geom.Round(t.Diameter), t.Units,
		geom.Round(t.Length), t.Units,
		dir, t.SpindleSpeed, t.FeedRate, t.Units,
	)
}

// ToolError reports a tool description that cannot be machined with.
type ToolError struct {
	Tool   Tool
	Reason string
}

func (e *ToolError) Error() string {
	return fmt.Sprintf("invalid tool (%s): %s", e.Tool, e.Reason)
}

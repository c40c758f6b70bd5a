// Package cuts defines the catalogue of cutting operations and the
// resolver that lowers each operation into an instruction stream.
// Cuts are a sealed sum type; Resolve is the only entry point and is
// pure: the same cut, tool and units always produce the same stream.
package cuts

import (
	"fmt"

	"github.com/chazu/kerf/pkg/geom"
)

// Cut is one declarative cutting operation. Implementations live in
// this package only.
type Cut interface {
	cut()
}

// CircleMode selects how a circle operation removes material.
type CircleMode int

const (
	// CircleDrill plunges to the end depth and retracts, tracing the
	// circle once per depth pass.
	CircleDrill CircleMode = iota
	// CirclePocket clears the circle in stepped depth passes.
	CirclePocket
)

// Line cuts straight segments through the given points in order. The
// tool is assumed to already be at a safe position; no clearance
// moves are emitted.
type Line struct {
	Points []geom.Vector3
	Feed   float64
}

func (Line) cut() {}

// Drill plunges to each position's depth and retracts to RetractZ,
// preserving position order.
type Drill struct {
	Positions []geom.Vector3
	RetractZ  float64
	Feed      float64
}

func (Drill) cut() {}

// Circle cuts a circular hole or boss outline. Center.Z is the top of
// the cut and EndZ the bottom. Compensation adjusts the requested
// radius by the tool radius: Outer shrinks it so the finished hole
// matches Radius exactly, Inner grows it so a finished boss does.
type Circle struct {
	Center       geom.Vector3
	EndZ         float64
	Radius       float64
	MaxStepZ     float64
	Compensation geom.Compensation
	Mode         CircleMode
	Feed         float64
}

func (Circle) cut() {}

// Segment is one leg of a Path. Implementations are PathLine and
// PathArc.
type Segment interface {
	segment()
}

// PathLine moves straight to To.
type PathLine struct {
	To geom.Vector2
}

func (PathLine) segment() {}

// PathArc sweeps around Center to To, rotating about Axis. Only the
// vertical axis is supported; machining is planar.
type PathArc struct {
	To        geom.Vector2
	Center    geom.Vector2
	Axis      geom.Axis
	Direction geom.Direction
}

func (PathArc) segment() {}

// Path cuts a connected sequence of line and arc segments, starting
// at Start with Start.Z the top of the cut. The descent to EndZ is
// distributed along the path in proportion to distance travelled,
// repeated over stepped depth passes.
type Path struct {
	Start    geom.Vector3
	Segments []Segment
	EndZ     float64
	MaxStepZ float64
	Feed     float64
}

func (Path) cut() {}

// Arc cuts a circular arc from Start to End around Center in the XY
// plane, interpolating z linearly between the two endpoints. Start
// and End must be equidistant from Center.
type Arc struct {
	Start     geom.Vector3
	End       geom.Vector3
	Center    geom.Vector2
	Direction geom.Direction
	Feed      float64
}

func (Arc) cut() {}

// Area clears a rectangular region with raster passes. Corner is the
// minimum x/y corner with Z at the top of the cut.
type Area struct {
	Corner   geom.Vector3
	Size     geom.Vector2
	EndZ     float64
	MaxStepZ float64
	Feed     float64
}

func (Area) cut() {}

// Frame traces the perimeter of a rectangle. Compensation follows the
// same polarity as Circle: Outer keeps the inside of the frame at the
// requested size, Inner the outside.
type Frame struct {
	Corner       geom.Vector3
	Size         geom.Vector2
	EndZ         float64
	MaxStepZ     float64
	Compensation geom.Compensation
	Feed         float64
}

func (Frame) cut() {}

// GeometryError reports a cut that cannot be machined with the given
// tool.
type GeometryError struct {
	Cut    string
	Reason string
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("cannot resolve %s: %s", e.Cut, e.Reason)
}

var (
	_ Cut = Line{}
	_ Cut = Drill{}
	_ Cut = Circle{}
	_ Cut = Arc{}
	_ Cut = Path{}
	_ Cut = Area{}
	_ Cut = Frame{}

	_ Segment = PathLine{}
	_ Segment = PathArc{}
)

package cuts

import (
	"fmt"
	"math"

	"github.com/chazu/kerf/pkg/gcode"
	"github.com/chazu/kerf/pkg/geom"
	"github.com/chazu/kerf/pkg/tool"
)

// Resolve lowers a cut into its instruction stream using the given
// tool, with all coordinates in the given program units. The tool is
// validated first and its dimensions converted to the program units
// before any radius arithmetic.
func Resolve(c Cut, t tool.Tool, units geom.Units) ([]gcode.Instruction, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	t = t.ConvertUnits(units)

	switch c := c.(type) {
	case Line:
		return resolveLine(c, t)
	case Drill:
		return resolveDrill(c, t)
	case Circle:
		return resolveCircle(c, t)
	case Arc:
		return resolveArc(c, t)
	case Path:
		return resolvePath(c, t)
	case Area:
		return resolveArea(c, t)
	case Frame:
		return resolveFrame(c, t)
	default:
		return nil, &GeometryError{Cut: "cut", Reason: fmt.Sprintf("unknown cut type %T", c)}
	}
}

func cutFeed(override float64, t tool.Tool) float64 {
	if override > 0 {
		return override
	}
	return t.FeedRate
}

// depthPasses splits the span from top down to bottom into equal
// steps no larger than maxStep. The last entry is exactly bottom.
func depthPasses(name string, top, bottom, maxStep float64) ([]float64, error) {
	if bottom > top {
		return nil, &GeometryError{Cut: name, Reason: fmt.Sprintf("end depth %g is above the start depth %g", bottom, top)}
	}
	depth := top - bottom
	if depth == 0 {
		return []float64{bottom}, nil
	}
	if maxStep <= 0 {
		return nil, &GeometryError{Cut: name, Reason: fmt.Sprintf("max z step must be positive, got %g", maxStep)}
	}
	n := int(math.Ceil(depth / maxStep))
	step := depth / float64(n)
	passes := make([]float64, n)
	for i := 0; i < n-1; i++ {
		passes[i] = top - float64(i+1)*step
	}
	passes[n-1] = bottom
	return passes, nil
}

func header(text string) []gcode.Instruction {
	return []gcode.Instruction{gcode.Blank{}, gcode.Comment{Text: text}}
}

func resolveLine(c Line, t tool.Tool) ([]gcode.Instruction, error) {
	if len(c.Points) == 0 {
		return nil, &GeometryError{Cut: "line", Reason: "no points"}
	}
	feed := cutFeed(c.Feed, t)

	first := c.Points[0]
	stream := header(fmt.Sprintf("Cut line from %s", first))
	for i, p := range c.Points {
		move := gcode.Linear{X: gcode.Float(p.X), Y: gcode.Float(p.Y), Z: gcode.Float(p.Z)}
		if i == 0 {
			move.Feed = gcode.Float(feed)
		}
		stream = append(stream, move)
	}
	return stream, nil
}

func resolveDrill(c Drill, t tool.Tool) ([]gcode.Instruction, error) {
	if len(c.Positions) == 0 {
		return nil, &GeometryError{Cut: "drill", Reason: "no positions"}
	}
	for _, p := range c.Positions {
		if p.Z > c.RetractZ {
			return nil, &GeometryError{Cut: "drill", Reason: fmt.Sprintf("hole depth %g is above the retract height %g", p.Z, c.RetractZ)}
		}
	}
	feed := cutFeed(c.Feed, t)

	stream := header(fmt.Sprintf("Drill %d hole(s)", len(c.Positions)))
	for _, p := range c.Positions {
		stream = append(stream,
			gcode.Rapid{X: gcode.Float(p.X), Y: gcode.Float(p.Y), Z: gcode.Float(c.RetractZ)},
			gcode.Linear{Z: gcode.Float(p.Z), Feed: gcode.Float(feed)},
			gcode.Rapid{Z: gcode.Float(c.RetractZ)},
		)
	}
	return stream, nil
}

// effectiveRadius applies tool compensation to a requested radius.
// The result must stay positive; a tool too wide for the requested
// geometry is an error, never a clamp.
func effectiveRadius(name string, requested, toolRadius float64, comp geom.Compensation) (float64, error) {
	r := requested
	switch comp {
	case geom.CompensationOuter:
		r = requested - toolRadius
	case geom.CompensationInner:
		r = requested + toolRadius
	}
	if r <= 0 {
		return 0, &GeometryError{
			Cut:    name,
			Reason: fmt.Sprintf("tool radius %g leaves no radius to cut (requested %g, %s compensation)", toolRadius, requested, comp),
		}
	}
	return r, nil
}

func resolveCircle(c Circle, t tool.Tool) ([]gcode.Instruction, error) {
	r, err := effectiveRadius("circle", c.Radius, t.Radius(), c.Compensation)
	if err != nil {
		return nil, err
	}

	var passes []float64
	switch c.Mode {
	case CirclePocket:
		passes, err = depthPasses("circle", c.Center.Z, c.EndZ, c.MaxStepZ)
	default:
		passes, err = depthPasses("circle", c.Center.Z, c.EndZ, c.Center.Z-c.EndZ)
	}
	if err != nil {
		return nil, err
	}
	feed := cutFeed(c.Feed, t)

	// Start on the circle at the -x side of the center so the arc
	// center offset is a positive I word.
	startX := c.Center.X - r
	startY := c.Center.Y

	stream := header(fmt.Sprintf("Cut circle at (x = %s, y = %s): depth = %s, radius = %s",
		fmtNum(c.Center.X), fmtNum(c.Center.Y), fmtNum(c.Center.Z-c.EndZ), fmtNum(r)))
	stream = append(stream, gcode.Rapid{X: gcode.Float(startX), Y: gcode.Float(startY), Z: gcode.Float(c.Center.Z)})
	for _, z := range passes {
		stream = append(stream,
			gcode.Linear{Z: gcode.Float(z), Feed: gcode.Float(feed)},
			gcode.Arc{
				X: gcode.Float(startX), Y: gcode.Float(startY),
				I: r, J: 0,
				Direction: geom.Clockwise,
				Feed:      gcode.Float(feed),
			},
		)
	}
	if c.Mode == CircleDrill {
		stream = append(stream, gcode.Rapid{Z: gcode.Float(c.Center.Z)})
	}
	return stream, nil
}

func resolveArc(c Arc, t tool.Tool) ([]gcode.Instruction, error) {
	rStart := c.Start.XY().DistanceTo(c.Center)
	rEnd := c.End.XY().DistanceTo(c.Center)
	if rStart <= 0 {
		return nil, &GeometryError{Cut: "arc", Reason: "start point coincides with the center"}
	}
	if math.Abs(rStart-rEnd) > 1e-6 {
		return nil, &GeometryError{
			Cut:    "arc",
			Reason: fmt.Sprintf("start and end are not equidistant from the center (%g vs %g)", rStart, rEnd),
		}
	}
	feed := cutFeed(c.Feed, t)

	stream := header(fmt.Sprintf("Cut arc from %s to %s", c.Start, c.End))
	stream = append(stream,
		gcode.Rapid{X: gcode.Float(c.Start.X), Y: gcode.Float(c.Start.Y)},
		gcode.Linear{Z: gcode.Float(c.Start.Z), Feed: gcode.Float(feed)},
		gcode.Arc{
			X: gcode.Float(c.End.X), Y: gcode.Float(c.End.Y), Z: gcode.Float(c.End.Z),
			I: c.Center.X - c.Start.X, J: c.Center.Y - c.Start.Y,
			Direction: c.Direction,
			Feed:      gcode.Float(feed),
		},
	)
	return stream, nil
}

// arcSweep returns the angle swept travelling from start to end
// around center in the given direction, in (0, 2π]. Coincident
// endpoints sweep a full circle.
func arcSweep(start, end, center geom.Vector2, dir geom.Direction) float64 {
	sweep := end.Sub(center).Angle() - start.Sub(center).Angle()
	if dir == geom.Clockwise {
		sweep = -sweep
	}
	if sweep <= 0 {
		sweep += 2 * math.Pi
	}
	return sweep
}

// segmentLength returns the travel distance of a segment starting at
// from, validating its geometry.
func segmentLength(from geom.Vector2, s Segment) (float64, error) {
	switch s := s.(type) {
	case PathLine:
		return from.DistanceTo(s.To), nil
	case PathArc:
		if s.Axis != geom.AxisZ {
			return 0, &GeometryError{Cut: "path", Reason: fmt.Sprintf("arc segments must rotate about the z axis, got %s", s.Axis)}
		}
		r := from.DistanceTo(s.Center)
		rEnd := s.To.DistanceTo(s.Center)
		if r <= 0 {
			return 0, &GeometryError{Cut: "path", Reason: "arc segment starts at its center"}
		}
		if math.Abs(r-rEnd) > 1e-6 {
			return 0, &GeometryError{
				Cut:    "path",
				Reason: fmt.Sprintf("arc segment endpoints are not equidistant from the center (%g vs %g)", r, rEnd),
			}
		}
		return r * arcSweep(from, s.To, s.Center, s.Direction), nil
	default:
		return 0, &GeometryError{Cut: "path", Reason: fmt.Sprintf("unknown segment type %T", s)}
	}
}

func resolvePath(c Path, t tool.Tool) ([]gcode.Instruction, error) {
	if len(c.Segments) == 0 {
		return nil, &GeometryError{Cut: "path", Reason: "no segments"}
	}

	start := c.Start.XY()
	lengths := make([]float64, len(c.Segments))
	total := 0.0
	from := start
	for i, s := range c.Segments {
		l, err := segmentLength(from, s)
		if err != nil {
			return nil, err
		}
		lengths[i] = l
		total += l
		switch s := s.(type) {
		case PathLine:
			from = s.To
		case PathArc:
			from = s.To
		}
	}
	if total <= 0 {
		return nil, &GeometryError{Cut: "path", Reason: "path has zero length"}
	}

	passes, err := depthPasses("path", c.Start.Z, c.EndZ, c.MaxStepZ)
	if err != nil {
		return nil, err
	}
	feed := cutFeed(c.Feed, t)

	stream := header(fmt.Sprintf("Cut path from %s: depth = %s, %d segment(s)",
		c.Start, fmtNum(c.Start.Z-c.EndZ), len(c.Segments)))
	stream = append(stream,
		gcode.Rapid{X: gcode.Float(start.X), Y: gcode.Float(start.Y)},
		gcode.Linear{Z: gcode.Float(c.Start.Z), Feed: gcode.Float(feed)},
	)

	// Each pass traverses the whole path, ramping from the previous
	// pass depth down to this pass's depth in proportion to distance
	// travelled, then repositions at the start.
	zPrev := c.Start.Z
	for pi, zTarget := range passes {
		travelled := 0.0
		from = start
		for i, s := range c.Segments {
			travelled += lengths[i]
			z := zPrev + (zTarget-zPrev)*travelled/total
			switch s := s.(type) {
			case PathLine:
				stream = append(stream, gcode.Linear{
					X: gcode.Float(s.To.X), Y: gcode.Float(s.To.Y), Z: gcode.Float(z),
				})
				from = s.To
			case PathArc:
				stream = append(stream, gcode.Arc{
					X: gcode.Float(s.To.X), Y: gcode.Float(s.To.Y), Z: gcode.Float(z),
					I: s.Center.X - from.X, J: s.Center.Y - from.Y,
					Direction: s.Direction,
				})
				from = s.To
			}
		}
		zPrev = zTarget
		if pi < len(passes)-1 {
			stream = append(stream,
				gcode.Rapid{Z: gcode.Float(c.Start.Z)},
				gcode.Rapid{X: gcode.Float(start.X), Y: gcode.Float(start.Y)},
				gcode.Linear{Z: gcode.Float(zTarget), Feed: gcode.Float(feed)},
			)
		}
	}
	stream = append(stream, gcode.Rapid{Z: gcode.Float(c.Start.Z)})
	return stream, nil
}

func resolveArea(c Area, t tool.Tool) ([]gcode.Instruction, error) {
	d := t.Diameter
	if c.Size.X < d || c.Size.Y < d {
		return nil, &GeometryError{
			Cut:    "area",
			Reason: fmt.Sprintf("tool diameter %g does not fit the %g x %g area", d, c.Size.X, c.Size.Y),
		}
	}
	passes, err := depthPasses("area", c.Corner.Z, c.EndZ, c.MaxStepZ)
	if err != nil {
		return nil, err
	}
	feed := cutFeed(c.Feed, t)
	toolR := t.Radius()

	// Raster rows run along x, inset by the tool radius on all edges.
	xMin := c.Corner.X + toolR
	xMax := c.Corner.X + c.Size.X - toolR
	yMin := c.Corner.Y + toolR
	yMax := c.Corner.Y + c.Size.Y - toolR

	span := yMax - yMin
	rows := 1
	if span > 0 {
		rows = int(math.Ceil(span/(toolR*1.8))) + 1
	}
	rowStep := 0.0
	if rows > 1 {
		rowStep = span / float64(rows-1)
	}

	stream := header(fmt.Sprintf("Cut area at (x = %s, y = %s): size = %s x %s, depth = %s",
		fmtNum(c.Corner.X), fmtNum(c.Corner.Y), fmtNum(c.Size.X), fmtNum(c.Size.Y), fmtNum(c.Corner.Z-c.EndZ)))
	stream = append(stream, gcode.Rapid{X: gcode.Float(xMin), Y: gcode.Float(yMin), Z: gcode.Float(c.Corner.Z)})
	for _, z := range passes {
		stream = append(stream,
			gcode.Rapid{X: gcode.Float(xMin), Y: gcode.Float(yMin)},
			gcode.Linear{Z: gcode.Float(z), Feed: gcode.Float(feed)},
		)
		for row := 0; row < rows; row++ {
			y := yMin + float64(row)*rowStep
			atX := xMax
			if row%2 == 1 {
				atX = xMin
			}
			if row > 0 {
				stream = append(stream, gcode.Linear{Y: gcode.Float(y)})
			}
			stream = append(stream, gcode.Linear{X: gcode.Float(atX)})
		}
	}
	return stream, nil
}

func resolveFrame(c Frame, t tool.Tool) ([]gcode.Instruction, error) {
	toolR := t.Radius()
	corner := c.Corner.XY()
	size := c.Size
	switch c.Compensation {
	case geom.CompensationOuter:
		corner = corner.Add(geom.V2(toolR, toolR))
		size = size.Sub(geom.V2(2*toolR, 2*toolR))
	case geom.CompensationInner:
		corner = corner.Sub(geom.V2(toolR, toolR))
		size = size.Add(geom.V2(2*toolR, 2*toolR))
	}
	if size.X <= 0 || size.Y <= 0 {
		return nil, &GeometryError{
			Cut:    "frame",
			Reason: fmt.Sprintf("tool radius %g leaves no frame to cut (size %g x %g, %s compensation)", toolR, c.Size.X, c.Size.Y, c.Compensation),
		}
	}
	passes, err := depthPasses("frame", c.Corner.Z, c.EndZ, c.MaxStepZ)
	if err != nil {
		return nil, err
	}
	feed := cutFeed(c.Feed, t)

	stream := header(fmt.Sprintf("Cut frame at (x = %s, y = %s): size = %s x %s, depth = %s",
		fmtNum(c.Corner.X), fmtNum(c.Corner.Y), fmtNum(c.Size.X), fmtNum(c.Size.Y), fmtNum(c.Corner.Z-c.EndZ)))
	stream = append(stream, gcode.Rapid{X: gcode.Float(corner.X), Y: gcode.Float(corner.Y), Z: gcode.Float(c.Corner.Z)})
	for _, z := range passes {
		stream = append(stream,
			gcode.Linear{Z: gcode.Float(z), Feed: gcode.Float(feed)},
			gcode.Linear{X: gcode.Float(corner.X + size.X)},
			gcode.Linear{Y: gcode.Float(corner.Y + size.Y)},
			gcode.Linear{X: gcode.Float(corner.X)},
			gcode.Linear{Y: gcode.Float(corner.Y)},
		)
	}
	return stream, nil
}

func fmtNum(v float64) string {
	return fmt.Sprintf("%g", geom.Round(v))
}

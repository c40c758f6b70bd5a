// Package program assembles cutting operations into complete machine
// programs. A Program owns one Context per tool, keeps the contexts
// in first-use order, and emits the final instruction stream with
// tool changes, safe-height retracts and validation of the configured
// clearance heights.
package program

import (
	"fmt"
	"math"

	"github.com/chazu/kerf/pkg/gcode"
	"github.com/chazu/kerf/pkg/geom"
	"github.com/chazu/kerf/pkg/tool"
)

const maxFloat = math.MaxFloat64

// SpinUpSeconds is the dwell after starting the spindle at a tool
// change, giving it time to reach speed.
const SpinUpSeconds = 4.0

// Program is an ordered collection of per-tool cutting contexts plus
// the machine-level parameters needed to sequence them.
type Program struct {
	name        string
	units       geom.Units
	zSafe       float64
	zToolChange float64
	contexts    []*Context
	meta        Metadata
}

// New returns an empty program. zSafe is the clearance height used
// between operations and zToolChange the height for manual tool
// changes, both in the program units.
func New(units geom.Units, zSafe, zToolChange float64) *Program {
	return &Program{
		units:       units,
		zSafe:       zSafe,
		zToolChange: zToolChange,
		meta:        defaultMetadata{},
	}
}

// NewEmptyFrom returns an empty program sharing the other program's
// units and heights.
func NewEmptyFrom(other *Program) *Program {
	p := New(other.units, other.zSafe, other.zToolChange)
	p.meta = other.meta
	return p
}

// SetName names the program; the name becomes the output file stem.
func (p *Program) SetName(name string) { p.name = name }

// Name returns the program name, generating a stable one on first
// use when none was set.
func (p *Program) Name() string {
	if p.name == "" {
		p.name = p.meta.GeneratedName()
	}
	return p.name
}

// SetMetadata replaces the metadata source, for deterministic output.
func (p *Program) SetMetadata(m Metadata) { p.meta = m }

// Units returns the program units.
func (p *Program) Units() geom.Units { return p.units }

// ZSafe returns the clearance height between operations.
func (p *Program) ZSafe() float64 { return p.zSafe }

// ZToolChange returns the manual tool change height.
func (p *Program) ZToolChange() float64 { return p.zToolChange }

func (p *Program) findContext(t tool.Tool) *Context {
	for _, c := range p.contexts {
		if c.tool == t {
			return c
		}
	}
	return nil
}

// Extend grants fn exclusive access to the context for the given
// tool, creating the context on first use. If fn fails the program is
// left exactly as it was, including removing a context the call
// created.
func (p *Program) Extend(t tool.Tool, fn func(*Context) error) error {
	ctx := p.findContext(t)
	created := false
	if ctx == nil {
		ctx = newContext(p.units, t)
		p.contexts = append(p.contexts, ctx)
		created = true
	}
	checkpoint := len(ctx.instructions)
	if err := fn(ctx); err != nil {
		if created {
			p.contexts = p.contexts[:len(p.contexts)-1]
		} else {
			ctx.instructions = ctx.instructions[:checkpoint]
		}
		return err
	}
	return nil
}

// Merge folds the other program's contexts into the receiver. Units
// must match. Contexts for tools the receiver already uses are
// concatenated local-first; unmatched contexts are adopted after all
// existing ones, preserving the other program's order. On failure the
// receiver is unchanged.
func (p *Program) Merge(other *Program) error {
	if p.units != other.units {
		return &MergeError{Reason: fmt.Sprintf("units mismatch: %s vs %s", p.units.Name(), other.units.Name())}
	}
	// Stage against copies so a failed merge mutates nothing.
	merged := make([]*Context, 0, len(p.contexts)+len(other.contexts))
	for _, c := range p.contexts {
		cp := *c
		cp.instructions = c.Operations()
		merged = append(merged, &cp)
	}
	for _, oc := range other.contexts {
		adopted := false
		for _, c := range merged {
			if c.tool == oc.tool {
				if err := c.Merge(oc); err != nil {
					return err
				}
				adopted = true
				break
			}
		}
		if !adopted {
			cp := *oc
			cp.instructions = oc.Operations()
			cp.units = p.units
			merged = append(merged, &cp)
		}
	}
	p.contexts = merged
	return nil
}

// Tools returns the program's tools in first-use order. A tool's
// number in the emitted G-code is its 1-based position in this list.
func (p *Program) Tools() []tool.Tool {
	out := make([]tool.Tool, len(p.contexts))
	for i, c := range p.contexts {
		out[i] = c.tool
	}
	return out
}

// maxZ returns the highest z commanded by any context, or the lowest
// representable value for an empty program.
func (p *Program) maxZ() float64 {
	max := -maxFloat
	for _, c := range p.contexts {
		if z := c.MaxZ(); z > max {
			max = z
		}
	}
	return max
}

// ToInstructions validates the program and lowers it to the final
// instruction stream.
func (p *Program) ToInstructions() ([]gcode.Instruction, error) {
	if len(p.contexts) > 0 {
		max := p.maxZ()
		if p.zSafe < max {
			return nil, &ValidationError{Height: "z_safe", Value: p.zSafe, Max: max}
		}
		if p.zToolChange < max {
			return nil, &ValidationError{Height: "z_tool_change", Value: p.zToolChange, Max: max}
		}
	}

	stream := []gcode.Instruction{gcode.UnitsDirective{Units: p.units}}
	for i, c := range p.contexts {
		number := i + 1
		stream = append(stream,
			gcode.Blank{},
			gcode.Comment{Text: fmt.Sprintf("Tool change: %s", c.tool)},
			gcode.SpindleOff{},
			gcode.Rapid{Z: gcode.Float(p.zToolChange)},
			gcode.ToolChange{Number: number},
			gcode.SpindleOn{Direction: c.tool.Direction, Speed: c.tool.SpindleSpeed},
			gcode.Dwell{Seconds: SpinUpSeconds},
			gcode.UnitsDirective{Units: p.units},
		)
		stream = append(stream, c.instructions...)
		stream = append(stream, gcode.Rapid{Z: gcode.Float(p.zSafe)})
	}
	stream = append(stream, gcode.Blank{}, gcode.ProgramEnd{})
	return stream, nil
}

// ToGCode renders the program as machine text with a metadata header.
func (p *Program) ToGCode() (string, error) {
	stream, err := p.ToInstructions()
	if err != nil {
		return "", err
	}
	header := []gcode.Instruction{
		gcode.Comment{Text: fmt.Sprintf("Name: %s", p.Name())},
		gcode.Comment{Text: fmt.Sprintf("Generator: %s", p.meta.Generator())},
		gcode.Comment{Text: fmt.Sprintf("Host: %s", p.meta.Host())},
		gcode.Comment{Text: fmt.Sprintf("Author: %s", p.meta.Author())},
		gcode.Comment{Text: fmt.Sprintf("Created: %s", p.meta.Timestamp())},
		gcode.Blank{},
	}
	return gcode.Render(append(header, stream...)) + "\n", nil
}

// Bounds returns the axis-aligned extent of every coordinate the
// program commands, including the configured clearance heights. An
// empty program has zero bounds.
func (p *Program) Bounds() (geom.Bounds, error) {
	if len(p.contexts) == 0 {
		return geom.Bounds{}, nil
	}
	stream, err := p.ToInstructions()
	if err != nil {
		return geom.Bounds{}, err
	}

	lo := geom.MaxV3()
	hi := geom.MinV3()
	fold := func(min, max *float64, v float64) {
		if v < *min {
			*min = v
		}
		if v > *max {
			*max = v
		}
	}

	// Axis words are modal: an axis only has a position once some
	// instruction has commanded it, and an axis never commanded must
	// not contribute a phantom origin coordinate.
	var curX, curY, curZ *float64
	visit := func(x, y, z *float64) {
		if x != nil {
			curX = x
		}
		if y != nil {
			curY = y
		}
		if z != nil {
			curZ = z
		}
		if curX != nil {
			fold(&lo.X, &hi.X, *curX)
		}
		if curY != nil {
			fold(&lo.Y, &hi.Y, *curY)
		}
		if curZ != nil {
			fold(&lo.Z, &hi.Z, *curZ)
		}
	}
	for _, ins := range stream {
		switch m := ins.(type) {
		case gcode.Rapid:
			visit(m.X, m.Y, m.Z)
		case gcode.Linear:
			visit(m.X, m.Y, m.Z)
		case gcode.Arc:
			// A full sweep through the arc reaches center ± radius
			// on both axes.
			if curX != nil && curY != nil {
				cx := *curX + m.I
				cy := *curY + m.J
				r := math.Hypot(m.I, m.J)
				fold(&lo.X, &hi.X, cx-r)
				fold(&lo.X, &hi.X, cx+r)
				fold(&lo.Y, &hi.Y, cy-r)
				fold(&lo.Y, &hi.Y, cy+r)
			}
			visit(m.X, m.Y, m.Z)
		}
	}

	for _, axis := range [][2]*float64{{&lo.X, &hi.X}, {&lo.Y, &hi.Y}, {&lo.Z, &hi.Z}} {
		if *axis[0] > *axis[1] {
			*axis[0], *axis[1] = 0, 0
		}
	}
	return geom.Bounds{Min: lo, Max: hi}, nil
}

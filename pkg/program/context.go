package program

import (
	"fmt"

	"github.com/chazu/kerf/pkg/cuts"
	"github.com/chazu/kerf/pkg/gcode"
	"github.com/chazu/kerf/pkg/geom"
	"github.com/chazu/kerf/pkg/tool"
)

// Context accumulates the resolved instructions for a single tool.
// Contexts are created by Program.Extend and never shared between
// tools; merging requires the tools to be equal values.
type Context struct {
	units        geom.Units
	tool         tool.Tool
	instructions []gcode.Instruction
}

func newContext(units geom.Units, t tool.Tool) *Context {
	return &Context{units: units, tool: t}
}

// Tool returns the tool the context cuts with.
func (c *Context) Tool() tool.Tool { return c.tool }

// AppendCut resolves the cut with the context's tool and appends the
// resulting instructions. On failure nothing is appended.
func (c *Context) AppendCut(cut cuts.Cut) error {
	stream, err := cuts.Resolve(cut, c.tool, c.units)
	if err != nil {
		return err
	}
	c.instructions = append(c.instructions, stream...)
	return nil
}

// Append adds raw instructions, for callers that lower their own
// operations.
func (c *Context) Append(ins ...gcode.Instruction) {
	c.instructions = append(c.instructions, ins...)
}

// Operations returns a copy of the accumulated instruction stream.
func (c *Context) Operations() []gcode.Instruction {
	out := make([]gcode.Instruction, len(c.instructions))
	copy(out, c.instructions)
	return out
}

// Empty reports whether the context holds no instructions.
func (c *Context) Empty() bool { return len(c.instructions) == 0 }

// Merge appends the other context's instructions after the
// receiver's. It fails with a MergeError unless both contexts cut
// with the same tool value; on failure the receiver is unchanged.
func (c *Context) Merge(other *Context) error {
	if c.tool != other.tool {
		return &MergeError{Reason: fmt.Sprintf("tool mismatch: %s vs %s", c.tool, other.tool)}
	}
	c.instructions = append(c.instructions, other.instructions...)
	return nil
}

// MaxZ returns the highest z coordinate commanded by any move or arc
// in the context. An empty context reports the lowest representable
// value.
func (c *Context) MaxZ() float64 {
	max := -maxFloat
	consider := func(z *float64) {
		if z != nil && *z > max {
			max = *z
		}
	}
	for _, ins := range c.instructions {
		switch m := ins.(type) {
		case gcode.Rapid:
			consider(m.Z)
		case gcode.Linear:
			consider(m.Z)
		case gcode.Arc:
			consider(m.Z)
		}
	}
	return max
}

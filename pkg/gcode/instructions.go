// Package gcode models the lowered instruction stream and its
// serialization to the Grbl G-code dialect. Instructions are a sealed
// sum type; the stream order is load-bearing and is never reordered
// by rendering.
package gcode

import (
	"strconv"
	"strings"

	"github.com/chazu/kerf/pkg/geom"
)

// Instruction is one lowered machine operation. Implementations are
// the only types in this package; the unexported marker keeps the set
// closed.
type Instruction interface {
	instruction()

	// GCode renders the instruction as a single line of machine text.
	GCode() string
}

// Float returns a pointer to v, for the optional axis words below.
func Float(v float64) *float64 { return &v }

// num formats a coordinate or feed rounded to three decimals, without
// trailing zeros.
func num(v float64) string {
	r := geom.Round(v)
	if r == 0 {
		r = 0 // collapse negative zero
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

func appendWord(b *strings.Builder, letter string, v *float64) {
	if v == nil {
		return
	}
	b.WriteByte(' ')
	b.WriteString(letter)
	b.WriteString(num(*v))
}

// Rapid is a positioning move at the machine's rapid rate (G0).
// Nil axis words are omitted and leave that axis unchanged.
type Rapid struct {
	X, Y, Z *float64
}

func (Rapid) instruction() {}

func (m Rapid) GCode() string {
	var b strings.Builder
	b.WriteString("G0")
	appendWord(&b, "X", m.X)
	appendWord(&b, "Y", m.Y)
	appendWord(&b, "Z", m.Z)
	return b.String()
}

// Linear is a straight cutting move at a feed rate (G1). A nil Feed
// keeps the previously commanded feed.
type Linear struct {
	X, Y, Z *float64
	Feed    *float64
}

func (Linear) instruction() {}

func (m Linear) GCode() string {
	var b strings.Builder
	b.WriteString("G1")
	appendWord(&b, "X", m.X)
	appendWord(&b, "Y", m.Y)
	appendWord(&b, "Z", m.Z)
	appendWord(&b, "F", m.Feed)
	return b.String()
}

// Arc is a circular interpolation in the XY plane (G2 clockwise, G3
// counterclockwise). I and J are offsets from the current position to
// the arc center.
type Arc struct {
	X, Y, Z   *float64
	I, J      float64
	Direction geom.Direction
	Feed      *float64
}

func (Arc) instruction() {}

func (m Arc) GCode() string {
	var b strings.Builder
	if m.Direction == geom.Clockwise {
		b.WriteString("G2")
	} else {
		b.WriteString("G3")
	}
	appendWord(&b, "X", m.X)
	appendWord(&b, "Y", m.Y)
	appendWord(&b, "Z", m.Z)
	b.WriteString(" I")
	b.WriteString(num(m.I))
	b.WriteString(" J")
	b.WriteString(num(m.J))
	appendWord(&b, "F", m.Feed)
	return b.String()
}

// Dwell pauses execution for the given number of seconds (G4).
type Dwell struct {
	Seconds float64
}

func (Dwell) instruction() {}

func (m Dwell) GCode() string {
	return "G4 P" + num(m.Seconds)
}

// UnitsDirective asserts the measurement unit for all following
// coordinates (G21 metric, G20 imperial).
type UnitsDirective struct {
	Units geom.Units
}

func (UnitsDirective) instruction() {}

func (m UnitsDirective) GCode() string {
	if m.Units == geom.Imperial {
		return "G20"
	}
	return "G21"
}

// SpindleOn starts the spindle at the given speed (M3 clockwise, M4
// counterclockwise).
type SpindleOn struct {
	Direction geom.Direction
	Speed     float64
}

func (SpindleOn) instruction() {}

func (m SpindleOn) GCode() string {
	if m.Direction == geom.Counterclockwise {
		return "M4 S" + num(m.Speed)
	}
	return "M3 S" + num(m.Speed)
}

// SpindleOff stops the spindle (M5).
type SpindleOff struct{}

func (SpindleOff) instruction() {}

func (SpindleOff) GCode() string { return "M5" }

// ToolChange requests a manual change to the numbered tool (T.. M6).
type ToolChange struct {
	Number int
}

func (ToolChange) instruction() {}

func (m ToolChange) GCode() string {
	return "T" + strconv.Itoa(m.Number) + " M6"
}

// ProgramEnd terminates the program (M2).
type ProgramEnd struct{}

func (ProgramEnd) instruction() {}

func (ProgramEnd) GCode() string { return "M2" }

// Comment is a non-executing annotation line.
type Comment struct {
	Text string
}

func (Comment) instruction() {}

func (m Comment) GCode() string {
	if m.Text == "" {
		return ""
	}
	return ";(" + m.Text + ")"
}

// Blank is an empty separator line.
type Blank struct{}

func (Blank) instruction() {}

func (Blank) GCode() string { return "" }

// Render joins a stream of instructions into machine text, one
// instruction per line, preserving order exactly.
func Render(stream []Instruction) string {
	lines := make([]string, len(stream))
	for i, ins := range stream {
		lines[i] = ins.GCode()
	}
	return strings.Join(lines, "\n")
}

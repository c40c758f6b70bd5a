package gcode

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chazu/kerf/pkg/geom"
)

func TestRapidOmitsNilAxes(t *testing.T) {
	assert.Equal(t, "G0 Z10", Rapid{Z: Float(10)}.GCode())
	assert.Equal(t, "G0 X0 Y-15.5", Rapid{X: Float(0), Y: Float(-15.5)}.GCode())
	assert.Equal(t, "G0", Rapid{}.GCode())
}

func TestLinearWithFeed(t *testing.T) {
	m := Linear{X: Float(20), Y: Float(4.2), Feed: Float(400)}
	assert.Equal(t, "G1 X20 Y4.2 F400", m.GCode())
}

func TestLinearRoundsToThreeDecimals(t *testing.T) {
	m := Linear{X: Float(1.23456), Z: Float(-0.0004)}
	assert.Equal(t, "G1 X1.235 Z0", m.GCode())
}

func TestArcDirections(t *testing.T) {
	cw := Arc{X: Float(5), Y: Float(10), I: -15, J: 0, Direction: geom.Clockwise, Feed: Float(300)}
	assert.Equal(t, "G2 X5 Y10 I-15 J0 F300", cw.GCode())

	ccw := Arc{X: Float(5), Y: Float(10), I: 0, J: 7.5, Direction: geom.Counterclockwise}
	assert.Equal(t, "G3 X5 Y10 I0 J7.5", ccw.GCode())
}

func TestModalLines(t *testing.T) {
	assert.Equal(t, "G21", UnitsDirective{Units: geom.Metric}.GCode())
	assert.Equal(t, "G20", UnitsDirective{Units: geom.Imperial}.GCode())
	assert.Equal(t, "G4 P0.5", Dwell{Seconds: 0.5}.GCode())
	assert.Equal(t, "M3 S5000", SpindleOn{Direction: geom.Clockwise, Speed: 5000}.GCode())
	assert.Equal(t, "M4 S12000", SpindleOn{Direction: geom.Counterclockwise, Speed: 12000}.GCode())
	assert.Equal(t, "M5", SpindleOff{}.GCode())
	assert.Equal(t, "T2 M6", ToolChange{Number: 2}.GCode())
	assert.Equal(t, "M2", ProgramEnd{}.GCode())
}

func TestCommentAndBlank(t *testing.T) {
	assert.Equal(t, ";(Cut line)", Comment{Text: "Cut line"}.GCode())
	assert.Equal(t, "", Comment{}.GCode())
	assert.Equal(t, "", Blank{}.GCode())
}

func TestRenderPreservesOrder(t *testing.T) {
	stream := []Instruction{
		UnitsDirective{Units: geom.Metric},
		Blank{},
		Comment{Text: "start"},
		Rapid{Z: Float(10)},
		ProgramEnd{},
	}
	want := "G21\n\n;(start)\nG0 Z10\nM2"
	assert.Equal(t, want, Render(stream))
}

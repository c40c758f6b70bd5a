package tool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chazu/kerf/pkg/geom"
)

func TestRadius(t *testing.T) {
	cutter := NewCylindrical(geom.Metric, 20, 10, geom.Clockwise, 5000, 400)
	assert.Equal(t, 5.0, cutter.Radius())
}

func TestConicalLengthDerivedFromAngle(t *testing.T) {
	// 90 degree v-bit: length equals the radius.
	cutter := NewConical(geom.Metric, 90, 12, geom.Clockwise, 5000, 400)
	assert.InDelta(t, 6.0, cutter.Length, 1e-9)
}

func TestValueEquality(t *testing.T) {
	a := NewCylindrical(geom.Metric, 20, 10, geom.Clockwise, 5000, 400)
	b := NewCylindrical(geom.Metric, 20, 10, geom.Clockwise, 5000, 400)
	c := NewCylindrical(geom.Metric, 20, 12, geom.Clockwise, 5000, 400)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestConvertUnits(t *testing.T) {
	cutter := NewCylindrical(geom.Imperial, 1, 0.5, geom.Clockwise, 5000, 40)
	metric := cutter.ConvertUnits(geom.Metric)
	assert.Equal(t, geom.Metric, metric.Units)
	assert.InDelta(t, 25.4, metric.Length, 1e-9)
	assert.InDelta(t, 12.7, metric.Diameter, 1e-9)

	// Round trip restores the original dimensions.
	back := metric.ConvertUnits(geom.Imperial)
	assert.InDelta(t, cutter.Diameter, back.Diameter, 1e-9)

	// Same units is a no-op.
	assert.Equal(t, metric, metric.ConvertUnits(geom.Metric))
}

func TestValidate(t *testing.T) {
	good := NewBallnose(geom.Metric, 22, 8, geom.Clockwise, 12000, 600)
	require.NoError(t, good.Validate())

	bad := good
	bad.Diameter = 0
	err := bad.Validate()
	var toolErr *ToolError
	require.ErrorAs(t, err, &toolErr)
	assert.Contains(t, toolErr.Error(), "diameter")

	bad = good
	bad.FeedRate = -1
	assert.Error(t, bad.Validate())

	// A stopped spindle cannot cut; zero speed is invalid too.
	bad = good
	bad.SpindleSpeed = 0
	require.ErrorAs(t, bad.Validate(), &toolErr)
	assert.Contains(t, toolErr.Error(), "spindle speed")

	cone := NewConical(geom.Metric, 90, 12, geom.Clockwise, 5000, 400)
	cone.Angle = 200
	assert.Error(t, cone.Validate())
}

func TestStringDescription(t *testing.T) {
	cutter := NewCylindrical(geom.Metric, 20, 10, geom.Clockwise, 5000, 400)
	assert.Equal(t,
		"cylindrical: diameter = 10mm, length = 20mm, direction = CW, spindle speed = 5000 rpm, feed rate = 400mm/min",
		cutter.String())

	cone := NewConical(geom.Imperial, 90, 0.5, geom.Counterclockwise, 10000, 30)
	assert.Contains(t, cone.String(), "conical: angle = 90°")
	assert.Contains(t, cone.String(), "direction = CCW")
}

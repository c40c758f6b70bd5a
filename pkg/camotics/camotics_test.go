package camotics

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chazu/kerf/pkg/cuts"
	"github.com/chazu/kerf/pkg/geom"
	"github.com/chazu/kerf/pkg/program"
	"github.com/chazu/kerf/pkg/tool"
)

func testProgram(t *testing.T) *program.Program {
	t.Helper()
	p := program.New(geom.Metric, 10, 50)
	p.SetName("widget")
	cutter := tool.NewCylindrical(geom.Metric, 20, 10, geom.Clockwise, 5000, 400)
	require.NoError(t, p.Extend(cutter, func(c *program.Context) error {
		return c.AppendCut(cuts.Circle{
			Center: geom.V3(0, 0, 0), EndZ: -2, Radius: 20,
			MaxStepZ: 5, Compensation: geom.CompensationNone, Mode: cuts.CirclePocket,
		})
	}))
	return p
}

func TestFromProgram(t *testing.T) {
	proj, err := FromProgram(testProgram(t), 0.5)
	require.NoError(t, err)

	assert.Equal(t, "metric", proj.Units)
	assert.Equal(t, "manual", proj.ResolutionMode)
	assert.Equal(t, 0.5, proj.Resolution)
	assert.Equal(t, []string{"widget.gcode"}, proj.Files)

	require.Contains(t, proj.Tools, "1")
	assert.Equal(t, Cylindrical, proj.Tools["1"].Shape)
	assert.Equal(t, 10.0, proj.Tools["1"].Diameter)

	assert.False(t, proj.Workpiece.Automatic)
	assert.InDelta(t, -20.0, proj.Workpiece.Bounds.Min.X, 1e-9)
	assert.Equal(t, 50.0, proj.Workpiece.Bounds.Max.Z)
}

func TestProjectWireFormat(t *testing.T) {
	proj, err := FromProgram(testProgram(t), 1)
	require.NoError(t, err)
	data, err := proj.ToJSON()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))

	assert.Equal(t, "metric", doc["units"])
	assert.Equal(t, "manual", doc["resolution-mode"])

	workpiece := doc["workpiece"].(map[string]any)
	bounds := workpiece["bounds"].(map[string]any)
	// Bounds serialize as coordinate triples.
	min := bounds["min"].([]any)
	require.Len(t, min, 3)
	assert.InDelta(t, -20.0, min[0].(float64), 1e-9)

	tools := doc["tools"].(map[string]any)
	entry := tools["1"].(map[string]any)
	assert.Equal(t, "cylindrical", entry["shape"])
	// Non-conical tools omit the angle.
	_, hasAngle := entry["angle"]
	assert.False(t, hasAngle)
}

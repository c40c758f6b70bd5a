package project

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chazu/kerf/pkg/cuts"
	"github.com/chazu/kerf/pkg/geom"
	"github.com/chazu/kerf/pkg/program"
	"github.com/chazu/kerf/pkg/tool"
)

func TestWriteTo(t *testing.T) {
	p := program.New(geom.Metric, 10, 50)
	p.SetName("widget")
	cutter := tool.NewCylindrical(geom.Metric, 20, 10, geom.Clockwise, 5000, 400)
	require.NoError(t, p.Extend(cutter, func(c *program.Context) error {
		return c.AppendCut(cuts.Line{Points: []geom.Vector3{geom.V3(0, 0, 0), geom.V3(10, 0, 0)}})
	}))

	dir := t.TempDir()
	require.NoError(t, WriteTo(dir, p, 0.5))

	text, err := os.ReadFile(filepath.Join(dir, "widget.gcode"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(text), ";(Name: widget)"))
	assert.Contains(t, string(text), "G21")

	doc, err := os.ReadFile(filepath.Join(dir, "widget.camotics"))
	require.NoError(t, err)
	var proj map[string]any
	require.NoError(t, json.Unmarshal(doc, &proj))
	assert.Equal(t, []any{"widget.gcode"}, proj["files"])
}

func TestWriteToPropagatesValidationError(t *testing.T) {
	p := program.New(geom.Metric, 1, 50)
	cutter := tool.NewCylindrical(geom.Metric, 20, 10, geom.Clockwise, 5000, 400)
	require.NoError(t, p.Extend(cutter, func(c *program.Context) error {
		return c.AppendCut(cuts.Drill{Positions: []geom.Vector3{geom.V3(0, 0, -3)}, RetractZ: 5})
	}))

	err := WriteTo(t.TempDir(), p, 0.5)
	var vErr *program.ValidationError
	require.ErrorAs(t, err, &vErr)
}

package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chazu/kerf/pkg/gcode"
	"github.com/chazu/kerf/pkg/geom"
)

func TestEvaluateCircleProgram(t *testing.T) {
	source := `
; a 40mm hole, pocketed in 2mm steps
(def prog (program :units :metric :z-safe 10 :z-tool-change 50 :name "hole"))
(def endmill (tool :shape :cylindrical :diameter 10 :length 20
                   :direction :clockwise :spindle-speed 5000 :feed-rate 400))
(extend prog endmill
        (circle :center (vec3 0 0 0) :end-z -6 :radius 20
                :max-step-z 2 :compensation :outer :mode :pocket))
`
	e := NewEngine()
	p, evalErrs, err := e.Evaluate(source)
	require.NoError(t, err)
	require.Empty(t, evalErrs)
	require.NotNil(t, p)

	assert.Equal(t, "hole", p.Name())
	assert.Equal(t, geom.Metric, p.Units())

	stream, err := p.ToInstructions()
	require.NoError(t, err)
	text := gcode.Render(stream)
	assert.True(t, strings.HasPrefix(text, "G21"))
	assert.Contains(t, text, "I15 J0")
}

func TestEvaluateMultipleTools(t *testing.T) {
	source := `
(def prog (program :units :metric))
(def rougher (tool :diameter 10 :length 20 :spindle-speed 5000 :feed-rate 400))
(def finisher (tool :shape :ballnose :diameter 6 :length 22 :spindle-speed 12000 :feed-rate 600))
(extend prog rougher
        (area :corner (vec3 0 0 2) :width 100 :length 50 :end-z 0 :max-step-z 1))
(extend prog finisher
        (line :points (list (vec3 0 0 0) (vec3 100 0 0))))
`
	e := NewEngine()
	p, evalErrs, err := e.Evaluate(source)
	require.NoError(t, err)
	require.Empty(t, evalErrs)
	require.Len(t, p.Tools(), 2)

	stream, err := p.ToInstructions()
	require.NoError(t, err)
	text := gcode.Render(stream)
	assert.Contains(t, text, "T1 M6")
	assert.Contains(t, text, "T2 M6")
}

func TestEvaluateParseError(t *testing.T) {
	e := NewEngine()
	p, evalErrs, err := e.Evaluate("(program :units :metric")
	require.NoError(t, err)
	assert.Nil(t, p)
	require.NotEmpty(t, evalErrs)
}

func TestEvaluateGeometryErrorIsEvalError(t *testing.T) {
	source := `
(def prog (program :units :metric))
(def endmill (tool :diameter 10 :length 20 :spindle-speed 5000 :feed-rate 400))
(extend prog endmill
        (circle :center (vec3 0 0 0) :end-z -1 :radius 4
                :max-step-z 1 :compensation :outer))
`
	e := NewEngine()
	p, evalErrs, err := e.Evaluate(source)
	require.NoError(t, err)
	assert.Nil(t, p)
	require.NotEmpty(t, evalErrs)
	assert.Contains(t, evalErrs[0].Message, "circle")
}

func TestEvaluateNoProgram(t *testing.T) {
	e := NewEngine()
	p, evalErrs, err := e.Evaluate("(+ 1 2)")
	require.NoError(t, err)
	assert.Nil(t, p)
	require.Len(t, evalErrs, 1)
	assert.Contains(t, evalErrs[0].Message, "no program")
}

func TestEvaluateInvalidTool(t *testing.T) {
	e := NewEngine()
	p, evalErrs, err := e.Evaluate(`(tool :diameter -1)`)
	require.NoError(t, err)
	assert.Nil(t, p)
	require.NotEmpty(t, evalErrs)
}

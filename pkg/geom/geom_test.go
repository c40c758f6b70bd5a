package geom

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVectorArithmetic(t *testing.T) {
	a := V3(1, 2, 3)
	b := V3(4, 6, 8)
	assert.Equal(t, V3(5, 8, 11), a.Add(b))
	assert.Equal(t, V3(3, 4, 5), b.Sub(a))
	assert.Equal(t, V3(4, 12, 24), a.Mul(b))
	assert.Equal(t, V3(4, 3, 8.0/3.0), b.Div(a))
	assert.Equal(t, V3(1, 2, 10), a.WithZ(10))
	assert.Equal(t, V3(1.5, 2, 3), a.AddX(0.5))
}

func TestProjections(t *testing.T) {
	p := V3(1, 2, 3)
	assert.Equal(t, V2(1, 2), p.XY())
	assert.Equal(t, V2(1, 3), p.XZ())
	assert.Equal(t, V2(2, 3), p.YZ())
}

func TestDistance(t *testing.T) {
	assert.Equal(t, 5.0, V2(0, 0).DistanceTo(V2(3, 4)))
	assert.Equal(t, 5.0, V3(0, 0, 0).DistanceTo(V3(0, 3, 4)))
}

func TestAngle(t *testing.T) {
	assert.InDelta(t, 0, V2(1, 0).AngleDegrees(), 1e-9)
	assert.InDelta(t, 90, V2(0, 1).AngleDegrees(), 1e-9)
	assert.InDelta(t, 180, V2(-1, 0).AngleDegrees(), 1e-9)
	assert.InDelta(t, 270, V2(0, -1).AngleDegrees(), 1e-9)
}

func TestUnits(t *testing.T) {
	assert.Equal(t, "mm", Metric.String())
	assert.Equal(t, "\"", Imperial.String())
	assert.Equal(t, 25.4, Metric.FromMM(25.4))
	assert.Equal(t, 1.0, Imperial.FromMM(25.4))
	assert.Equal(t, "metric", Metric.Name())
}

func TestRound(t *testing.T) {
	assert.Equal(t, 1.235, Round(1.23456))
	assert.Equal(t, -1.235, Round(-1.23456))
	assert.Equal(t, 2.0, Round(1.9999))
}

func TestBoundsExpand(t *testing.T) {
	b := MinMax()
	b = b.Expand(V3(1, 2, 3))
	b = b.Expand(V3(-1, 5, 0))
	assert.Equal(t, V3(-1, 2, 0), b.Min)
	assert.Equal(t, V3(1, 5, 3), b.Max)
	assert.Equal(t, V3(2, 3, 3), b.Size())
}

func TestBoundsUnion(t *testing.T) {
	a := NewBounds(10, 10, 5)
	c := Bounds{Min: V3(-5, 0, 0), Max: V3(5, 20, 2)}
	u := a.Union(c)
	assert.Equal(t, V3(-5, 0, 0), u.Min)
	assert.Equal(t, V3(10, 20, 5), u.Max)
}

func TestMinMaxSeed(t *testing.T) {
	seed := MinMax()
	assert.Equal(t, math.MaxFloat64, seed.Min.X)
	assert.Equal(t, -math.MaxFloat64, seed.Max.X)
}

func TestVectorJSONTuples(t *testing.T) {
	out, err := json.Marshal(V3(1, 2.5, -3))
	require.NoError(t, err)
	assert.JSONEq(t, "[1, 2.5, -3]", string(out))

	var v Vector3
	require.NoError(t, json.Unmarshal([]byte("[4, 5, 6]"), &v))
	assert.Equal(t, V3(4, 5, 6), v)

	out, err = json.Marshal(V2(1, 2))
	require.NoError(t, err)
	assert.JSONEq(t, "[1, 2]", string(out))
}

func TestUnitsJSON(t *testing.T) {
	out, err := json.Marshal(Imperial)
	require.NoError(t, err)
	assert.Equal(t, `"imperial"`, string(out))

	var u Units
	require.NoError(t, json.Unmarshal([]byte(`"metric"`), &u))
	assert.Equal(t, Metric, u)
	assert.Error(t, json.Unmarshal([]byte(`"furlongs"`), &u))
}

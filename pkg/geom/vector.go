package geom

import (
	"fmt"
	"math"
)

// Vector2 is a 2D point or offset. It is a plain comparable value type;
// comparisons are exact.
type Vector2 struct {
	X, Y float64
}

// V2 constructs a Vector2.
func V2(x, y float64) Vector2 { return Vector2{X: x, Y: y} }

// MinV2 returns a Vector2 with both components at -math.MaxFloat64.
func MinV2() Vector2 { return Vector2{X: -math.MaxFloat64, Y: -math.MaxFloat64} }

// MaxV2 returns a Vector2 with both components at math.MaxFloat64.
func MaxV2() Vector2 { return Vector2{X: math.MaxFloat64, Y: math.MaxFloat64} }

func (v Vector2) Add(o Vector2) Vector2 { return Vector2{v.X + o.X, v.Y + o.Y} }
func (v Vector2) Sub(o Vector2) Vector2 { return Vector2{v.X - o.X, v.Y - o.Y} }
func (v Vector2) Mul(o Vector2) Vector2 { return Vector2{v.X * o.X, v.Y * o.Y} }
func (v Vector2) Div(o Vector2) Vector2 { return Vector2{v.X / o.X, v.Y / o.Y} }

// AddX returns a copy with the x component incremented by d.
func (v Vector2) AddX(d float64) Vector2 { v.X += d; return v }

// AddY returns a copy with the y component incremented by d.
func (v Vector2) AddY(d float64) Vector2 { v.Y += d; return v }

// DistanceTo returns the Euclidean distance to another point.
func (v Vector2) DistanceTo(o Vector2) float64 {
	return math.Hypot(v.X-o.X, v.Y-o.Y)
}

// Angle returns the angle in radians with respect to the positive
// x-axis, in the range [0, 2π).
func (v Vector2) Angle() float64 {
	a := math.Atan2(v.Y, v.X)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// AngleDegrees returns the angle in degrees with respect to the
// positive x-axis.
func (v Vector2) AngleDegrees() float64 {
	return v.Angle() * 180 / math.Pi
}

func (v Vector2) String() string {
	return fmt.Sprintf("{x: %v, y: %v}", Round(v.X), Round(v.Y))
}

// Vector3 is a 3D point or offset. It is a plain comparable value type;
// comparisons are exact.
type Vector3 struct {
	X, Y, Z float64
}

// V3 constructs a Vector3.
func V3(x, y, z float64) Vector3 { return Vector3{X: x, Y: y, Z: z} }

// MinV3 returns a Vector3 with all components at -math.MaxFloat64.
func MinV3() Vector3 {
	return Vector3{X: -math.MaxFloat64, Y: -math.MaxFloat64, Z: -math.MaxFloat64}
}

// MaxV3 returns a Vector3 with all components at math.MaxFloat64.
func MaxV3() Vector3 {
	return Vector3{X: math.MaxFloat64, Y: math.MaxFloat64, Z: math.MaxFloat64}
}

func (v Vector3) Add(o Vector3) Vector3 { return Vector3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vector3) Sub(o Vector3) Vector3 { return Vector3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vector3) Mul(o Vector3) Vector3 { return Vector3{v.X * o.X, v.Y * o.Y, v.Z * o.Z} }
func (v Vector3) Div(o Vector3) Vector3 { return Vector3{v.X / o.X, v.Y / o.Y, v.Z / o.Z} }

// AddX returns a copy with the x component incremented by d.
func (v Vector3) AddX(d float64) Vector3 { v.X += d; return v }

// AddY returns a copy with the y component incremented by d.
func (v Vector3) AddY(d float64) Vector3 { v.Y += d; return v }

// AddZ returns a copy with the z component incremented by d.
func (v Vector3) AddZ(d float64) Vector3 { v.Z += d; return v }

// WithZ returns a copy with the z component replaced.
func (v Vector3) WithZ(z float64) Vector3 { v.Z = z; return v }

// XY projects onto the XY plane.
func (v Vector3) XY() Vector2 { return Vector2{v.X, v.Y} }

// XZ projects onto the XZ plane.
func (v Vector3) XZ() Vector2 { return Vector2{v.X, v.Z} }

// YZ projects onto the YZ plane.
func (v Vector3) YZ() Vector2 { return Vector2{v.Y, v.Z} }

// DistanceTo returns the Euclidean distance to another point.
func (v Vector3) DistanceTo(o Vector3) float64 {
	dx, dy, dz := v.X-o.X, v.Y-o.Y, v.Z-o.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

func (v Vector3) String() string {
	return fmt.Sprintf("{x: %v, y: %v, z: %v}", Round(v.X), Round(v.Y), Round(v.Z))
}

package geom

// Bounds is an axis-aligned box in 3D space.
type Bounds struct {
	Min Vector3 `json:"min"`
	Max Vector3 `json:"max"`
}

// NewBounds returns a box from the origin to (x, y, z).
func NewBounds(x, y, z float64) Bounds {
	return Bounds{Max: Vector3{X: x, Y: y, Z: z}}
}

// MinMax returns an inverted seed box (Min at +max, Max at -max) so
// that folding points into it with Expand yields a tight fit.
func MinMax() Bounds {
	return Bounds{Min: MaxV3(), Max: MinV3()}
}

// Size returns the extent of the box along each axis.
func (b Bounds) Size() Vector3 {
	return b.Max.Sub(b.Min)
}

// Expand grows the box to include the given point.
func (b Bounds) Expand(p Vector3) Bounds {
	if p.X < b.Min.X {
		b.Min.X = p.X
	}
	if p.Y < b.Min.Y {
		b.Min.Y = p.Y
	}
	if p.Z < b.Min.Z {
		b.Min.Z = p.Z
	}
	if p.X > b.Max.X {
		b.Max.X = p.X
	}
	if p.Y > b.Max.Y {
		b.Max.Y = p.Y
	}
	if p.Z > b.Max.Z {
		b.Max.Z = p.Z
	}
	return b
}

// Union grows the box to include another box.
func (b Bounds) Union(o Bounds) Bounds {
	return b.Expand(o.Min).Expand(o.Max)
}

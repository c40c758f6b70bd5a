// Package sdfx maps geom values to and from the vector and box types
// of the github.com/deadsy/sdfx CAD library, so toolpaths can be
// derived from models built with it. Mappings are pure; no SDFs are
// constructed here.
package sdfx

import (
	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/kerf/pkg/geom"
)

// ToV2 converts a geom.Vector2 to an sdfx 2D vector.
func ToV2(v geom.Vector2) v2.Vec {
	return v2.Vec{X: v.X, Y: v.Y}
}

// FromV2 converts an sdfx 2D vector to a geom.Vector2.
func FromV2(v v2.Vec) geom.Vector2 {
	return geom.Vector2{X: v.X, Y: v.Y}
}

// ToV3 converts a geom.Vector3 to an sdfx 3D vector.
func ToV3(v geom.Vector3) v3.Vec {
	return v3.Vec{X: v.X, Y: v.Y, Z: v.Z}
}

// FromV3 converts an sdfx 3D vector to a geom.Vector3.
func FromV3(v v3.Vec) geom.Vector3 {
	return geom.Vector3{X: v.X, Y: v.Y, Z: v.Z}
}

// ToBox3 converts bounds to an sdfx box.
func ToBox3(b geom.Bounds) sdf.Box3 {
	return sdf.Box3{Min: ToV3(b.Min), Max: ToV3(b.Max)}
}

// FromBox3 converts an sdfx box to bounds, typically the bounding box
// of a solid that toolpaths are planned against.
func FromBox3(b sdf.Box3) geom.Bounds {
	return geom.Bounds{Min: FromV3(b.Min), Max: FromV3(b.Max)}
}

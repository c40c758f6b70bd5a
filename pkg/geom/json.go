package geom

import (
	"encoding/json"
	"fmt"
)

// Vectors serialize as coordinate tuples ([x, y] / [x, y, z]) to match
// the wire format Camotics expects for workpiece bounds.

// MarshalJSON implements json.Marshaler.
func (v Vector2) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{v.X, v.Y})
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Vector2) UnmarshalJSON(data []byte) error {
	var a [2]float64
	if err := json.Unmarshal(data, &a); err != nil {
		return fmt.Errorf("vector2: %w", err)
	}
	v.X, v.Y = a[0], a[1]
	return nil
}

// MarshalJSON implements json.Marshaler.
func (v Vector3) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]float64{v.X, v.Y, v.Z})
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Vector3) UnmarshalJSON(data []byte) error {
	var a [3]float64
	if err := json.Unmarshal(data, &a); err != nil {
		return fmt.Errorf("vector3: %w", err)
	}
	v.X, v.Y, v.Z = a[0], a[1], a[2]
	return nil
}

// MarshalJSON implements json.Marshaler.
func (u Units) MarshalJSON() ([]byte, error) {
	if u == Imperial {
		return json.Marshal("imperial")
	}
	return json.Marshal("metric")
}

// UnmarshalJSON implements json.Unmarshaler.
func (u *Units) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("units: %w", err)
	}
	switch s {
	case "metric":
		*u = Metric
	case "imperial":
		*u = Imperial
	default:
		return fmt.Errorf("units: unknown value %q", s)
	}
	return nil
}

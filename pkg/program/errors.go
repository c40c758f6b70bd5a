package program

import "fmt"

// ValidationError reports a clearance height lower than material the
// program cuts at.
type ValidationError struct {
	Height string
	Value  float64
	Max    float64
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s (%g) must be at or above the highest cut (%g)", e.Height, e.Value, e.Max)
}

// MergeError reports two programs or contexts that cannot be
// combined.
type MergeError struct {
	Reason string
}

func (e *MergeError) Error() string {
	return "cannot merge: " + e.Reason
}

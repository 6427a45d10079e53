package geometry

import (
	"fmt"
	"math"
)

// Reference case geometry.
const (
	DefaultFirstWallArea = 2458369.11 // cm²
	DefaultMajorRadius   = 330.0      // cm
)

// DefaultThicknesses are the shell thicknesses in cm, first wall outwards:
// first wall, structure, breeder channel, multiplier, structure, breeder tank, structure.
var DefaultThicknesses = []float64{0.1, 1, 2, 1, 3, 100, 3}

// Radii are shell boundary minor radii, innermost first.
type Radii []float64

// MinorRadius inverts the torus surface area for the minor radius.
func MinorRadius(area, major float64) float64 {
	return area / (4 * math.Pi * math.Pi * major)
}

// Solve returns the minor radius followed by one radius per thickness.
// It does not validate its inputs; see SolveChecked.
func Solve(area, major float64, thicknesses []float64) Radii {
	r := make(Radii, 0, len(thicknesses)+1)
	r = append(r, MinorRadius(area, major))
	for _, t := range thicknesses {
		r = append(r, r[len(r)-1]+t)
	}
	return r
}

// SolveChecked rejects non-positive inputs and radii that would not form a
// ring torus before solving.
func SolveChecked(area, major float64, thicknesses []float64) (Radii, error) {
	if area <= 0 || math.IsNaN(area) || math.IsInf(area, 0) {
		return nil, fmt.Errorf("first wall area must be positive and finite, got %g", area)
	}
	if major <= 0 || math.IsNaN(major) || math.IsInf(major, 0) {
		return nil, fmt.Errorf("major radius must be positive and finite, got %g", major)
	}
	if len(thicknesses) == 0 {
		return nil, fmt.Errorf("at least one shell thickness is required")
	}
	for i, t := range thicknesses {
		if t <= 0 || math.IsNaN(t) || math.IsInf(t, 0) {
			return nil, fmt.Errorf("thickness %d must be positive and finite, got %g", i+1, t)
		}
	}

	r := Solve(area, major, thicknesses)
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if outer := r.Outer(); outer >= major {
		return nil, fmt.Errorf("outer minor radius %.4f reaches the major radius %.4f (torus self-intersects)", outer, major)
	}
	return r, nil
}

// Validate checks that the radii are positive and strictly increasing.
func (r Radii) Validate() error {
	if len(r) == 0 {
		return fmt.Errorf("no radii")
	}
	if r[0] <= 0 {
		return fmt.Errorf("radius 0 must be positive, got %g", r[0])
	}
	for i := 1; i < len(r); i++ {
		if r[i] <= r[i-1] {
			return fmt.Errorf("radius %d (%g) does not exceed radius %d (%g)", i, r[i], i-1, r[i-1])
		}
	}
	return nil
}

// Inner returns the plasma-facing minor radius.
func (r Radii) Inner() float64 { return r[0] }

// Outer returns the outermost minor radius.
func (r Radii) Outer() float64 { return r[len(r)-1] }

// Thicknesses recovers the per-shell thicknesses.
func (r Radii) Thicknesses() []float64 {
	if len(r) < 2 {
		return nil
	}
	out := make([]float64, len(r)-1)
	for i := 1; i < len(r); i++ {
		out[i-1] = r[i] - r[i-1]
	}
	return out
}

package domain

import "fmt"

// BoundaryType controls what happens to particles crossing a surface.
type BoundaryType string

const (
	BoundaryTransmission BoundaryType = "transmission"
	BoundaryVacuum       BoundaryType = "vacuum"
)

// Surface is a torus around the z axis. All surfaces of a blanket share the
// centre and the major radius; only MinorRadius varies.
type Surface struct {
	ID          int          `json:"id" yaml:"id" mapstructure:"id"`
	Name        string       `json:"name" yaml:"name" mapstructure:"name"`
	X0          float64      `json:"x0" yaml:"x0" mapstructure:"x0"`
	Y0          float64      `json:"y0" yaml:"y0" mapstructure:"y0"`
	Z0          float64      `json:"z0" yaml:"z0" mapstructure:"z0"`
	MajorRadius float64      `json:"major_radius" yaml:"major_radius" mapstructure:"major_radius"`
	MinorRadius float64      `json:"minor_radius" yaml:"minor_radius" mapstructure:"minor_radius"`
	Boundary    BoundaryType `json:"boundary" yaml:"boundary" mapstructure:"boundary"`
}

// Coefficients returns the z-torus coefficients (x0 y0 z0 a b c) with b = c.
func (s Surface) Coefficients() []float64 {
	return []float64{s.X0, s.Y0, s.Z0, s.MajorRadius, s.MinorRadius, s.MinorRadius}
}

// Region is the half-space intersection "outside Inner AND inside Outer".
// Inner is zero for the innermost cell, which is only "inside Outer".
type Region struct {
	Inner int `json:"inner,omitempty" yaml:"inner,omitempty" mapstructure:"inner"`
	Outer int `json:"outer" yaml:"outer" mapstructure:"outer"`
}

// String renders the region in the engine's half-space syntax
// ("-1" or "1 -2"; a positive half-space carries no sign).
func (r Region) String() string {
	if r.Inner == 0 {
		return fmt.Sprintf("-%d", r.Outer)
	}
	return fmt.Sprintf("%d -%d", r.Inner, r.Outer)
}

// Cell is a region filled with a single material.
type Cell struct {
	ID       int    `json:"id" yaml:"id" mapstructure:"id"`
	Name     string `json:"name" yaml:"name" mapstructure:"name"`
	Material string `json:"material" yaml:"material" mapstructure:"material"`
	Region   Region `json:"region" yaml:"region" mapstructure:"region"`
}

// Geometry holds the surfaces and cells of the root universe, ordered from
// the plasma chamber outwards.
type Geometry struct {
	Surfaces []Surface `json:"surfaces" yaml:"surfaces" mapstructure:"surfaces"`
	Cells    []Cell    `json:"cells" yaml:"cells" mapstructure:"cells"`
}

// Cell returns the cell with the given name.
func (g Geometry) Cell(name string) (Cell, bool) {
	for _, c := range g.Cells {
		if c.Name == name {
			return c, true
		}
	}
	return Cell{}, false
}

// Radii returns the minor radii of the surfaces, innermost first.
func (g Geometry) Radii() []float64 {
	out := make([]float64, len(g.Surfaces))
	for i, s := range g.Surfaces {
		out[i] = s.MinorRadius
	}
	return out
}

package validation

import (
	"fmt"
	"math"
	"strconv"

	"gonum.org/v1/gonum/floats"

	"github.com/aretw0/blanket/pkg/domain"
	"github.com/aretw0/blanket/pkg/nuclide"
)

// WeightFractionTolerance bounds |sum - 1| for weight-fraction materials.
const WeightFractionTolerance = 1e-2

// Model checks materials, geometry, settings and tallies of m.
func Model(m *domain.Model) error {
	if m == nil {
		return &AggregateError{Errors: []error{&ValidationError{Key: "model", Reason: "is nil"}}}
	}

	c := &collector{}
	if m.Name == "" {
		c.fail("name", "required", nil)
	}
	checkMaterials(c, m.Materials)
	checkGeometry(c, m)
	checkSettings(c, m.Settings)
	checkTallies(c, m)
	return c.result()
}

// Materials checks a material list on its own.
func Materials(materials []domain.Material) error {
	c := &collector{}
	checkMaterials(c, materials)
	return c.result()
}

// Tallies checks tally names, ids and filter references.
func Tallies(m *domain.Model) error {
	c := &collector{}
	checkTallies(c, m)
	return c.result()
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

func checkMaterials(c *collector, materials []domain.Material) {
	if len(materials) == 0 {
		c.fail("materials", "at least one material is required", nil)
		return
	}

	names := make(map[string]bool, len(materials))
	ids := make(map[int]bool, len(materials))
	for i, m := range materials {
		key := fmt.Sprintf("materials[%s]", m.Name)
		if m.Name == "" {
			key = fmt.Sprintf("materials[%d]", i)
			c.fail(key+".name", "required", nil)
		} else if names[m.Name] {
			c.fail(key+".name", "duplicate material name", m.Name)
		}
		names[m.Name] = true

		if ids[m.ID] {
			c.fail(key+".id", "duplicate material id", m.ID)
		}
		ids[m.ID] = true

		if !positive(m.Density.Value) {
			c.fail(key+".density", "must be positive", m.Density.Value)
		}
		if m.Density.Units == "" {
			c.fail(key+".density.units", "required", nil)
		}
		if !positive(m.Temperature) {
			c.fail(key+".temperature", "must be positive", m.Temperature)
		}

		if len(m.Constituents) == 0 {
			c.fail(key+".constituents", "at least one constituent is required", nil)
			continue
		}
		for _, cst := range m.Constituents {
			ckey := fmt.Sprintf("%s.%s", key, cst.Name)
			if !positive(cst.Fraction) {
				c.fail(ckey, "fraction must be positive", cst.Fraction)
			}
			if err := checkConstituentName(cst); err != nil {
				c.fail(ckey, err.Error(), nil)
			}
		}

		switch m.Basis() {
		case "":
			c.fail(key+".constituents", "mixes atom and weight fractions", nil)
		case domain.WeightFraction:
			if sum := floats.Sum(m.Fractions()); math.Abs(sum-1) > WeightFractionTolerance {
				c.fail(key+".constituents", "weight fractions must sum to 1", sum)
			}
		case domain.AtomFraction:
		default:
			c.fail(key+".constituents", "unknown fraction basis", m.Basis())
		}
	}
}

func checkConstituentName(cst domain.Constituent) error {
	switch cst.Kind {
	case domain.KindNuclide:
		_, err := nuclide.ParseIsotope(cst.Name)
		return err
	case domain.KindElement:
		if _, err := nuclide.ParseElement(cst.Name); err != nil {
			return err
		}
		if _, ok := nuclide.NaturalIsotopes(cst.Name); !ok {
			return fmt.Errorf("element %q: no natural abundance data", cst.Name)
		}
		return nil
	default:
		return fmt.Errorf("unknown constituent kind %q", cst.Kind)
	}
}

func checkGeometry(c *collector, m *domain.Model) {
	g := m.Geometry
	if len(g.Surfaces) == 0 {
		c.fail("geometry.surfaces", "at least one surface is required", nil)
		return
	}
	if len(g.Cells) != len(g.Surfaces) {
		c.fail("geometry.cells", fmt.Sprintf("cell count must equal surface count %d", len(g.Surfaces)), len(g.Cells))
	}

	radii := g.Radii()
	if radii[0] <= 0 {
		c.fail("geometry.surfaces[1].minor_radius", "must be positive", radii[0])
	}
	major := g.Surfaces[0].MajorRadius
	for i, s := range g.Surfaces {
		key := fmt.Sprintf("geometry.surfaces[%d]", s.ID)
		if s.ID != i+1 {
			c.fail(key+".id", "surfaces must be numbered from 1 in radial order", s.ID)
		}
		if i > 0 && s.MinorRadius <= radii[i-1] {
			c.fail(key+".minor_radius", "radii must be strictly increasing", s.MinorRadius)
		}
		if s.MajorRadius != major {
			c.fail(key+".major_radius", "surfaces must share the major radius", s.MajorRadius)
		}
		if s.X0 != 0 || s.Y0 != 0 || s.Z0 != 0 {
			c.fail(key, "surfaces must share the origin", s.Coefficients()[:3])
		}

		last := i == len(g.Surfaces)-1
		switch {
		case last && s.Boundary != domain.BoundaryVacuum:
			c.fail(key+".boundary", "outermost surface must be a vacuum boundary", s.Boundary)
		case !last && s.Boundary == domain.BoundaryVacuum:
			c.fail(key+".boundary", "only the outermost surface may be a vacuum boundary", s.Boundary)
		}
	}
	if !positive(major) {
		c.fail("geometry.major_radius", "must be positive", major)
	} else if outer := radii[len(radii)-1]; outer >= major {
		c.fail("geometry.surfaces", "outer minor radius reaches the major radius", outer)
	}

	names := make(map[string]bool, len(g.Cells))
	for i, cell := range g.Cells {
		key := fmt.Sprintf("geometry.cells[%s]", cell.Name)
		if cell.ID != i+1 {
			c.fail(key+".id", "cells must be numbered from 1 in radial order", cell.ID)
		}
		if names[cell.Name] {
			c.fail(key+".name", "duplicate cell name", cell.Name)
		}
		names[cell.Name] = true

		if _, ok := m.Material(cell.Material); !ok {
			c.wrap(fmt.Errorf("%s.material: %w %q", key, domain.ErrUnknownMaterial, cell.Material))
		}

		want := domain.Region{Inner: i, Outer: i + 1}
		if cell.Region != want {
			c.fail(key+".region", fmt.Sprintf("must be %q", want.String()), cell.Region.String())
		}
	}
}

func checkSettings(c *collector, s domain.Settings) {
	if s.Batches <= 0 {
		c.fail("settings.batches", "must be positive", s.Batches)
	}
	if s.Inactive < 0 || s.Inactive >= s.Batches {
		c.fail("settings.inactive", "must be in [0, batches)", s.Inactive)
	}
	if s.Particles <= 0 {
		c.fail("settings.particles", "must be positive", s.Particles)
	}
	if s.RunMode == "" {
		c.fail("settings.run_mode", "required", nil)
	}
}

func checkTallies(c *collector, m *domain.Model) {
	cells := make(map[int]bool, len(m.Geometry.Cells))
	for _, cell := range m.Geometry.Cells {
		cells[cell.ID] = true
	}

	filters := make(map[int]bool, len(m.Filters))
	for _, f := range m.Filters {
		key := fmt.Sprintf("filters[%d]", f.ID)
		if filters[f.ID] {
			c.fail(key, "duplicate filter id", f.ID)
		}
		filters[f.ID] = true

		switch f.Kind {
		case domain.FilterCell:
			if len(f.Cells) == 0 {
				c.fail(key+".cells", "at least one cell is required", nil)
			}
			for _, id := range f.Cells {
				if !cells[id] {
					c.fail(key+".cells", "unknown cell", id)
				}
			}
		case domain.FilterParticle:
			if len(f.Particles) == 0 {
				c.fail(key+".particles", "at least one particle is required", nil)
			}
		case domain.FilterEnergy:
			if f.GroupStructure == "" {
				c.fail(key+".group_structure", "required", nil)
			}
		default:
			c.fail(key+".kind", "unknown filter kind", f.Kind)
		}
	}

	present := materialNuclides(m.Materials)
	names := make(map[string]bool, len(m.Tallies))
	ids := make(map[int]bool, len(m.Tallies))
	for _, t := range m.Tallies {
		key := fmt.Sprintf("tallies[%s]", t.Name)
		if t.Name == "" {
			c.fail(fmt.Sprintf("tallies[%d].name", t.ID), "required", nil)
		} else if names[t.Name] {
			c.wrap(fmt.Errorf("%s: %w", key, domain.ErrDuplicateTally))
		}
		names[t.Name] = true

		if ids[t.ID] {
			c.fail(key+".id", "duplicate tally id", t.ID)
		}
		ids[t.ID] = true

		if len(t.Scores) == 0 {
			c.fail(key+".scores", "at least one score is required", nil)
		}
		for _, id := range t.Filters {
			if !filters[id] {
				c.fail(key+".filters", "unknown filter", id)
			}
		}
		for _, n := range t.Nuclides {
			if !present[n] {
				c.fail(key+".nuclides", "not present in any material", n)
			}
		}
	}
}

// materialNuclides collects the nuclides the engine will see, with natural
// elements expanded to their isotopes.
func materialNuclides(materials []domain.Material) map[string]bool {
	out := make(map[string]bool)
	for _, m := range materials {
		for _, cst := range m.Constituents {
			if cst.Kind != domain.KindElement {
				out[cst.Name] = true
				continue
			}
			iso, _ := nuclide.NaturalIsotopes(cst.Name)
			for _, n := range iso {
				out[cst.Name+strconv.Itoa(n.A)] = true
			}
		}
	}
	return out
}

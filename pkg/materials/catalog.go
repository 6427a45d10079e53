// Package materials declares the blanket material catalog.
package materials

import (
	"fmt"

	"github.com/aretw0/blanket/pkg/domain"
	"github.com/aretw0/blanket/pkg/dsl"
)

// Material names. Downstream result parsing keys off these.
const (
	FirstWall  = "first_wall"          // tungsten armour
	Structure  = "structural_material" // Inconel 718
	Breeder    = "molten_salt"         // FLiBe
	Multiplier = "neutron_multiplier"  // beryllium
	Chamber    = "chamber"             // near-vacuum hydrogen
)

const (
	DefaultTemperature   = 900.0 // K
	DefaultLi6Enrichment = 0.9
)

// Params are the tunable inputs of the default catalog.
type Params struct {
	Temperature   float64 // K, applied to every material
	Li6Enrichment float64 // Li-6 atom share of breeder lithium, (0, 1]
}

// DefaultParams returns the reference case parameters.
func DefaultParams() Params {
	return Params{
		Temperature:   DefaultTemperature,
		Li6Enrichment: DefaultLi6Enrichment,
	}
}

// Catalog is an ordered, read-only set of materials.
type Catalog struct {
	materials []domain.Material
	index     map[string]int
}

// NewCatalog indexes materials by name. Names must be unique.
func NewCatalog(materials []domain.Material) (*Catalog, error) {
	c := &Catalog{index: make(map[string]int, len(materials))}
	for i, m := range materials {
		if _, dup := c.index[m.Name]; dup {
			return nil, fmt.Errorf("material %q declared twice", m.Name)
		}
		c.index[m.Name] = i
		c.materials = append(c.materials, m.Clone())
	}
	return c, nil
}

// Get returns a copy of the named material.
func (c *Catalog) Get(name string) (domain.Material, bool) {
	i, ok := c.index[name]
	if !ok {
		return domain.Material{}, false
	}
	return c.materials[i].Clone(), true
}

// All returns copies of every material in declaration order.
func (c *Catalog) All() []domain.Material {
	out := make([]domain.Material, len(c.materials))
	for i, m := range c.materials {
		out[i] = m.Clone()
	}
	return out
}

// Names returns the material names in declaration order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.materials))
	for i, m := range c.materials {
		out[i] = m.Name
	}
	return out
}

// Len returns the number of materials.
func (c *Catalog) Len() int { return len(c.materials) }

// Default builds the five-material blanket catalog.
func Default(p Params) (*Catalog, error) {
	if p.Temperature <= 0 {
		return nil, fmt.Errorf("temperature must be positive, got %g", p.Temperature)
	}
	if p.Li6Enrichment <= 0 || p.Li6Enrichment > 1 {
		return nil, fmt.Errorf("li6 enrichment must be in (0, 1], got %g", p.Li6Enrichment)
	}

	b := dsl.New()

	b.Material(FirstWall).
		Nuclide("W182", 26.5e-2).
		Nuclide("W180", 0.12e-2).
		Nuclide("W183", 14.31e-2).
		Nuclide("W184", 30.64e-2).
		Nuclide("W186", 28.43e-2).
		Density(domain.DensityUnitsGramsPerCC, 19.250).
		Temperature(p.Temperature)

	b.Material(Structure).
		ElementWeight("Al", 0.52e-2).
		ElementWeight("C", 0.021e-2).
		ElementWeight("Co", 0.11e-2).
		ElementWeight("Cr", 19.06e-2).
		ElementWeight("Cu", 0.02e-2).
		ElementWeight("Fe", 18.15e-2).
		ElementWeight("Mo", 3.04e-2).
		ElementWeight("Ti", 0.93e-2).
		ElementWeight("Nb", 5.08e-2).
		ElementWeight("Ni", 53.0e-2).
		Density(domain.DensityUnitsGramsPerCC, 8.19).
		Temperature(p.Temperature)

	// Li2BeF4: two lithium atoms per formula unit, split by enrichment.
	flibe := b.Material(Breeder).
		Element("F", 4).
		Element("Be", 1).
		Nuclide("Li6", 2*p.Li6Enrichment)
	if p.Li6Enrichment < 1 {
		flibe.Nuclide("Li7", 2*(1-p.Li6Enrichment))
	}
	flibe.Density(domain.DensityUnitsGramsPerCC, 1.94).
		Temperature(p.Temperature)

	b.Material(Multiplier).
		Element("Be", 1).
		Density(domain.DensityUnitsGramsPerCC, 1.848).
		Temperature(p.Temperature)

	b.Material(Chamber).
		Element("H", 1).
		Density(domain.DensityUnitsGramsPerCC, 1e-8).
		Temperature(p.Temperature)

	materials, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog: %w", err)
	}
	return NewCatalog(materials)
}

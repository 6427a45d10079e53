package domain

import "slices"

// FractionBasis tells the engine how to interpret a constituent fraction.
type FractionBasis string

const (
	// AtomFraction ("ao") fractions are relative atom counts.
	AtomFraction FractionBasis = "ao"
	// WeightFraction ("wo") fractions are mass fractions and should sum to one.
	WeightFraction FractionBasis = "wo"
)

// ConstituentKind distinguishes a single isotope from a natural element.
type ConstituentKind string

const (
	KindNuclide ConstituentKind = "nuclide"
	KindElement ConstituentKind = "element"
)

// DensityUnitsGramsPerCC is the only density unit the catalog uses.
const DensityUnitsGramsPerCC = "g/cm3"

// Constituent is one entry of a material composition.
type Constituent struct {
	Name     string          `json:"name" yaml:"name" mapstructure:"name"`
	Kind     ConstituentKind `json:"kind" yaml:"kind" mapstructure:"kind"`
	Fraction float64         `json:"fraction" yaml:"fraction" mapstructure:"fraction"`
	Basis    FractionBasis   `json:"basis" yaml:"basis" mapstructure:"basis"`
}

// Density is a value with its units.
type Density struct {
	Value float64 `json:"value" yaml:"value" mapstructure:"value"`
	Units string  `json:"units" yaml:"units" mapstructure:"units"`
}

// Material is a named composition. Treat it as a value: builders hand out
// copies and nothing mutates a Material once it is part of a Model.
type Material struct {
	ID           int           `json:"id" yaml:"id" mapstructure:"id"`
	Name         string        `json:"name" yaml:"name" mapstructure:"name"`
	Constituents []Constituent `json:"constituents" yaml:"constituents" mapstructure:"constituents"`
	Density      Density       `json:"density" yaml:"density" mapstructure:"density"`
	Temperature  float64       `json:"temperature" yaml:"temperature" mapstructure:"temperature"` // Kelvin
}

// Basis returns the fraction basis shared by the constituents, or "" when
// the material is empty or mixes bases.
func (m Material) Basis() FractionBasis {
	var basis FractionBasis
	for i, c := range m.Constituents {
		if i == 0 {
			basis = c.Basis
			continue
		}
		if c.Basis != basis {
			return ""
		}
	}
	return basis
}

// Fractions returns the constituent fractions in declaration order.
func (m Material) Fractions() []float64 {
	out := make([]float64, len(m.Constituents))
	for i, c := range m.Constituents {
		out[i] = c.Fraction
	}
	return out
}

// Clone returns a deep copy of the material.
func (m Material) Clone() Material {
	c := m
	c.Constituents = slices.Clone(m.Constituents)
	return c
}
